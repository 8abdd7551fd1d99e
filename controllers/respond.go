package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/grid-watch/api-go/services"
)

// respondServiceError maps domain errors to the wire taxonomy: NotFound →
// 404 with the fixed message, invalid status → 422 naming the valid
// values, everything else → opaque 500. Store error text never leaks.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Report not found"})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

// respondValidationError turns a binding failure into a 422 whose detail
// lists each malformed field.
func respondValidationError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]gin.H, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, gin.H{
				"field":   fe.Field(),
				"message": fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []gin.H{{"message": err.Error()}}})
}

// pathID parses an integer path parameter, answering 422 itself when the
// value is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []gin.H{{
			"field":   name,
			"message": "must be an integer",
		}}})
		return 0, false
	}
	return uint(id), true
}
