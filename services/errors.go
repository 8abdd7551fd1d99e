package services

import (
	"errors"
	"strings"

	"github.com/grid-watch/api-go/models"
)

var (
	// ErrReportNotFound maps to 404 at the HTTP boundary.
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidStatus maps to 422. It is raised only after the store has
	// rejected the value; there is no application-side membership check.
	ErrInvalidStatus = errors.New(
		"Invalid status value; must be one of: " + strings.Join(models.ReportStatuses, ", "))
)

// isStatusRejection reports whether err is the store refusing a status
// value. Covers the Postgres enum/check messages and SQLite's check
// wording, which the test store produces.
func isStatusRejection(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{
		"invalid input value for enum",
		"violates check constraint",
		"CHECK constraint failed",
		"chk_report_status",
		"chk_status_update_status",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
