package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/grid-watch/api-go/models"
	"gorm.io/gorm"
)

// StatusChangeInput carries a requested transition. Note is used verbatim
// when supplied; otherwise a "Status changed from X to Y" note is
// synthesized from the report's status at the time of the change.
type StatusChangeInput struct {
	NewStatus string
	Note      *string
	ChangedBy uint
}

type StatusService struct {
	DB *gorm.DB
}

func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{DB: db}
}

// UpdateStatus overwrites the report's current_status and appends the
// audit row in one transaction. The target value is not checked here: the
// store's column constraint rejects unknown members and that rejection is
// translated to ErrInvalidStatus. Any source→target pair is allowed.
func (s *StatusService) UpdateStatus(ctx context.Context, reportID uint, input StatusChangeInput) (*StatusUpdateOut, error) {
	var created models.StatusUpdate

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var report models.Report
		if err := tx.First(&report, reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReportNotFound
			}
			return err
		}

		note := input.Note
		if note == nil || *note == "" {
			synthesized := fmt.Sprintf("Status changed from %s to %s", report.CurrentStatus, input.NewStatus)
			note = &synthesized
		}

		if err := tx.Model(&models.Report{}).
			Where("report_id = ?", reportID).
			Update("current_status", input.NewStatus).Error; err != nil {
			return err
		}

		created = models.StatusUpdate{
			ReportID:  reportID,
			Status:    input.NewStatus,
			Note:      note,
			ChangedBy: input.ChangedBy,
		}
		return tx.Create(&created).Error
	})

	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			return nil, err
		}
		if isStatusRejection(err) {
			return nil, ErrInvalidStatus
		}
		return nil, err
	}

	return &StatusUpdateOut{
		StatusID:  created.StatusID,
		Status:    created.Status,
		Note:      created.Note,
		ChangedAt: created.ChangedAt,
	}, nil
}
