package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/grid-watch/api-go/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// dependent names one table whose rows must be purged before the report
// row can go. The store has no declarative cascade for these, so the
// order below is the one that keeps referential integrity intact.
type dependent struct {
	Table    string
	FKColumn string
}

// reportDependents are the direct children, deleted after work_part
// (dependent-of-dependent, via work_order) and duplicate_link (which can
// point at the report from either column).
var reportDependents = []dependent{
	{"report_media", "report_id"},
	{"assignment", "report_id"},
	{"sla_clock", "report_id"},
	{"subscription", "report_id"},
	{"upvote", "report_id"},
	{"comment", "report_id"},
	{"notification", "report_id"},
	{"status_update", "report_id"},
	{"work_order", "report_id"},
}

type DeletionService struct {
	DB *gorm.DB
}

func NewDeletionService(db *gorm.DB) *DeletionService {
	return &DeletionService{DB: db}
}

// Delete removes the report and every row that transitively references it
// as one transaction: either all rows disappear or none do. A missing
// report yields ErrReportNotFound with no effects.
func (s *DeletionService) Delete(ctx context.Context, reportID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var report models.Report
		if err := tx.First(&report, reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReportNotFound
			}
			return err
		}

		if err := tx.Exec(
			"DELETE FROM work_part WHERE wo_id IN (SELECT wo_id FROM work_order WHERE report_id = ?)",
			reportID).Error; err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM duplicate_link WHERE primary_report_id = ? OR duplicate_report_id = ?",
			reportID, reportID).Error; err != nil {
			return err
		}

		for _, dep := range reportDependents {
			stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ?",
				pq.QuoteIdentifier(dep.Table), pq.QuoteIdentifier(dep.FKColumn))
			if err := tx.Exec(stmt, reportID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&report).Error
	})
}
