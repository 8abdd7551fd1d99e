package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/grid-watch/api-go/models"
	"github.com/grid-watch/api-go/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// attachDependents populates every cascade-target table for the report and
// returns the work order id so its work_part rows can be checked too.
func attachDependents(t *testing.T, db *gorm.DB, reportID uint) uint {
	t.Helper()

	now := time.Now()
	accepted := now.Add(time.Hour)

	require.NoError(t, db.Create(&models.ReportMedia{ReportID: reportID, URL: "https://media.example/p.jpg"}).Error)
	require.NoError(t, db.Create(&models.Assignment{
		ReportID: reportID, DeptID: 1, AssignedAt: now, AcceptedAt: &accepted,
	}).Error)
	require.NoError(t, db.Create(&models.SLAClock{ReportID: reportID, StartedAt: now}).Error)
	require.NoError(t, db.Create(&models.Subscription{ReportID: reportID, UserID: 10}).Error)
	require.NoError(t, db.Create(&models.Upvote{ReportID: reportID, UserID: 10}).Error)
	require.NoError(t, db.Create(&models.Comment{ReportID: reportID, UserID: 10, Body: "still there"}).Error)
	require.NoError(t, db.Create(&models.Notification{ReportID: reportID, UserID: 10, Message: "status changed"}).Error)
	require.NoError(t, db.Create(&models.StatusUpdate{
		ReportID: reportID, Status: models.StatusTriaged, ChangedBy: 10,
	}).Error)

	wo := models.WorkOrder{ReportID: reportID, DeptID: 1}
	require.NoError(t, db.Create(&wo).Error)
	require.NoError(t, db.Create(&models.WorkPart{WoID: wo.WoID, Name: "asphalt", Quantity: 2, UnitCost: 19.5}).Error)
	require.NoError(t, db.Create(&models.WorkPart{WoID: wo.WoID, Name: "gravel", Quantity: 1, UnitCost: 7.25}).Error)

	return wo.WoID
}

func countWhere(t *testing.T, db *gorm.DB, table, column string, id uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Where(column+" = ?", id).Count(&n).Error)
	return n
}

func TestDeleteMissingReportLeavesStoreUnchanged(t *testing.T) {
	db := newTestDB(t)
	seedRefData(t, db)
	deleter := services.NewDeletionService(db)

	survivor := mustCreateReport(t, db, "Survivor", 5, 2, time.Now())
	attachDependents(t, db, survivor.ReportID)

	err := deleter.Delete(context.Background(), 31337)
	assert.ErrorIs(t, err, services.ErrReportNotFound)

	assert.EqualValues(t, 1, countWhere(t, db, "report", "report_id", survivor.ReportID))
	assert.EqualValues(t, 1, countWhere(t, db, "report_media", "report_id", survivor.ReportID))
	assert.EqualValues(t, 1, countWhere(t, db, "status_update", "report_id", survivor.ReportID))
}

func TestDeleteCascadesAcrossEveryDependentTable(t *testing.T) {
	db := newTestDB(t)
	seedRefData(t, db)
	deleter := services.NewDeletionService(db)
	ctx := context.Background()

	doomed := mustCreateReport(t, db, "Doomed", 5, 2, time.Now())
	keeper := mustCreateReport(t, db, "Keeper", 6, 3, time.Now())

	doomedWo := attachDependents(t, db, doomed.ReportID)
	keeperWo := attachDependents(t, db, keeper.ReportID)

	// Links referencing the doomed report from each FK role, plus one that
	// only involves the keeper.
	require.NoError(t, db.Create(&models.DuplicateLink{
		PrimaryReportID: doomed.ReportID, DuplicateReportID: keeper.ReportID,
	}).Error)
	require.NoError(t, db.Create(&models.DuplicateLink{
		PrimaryReportID: keeper.ReportID, DuplicateReportID: doomed.ReportID,
	}).Error)
	require.NoError(t, db.Create(&models.DuplicateLink{
		PrimaryReportID: keeper.ReportID, DuplicateReportID: keeper.ReportID,
	}).Error)

	require.NoError(t, deleter.Delete(ctx, doomed.ReportID))

	directChildren := []string{
		"report_media", "assignment", "sla_clock", "subscription",
		"upvote", "comment", "notification", "status_update", "work_order",
	}
	for _, table := range directChildren {
		assert.Zerof(t, countWhere(t, db, table, "report_id", doomed.ReportID), "table %s", table)
		assert.EqualValuesf(t, 1, countWhere(t, db, table, "report_id", keeper.ReportID), "table %s", table)
	}

	assert.Zero(t, countWhere(t, db, "work_part", "wo_id", doomedWo))
	assert.EqualValues(t, 2, countWhere(t, db, "work_part", "wo_id", keeperWo))

	assert.Zero(t, countWhere(t, db, "duplicate_link", "primary_report_id", doomed.ReportID))
	assert.Zero(t, countWhere(t, db, "duplicate_link", "duplicate_report_id", doomed.ReportID))
	assert.EqualValues(t, 1, countWhere(t, db, "duplicate_link", "primary_report_id", keeper.ReportID))

	assert.Zero(t, countWhere(t, db, "report", "report_id", doomed.ReportID))
	assert.EqualValues(t, 1, countWhere(t, db, "report", "report_id", keeper.ReportID))
}
