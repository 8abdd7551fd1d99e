package services_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/grid-watch/api-go/config"
	"github.com/grid-watch/api-go/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite store with the full schema. The CHECK
// constraints on the status columns fire here just like the Postgres
// domain does in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "gridwatch.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(config.AllModels...))
	return db
}

// seedRefData inserts the reference rows every report needs. IDs are fixed
// so tests can reference them directly: area 5, category 2, severity 1,
// user 10 (plus a second area/category pair for filter tests).
func seedRefData(t *testing.T, db *gorm.DB) {
	t.Helper()

	email := "works@gridwatch.example"
	require.NoError(t, db.Create(&models.User{
		UserID: 10, Name: "Jordan Reyes", Email: &email, PasswordHash: "x",
	}).Error)

	require.NoError(t, db.Create(&models.Department{DeptID: 1, Name: "Public Works"}).Error)
	require.NoError(t, db.Create(&models.Department{DeptID: 2, Name: "Parks"}).Error)

	require.NoError(t, db.Create(&models.ServiceArea{
		AreaID: 5, Name: "Downtown", Geojson: []byte(`{}`), DeptID: 1,
	}).Error)
	require.NoError(t, db.Create(&models.ServiceArea{
		AreaID: 6, Name: "Riverside", Geojson: []byte(`{}`), DeptID: 2,
	}).Error)

	require.NoError(t, db.Create(&models.Category{
		CategoryID: 2, Name: "Potholes", DefaultSLAHours: 48,
	}).Error)
	require.NoError(t, db.Create(&models.Category{
		CategoryID: 3, Name: "Streetlights", DefaultSLAHours: 72,
	}).Error)

	require.NoError(t, db.Create(&models.Severity{
		SeverityID: 1, Label: "High", Weight: 3,
	}).Error)
}

// mustCreateReport inserts a report directly, with an explicit timestamp
// so ordering tests are deterministic.
func mustCreateReport(t *testing.T, db *gorm.DB, title string, areaID, categoryID uint, createdAt time.Time) *models.Report {
	t.Helper()

	report := models.Report{
		Title:      title,
		AreaID:     areaID,
		CategoryID: categoryID,
		SeverityID: 1,
		CreatedBy:  10,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&report).Error)
	return &report
}
