package config

import (
	"fmt"
	"log"
	"os"

	"github.com/grid-watch/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AllModels lists every mapped table, parents before children, for
// migration. Dependent tables are included even though no endpoint writes
// them: the cascade delete needs them to exist.
var AllModels = []interface{}{
	&models.User{},
	&models.Department{},
	&models.ServiceArea{},
	&models.Category{},
	&models.Severity{},
	&models.Report{},
	&models.StatusUpdate{},
	&models.ReportMedia{},
	&models.Assignment{},
	&models.SLAClock{},
	&models.Subscription{},
	&models.Upvote{},
	&models.Comment{},
	&models.Notification{},
	&models.WorkOrder{},
	&models.WorkPart{},
	&models.DuplicateLink{},
}

func ConnectDatabase() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(AllModels...); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func InitDB() *gorm.DB {
	db, err := ConnectDatabase()
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	return db
}
