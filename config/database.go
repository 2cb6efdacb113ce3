package config

import (
	"time"

	"github.com/arvindkc/mymindmap-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

// Connect opens the database handle and migrates the schema. Postgres is
// used when DB_URL is set; otherwise a local sqlite file keeps development
// self-contained.
//
// NowFunc is pinned to UTC so created_at/updated_at are stored and compared
// in one timezone.
func Connect(env Environment) error {
	var dialector gorm.Dialector
	if env.DatabaseURL != "" {
		dialector = postgres.Open(env.DatabaseURL)
	} else {
		dialector = sqlite.Open(env.SQLitePath)
	}

	var err error
	Database, err = gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return err
	}

	return Database.AutoMigrate(&models.MindMap{})
}
