package main

import (
	"os"
	"path/filepath"

	"glacierwatch/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	if cfg.DatabaseDSN == "" {
		logger.Fatal("DATABASE_DSN is not set; a Postgres/PostGIS DSN is required")
	}
	var err error
	db, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatalw("failed to connect to postgres", "error", err)
	}
	if cfg.AutoMigrate {
		migrateDB()
	}
	ensureDataDirs()
}

// migrateDB runs AutoMigrate per model so one failure doesn't block the rest.
// The geometry columns need PostGIS, so the extension comes first.
func migrateDB() {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		logger.Warnw("could not ensure postgis extension", "error", err)
	}
	// referenced tables first so the snow-data FKs can be applied
	tables := []struct {
		name  string
		model any
	}{
		{"project", &models.Project{}},
		{"glacier", &models.Glacier{}},
		{"scene", &models.Scene{}},
		{"glacier_analysis_result", &models.GlaciersAnalysisResult{}},
		{"glacier_snow_data", &models.GlacierSnowData{}},
	}
	for _, t := range tables {
		if err := db.AutoMigrate(t.model); err != nil {
			logger.Warnw("migration warning", "table", t.name, "error", err)
		}
	}
}

// ensureDataDirs creates the raw/ and result/ trees the workers write into.
func ensureDataDirs() {
	for _, sub := range []string{"raw", "result"} {
		dir := filepath.Join(cfg.DataDir, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Warnw("failed to create data dir", "dir", dir, "error", err)
		}
	}
}
