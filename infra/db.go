package infra

import (
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campus-market/config"
)

// SetupDB opens the application database. A configured postgres DSN wins;
// otherwise a local sqlite file is used.
func SetupDB(cfg config.Config) (*gorm.DB, error) {
	if cfg.Database.URL != "" {
		db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		Logger().Info("Setup postgres database")
		return db, nil
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	Logger().Infof("Setup sqlite database at %s", cfg.Database.Path)
	return db, nil
}

// SetupTestDB opens an in-memory sqlite database for tests.
func SetupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to test database")
	}
	return db
}
