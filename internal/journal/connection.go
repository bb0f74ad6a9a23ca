// Package journal keeps a SQLite history of run and pick invocations.
package journal

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultPath is the journal location used when --journal is not given
const DefaultPath = "data/clickloop.db"

type DB struct {
	*gorm.DB
}

// Connect opens (creating if needed) the journal database at dbPath
func Connect(dbPath string) (*DB, error) {
	if dbPath == "" {
		dbPath = DefaultPath
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	return &DB{db}, nil
}

// Initialize creates or migrates the schema
func (db *DB) Initialize() error {
	if err := db.AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
