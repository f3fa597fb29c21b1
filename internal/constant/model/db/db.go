package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB wraps the GORM database connection.
type DB struct {
	*gorm.DB
}

// NewDB opens the SQLite ledger file at path and ensures the schema exists.
// The migration is idempotent: calling it on every process start never
// duplicates or drops existing data.
func NewDB(path string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; funnel all access through one
	// connection so writes queue in the driver instead of failing
	// with SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Payment{}); err != nil {
		return nil, err
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
