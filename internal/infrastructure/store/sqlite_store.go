package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	apperrors "github.com/alexisbeaulieu97/colorfield/pkg/errors"
)

// CustomColor is one remembered custom color. Position 0 is the newest.
type CustomColor struct {
	ID       uint   `gorm:"primaryKey"`
	Position int    `gorm:"not null;index"`
	Value    string `gorm:"not null"`
}

// SQLiteStore keeps custom colors in a SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (and migrates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, apperrors.NewStoreError("sqlite", "init", fmt.Errorf("failed to create store directory: %w", err))
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, apperrors.NewStoreError("sqlite", "open", err)
	}
	if err := db.AutoMigrate(&CustomColor{}); err != nil {
		return nil, apperrors.NewStoreError("sqlite", "migrate", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load returns the stored colors, newest first.
func (s *SQLiteStore) Load(ctx context.Context) ([]color.Value, error) {
	var rows []CustomColor
	if err := s.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, apperrors.NewStoreError("sqlite", "load", err)
	}
	colors := make([]color.Value, 0, len(rows))
	for _, row := range rows {
		colors = append(colors, color.Value(row.Value))
	}
	return colors, nil
}

// Save replaces the stored colors in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, colors []color.Value) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&CustomColor{}).Error; err != nil {
			return err
		}
		if len(colors) == 0 {
			return nil
		}
		rows := make([]CustomColor, 0, len(colors))
		for i, c := range colors {
			rows = append(rows, CustomColor{Position: i, Value: string(c)})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return apperrors.NewStoreError("sqlite", "save", err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
