// Package session owns the admin bearer token: one in-memory copy plus a
// durable copy, so a returning admin is not forced to log in again after a
// restart.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const tokenKey = "kwen_admin_token"

type credential struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"uniqueIndex;size:64"`
	Value string `gorm:"type:text"`
}

// Store persists the token in a small SQLite file.
type Store struct {
	db *gorm.DB
}

func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("session store: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	if err := db.AutoMigrate(&credential{}); err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the persisted token, or "" when none is stored.
func (s *Store) Load() (string, error) {
	var row credential
	err := s.db.Where("key = ?", tokenKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (s *Store) Save(token string) error {
	var row credential
	err := s.db.Where("key = ?", tokenKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&credential{Key: tokenKey, Value: token}).Error
	}
	if err != nil {
		return err
	}
	row.Value = token
	return s.db.Save(&row).Error
}

func (s *Store) Clear() error {
	return s.db.Where("key = ?", tokenKey).Delete(&credential{}).Error
}
