package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kendall-kelly/renovation-manager-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseKVStore persists values as rows of the kv_entries table
type DatabaseKVStore struct {
	db *gorm.DB
}

// NewDatabaseKVStore creates a store backed by db. The kv_entries table must
// already be migrated.
func NewDatabaseKVStore(db *gorm.DB) *DatabaseKVStore {
	return &DatabaseKVStore{db: db}
}

// Get loads the value stored under key
func (s *DatabaseKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Put inserts or replaces the value stored under key
func (s *DatabaseKVStore) Put(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the row stored under key
func (s *DatabaseKVStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&models.KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Name returns the gorm dialect, e.g. "sqlite" or "postgres"
func (s *DatabaseKVStore) Name() string {
	return "database/" + s.db.Dialector.Name()
}
