package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one stored value, addressed by (namespace, key). It is the
// database stand-in for the browser local storage the tracker's data model
// originated with: opaque JSON payloads under user-scoped keys.
type Record struct {
	Namespace string    `gorm:"type:varchar(100);primaryKey"`
	Key       string    `gorm:"type:varchar(100);primaryKey;column:record_key"`
	Value     []byte    `gorm:"type:blob;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for Record
func (Record) TableName() string {
	return "records"
}

// GormStore is the database-backed KeyValueStore
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a KeyValueStore over the given database connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(namespace, key string) ([]byte, error) {
	var record Record
	err := s.db.Where("namespace = ? AND record_key = ?", namespace, key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read record %s/%s: %w", namespace, key, err)
	}
	return record.Value, nil
}

func (s *GormStore) Set(namespace, key string, value []byte) error {
	record := Record{
		Namespace: namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write record %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *GormStore) Delete(namespace, key string) error {
	err := s.db.Where("namespace = ? AND record_key = ?", namespace, key).Delete(&Record{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete record %s/%s: %w", namespace, key, err)
	}
	return nil
}
