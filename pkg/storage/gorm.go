package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRow is the GORM model backing durable snapshots. One row per store
// namespace.
type SnapshotRow struct {
	Namespace string    `gorm:"primaryKey;size:64"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName pins the table name independent of GORM pluralization.
func (SnapshotRow) TableName() string {
	return "store_snapshots"
}

// GormStore persists snapshots in a relational table, usually SQLite on disk.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the snapshot table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm connection is required")
	}
	if err := db.AutoMigrate(&SnapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrating snapshot table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	var row SnapshotRow
	err := s.db.WithContext(ctx).First(&row, "namespace = ?", namespace).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.Payload, nil
}

func (s *GormStore) Save(ctx context.Context, namespace string, payload []byte) error {
	row := SnapshotRow{Namespace: namespace, Payload: payload}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, namespace string) error {
	return s.db.WithContext(ctx).Delete(&SnapshotRow{}, "namespace = ?", namespace).Error
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
