package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SnapshotRow is one archived snapshot. Rows are append-only; Load always
// reads the most recent one, older rows stay around as restore points.
type SnapshotRow struct {
	ID        uint      `gorm:"primaryKey"`
	Payload   []byte    `gorm:"not null"`
	Version   string    `gorm:"size:16"`
	CreatedAt time.Time `gorm:"index"`
}

func (SnapshotRow) TableName() string { return "snapshots" }

// SQLiteStore archives snapshots in a local SQLite file. It keeps a bounded
// history so a bad import can be rolled back by hand.
type SQLiteStore struct {
	db   *gorm.DB
	keep int
}

// NewSQLiteStore opens (or creates) the database at path and migrates the
// snapshots table. keep bounds how many rows survive pruning; keep <= 0
// disables pruning.
func NewSQLiteStore(path string, keep int) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&SnapshotRow{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, keep: keep}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap model.Snapshot) error {
	now := time.Now()
	snap.Version = model.SnapshotVersion
	snap.ExportDate = &now

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	row := SnapshotRow{Payload: data, Version: snap.Version, CreatedAt: now}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	return s.prune(ctx)
}

func (s *SQLiteStore) Load(ctx context.Context) (model.Snapshot, error) {
	var row SnapshotRow
	err := s.db.WithContext(ctx).Order("id DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return model.Snapshot{}, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal(row.Payload, &snap); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

// History returns the archived snapshot rows, newest first, without payloads.
func (s *SQLiteStore) History(ctx context.Context, limit int) ([]SnapshotRow, error) {
	var rows []SnapshotRow
	q := s.db.WithContext(ctx).
		Select("id", "version", "created_at").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SQLiteStore) prune(ctx context.Context) error {
	if s.keep <= 0 {
		return nil
	}
	var cutoff SnapshotRow
	err := s.db.WithContext(ctx).
		Select("id").
		Order("id DESC").
		Offset(s.keep - 1).
		First(&cutoff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("id < ?", cutoff.ID).
		Delete(&SnapshotRow{}).Error
}

var _ SnapshotStore = (*SQLiteStore)(nil)
