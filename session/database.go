package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the persisted form of a session for the database driver.
type Record struct {
	gorm.Model
	SessionID string         `gorm:"size:64;uniqueIndex;not null"`
	Data      datatypes.JSON `gorm:"not null"`
	ExpiresAt time.Time      `gorm:"not null;index"`
}

// DatabaseStore keeps sessions in the relational store alongside the rest
// of the data. Handy when neither Redis nor sticky instances are around.
type DatabaseStore struct {
	db *gorm.DB
}

func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) Get(ctx context.Context, id string) (map[string]any, error) {
	var record Record
	err := s.db.WithContext(ctx).Where("session_id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(record.ExpiresAt) {
		return map[string]any{}, nil
	}
	var data map[string]any
	if err := json.Unmarshal(record.Data, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *DatabaseStore) Set(ctx context.Context, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	record := Record{
		SessionID: id,
		Data:      datatypes.JSON(raw),
		ExpiresAt: time.Now().Add(TTL),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
	}).Create(&record).Error
}

func (s *DatabaseStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("session_id = ?", id).Delete(&Record{}).Error
}
