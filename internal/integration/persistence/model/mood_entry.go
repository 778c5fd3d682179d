// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/domain/entity"
)

// MoodEntryModel represents the mood_entries table in the database.
// The composite unique index on (user_id, date) guarantees at most one
// entry per user per calendar day, even under concurrent submissions.
type MoodEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_mood_user_date;not null"`
	Date      time.Time `gorm:"type:date;uniqueIndex:idx_mood_user_date;not null"`
	Score     int       `gorm:"not null"`
	Comment   string    `gorm:"type:varchar(1000)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MoodEntryModel.
func (MoodEntryModel) TableName() string {
	return "mood_entries"
}

// ToEntity converts a MoodEntryModel to a domain MoodEntry entity.
func (m *MoodEntryModel) ToEntity() *entity.MoodEntry {
	return &entity.MoodEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      entity.NormalizeDate(m.Date),
		Score:     m.Score,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MoodEntryFromEntity creates a MoodEntryModel from a domain MoodEntry entity.
func MoodEntryFromEntity(entry *entity.MoodEntry) *MoodEntryModel {
	return &MoodEntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Date:      entry.Date,
		Score:     entry.Score,
		Comment:   entry.Comment,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
