// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinScore is the lowest valid mood score.
	MinScore = 1
	// MaxScore is the highest valid mood score.
	MaxScore = 10
)

// MoodEntry represents one user's recorded mood for a single calendar day.
// The store guarantees at most one entry per (UserID, Date) pair.
type MoodEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time // day granularity, normalized to midnight UTC
	Score     int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMoodEntry creates a new MoodEntry entity for the given day.
func NewMoodEntry(userID uuid.UUID, date time.Time, score int, comment string) *MoodEntry {
	now := time.Now().UTC()

	return &MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      NormalizeDate(date),
		Score:     score,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidScore reports whether score lies within the allowed range.
func IsValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// NormalizeDate strips the time-of-day component, keeping the calendar day in UTC.
func NormalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
