// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/domain/entity"
)

// MoodEntryRepository defines the interface for mood entry persistence operations.
// The store holds at most one entry per (user, date) pair.
type MoodEntryRepository interface {
	// Upsert atomically creates the entry or, if one already exists for the
	// same (user, date) pair, replaces its score and comment in place.
	Upsert(ctx context.Context, entry *entity.MoodEntry) (*entity.MoodEntry, error)

	// FindByID retrieves a mood entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodEntry, error)

	// FindByUserAndDate retrieves the entry for the given user and calendar day, if any.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.MoodEntry, error)

	// FindByUserAndYear retrieves all entries for the given user within the
	// given year, ordered ascending by date.
	FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]*entity.MoodEntry, error)

	// Update updates an existing mood entry in the database.
	Update(ctx context.Context, entry *entity.MoodEntry) error

	// Delete removes a mood entry from the database permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
