// Package mood contains mood entry use cases.
package mood

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

// fakeMoodRepo is an in-memory MoodEntryRepository for use case tests.
type fakeMoodRepo struct {
	entries map[uuid.UUID]*entity.MoodEntry
	failErr error
}

func newFakeMoodRepo() *fakeMoodRepo {
	return &fakeMoodRepo{entries: make(map[uuid.UUID]*entity.MoodEntry)}
}

func (r *fakeMoodRepo) Upsert(_ context.Context, entry *entity.MoodEntry) (*entity.MoodEntry, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	for _, existing := range r.entries {
		if existing.UserID == entry.UserID && existing.Date.Equal(entry.Date) {
			existing.Score = entry.Score
			existing.Comment = entry.Comment
			existing.UpdatedAt = time.Now().UTC()
			return existing, nil
		}
	}
	copied := *entry
	r.entries[copied.ID] = &copied
	return &copied, nil
}

func (r *fakeMoodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MoodEntry, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrMoodEntryNotFound
	}
	return entry, nil
}

func (r *fakeMoodRepo) FindByUserAndDate(_ context.Context, userID uuid.UUID, date time.Time) (*entity.MoodEntry, error) {
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.Date.Equal(entity.NormalizeDate(date)) {
			return entry, nil
		}
	}
	return nil, domainerror.ErrMoodEntryNotFound
}

func (r *fakeMoodRepo) FindByUserAndYear(_ context.Context, userID uuid.UUID, year int) ([]*entity.MoodEntry, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var result []*entity.MoodEntry
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.Date.Year() == year {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *fakeMoodRepo) Update(_ context.Context, entry *entity.MoodEntry) error {
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.entries[entry.ID]; !ok {
		return domainerror.ErrMoodEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeMoodRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.entries[id]; !ok {
		return domainerror.ErrMoodEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

// seed inserts an entry directly, bypassing upsert semantics.
func (r *fakeMoodRepo) seed(userID uuid.UUID, date time.Time, score int, comment string) *entity.MoodEntry {
	entry := entity.NewMoodEntry(userID, date, score, comment)
	r.entries[entry.ID] = entry
	return entry
}
