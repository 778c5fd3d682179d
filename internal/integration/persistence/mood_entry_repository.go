// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
	"github.com/mood-tracker/backend/internal/integration/persistence/model"
)

// pqUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pqUniqueViolation = "23505"

// moodEntryRepository implements the adapter.MoodEntryRepository interface.
type moodEntryRepository struct {
	db *gorm.DB
}

// NewMoodEntryRepository creates a new mood entry repository instance.
func NewMoodEntryRepository(db *gorm.DB) adapter.MoodEntryRepository {
	return &moodEntryRepository{
		db: db,
	}
}

// Upsert creates the entry or replaces the score and comment of the existing
// entry for the same (user_id, date) pair. The conflict target is the
// composite unique index, so two concurrent submissions for the same day
// collapse into one row.
func (r *moodEntryRepository) Upsert(ctx context.Context, entry *entity.MoodEntry) (*entity.MoodEntry, error) {
	entryModel := model.MoodEntryFromEntity(entry)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"score":      entryModel.Score,
			"comment":    entryModel.Comment,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(entryModel)
	if result.Error != nil {
		return nil, mapMoodError(result.Error)
	}

	// Re-fetch to return the surviving row; on conflict the original ID
	// and created_at are kept.
	return r.FindByUserAndDate(ctx, entry.UserID, entry.Date)
}

// FindByID retrieves a mood entry by its ID.
func (r *moodEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodEntry, error) {
	var entryModel model.MoodEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMoodEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserAndDate retrieves the entry for the given user and calendar day.
func (r *moodEntryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.MoodEntry, error) {
	var entryModel model.MoodEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, entity.NormalizeDate(date)).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMoodEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserAndYear retrieves all entries for the user within the year,
// ordered ascending by date.
func (r *moodEntryRepository) FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]*entity.MoodEntry, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	var entryModels []model.MoodEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, yearStart, yearEnd).
		Order("date ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.MoodEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update updates an existing mood entry in the database.
func (r *moodEntryRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	entryModel := model.MoodEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return mapMoodError(result.Error)
	}
	return nil
}

// Delete removes a mood entry from the database permanently.
func (r *moodEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MoodEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// mapMoodError translates driver-level unique violations to the domain
// conflict error.
func mapMoodError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return domainerror.ErrMoodEntryConflict
	}
	return err
}
