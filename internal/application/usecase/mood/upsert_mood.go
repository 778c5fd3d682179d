// Package mood contains mood entry use cases.
package mood

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

// MaxCommentLength bounds the free-text comment on a mood entry.
const MaxCommentLength = 1000

// UpsertMoodInput represents the input for recording a mood.
type UpsertMoodInput struct {
	UserID  uuid.UUID
	Date    time.Time
	Score   int
	Comment string
}

// UpsertMoodOutput represents the output of recording a mood.
type UpsertMoodOutput struct {
	Entry *entity.MoodEntry
}

// UpsertMoodUseCase records a mood for a calendar day, replacing any
// existing entry for the same day.
type UpsertMoodUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewUpsertMoodUseCase creates a new UpsertMoodUseCase instance.
func NewUpsertMoodUseCase(moodRepo adapter.MoodEntryRepository) *UpsertMoodUseCase {
	return &UpsertMoodUseCase{
		moodRepo: moodRepo,
	}
}

// Execute performs the mood upsert.
func (uc *UpsertMoodUseCase) Execute(ctx context.Context, input UpsertMoodInput) (*UpsertMoodOutput, error) {
	// Validate score
	if !entity.IsValidScore(input.Score) {
		return nil, domainerror.NewMoodError(
			domainerror.ErrCodeInvalidScore,
			fmt.Sprintf("score must be between %d and %d", entity.MinScore, entity.MaxScore),
			domainerror.ErrInvalidScore,
		)
	}

	// Validate date
	if input.Date.IsZero() {
		return nil, domainerror.NewMoodError(
			domainerror.ErrCodeInvalidMoodDate,
			"date is required",
			domainerror.ErrInvalidMoodDate,
		)
	}

	// Validate comment length
	if len(input.Comment) > MaxCommentLength {
		return nil, domainerror.NewMoodError(
			domainerror.ErrCodeMissingMoodFields,
			fmt.Sprintf("comment must be at most %d characters", MaxCommentLength),
			domainerror.ErrInvalidMoodDate,
		)
	}

	entry := entity.NewMoodEntry(input.UserID, input.Date, input.Score, input.Comment)

	saved, err := uc.moodRepo.Upsert(ctx, entry)
	if err != nil {
		if errors.Is(err, domainerror.ErrMoodEntryConflict) {
			return nil, domainerror.NewMoodError(
				domainerror.ErrCodeMoodEntryConflict,
				"a mood entry already exists for this date",
				domainerror.ErrMoodEntryConflict,
			)
		}
		return nil, fmt.Errorf("failed to upsert mood entry: %w", err)
	}

	return &UpsertMoodOutput{
		Entry: saved,
	}, nil
}
