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

// UpdateMoodInput represents the input for updating a mood entry.
// The entry date is immutable; only score and comment can change.
type UpdateMoodInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
	Score   *int    // Optional
	Comment *string // Optional
}

// UpdateMoodOutput represents the output of updating a mood entry.
type UpdateMoodOutput struct {
	Entry *entity.MoodEntry
}

// UpdateMoodUseCase handles mood entry update logic.
type UpdateMoodUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewUpdateMoodUseCase creates a new UpdateMoodUseCase instance.
func NewUpdateMoodUseCase(moodRepo adapter.MoodEntryRepository) *UpdateMoodUseCase {
	return &UpdateMoodUseCase{
		moodRepo: moodRepo,
	}
}

// Execute performs the mood entry update.
func (uc *UpdateMoodUseCase) Execute(ctx context.Context, input UpdateMoodInput) (*UpdateMoodOutput, error) {
	entry, err := uc.findOwnedEntry(ctx, input.EntryID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Update score if provided
	if input.Score != nil {
		if !entity.IsValidScore(*input.Score) {
			return nil, domainerror.NewMoodError(
				domainerror.ErrCodeInvalidScore,
				fmt.Sprintf("score must be between %d and %d", entity.MinScore, entity.MaxScore),
				domainerror.ErrInvalidScore,
			)
		}
		entry.Score = *input.Score
	}

	// Update comment if provided
	if input.Comment != nil {
		if len(*input.Comment) > MaxCommentLength {
			return nil, domainerror.NewMoodError(
				domainerror.ErrCodeMissingMoodFields,
				fmt.Sprintf("comment must be at most %d characters", MaxCommentLength),
				domainerror.ErrInvalidMoodDate,
			)
		}
		entry.Comment = *input.Comment
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.moodRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}

	return &UpdateMoodOutput{
		Entry: entry,
	}, nil
}

// findOwnedEntry loads the entry and checks ownership. A missing entry and a
// foreign-owned entry produce the same error so callers cannot tell them apart.
func (uc *UpdateMoodUseCase) findOwnedEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.MoodEntry, error) {
	entry, err := uc.moodRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMoodEntryNotFound) {
			return nil, unauthorizedMoodError()
		}
		return nil, fmt.Errorf("failed to find mood entry: %w", err)
	}

	if entry.UserID != userID {
		return nil, unauthorizedMoodError()
	}

	return entry, nil
}

func unauthorizedMoodError() *domainerror.MoodError {
	return domainerror.NewMoodError(
		domainerror.ErrCodeUnauthorizedMoodAccess,
		"not authorized to access this mood entry",
		domainerror.ErrUnauthorizedMoodAccess,
	)
}
