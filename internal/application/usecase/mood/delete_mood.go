// Package mood contains mood entry use cases.
package mood

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/application/adapter"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

// DeleteMoodInput represents the input for deleting a mood entry.
type DeleteMoodInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteMoodUseCase handles mood entry deletion logic.
type DeleteMoodUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewDeleteMoodUseCase creates a new DeleteMoodUseCase instance.
func NewDeleteMoodUseCase(moodRepo adapter.MoodEntryRepository) *DeleteMoodUseCase {
	return &DeleteMoodUseCase{
		moodRepo: moodRepo,
	}
}

// Execute performs the mood entry deletion.
func (uc *DeleteMoodUseCase) Execute(ctx context.Context, input DeleteMoodInput) error {
	entry, err := uc.moodRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMoodEntryNotFound) {
			return unauthorizedMoodError()
		}
		return fmt.Errorf("failed to find mood entry: %w", err)
	}

	if entry.UserID != input.UserID {
		return unauthorizedMoodError()
	}

	if err := uc.moodRepo.Delete(ctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}

	return nil
}
