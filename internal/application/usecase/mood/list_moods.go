// Package mood contains mood entry use cases.
package mood

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

// ListMoodsInput represents the input for listing a user's moods.
type ListMoodsInput struct {
	UserID uuid.UUID
	Year   int
}

// ListMoodsOutput represents the output of listing a user's moods.
type ListMoodsOutput struct {
	Entries []*entity.MoodEntry
}

// ListMoodsUseCase lists a user's mood entries for one year.
type ListMoodsUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewListMoodsUseCase creates a new ListMoodsUseCase instance.
func NewListMoodsUseCase(moodRepo adapter.MoodEntryRepository) *ListMoodsUseCase {
	return &ListMoodsUseCase{
		moodRepo: moodRepo,
	}
}

// Execute lists the user's mood entries for the year, ordered ascending by date.
func (uc *ListMoodsUseCase) Execute(ctx context.Context, input ListMoodsInput) (*ListMoodsOutput, error) {
	if input.Year < 1 {
		return nil, domainerror.NewMoodError(
			domainerror.ErrCodeInvalidMoodDate,
			"year must be a positive calendar year",
			domainerror.ErrInvalidMoodDate,
		)
	}

	entries, err := uc.moodRepo.FindByUserAndYear(ctx, input.UserID, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}

	return &ListMoodsOutput{
		Entries: entries,
	}, nil
}
