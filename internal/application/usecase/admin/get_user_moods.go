// Package admin contains administrative use cases.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

// GetUserMoodsInput represents the input for the admin mood detail view.
type GetUserMoodsInput struct {
	UserID uuid.UUID
	Year   int
}

// GetUserMoodsOutput represents the output of the admin mood detail view.
type GetUserMoodsOutput struct {
	User    *entity.User
	Year    int
	Entries []*entity.MoodEntry
}

// GetUserMoodsUseCase lets an administrator read one user's mood entries
// for a year. Read-only.
type GetUserMoodsUseCase struct {
	userRepo adapter.UserRepository
	moodRepo adapter.MoodEntryRepository
}

// NewGetUserMoodsUseCase creates a new GetUserMoodsUseCase instance.
func NewGetUserMoodsUseCase(userRepo adapter.UserRepository, moodRepo adapter.MoodEntryRepository) *GetUserMoodsUseCase {
	return &GetUserMoodsUseCase{
		userRepo: userRepo,
		moodRepo: moodRepo,
	}
}

// Execute loads the user's entries for the year, ordered ascending by date.
func (uc *GetUserMoodsUseCase) Execute(ctx context.Context, input GetUserMoodsInput) (*GetUserMoodsOutput, error) {
	if err := validateStatsYear(input.Year); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAdminError(
				domainerror.ErrCodeAdminUserNotFound,
				"user not found",
				domainerror.ErrAdminUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	entries, err := uc.moodRepo.FindByUserAndYear(ctx, user.ID, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	return &GetUserMoodsOutput{
		User:    user,
		Year:    input.Year,
		Entries: entries,
	}, nil
}
