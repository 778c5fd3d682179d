// Package admin contains administrative use cases.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

// ListUserStatsInput represents the input for the per-user yearly stats listing.
type ListUserStatsInput struct {
	Year int
}

// UserYearStats aggregates one user's tracking activity for a year.
type UserYearStats struct {
	User         *entity.User
	AverageScore float64 // one decimal, 0 when the user has no entries
	DaysTracked  int
	TrackingRate float64 // percentage of the year's days, one decimal
}

// ListUserStatsOutput represents the output of the stats listing.
type ListUserStatsOutput struct {
	Year  int
	Stats []UserYearStats
}

// ListUserStatsUseCase computes yearly mood statistics for every non-admin user.
// Stats are computed on demand and never cached.
type ListUserStatsUseCase struct {
	userRepo adapter.UserRepository
	moodRepo adapter.MoodEntryRepository
}

// NewListUserStatsUseCase creates a new ListUserStatsUseCase instance.
func NewListUserStatsUseCase(userRepo adapter.UserRepository, moodRepo adapter.MoodEntryRepository) *ListUserStatsUseCase {
	return &ListUserStatsUseCase{
		userRepo: userRepo,
		moodRepo: moodRepo,
	}
}

// Execute computes the stats listing.
func (uc *ListUserStatsUseCase) Execute(ctx context.Context, input ListUserStatsInput) (*ListUserStatsOutput, error) {
	if err := validateStatsYear(input.Year); err != nil {
		return nil, err
	}

	users, err := uc.userRepo.FindNonAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	daysInYear := time.Date(input.Year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()

	out := &ListUserStatsOutput{
		Year:  input.Year,
		Stats: make([]UserYearStats, 0, len(users)),
	}

	for _, user := range users {
		entries, err := uc.moodRepo.FindByUserAndYear(ctx, user.ID, input.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to load mood entries for user %s: %w", user.ID, err)
		}

		out.Stats = append(out.Stats, UserYearStats{
			User:         user,
			AverageScore: averageScore(entries),
			DaysTracked:  len(entries),
			TrackingRate: trackingRate(len(entries), daysInYear),
		})
	}

	return out, nil
}

// averageScore returns the mean score rounded to one decimal, or 0 for no entries.
func averageScore(entries []*entity.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	sum := decimal.Zero
	for _, entry := range entries {
		sum = sum.Add(decimal.NewFromInt(int64(entry.Score)))
	}

	return sum.Div(decimal.NewFromInt(int64(len(entries)))).Round(1).InexactFloat64()
}

// trackingRate returns daysTracked as a percentage of daysInYear, one decimal.
func trackingRate(daysTracked, daysInYear int) float64 {
	if daysInYear == 0 {
		return 0
	}

	return decimal.NewFromInt(int64(daysTracked)).
		Div(decimal.NewFromInt(int64(daysInYear))).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
}

func validateStatsYear(year int) error {
	if year < 1 || year > 9999 {
		return domainerror.NewAdminError(
			domainerror.ErrCodeInvalidStatsYear,
			"year must be a plausible calendar year",
			domainerror.ErrInvalidStatsYear,
		)
	}
	return nil
}
