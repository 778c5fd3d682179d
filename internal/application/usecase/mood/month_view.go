// Package mood contains mood entry use cases.
package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/domain/calendar"
	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
)

// MonthViewInput represents the input for building a calendar month view.
// Reference is the caller's notion of "now", used only to mark today.
type MonthViewInput struct {
	UserID    uuid.UUID
	Year      int
	Month     time.Month
	Reference time.Time
}

// MonthViewDay is one cell of the calendar grid.
type MonthViewDay struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Entry   *entity.MoodEntry
}

// MonthViewWeek is one Monday-aligned row of the calendar grid.
type MonthViewWeek struct {
	Label string
	Days  []MonthViewDay
}

// MonthViewOutput represents the output of building a calendar month view.
type MonthViewOutput struct {
	Year  int
	Month time.Month
	Weeks []MonthViewWeek
}

// MonthViewUseCase builds the week-aligned grid for a month with the
// user's mood entries merged per day.
type MonthViewUseCase struct {
	moodRepo adapter.MoodEntryRepository
}

// NewMonthViewUseCase creates a new MonthViewUseCase instance.
func NewMonthViewUseCase(moodRepo adapter.MoodEntryRepository) *MonthViewUseCase {
	return &MonthViewUseCase{
		moodRepo: moodRepo,
	}
}

// Execute builds the month view.
func (uc *MonthViewUseCase) Execute(ctx context.Context, input MonthViewInput) (*MonthViewOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewMoodError(
			domainerror.ErrCodeInvalidMoodDate,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMoodDate,
		)
	}
	if input.Year < 1 {
		return nil, domainerror.NewMoodError(
			domainerror.ErrCodeInvalidMoodDate,
			"year must be a positive calendar year",
			domainerror.ErrInvalidMoodDate,
		)
	}

	weeks := calendar.MonthWeeks(input.Year, input.Month)

	// Lead-in and lead-out days can fall in the previous or next year, so
	// the grid may span two calendar years.
	entriesByDay, err := uc.loadEntries(ctx, input.UserID, weeks)
	if err != nil {
		return nil, err
	}

	out := &MonthViewOutput{
		Year:  input.Year,
		Month: input.Month,
		Weeks: make([]MonthViewWeek, 0, len(weeks)),
	}

	for _, week := range weeks {
		row := MonthViewWeek{
			Label: calendar.FormatWeekRange(week[0]),
			Days:  make([]MonthViewDay, 0, len(week)),
		}
		for _, day := range week {
			row.Days = append(row.Days, MonthViewDay{
				Date:    day,
				InMonth: day.Month() == input.Month && day.Year() == input.Year,
				IsToday: calendar.IsToday(day, input.Reference),
				Entry:   entriesByDay[dayKey(day)],
			})
		}
		out.Weeks = append(out.Weeks, row)
	}

	return out, nil
}

func (uc *MonthViewUseCase) loadEntries(ctx context.Context, userID uuid.UUID, weeks [][]time.Time) (map[string]*entity.MoodEntry, error) {
	years := map[int]struct{}{}
	for _, week := range weeks {
		for _, day := range week {
			years[day.Year()] = struct{}{}
		}
	}

	byDay := make(map[string]*entity.MoodEntry)
	for year := range years {
		entries, err := uc.moodRepo.FindByUserAndYear(ctx, userID, year)
		if err != nil {
			return nil, fmt.Errorf("failed to load mood entries for year %d: %w", year, err)
		}
		for _, entry := range entries {
			byDay[dayKey(entry.Date)] = entry
		}
	}

	return byDay, nil
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}
