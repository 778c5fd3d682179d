package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "monday maps to itself",
			input:    date(2025, time.March, 10),
			expected: date(2025, time.March, 10),
		},
		{
			name:     "wednesday maps back to monday",
			input:    date(2025, time.March, 12),
			expected: date(2025, time.March, 10),
		},
		{
			name:     "sunday maps six days back",
			input:    date(2025, time.March, 16),
			expected: date(2025, time.March, 10),
		},
		{
			name:     "crosses a month boundary",
			input:    date(2025, time.April, 2),
			expected: date(2025, time.March, 31),
		},
		{
			name:     "crosses a year boundary",
			input:    date(2026, time.January, 1),
			expected: date(2025, time.December, 29),
		},
		{
			name:     "strips time of day",
			input:    time.Date(2025, time.March, 12, 17, 45, 3, 12, time.UTC),
			expected: date(2025, time.March, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.input)
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("expected a Monday, got %v", got.Weekday())
			}
		})
	}
}

func TestWeekEnd(t *testing.T) {
	tests := []struct {
		name        string
		input       time.Time
		expectedDay time.Time
	}{
		{
			name:        "monday advances to sunday",
			input:       date(2025, time.March, 10),
			expectedDay: date(2025, time.March, 16),
		},
		{
			name:        "sunday stays in place",
			input:       date(2025, time.March, 16),
			expectedDay: date(2025, time.March, 16),
		},
		{
			name:        "saturday advances one day",
			input:       date(2025, time.March, 15),
			expectedDay: date(2025, time.March, 16),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekEnd(tt.input)
			if got.Weekday() != time.Sunday {
				t.Errorf("expected a Sunday, got %v", got.Weekday())
			}
			if !IsSameDay(got, tt.expectedDay) {
				t.Errorf("expected day %v, got %v", tt.expectedDay, got)
			}
			if got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
				t.Errorf("expected end-of-day normalization, got %v", got)
			}
		})
	}
}

func TestWeekBounds_SpanSixDays(t *testing.T) {
	// Sweep a full leap year; the start must always be the Monday on or
	// before d and the end the Sunday six days after that Monday.
	d := date(2024, time.January, 1)
	for d.Year() == 2024 {
		start := WeekStart(d)
		end := WeekEnd(d)

		if start.Weekday() != time.Monday {
			t.Fatalf("WeekStart(%v): expected Monday, got %v", d, start.Weekday())
		}
		if end.Weekday() != time.Sunday {
			t.Fatalf("WeekEnd(%v): expected Sunday, got %v", d, end.Weekday())
		}
		if !IsSameDay(start.AddDate(0, 0, 6), end) {
			t.Fatalf("WeekEnd(%v) is not six days after WeekStart", d)
		}

		found := false
		for _, day := range DaysInWeek(start) {
			if IsSameDay(day, d) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("%v not contained in DaysInWeek(WeekStart(%v))", d, d)
		}

		d = d.AddDate(0, 0, 1)
	}
}

func TestDaysInWeek(t *testing.T) {
	start := date(2025, time.March, 10)
	days := DaysInWeek(start)

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for i, day := range days {
		expected := start.AddDate(0, 0, i)
		if !day.Equal(expected) {
			t.Errorf("day %d: expected %v, got %v", i, expected, day)
		}
	}
}

func TestMonthWeeks_CoversEveryDayExactlyOnce(t *testing.T) {
	months := []struct {
		name  string
		year  int
		month time.Month
	}{
		{"regular month", 2025, time.March},
		{"leap february", 2024, time.February},
		{"non-leap february", 2023, time.February},
		{"month ending on sunday", 2025, time.November},
		{"month starting on monday and ending on sunday", 2027, time.February},
		{"month starting on sunday", 2025, time.June},
		{"december year boundary", 2025, time.December},
		{"january year boundary", 2026, time.January},
	}

	for _, tc := range months {
		t.Run(tc.name, func(t *testing.T) {
			weeks := MonthWeeks(tc.year, tc.month)

			if len(weeks) == 0 {
				t.Fatal("expected at least one week")
			}

			seen := make(map[string]int)
			for _, week := range weeks {
				if len(week) != 7 {
					t.Fatalf("expected 7 days per week, got %d", len(week))
				}
				if week[0].Weekday() != time.Monday {
					t.Errorf("week does not start on Monday: %v", week[0])
				}
				if week[6].Weekday() != time.Sunday {
					t.Errorf("week does not end on Sunday: %v", week[6])
				}
				for i := 1; i < 7; i++ {
					if !IsSameDay(week[i], week[i-1].AddDate(0, 0, 1)) {
						t.Errorf("gap inside week between %v and %v", week[i-1], week[i])
					}
				}
				for _, day := range week {
					if day.Month() == tc.month {
						seen[day.Format("2006-01-02")]++
					}
				}
			}

			total := DaysInMonthCount(tc.year, tc.month)
			if len(seen) != total {
				t.Errorf("expected %d distinct month days, got %d", total, len(seen))
			}
			for day, count := range seen {
				if count != 1 {
					t.Errorf("day %s appears %d times", day, count)
				}
			}

			// The grid must stay minimal: first and last weeks each touch the month.
			touches := func(week []time.Time) bool {
				for _, day := range week {
					if day.Month() == tc.month {
						return true
					}
				}
				return false
			}
			if !touches(weeks[0]) {
				t.Error("leading week contains no day of the target month")
			}
			if !touches(weeks[len(weeks)-1]) {
				t.Error("trailing week contains no day of the target month")
			}
		})
	}
}

func TestMonthWeeks_ExactFourWeekMonth(t *testing.T) {
	// February 2027 starts on a Monday and ends on a Sunday: exactly four
	// weeks, no padding on either side.
	weeks := MonthWeeks(2027, time.February)
	if len(weeks) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(weeks))
	}
	if !IsSameDay(weeks[0][0], date(2027, time.February, 1)) {
		t.Errorf("expected grid to start on Feb 1, got %v", weeks[0][0])
	}
	if !IsSameDay(weeks[3][6], date(2027, time.February, 28)) {
		t.Errorf("expected grid to end on Feb 28, got %v", weeks[3][6])
	}
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 9, 8, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 9, 22, 30, 0, 0, time.UTC)

	if !IsSameDay(a, b) {
		t.Error("expected same day despite differing time-of-day")
	}
	if IsSameDay(a, b.AddDate(0, 0, 1)) {
		t.Error("expected different days to not match")
	}
	if IsSameDay(time.Time{}, b) || IsSameDay(a, time.Time{}) {
		t.Error("expected zero times to never match")
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2025, time.March, 9, 14, 0, 0, 0, time.UTC)

	if !IsToday(date(2025, time.March, 9), now) {
		t.Error("expected date equal to reference day to be today")
	}
	if IsToday(date(2025, time.March, 10), now) {
		t.Error("expected other days to not be today")
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2024, true},
		{1900, false},
		{2000, true},
		{2023, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.expected {
			t.Errorf("IsLeapYear(%d): expected %v, got %v", tt.year, tt.expected, got)
		}
	}
}

func TestDaysInMonthCount(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2025, time.January, 31},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonthCount(tt.year, tt.month); got != tt.expected {
			t.Errorf("DaysInMonthCount(%d, %v): expected %d, got %d", tt.year, tt.month, tt.expected, got)
		}
	}
}

func TestFormatWeekRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		expected string
	}{
		{
			name:     "week inside a single month",
			start:    date(2025, time.March, 10),
			expected: "Mar 10 - Mar 16, 2025",
		},
		{
			name:     "week spanning two months",
			start:    date(2025, time.March, 31),
			expected: "Mar 31 - Apr 6, 2025",
		},
		{
			name:     "week spanning two years shows the end year",
			start:    date(2025, time.December, 29),
			expected: "Dec 29 - Jan 4, 2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWeekRange(tt.start); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDayNames(t *testing.T) {
	names := DayNames()
	if len(names) != 7 {
		t.Fatalf("expected 7 day names, got %d", len(names))
	}
	if names[0] != "Mon" || names[6] != "Sun" {
		t.Errorf("expected Monday-first ordering, got %v", names)
	}
}
