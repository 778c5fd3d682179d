// Package calendar provides pure date arithmetic for week-aligned calendar
// grids: every rendered row is a complete Monday-to-Sunday week. All
// functions are deterministic given their inputs; none of them reads the
// ambient clock.
package calendar

import (
	"fmt"
	"time"
)

// WeekStart returns the Monday of the week containing date, normalized to
// the start of day in date's location.
func WeekStart(date time.Time) time.Time {
	day := int(date.Weekday()) // 0 = Sunday, 1 = Monday, ...
	diff := 1 - day
	if day == 0 {
		// Sunday belongs to the week that started six days earlier.
		diff = -6
	}
	return time.Date(date.Year(), date.Month(), date.Day()+diff, 0, 0, 0, 0, date.Location())
}

// WeekEnd returns the Sunday of the week containing date, normalized to the
// last nanosecond of that day.
func WeekEnd(date time.Time) time.Time {
	day := int(date.Weekday())
	diff := 7 - day
	if day == 0 {
		diff = 0
	}
	d := date.AddDate(0, 0, diff)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), d.Location())
}

// DaysInWeek returns the 7 consecutive dates starting at weekStart.
func DaysInWeek(weekStart time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		days[i] = weekStart.AddDate(0, 0, i)
	}
	return days
}

// MonthWeeks returns the minimal ordered sequence of complete Monday-start
// weeks covering every day of the given month, padded at both ends with
// adjacent-month days. The month must be a valid time.Month (1-12);
// out-of-range values are normalized by the time package, so callers
// exposing this to user input should validate first.
func MonthWeeks(year int, month time.Month) [][]time.Time {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	var weeks [][]time.Time
	current := WeekStart(firstDay)

	// Keep appending weeks until one has passed the month's last day and
	// the week just appended contained at least one day of the month.
	for !current.After(lastDay) || len(weeks) == 0 {
		week := DaysInWeek(current)
		weeks = append(weeks, week)

		hasMonthDays := false
		for _, d := range week {
			if d.Month() == month {
				hasMonthDays = true
				break
			}
		}

		current = current.AddDate(0, 0, 7)

		if current.After(lastDay) && hasMonthDays {
			break
		}
	}

	return weeks
}

// IsSameDay reports whether a and b fall on the same calendar day,
// ignoring time-of-day. Zero times never match anything.
func IsSameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether date falls on the same calendar day as now.
// The reference time is explicit so callers stay testable.
func IsToday(date, now time.Time) bool {
	return IsSameDay(date, now)
}

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonthCount returns the number of calendar days in the given
// month and year, accounting for leap years.
func DaysInMonthCount(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// FormatWeekRange renders a human-readable label for the week starting at
// weekStart, e.g. "Mar 9 - Mar 15, 2025" or "Mar 30 - Apr 5, 2025" when
// the week spans two months. The year shown is the end date's year.
func FormatWeekRange(weekStart time.Time) string {
	weekEnd := weekStart.AddDate(0, 0, 6)
	return fmt.Sprintf("%s %d - %s %d, %d",
		weekStart.Format("Jan"), weekStart.Day(),
		weekEnd.Format("Jan"), weekEnd.Day(),
		weekEnd.Year(),
	)
}

// MonthName returns the English name of the given month.
func MonthName(month time.Month) string {
	return month.String()
}

// DayNames returns the short weekday labels in grid order, Monday first.
func DayNames() []string {
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}
