// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mood-tracker/backend/internal/application/usecase/mood"
)

// CalendarDayResponse represents one cell of the calendar grid.
type CalendarDayResponse struct {
	Date    string             `json:"date"`
	InMonth bool               `json:"in_month"`
	IsToday bool               `json:"is_today"`
	Entry   *MoodEntryResponse `json:"entry,omitempty"`
}

// CalendarWeekResponse represents one Monday-aligned week row.
type CalendarWeekResponse struct {
	Label string                `json:"label"`
	Days  []CalendarDayResponse `json:"days"`
}

// CalendarMonthResponse represents the response for the calendar endpoint.
type CalendarMonthResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Weeks []CalendarWeekResponse `json:"weeks"`
}

// ToCalendarMonthResponse converts the month view use case output to a response DTO.
func ToCalendarMonthResponse(output *mood.MonthViewOutput) CalendarMonthResponse {
	weeks := make([]CalendarWeekResponse, len(output.Weeks))
	for i, week := range output.Weeks {
		days := make([]CalendarDayResponse, len(week.Days))
		for j, day := range week.Days {
			dayResponse := CalendarDayResponse{
				Date:    day.Date.Format(dateLayout),
				InMonth: day.InMonth,
				IsToday: day.IsToday,
			}
			if day.Entry != nil {
				entry := ToMoodEntryResponse(day.Entry)
				dayResponse.Entry = &entry
			}
			days[j] = dayResponse
		}
		weeks[i] = CalendarWeekResponse{
			Label: week.Label,
			Days:  days,
		}
	}
	return CalendarMonthResponse{
		Year:  output.Year,
		Month: int(output.Month),
		Weeks: weeks,
	}
}
