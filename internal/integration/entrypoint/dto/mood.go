// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/mood-tracker/backend/internal/domain/entity"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// UpsertMoodRequest represents the request body for recording a mood.
type UpsertMoodRequest struct {
	Date    string `json:"date" binding:"required"`
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// UpdateMoodRequest represents the request body for updating a mood entry.
// The date is immutable and therefore absent.
type UpdateMoodRequest struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}

// MoodEntryResponse represents a mood entry in API responses.
type MoodEntryResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoodListResponse represents the response for the mood listing endpoint.
type MoodListResponse struct {
	Year    int                 `json:"year"`
	Entries []MoodEntryResponse `json:"entries"`
}

// ToMoodEntryResponse converts a domain MoodEntry entity to a response DTO.
func ToMoodEntryResponse(entry *entity.MoodEntry) MoodEntryResponse {
	return MoodEntryResponse{
		ID:        entry.ID.String(),
		Date:      entry.Date.Format(dateLayout),
		Score:     entry.Score,
		Comment:   entry.Comment,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// ToMoodListResponse converts mood entries to a list response DTO.
func ToMoodListResponse(year int, entries []*entity.MoodEntry) MoodListResponse {
	responses := make([]MoodEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToMoodEntryResponse(entry)
	}
	return MoodListResponse{
		Year:    year,
		Entries: responses,
	}
}

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
