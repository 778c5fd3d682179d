// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mood-tracker/backend/internal/application/usecase/admin"
)

// UserStatsResponse represents one user's yearly stats in the admin listing.
type UserStatsResponse struct {
	User         UserResponse `json:"user"`
	AverageScore float64      `json:"average_score"`
	DaysTracked  int          `json:"days_tracked"`
	TrackingRate float64      `json:"tracking_rate"`
}

// UserStatsListResponse represents the response for the admin stats endpoint.
type UserStatsListResponse struct {
	Year  int                 `json:"year"`
	Users []UserStatsResponse `json:"users"`
}

// AdminUserMoodsResponse represents the response for the admin mood detail endpoint.
type AdminUserMoodsResponse struct {
	User    UserResponse        `json:"user"`
	Year    int                 `json:"year"`
	Entries []MoodEntryResponse `json:"entries"`
}

// ToUserStatsListResponse converts the stats use case output to a response DTO.
func ToUserStatsListResponse(output *admin.ListUserStatsOutput) UserStatsListResponse {
	users := make([]UserStatsResponse, len(output.Stats))
	for i, stats := range output.Stats {
		users[i] = UserStatsResponse{
			User:         ToUserResponse(stats.User),
			AverageScore: stats.AverageScore,
			DaysTracked:  stats.DaysTracked,
			TrackingRate: stats.TrackingRate,
		}
	}
	return UserStatsListResponse{
		Year:  output.Year,
		Users: users,
	}
}

// ToAdminUserMoodsResponse converts the mood detail use case output to a response DTO.
func ToAdminUserMoodsResponse(output *admin.GetUserMoodsOutput) AdminUserMoodsResponse {
	entries := make([]MoodEntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = ToMoodEntryResponse(entry)
	}
	return AdminUserMoodsResponse{
		User:    ToUserResponse(output.User),
		Year:    output.Year,
		Entries: entries,
	}
}
