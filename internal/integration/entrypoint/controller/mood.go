// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/application/usecase/mood"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
	"github.com/mood-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/mood-tracker/backend/internal/integration/entrypoint/middleware"
)

// MoodController handles mood entry endpoints.
type MoodController struct {
	listUseCase   *mood.ListMoodsUseCase
	upsertUseCase *mood.UpsertMoodUseCase
	updateUseCase *mood.UpdateMoodUseCase
	deleteUseCase *mood.DeleteMoodUseCase
}

// NewMoodController creates a new mood controller instance.
func NewMoodController(
	listUseCase *mood.ListMoodsUseCase,
	upsertUseCase *mood.UpsertMoodUseCase,
	updateUseCase *mood.UpdateMoodUseCase,
	deleteUseCase *mood.DeleteMoodUseCase,
) *MoodController {
	return &MoodController{
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /moods requests. The year query parameter defaults to
// the current year.
func (c *MoodController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, err := parseYearQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year parameter",
			Code:  string(domainerror.ErrCodeInvalidMoodDate),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), mood.ListMoodsInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleMoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoodListResponse(year, output.Entries))
}

// Upsert handles POST /moods requests. Recording a mood for a day that
// already has one replaces the existing entry.
func (c *MoodController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpsertMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMoodFields),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidMoodDate),
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), mood.UpsertMoodInput{
		UserID:  userID,
		Date:    date,
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		c.handleMoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMoodEntryResponse(output.Entry))
}

// Update handles PATCH /moods/:id requests.
func (c *MoodController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid mood entry ID format",
		})
		return
	}

	var req dto.UpdateMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMoodFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), mood.UpdateMoodInput{
		EntryID: entryID,
		UserID:  userID,
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		c.handleMoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoodEntryResponse(output.Entry))
}

// Delete handles DELETE /moods/:id requests.
func (c *MoodController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid mood entry ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), mood.DeleteMoodInput{
		EntryID: entryID,
		UserID:  userID,
	}); err != nil {
		c.handleMoodError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleMoodError handles mood errors and returns appropriate HTTP responses.
func (c *MoodController) handleMoodError(ctx *gin.Context, err error) {
	var moodErr *domainerror.MoodError
	if errors.As(err, &moodErr) {
		statusCode := getStatusCodeForMoodError(moodErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: moodErr.Message,
			Code:  string(moodErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMoodError maps mood error codes to HTTP status codes.
func getStatusCodeForMoodError(code domainerror.MoodErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidScore,
		domainerror.ErrCodeInvalidMoodDate,
		domainerror.ErrCodeMissingMoodFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnauthorizedMoodAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeMoodEntryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseYearQuery reads the year query parameter, defaulting to the current year.
func parseYearQuery(ctx *gin.Context) (int, error) {
	yearStr := ctx.Query("year")
	if yearStr == "" {
		return time.Now().UTC().Year(), nil
	}
	return strconv.Atoi(yearStr)
}
