// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mood-tracker/backend/internal/application/usecase/mood"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
	"github.com/mood-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/mood-tracker/backend/internal/integration/entrypoint/middleware"
)

// CalendarController handles the calendar grid endpoint.
type CalendarController struct {
	monthViewUseCase *mood.MonthViewUseCase
}

// NewCalendarController creates a new calendar controller instance.
func NewCalendarController(monthViewUseCase *mood.MonthViewUseCase) *CalendarController {
	return &CalendarController{
		monthViewUseCase: monthViewUseCase,
	}
}

// GetMonth handles GET /calendar/:year/:month requests. It returns the
// month's week-aligned grid with the caller's mood entries merged per day.
func (c *CalendarController) GetMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil || year < 1 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year parameter",
			Code:  string(domainerror.ErrCodeInvalidMoodDate),
		})
		return
	}

	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil || month < 1 || month > 12 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month parameter, expected 1-12",
			Code:  string(domainerror.ErrCodeInvalidMoodDate),
		})
		return
	}

	output, err := c.monthViewUseCase.Execute(ctx.Request.Context(), mood.MonthViewInput{
		UserID:    userID,
		Year:      year,
		Month:     time.Month(month),
		Reference: time.Now().UTC(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build calendar view",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarMonthResponse(output))
}
