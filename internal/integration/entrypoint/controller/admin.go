// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mood-tracker/backend/internal/application/usecase/admin"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
	"github.com/mood-tracker/backend/internal/integration/entrypoint/dto"
)

// AdminController handles administrative endpoints.
type AdminController struct {
	statsUseCase     *admin.ListUserStatsUseCase
	userMoodsUseCase *admin.GetUserMoodsUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	statsUseCase *admin.ListUserStatsUseCase,
	userMoodsUseCase *admin.GetUserMoodsUseCase,
) *AdminController {
	return &AdminController{
		statsUseCase:     statsUseCase,
		userMoodsUseCase: userMoodsUseCase,
	}
}

// ListUserStats handles GET /admin/users requests. The year query parameter
// defaults to the current year.
func (c *AdminController) ListUserStats(ctx *gin.Context) {
	year, err := parseYearQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year parameter",
			Code:  string(domainerror.ErrCodeInvalidStatsYear),
		})
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), admin.ListUserStatsInput{
		Year: year,
	})
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserStatsListResponse(output))
}

// GetUserMoods handles GET /admin/users/:id/moods requests.
func (c *AdminController) GetUserMoods(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	year, err := parseYearQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year parameter",
			Code:  string(domainerror.ErrCodeInvalidStatsYear),
		})
		return
	}

	output, err := c.userMoodsUseCase.Execute(ctx.Request.Context(), admin.GetUserMoodsInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminUserMoodsResponse(output))
}

// handleAdminError handles admin errors and returns appropriate HTTP responses.
func (c *AdminController) handleAdminError(ctx *gin.Context, err error) {
	var adminErr *domainerror.AdminError
	if errors.As(err, &adminErr) {
		statusCode := getStatusCodeForAdminError(adminErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: adminErr.Message,
			Code:  string(adminErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAdminError maps admin error codes to HTTP status codes.
func getStatusCodeForAdminError(code domainerror.AdminErrorCode) int {
	switch code {
	case domainerror.ErrCodeAdminUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidStatsYear:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
