package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// AnalyticsController serves the staff dashboard rollup
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
	logger           zerolog.Logger
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService, logger zerolog.Logger) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// GetDashboard retrieves the analytics rollup
// @Summary Analytics dashboard
// @Description Staff-only rollup across students: CPI distribution, approved internship domains, resume upload stats, profile link completeness, and the per-day application trend. Every key is always present.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsResponse}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /tpc-analytics [get]
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	response, err := c.analyticsService.GetDashboard(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
