package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// ApplicationController handles student job applications
type ApplicationController struct {
	applicationService *services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// List retrieves job applications
// @Summary List job applications
// @Description Students see their own applications. Staff see all.
// @Tags applications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.JobApplication}
// @Security BearerAuth
// @Router /tpc-job-application-list [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	applications, err := c.applicationService.List(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// Create submits a job application
// @Summary Apply to a job post
// @Description Submits an application from the caller with an optional resume reference. Both references must resolve.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=models.JobApplication}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Job post or resume not found"
// @Security BearerAuth
// @Router /tpc-job-application-create [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.applicationService.Create(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}
