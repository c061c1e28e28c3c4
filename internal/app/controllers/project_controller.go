package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// ProjectController handles student portfolio project operations
type ProjectController struct {
	projectService *services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService, logger zerolog.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

// List retrieves projects
// @Summary List projects
// @Description Students see their own projects. Staff see all students' projects, or one student's via ?user_id=.
// @Tags projects
// @Produce json
// @Param user_id query int false "Staff-only filter to one student"
// @Success 200 {object} dto.APIResponse{data=[]models.Project}
// @Security BearerAuth
// @Router /student-projects [get]
func (c *ProjectController) List(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	userFilter, ok := userFilterQuery(ctx)
	if !ok {
		return
	}

	projects, err := c.projectService.List(ctx.Request.Context(), identity, userFilter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects))
}

// Create adds a project to the calling student's portfolio
// @Summary Add a project
// @Description Attaches a portfolio project to the caller. Staff accounts cannot create projects.
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project to add"
// @Success 201 {object} dto.APIResponse{data=models.Project}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /student-projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	project, err := c.projectService.Create(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(project))
}

// Delete removes a project
// @Summary Delete a project
// @Description Removes a project. Owners and staff may delete.
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /student-projects/{id} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.projectService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Project deleted successfully"))
}
