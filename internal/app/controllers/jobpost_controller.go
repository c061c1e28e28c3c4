package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// JobPostController handles the staff-authored job board
type JobPostController struct {
	jobPostService *services.JobPostService
	logger         zerolog.Logger
}

// NewJobPostController creates a new JobPostController
func NewJobPostController(jobPostService *services.JobPostService, logger zerolog.Logger) *JobPostController {
	return &JobPostController{
		jobPostService: jobPostService,
		logger:         logger,
	}
}

// List retrieves every job post
// @Summary List job posts
// @Description Public listing of all job posts, newest first.
// @Tags job-posts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.JobPost}
// @Router /tpc-job-post-list [get]
func (c *JobPostController) List(ctx *gin.Context) {
	posts, err := c.jobPostService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// Get retrieves a single job post
// @Summary Get a job post
// @Tags job-posts
// @Produce json
// @Param id path int true "Job post ID"
// @Success 200 {object} dto.APIResponse{data=models.JobPost}
// @Failure 404 {object} dto.ErrorResponse "Job post not found"
// @Router /tpc-job-post-detail/{id} [get]
func (c *JobPostController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	post, err := c.jobPostService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Create publishes a job post
// @Summary Publish a job post
// @Description Staff-only. The author is stamped on the post.
// @Tags job-posts
// @Accept json
// @Produce json
// @Param request body dto.JobPostRequest true "Job post"
// @Success 201 {object} dto.APIResponse{data=models.JobPost}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /tpc-job-post-create [post]
func (c *JobPostController) Create(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.JobPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	post, err := c.jobPostService.Create(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// Update replaces a job post
// @Summary Update a job post
// @Description Staff-only full update.
// @Tags job-posts
// @Accept json
// @Produce json
// @Param id path int true "Job post ID"
// @Param request body dto.JobPostRequest true "Job post"
// @Success 200 {object} dto.APIResponse{data=models.JobPost}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Job post not found"
// @Security BearerAuth
// @Router /tpc-job-post-update/{id} [put]
func (c *JobPostController) Update(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.JobPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	post, err := c.jobPostService.Update(ctx.Request.Context(), identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Delete removes a job post
// @Summary Delete a job post
// @Description Staff-only.
// @Tags job-posts
// @Produce json
// @Param id path int true "Job post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Job post not found"
// @Security BearerAuth
// @Router /tpc-job-post-delete/{id} [delete]
func (c *JobPostController) Delete(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobPostService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Job post deleted successfully"))
}
