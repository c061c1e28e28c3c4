package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// ResumeController handles resume upload and management operations
type ResumeController struct {
	resumeService *services.ResumeService
	logger        zerolog.Logger
}

// NewResumeController creates a new ResumeController
func NewResumeController(resumeService *services.ResumeService, logger zerolog.Logger) *ResumeController {
	return &ResumeController{
		resumeService: resumeService,
		logger:        logger,
	}
}

// List retrieves resumes
// @Summary List resumes
// @Description Students see their own resumes. Staff see every user's default resume.
// @Tags resumes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Resume}
// @Security BearerAuth
// @Router /student-resume [get]
func (c *ResumeController) List(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	resumes, err := c.resumeService.List(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resumes))
}

// Get retrieves a single resume
// @Summary Get a resume
// @Tags resumes
// @Produce json
// @Param id path int true "Resume ID"
// @Success 200 {object} dto.APIResponse{data=models.Resume}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Resume not found"
// @Security BearerAuth
// @Router /student-resume/{id} [get]
func (c *ResumeController) Get(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resume, err := c.resumeService.Get(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resume))
}

// Upload stores a new resume file
// @Summary Upload a resume
// @Description Stores a resume file for the calling student. At most four resumes per user; the first becomes the default.
// @Tags resumes
// @Accept mpfd
// @Produce json
// @Param resume formData file true "Resume file"
// @Success 201 {object} dto.APIResponse{data=models.Resume}
// @Failure 400 {object} dto.ErrorResponse "Missing file or resume limit reached"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /student-resume [post]
func (c *ResumeController) Upload(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "resume file is required").
			WithField("resume")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	resume, err := c.resumeService.Upload(ctx.Request.Context(), identity, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resume))
}

// Update applies the mutable resume fields
// @Summary Update a resume
// @Description Setting isDefault=true atomically demotes the owner's previous default.
// @Tags resumes
// @Accept json
// @Produce json
// @Param id path int true "Resume ID"
// @Param request body dto.UpdateResumeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Resume}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Resume not found"
// @Security BearerAuth
// @Router /student-resume/{id} [patch]
func (c *ResumeController) Update(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resume, err := c.resumeService.Update(ctx.Request.Context(), identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resume))
}

// Delete removes a resume
// @Summary Delete a resume
// @Description Removes a resume and its stored file. Deleting the default does not promote another resume.
// @Tags resumes
// @Produce json
// @Param id path int true "Resume ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Resume not found"
// @Security BearerAuth
// @Router /student-resume/{id} [delete]
func (c *ResumeController) Delete(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resumeService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Resume deleted successfully"))
}
