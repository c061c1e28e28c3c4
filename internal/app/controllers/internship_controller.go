package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// InternshipController handles internship records and the approval flow
type InternshipController struct {
	internshipService *services.InternshipService
	logger            zerolog.Logger
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService *services.InternshipService, logger zerolog.Logger) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
		logger:            logger,
	}
}

// List retrieves internships
// @Summary List internships
// @Description Students see their own internships. Staff see all, or one student's via ?user_id=.
// @Tags internships
// @Produce json
// @Param user_id query int false "Staff-only filter to one student"
// @Success 200 {object} dto.APIResponse{data=[]models.Internship}
// @Security BearerAuth
// @Router /student-internships [get]
func (c *InternshipController) List(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	userFilter, ok := userFilterQuery(ctx)
	if !ok {
		return
	}

	internships, err := c.internshipService.List(ctx.Request.Context(), identity, userFilter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internships))
}

// Get retrieves a single internship
// @Summary Get an internship
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=models.Internship}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Security BearerAuth
// @Router /student-internships/{id} [get]
func (c *InternshipController) Get(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internshipService.Get(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// Create records an internship for the calling student
// @Summary Record an internship
// @Description Creates an internship in the Pending state with optional certificate and experience-letter uploads. Staff accounts cannot create internships.
// @Tags internships
// @Accept mpfd
// @Produce json
// @Param organization_name formData string true "Organization name"
// @Param domain formData string true "Internship domain"
// @Param internship_duration formData string true "Duration"
// @Param internship_description formData string true "Description"
// @Param certificate formData file false "Certificate file"
// @Param experience_letter formData file false "Experience letter file"
// @Success 201 {object} dto.APIResponse{data=models.Internship}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /student-internships [post]
func (c *InternshipController) Create(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	certificate, err := ctx.FormFile("certificate")
	if err != nil {
		certificate = nil
	}
	experienceLetter, err := ctx.FormFile("experience_letter")
	if err != nil {
		experienceLetter = nil
	}

	internship, err := c.internshipService.Create(ctx.Request.Context(), identity, &req, certificate, experienceLetter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(internship))
}

// Update applies the owner-editable internship fields
// @Summary Update an internship
// @Description Updates internship fields and optionally replaces the uploaded files. Owners and staff only. The approval state is untouched.
// @Tags internships
// @Accept mpfd
// @Produce json
// @Param id path int true "Internship ID"
// @Param organization_name formData string false "Organization name"
// @Param domain formData string false "Internship domain"
// @Param internship_duration formData string false "Duration"
// @Param internship_description formData string false "Description"
// @Param certificate formData file false "Certificate file"
// @Param experience_letter formData file false "Experience letter file"
// @Success 200 {object} dto.APIResponse{data=models.Internship}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Security BearerAuth
// @Router /student-internships/{id} [put]
func (c *InternshipController) Update(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	certificate, err := ctx.FormFile("certificate")
	if err != nil {
		certificate = nil
	}
	experienceLetter, err := ctx.FormFile("experience_letter")
	if err != nil {
		experienceLetter = nil
	}

	internship, err := c.internshipService.Update(ctx.Request.Context(), identity, id, &req, certificate, experienceLetter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// Approve records the staff decision on an internship
// @Summary Approve or reject an internship
// @Description Staff-only transition. approval_status must be Approved or Rejected; the approver is recorded.
// @Tags internships
// @Accept json
// @Produce json
// @Param id path int true "Internship ID"
// @Param request body dto.ApproveInternshipRequest true "Approval decision"
// @Success 200 {object} dto.APIResponse{data=models.Internship}
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid approval_status"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Security BearerAuth
// @Router /student-internships/{id} [patch]
func (c *InternshipController) Approve(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ApproveInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	internship, err := c.internshipService.Approve(ctx.Request.Context(), identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// Delete removes an internship
// @Summary Delete an internship
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Security BearerAuth
// @Router /student-internships/{id} [delete]
func (c *InternshipController) Delete(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.internshipService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship deleted successfully"))
}
