package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// UserController handles profile and student listing operations
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetUserDetail retrieves a user with academic and education records
// @Summary Get user detail
// @Description Returns the user merged with academic and education sub-objects. Absent sub-objects are null.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserDetail}
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /get-user-detail/{id} [get]
func (c *UserController) GetUserDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.userService.GetUserDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// UpdateProfile applies the caller's profile changes
// @Summary Update own profile
// @Description Applies allow-listed profile fields, an optional multipart profile photo, and optional nested academic/education records. Unknown fields are ignored.
// @Tags users
// @Accept mpfd
// @Produce json
// @Param full_name formData string false "Full name"
// @Param phone_number formData string false "Phone number (min 10 characters)"
// @Param father_name formData string false "Father's name"
// @Param dob formData string false "Birth date (YYYY-MM-DD)"
// @Param gender formData string false "male, female, or other"
// @Param alternate_email formData string false "Alternate email"
// @Param github_link formData string false "GitHub link (http or https)"
// @Param linkedin_link formData string false "LinkedIn link (http or https)"
// @Param profile_photo formData file false "Profile photo"
// @Success 200 {object} dto.APIResponse{data=dto.UserDetail}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /update-profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Int64("userID", identity.UserID).Msg("Invalid profile update payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	// Photo is optional; JSON and photo-less multipart requests carry none.
	photo, err := ctx.FormFile("profile_photo")
	if err != nil {
		photo = nil
	}

	detail, err := c.userService.UpdateProfile(ctx.Request.Context(), identity, &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// GetStudentList retrieves every student account
// @Summary List students
// @Description Staff-only listing of all student accounts with their academic and education records.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /get-studentlist [get]
func (c *UserController) GetStudentList(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	response, err := c.userService.ListStudents(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
