package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// SkillController handles student skill operations
type SkillController struct {
	skillService *services.SkillService
	logger       zerolog.Logger
}

// NewSkillController creates a new SkillController
func NewSkillController(skillService *services.SkillService, logger zerolog.Logger) *SkillController {
	return &SkillController{
		skillService: skillService,
		logger:       logger,
	}
}

// List retrieves skills
// @Summary List skills
// @Description Students see their own skills. Staff see all students' skills, or one student's via ?user_id=.
// @Tags skills
// @Produce json
// @Param user_id query int false "Staff-only filter to one student"
// @Success 200 {object} dto.APIResponse{data=[]models.Skill}
// @Security BearerAuth
// @Router /student-skills [get]
func (c *SkillController) List(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}
	userFilter, ok := userFilterQuery(ctx)
	if !ok {
		return
	}

	skills, err := c.skillService.List(ctx.Request.Context(), identity, userFilter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(skills))
}

// Create adds a skill to the caller's profile
// @Summary Add a skill
// @Tags skills
// @Accept json
// @Produce json
// @Param request body dto.CreateSkillRequest true "Skill to add"
// @Success 201 {object} dto.APIResponse{data=models.Skill}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /student-skills [post]
func (c *SkillController) Create(ctx *gin.Context) {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	skill, err := c.skillService.Create(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(skill))
}
