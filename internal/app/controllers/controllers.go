// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/middleware"
)

// parseIDParam reads a positive integer path parameter, responding 400 on
// malformed input
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, name+" must be a positive integer").
			WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// callerIdentity reads the identity set by the auth middleware, responding
// 401 when it is missing
func callerIdentity(ctx *gin.Context) (models.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return models.Identity{}, false
	}
	return identity, true
}

// userFilterQuery reads the optional ?user_id= staff filter
func userFilterQuery(ctx *gin.Context) (*int64, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "user_id must be a positive integer").
			WithField("user_id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return nil, false
	}
	return &id, true
}
