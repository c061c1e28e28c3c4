package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/middleware"
	"github.com/tpcell/launchpad/internal/pkg/auth"
)

func jwtService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "launchpad-test",
	})
}

func authRouter(svc *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := middleware.NewAuthMiddleware(svc)

	protected := router.Group("")
	protected.Use(m.JWTAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		identity, ok := middleware.IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "role": string(identity.Role)})
	})

	staff := protected.Group("")
	staff.Use(m.RoleRequired(models.RoleStaff))
	staff.GET("/staff-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	return router
}

func errorCodeOf(t *testing.T, body []byte) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func issueToken(t *testing.T, svc *auth.JWTService, role models.Role) string {
	t.Helper()
	accessToken, _, _, _, err := svc.GenerateTokenPair(&models.User{
		ID:    7,
		Email: "student@college.edu",
		Role:  role,
	})
	require.NoError(t, err)
	return accessToken
}

func TestJWTAuth(t *testing.T) {
	t.Run("missing header is unauthorized", func(t *testing.T) {
		router := authRouter(jwtService(time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, errorCodeOf(t, w.Body.Bytes()))
	})

	t.Run("valid token exposes the caller identity", func(t *testing.T) {
		svc := jwtService(time.Hour)
		router := authRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, svc, models.RoleStudent))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":7`)
		assert.Contains(t, w.Body.String(), `"role":"STUDENT"`)
	})

	t.Run("garbage token reports invalid token", func(t *testing.T) {
		router := authRouter(jwtService(time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidToken, errorCodeOf(t, w.Body.Bytes()))
	})

	t.Run("expired token reports the expired code", func(t *testing.T) {
		svc := jwtService(-time.Minute)
		router := authRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, svc, models.RoleStudent))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeExpiredToken, errorCodeOf(t, w.Body.Bytes()))
	})
}

func TestRoleRequired(t *testing.T) {
	t.Run("student is forbidden on staff routes", func(t *testing.T) {
		svc := jwtService(time.Hour)
		router := authRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/staff-only", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, svc, models.RoleStudent))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrorCodeForbidden, errorCodeOf(t, w.Body.Bytes()))
	})

	t.Run("staff passes the gate", func(t *testing.T) {
		svc := jwtService(time.Hour)
		router := authRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/staff-only", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, svc, models.RoleStaff))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
