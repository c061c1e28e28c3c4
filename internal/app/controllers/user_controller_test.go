package controllers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpcell/launchpad/internal/app/controllers"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/middleware"
)

// stubUserRepo serves a single student account and records profile writes.
type stubUserRepo struct {
	user    *models.User
	updated *models.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return 0, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.user, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.user, nil
}

func (s *stubUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	s.updated = user
	return nil
}

func (s *stubUserRepo) ListStudents(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetAcademicDetail(ctx context.Context, userID int64) (*models.AcademicDetail, error) {
	return nil, nil
}

func (s *stubUserRepo) GetEducationDetail(ctx context.Context, userID int64) (*models.EducationDetail, error) {
	return nil, nil
}

func (s *stubUserRepo) UpsertAcademicDetail(ctx context.Context, detail *models.AcademicDetail) error {
	return nil
}

func (s *stubUserRepo) UpsertEducationDetail(ctx context.Context, detail *models.EducationDetail) error {
	return nil
}

func (s *stubUserRepo) ListAcademicDetails(ctx context.Context) (map[int64]*models.AcademicDetail, error) {
	return nil, nil
}

func (s *stubUserRepo) ListEducationDetails(ctx context.Context) (map[int64]*models.EducationDetail, error) {
	return nil, nil
}

// stubStorage fails the test if any file operation is attempted.
type stubStorage struct {
	t *testing.T
}

func (s *stubStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	s.t.Fatal("unexpected SaveFile call")
	return "", nil
}

func (s *stubStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	s.t.Fatalf("unexpected SaveFileWithPath call for %s", path)
	return "", nil
}

func (s *stubStorage) DeleteFile(filePath string) error {
	s.t.Fatal("unexpected DeleteFile call")
	return nil
}

func (s *stubStorage) GetFullPath(fileURL string) string {
	return fileURL
}

func profileRouter(t *testing.T, repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	svc := services.NewUserService(repo, &stubStorage{t: t})
	ctrl := controllers.NewUserController(svc, zerolog.Nop())

	setIdentity := func(c *gin.Context) {
		c.Set(middleware.ContextUserID, repo.user.ID)
		c.Set(middleware.ContextEmail, repo.user.Email)
		c.Set(middleware.ContextRole, string(repo.user.Role))
	}
	router.PUT("/update-profile", setIdentity, ctrl.UpdateProfile)
	return router
}

func studentRepo() *stubUserRepo {
	return &stubUserRepo{
		user: &models.User{
			ID:       7,
			Email:    "student@college.edu",
			FullName: "Jane Doe",
			Role:     models.RoleStudent,
			IsActive: true,
		},
	}
}

func TestUpdateProfileWithoutPhoto(t *testing.T) {
	t.Run("JSON request carries no file and succeeds", func(t *testing.T) {
		repo := studentRepo()
		router := profileRouter(t, repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/update-profile", strings.NewReader(`{"fullName":"Jane Q. Doe"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, repo.updated)
		assert.Equal(t, "Jane Q. Doe", repo.updated.FullName)
	})

	t.Run("multipart request without a photo part succeeds", func(t *testing.T) {
		repo := studentRepo()
		router := profileRouter(t, repo)

		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		require.NoError(t, form.WriteField("full_name", "Jane Q. Doe"))
		require.NoError(t, form.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/update-profile", body)
		req.Header.Set("Content-Type", form.FormDataContentType())
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, repo.updated)
		assert.Equal(t, "Jane Q. Doe", repo.updated.FullName)
	})
}
