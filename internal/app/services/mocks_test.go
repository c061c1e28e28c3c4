package services_test

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
)

// Mock repositories backing the service tests.

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) ListStudents(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) GetAcademicDetail(ctx context.Context, userID int64) (*models.AcademicDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AcademicDetail), args.Error(1)
}

func (m *MockUserRepo) GetEducationDetail(ctx context.Context, userID int64) (*models.EducationDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EducationDetail), args.Error(1)
}

func (m *MockUserRepo) UpsertAcademicDetail(ctx context.Context, detail *models.AcademicDetail) error {
	return m.Called(ctx, detail).Error(0)
}

func (m *MockUserRepo) UpsertEducationDetail(ctx context.Context, detail *models.EducationDetail) error {
	return m.Called(ctx, detail).Error(0)
}

func (m *MockUserRepo) ListAcademicDetails(ctx context.Context) (map[int64]*models.AcademicDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*models.AcademicDetail), args.Error(1)
}

func (m *MockUserRepo) ListEducationDetails(ctx context.Context) (map[int64]*models.EducationDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*models.EducationDetail), args.Error(1)
}

type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenRepo) GetByValue(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockTokenRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *models.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) List(ctx context.Context, userID *int64) ([]models.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *models.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, userID *int64) ([]models.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *models.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, id int64) (*models.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListByUser(ctx context.Context, userID int64) ([]models.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListDefaults(ctx context.Context) ([]models.Resume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resume), args.Error(1)
}

func (m *MockResumeRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockResumeRepo) SetDefault(ctx context.Context, userID, resumeID int64) error {
	return m.Called(ctx, userID, resumeID).Error(0)
}

func (m *MockResumeRepo) ClearDefault(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockResumeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInternshipRepo struct {
	mock.Mock
}

func (m *MockInternshipRepo) Create(ctx context.Context, internship *models.Internship) error {
	return m.Called(ctx, internship).Error(0)
}

func (m *MockInternshipRepo) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Internship), args.Error(1)
}

func (m *MockInternshipRepo) List(ctx context.Context, userID *int64) ([]models.Internship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Internship), args.Error(1)
}

func (m *MockInternshipRepo) Update(ctx context.Context, internship *models.Internship) error {
	return m.Called(ctx, internship).Error(0)
}

func (m *MockInternshipRepo) SetApproval(ctx context.Context, id int64, status models.ApprovalStatus, approvedBy int64) error {
	return m.Called(ctx, id, status, approvedBy).Error(0)
}

func (m *MockInternshipRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobPostRepo struct {
	mock.Mock
}

func (m *MockJobPostRepo) Create(ctx context.Context, post *models.JobPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockJobPostRepo) GetByID(ctx context.Context, id int64) (*models.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) List(ctx context.Context) ([]models.JobPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) Update(ctx context.Context, post *models.JobPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockJobPostRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, application *models.JobApplication) error {
	return m.Called(ctx, application).Error(0)
}

func (m *MockApplicationRepo) List(ctx context.Context, userID *int64) ([]models.JobApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobApplication), args.Error(1)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepo) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepo) List(ctx context.Context) ([]models.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepo) Update(ctx context.Context, notification *models.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockNotificationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) CPIDistribution(ctx context.Context) ([]dto.CPIBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CPIBucket), args.Error(1)
}

func (m *MockAnalyticsRepo) InternshipDomains(ctx context.Context) ([]dto.DomainBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DomainBucket), args.Error(1)
}

func (m *MockAnalyticsRepo) ResumeUploadStats(ctx context.Context) ([]dto.ResumeCountBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ResumeCountBucket), args.Error(1)
}

func (m *MockAnalyticsRepo) GithubCompleteCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepo) LinkedinCompleteCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepo) ApplicationTrend(ctx context.Context) ([]dto.ApplicationTrendPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ApplicationTrendPoint), args.Error(1)
}

// MockFileStorage stands in for the local upload directory.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(fileHeader)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	args := m.Called(fileHeader, path)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteFile(filePath string) error {
	return m.Called(filePath).Error(0)
}

func (m *MockFileStorage) GetFullPath(fileURL string) string {
	return m.Called(fileURL).String(0)
}

// Shared test identities.
var (
	studentIdentity = models.Identity{UserID: 7, Email: "student@college.edu", Role: models.RoleStudent}
	staffIdentity   = models.Identity{UserID: 2, Email: "placement-cell@launchpad.local", Role: models.RoleStaff}
)
