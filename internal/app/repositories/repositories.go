package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency injection
type Repositories struct {
	User         *UserRepository
	Token        *TokenRepository
	Skill        *SkillRepository
	Project      *ProjectRepository
	Resume       *ResumeRepository
	Internship   *InternshipRepository
	JobPost      *JobPostRepository
	Application  *ApplicationRepository
	Notification *NotificationRepository
	Analytics    *AnalyticsRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Token:        NewTokenRepository(db),
		Skill:        NewSkillRepository(db),
		Project:      NewProjectRepository(db),
		Resume:       NewResumeRepository(db),
		Internship:   NewInternshipRepository(db),
		JobPost:      NewJobPostRepository(db),
		Application:  NewApplicationRepository(db),
		Notification: NewNotificationRepository(db),
		Analytics:    NewAnalyticsRepository(db),
	}
}
