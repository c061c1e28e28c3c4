package dto

// JobPostRequest carries the staff-authored job posting fields.
// Used for both create and full update.
type JobPostRequest struct {
	CompanyName         string `json:"companyName" binding:"required,max=255"`
	JobDescription      string `json:"jobDescription" binding:"required"`
	OfferedPosition     string `json:"offeredPosition" binding:"required,max=255"`
	Venue               string `json:"venue" binding:"required,max=255"`
	ApplicationDeadline string `json:"applicationDeadline" binding:"required" example:"2026-10-15"`
	JobType             string `json:"jobType" binding:"required,max=255"`
	Eligibility         string `json:"eligibility" binding:"required,max=255"`
	SkillsRequired      string `json:"skillsRequired" binding:"required,max=255"`
	IsActive            *bool  `json:"isActive"`
}

// CreateApplicationRequest submits an application to a job post with an
// optional resume reference
type CreateApplicationRequest struct {
	JobPostID int64  `json:"jobPost" binding:"required,min=1"`
	ResumeID  *int64 `json:"resume"`
}

// NotificationRequest carries a staff-authored announcement.
// Used for both create and full update.
type NotificationRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Message string `json:"message" binding:"required"`
}
