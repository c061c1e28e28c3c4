package models

import "time"

// JobPost is a staff-authored job posting
type JobPost struct {
	ID                  int64     `json:"id" db:"id"`
	CompanyName         string    `json:"companyName" db:"company_name"`
	JobDescription      string    `json:"jobDescription" db:"job_description"`
	OfferedPosition     string    `json:"offeredPosition" db:"offered_position"`
	Venue               string    `json:"venue" db:"venue"`
	ApplicationDeadline time.Time `json:"applicationDeadline" db:"application_deadline"`
	JobType             string    `json:"jobType" db:"job_type" example:"Full-time"`
	Eligibility         string    `json:"eligibility" db:"eligibility"`
	SkillsRequired      string    `json:"skillsRequired" db:"skills_required"`
	IsActive            bool      `json:"isActive" db:"is_active"`
	CreatedBy           *int64    `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

// JobApplication links a job post, the applying student, and an optional resume.
// Immutable after creation: there is no update or withdraw operation.
type JobApplication struct {
	ID        int64     `json:"id" db:"id"`
	JobPostID int64     `json:"jobPostId" db:"job_post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ResumeID  *int64    `json:"resumeId,omitempty" db:"resume_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Notification is a staff-authored announcement readable by all users
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	CreatedBy *int64    `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
