package models

import "time"

// Skill is a named skill owned by a student
type Skill struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"skill_name" example:"Go"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Project is a portfolio project owned by a student
type Project struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	Title          string    `json:"title" db:"title"`
	WebLink        *string   `json:"webLink,omitempty" db:"web_link"`
	GithubLink     *string   `json:"githubLink,omitempty" db:"github_link"`
	Summary        *string   `json:"summary,omitempty" db:"summary"`
	SkillsInvolved *string   `json:"skillsInvolved,omitempty" db:"skills_involved"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// Resume is an uploaded resume file reference. At most one resume per user
// carries IsDefault, and a user holds at most MaxResumesPerUser resumes.
type Resume struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	FileURL   string    `json:"fileUrl" db:"file_url"`
	IsDefault bool      `json:"isDefault" db:"is_default"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// MaxResumesPerUser is the cap on simultaneously held resumes
const MaxResumesPerUser = 4

// Internship is a student internship record with a staff-gated approval state
type Internship struct {
	ID                  int64          `json:"id" db:"id"`
	UserID              int64          `json:"userId" db:"user_id"`
	OrganizationName    string         `json:"organizationName" db:"organization_name"`
	Domain              string         `json:"domain" db:"domain"`
	Duration            string         `json:"duration" db:"duration"`
	Description         string         `json:"description" db:"description"`
	CertificateURL      *string        `json:"certificateUrl,omitempty" db:"certificate_url"`
	ExperienceLetterURL *string        `json:"experienceLetterUrl,omitempty" db:"experience_letter_url"`
	ApprovalStatus      ApprovalStatus `json:"approvalStatus" db:"approval_status" example:"Pending"`
	ApprovedBy          *int64         `json:"approvedBy,omitempty" db:"approved_by"`
	CreatedAt           time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time      `json:"updatedAt" db:"updated_at"`
}
