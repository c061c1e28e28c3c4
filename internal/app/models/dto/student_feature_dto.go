package dto

// CreateSkillRequest adds a named skill to the caller's profile
type CreateSkillRequest struct {
	Name string `json:"skillName" binding:"required,max=100"`
}

// CreateProjectRequest adds a portfolio project to the caller's profile
type CreateProjectRequest struct {
	Title          string  `json:"projectTitle" binding:"required,max=200"`
	WebLink        *string `json:"projectWebLink"`
	GithubLink     *string `json:"projectGithubLink"`
	Summary        *string `json:"projectSummary"`
	SkillsInvolved *string `json:"skillsInvolved" binding:"omitempty,max=255"`
}

// UpdateResumeRequest carries the mutable resume fields
type UpdateResumeRequest struct {
	IsDefault *bool `json:"isDefault"`
}

// CreateInternshipRequest records an internship for the calling student.
// Certificate and experience-letter files arrive as multipart uploads.
type CreateInternshipRequest struct {
	OrganizationName string `form:"organization_name" binding:"required,max=255"`
	Domain           string `form:"domain" binding:"required,max=100"`
	Duration         string `form:"internship_duration" binding:"required,max=100"`
	Description      string `form:"internship_description" binding:"required"`
}

// UpdateInternshipRequest carries the owner-editable internship fields
type UpdateInternshipRequest struct {
	OrganizationName *string `form:"organization_name" json:"organizationName" binding:"omitempty,max=255"`
	Domain           *string `form:"domain" json:"domain" binding:"omitempty,max=100"`
	Duration         *string `form:"internship_duration" json:"duration" binding:"omitempty,max=100"`
	Description      *string `form:"internship_description" json:"description"`
}

// ApproveInternshipRequest is the staff-only approval transition
type ApproveInternshipRequest struct {
	ApprovalStatus string `json:"approval_status"`
}
