package dto

import (
	"time"

	"github.com/tpcell/launchpad/internal/app/models"
)

// UserDetail merges a user with its optional academic and education records.
// Absent sub-objects are serialized as null, not omitted.
type UserDetail struct {
	ID              int64                   `json:"id"`
	Email           string                  `json:"email"`
	FullName        string                  `json:"fullName"`
	PhoneNumber     *string                 `json:"phoneNumber"`
	FatherName      *string                 `json:"fatherName"`
	ProfilePhotoURL *string                 `json:"profilePhoto"`
	BirthDate       *time.Time              `json:"birthDate"`
	Gender          *string                 `json:"gender"`
	AlternateEmail  *string                 `json:"alternateEmail"`
	GithubLink      *string                 `json:"githubLink"`
	LinkedinLink    *string                 `json:"linkedinLink"`
	Role            string                  `json:"role"`
	IsVerified      bool                    `json:"isVerified"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	AcademicDetail  *models.AcademicDetail  `json:"academicDetails"`
	EducationDetail *models.EducationDetail `json:"educationDetails"`
}

// NewUserDetail builds a UserDetail from the user row and its optional records
func NewUserDetail(user *models.User, academic *models.AcademicDetail, education *models.EducationDetail) *UserDetail {
	return &UserDetail{
		ID:              user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		PhoneNumber:     user.PhoneNumber,
		FatherName:      user.FatherName,
		ProfilePhotoURL: user.ProfilePhotoURL,
		BirthDate:       user.BirthDate,
		Gender:          user.Gender,
		AlternateEmail:  user.AlternateEmail,
		GithubLink:      user.GithubLink,
		LinkedinLink:    user.LinkedinLink,
		Role:            string(user.Role),
		IsVerified:      user.IsVerified,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
		AcademicDetail:  academic,
		EducationDetail: education,
	}
}

// NewUserSummary builds the compact login-time view of a user
func NewUserSummary(user *models.User) UserSummary {
	return UserSummary{
		ID:              user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		PhoneNumber:     user.PhoneNumber,
		FatherName:      user.FatherName,
		ProfilePhotoURL: user.ProfilePhotoURL,
		Gender:          user.Gender,
		AlternateEmail:  user.AlternateEmail,
		GithubLink:      user.GithubLink,
		LinkedinLink:    user.LinkedinLink,
		Role:            string(user.Role),
		IsVerified:      user.IsVerified,
	}
}

// UpdateProfileRequest carries the self-service profile fields a user may
// change. Identifier, role, and verification flags are not accepted here;
// anything outside this allow-list is silently ignored.
type UpdateProfileRequest struct {
	FullName       *string `form:"full_name" json:"fullName"`
	PhoneNumber    *string `form:"phone_number" json:"phoneNumber"`
	FatherName     *string `form:"father_name" json:"fatherName"`
	BirthDate      *string `form:"dob" json:"dob"`
	Gender         *string `form:"gender" json:"gender" binding:"omitempty,oneof=male female other"`
	AlternateEmail *string `form:"alternate_email" json:"alternateEmail" binding:"omitempty,email"`
	GithubLink     *string `form:"github_link" json:"githubLink"`
	LinkedinLink   *string `form:"linkedin_link" json:"linkedinLink"`

	AcademicDetail  *AcademicDetailRequest  `form:"-" json:"academicDetails"`
	EducationDetail *EducationDetailRequest `form:"-" json:"educationDetails"`
}

// AcademicDetailRequest upserts the caller's academic record
type AcademicDetailRequest struct {
	RollNumber string  `json:"rollNumber" binding:"required,max=100"`
	Degree     string  `json:"degree" binding:"required,max=100"`
	Branch     string  `json:"branch" binding:"required,max=100"`
	Semester   string  `json:"semester" binding:"required,max=100"`
	Batch      string  `json:"batch" binding:"required,max=100"`
	CPI        float64 `json:"cpi" binding:"required"`
}

// EducationDetailRequest upserts the caller's prior-schooling record
type EducationDetailRequest struct {
	MatriculationSchoolName string  `json:"matriculationSchoolName" binding:"required,max=100"`
	MatriculationBoard      string  `json:"matriculationBoard" binding:"required,max=100"`
	MatriculationYear       int     `json:"matriculationYear" binding:"required"`
	MatriculationPercentage float64 `json:"matriculationPercentage" binding:"required"`
	IntermediateSchoolName  string  `json:"intermediateSchoolName" binding:"required,max=100"`
	IntermediateBoard       string  `json:"intermediateBoard" binding:"required,max=100"`
	IntermediateYear        int     `json:"intermediateYear" binding:"required"`
	IntermediatePercentage  float64 `json:"intermediatePercentage" binding:"required"`
	DiplomaDetails          *string `json:"diplomaDetails" binding:"omitempty,max=255"`
}

// StudentListResponse is the staff view of all student accounts
type StudentListResponse struct {
	Count    int           `json:"count"`
	Students []*UserDetail `json:"users"`
}
