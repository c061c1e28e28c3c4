package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64      `json:"id" db:"id" example:"1"`
	Email           string     `json:"email" db:"email" example:"student@college.edu"`
	Password        string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FullName        string     `json:"fullName" db:"full_name" example:"John Doe"`
	PhoneNumber     *string    `json:"phoneNumber,omitempty" db:"phone_number"`
	FatherName      *string    `json:"fatherName,omitempty" db:"father_name"`
	ProfilePhotoURL *string    `json:"profilePhotoUrl,omitempty" db:"profile_photo_url"`
	BirthDate       *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	Gender          *string    `json:"gender,omitempty" db:"gender" example:"male"`
	AlternateEmail  *string    `json:"alternateEmail,omitempty" db:"alternate_email"`
	GithubLink      *string    `json:"githubLink,omitempty" db:"github_link"`
	LinkedinLink    *string    `json:"linkedinLink,omitempty" db:"linkedin_link"`
	Role            Role       `json:"role" db:"role" example:"STUDENT"`
	IsActive        bool       `json:"isActive" db:"is_active" example:"true"`
	IsVerified      bool       `json:"isVerified" db:"is_verified" example:"false"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// AcademicDetail is the one-to-one academic record of a student
type AcademicDetail struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	RollNumber string    `json:"rollNumber" db:"roll_number" example:"2021CS042"`
	Degree     string    `json:"degree" db:"degree" example:"B.Tech"`
	Branch     string    `json:"branch" db:"branch" example:"Computer Science"`
	Semester   string    `json:"semester" db:"semester" example:"6"`
	Batch      string    `json:"batch" db:"batch" example:"2021-2025"`
	CPI        float64   `json:"cpi" db:"cpi" example:"8.4"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// EducationDetail is the one-to-one prior-schooling record of a student
type EducationDetail struct {
	ID                      int64     `json:"id" db:"id"`
	UserID                  int64     `json:"userId" db:"user_id"`
	MatriculationSchoolName string    `json:"matriculationSchoolName" db:"matriculation_school_name"`
	MatriculationBoard      string    `json:"matriculationBoard" db:"matriculation_board"`
	MatriculationYear       int       `json:"matriculationYear" db:"matriculation_year"`
	MatriculationPercentage float64   `json:"matriculationPercentage" db:"matriculation_percentage"`
	IntermediateSchoolName  string    `json:"intermediateSchoolName" db:"intermediate_school_name"`
	IntermediateBoard       string    `json:"intermediateBoard" db:"intermediate_board"`
	IntermediateYear        int       `json:"intermediateYear" db:"intermediate_year"`
	IntermediatePercentage  float64   `json:"intermediatePercentage" db:"intermediate_percentage"`
	DiplomaDetails          *string   `json:"diplomaDetails,omitempty" db:"diploma_details"`
	CreatedAt               time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt               time.Time `json:"updatedAt" db:"updated_at"`
}
