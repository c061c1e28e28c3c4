package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LogoutRequest carries the refresh token to revoke
type LogoutRequest struct {
	RefreshToken string `json:"refresh" binding:"required"`
}

// RegisterRequest represents a student self-registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required,max=30"`
}

// TokenResponse represents issued token information
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// UserSummary is the caller-facing view of a user account
type UserSummary struct {
	ID              int64   `json:"id"`
	Email           string  `json:"email"`
	FullName        string  `json:"fullName"`
	PhoneNumber     *string `json:"phoneNumber"`
	FatherName      *string `json:"fatherName"`
	ProfilePhotoURL *string `json:"profilePhoto"`
	Gender          *string `json:"gender"`
	AlternateEmail  *string `json:"alternateEmail"`
	GithubLink      *string `json:"githubLink"`
	LinkedinLink    *string `json:"linkedinLink"`
	Role            string  `json:"role"`
	IsVerified      bool    `json:"isVerified"`
}

// LoginResponse bundles the token pair with the authenticated user summary
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserSummary   `json:"user"`
}
