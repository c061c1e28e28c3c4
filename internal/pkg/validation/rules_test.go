package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/validation"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"student@college.edu",
		"jane.doe+placement@college.co.in",
		"  padded@college.edu  ",
	}
	for _, email := range valid {
		assert.True(t, validation.ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"missing@tld",
		"@college.edu",
	}
	for _, email := range invalid {
		assert.False(t, validation.ValidEmail(email), email)
	}
}

func TestPhoneNumber(t *testing.T) {
	assert.NoError(t, validation.PhoneNumber("phone_number", ""))
	assert.NoError(t, validation.PhoneNumber("phone_number", "9876543210"))

	err := validation.PhoneNumber("phone_number", "12345")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestWebLink(t *testing.T) {
	assert.NoError(t, validation.WebLink("github_link", ""))
	assert.NoError(t, validation.WebLink("github_link", "https://github.com/janedoe"))
	assert.NoError(t, validation.WebLink("linkedin_link", "http://linkedin.com/in/janedoe"))

	err := validation.WebLink("github_link", "github.com/janedoe")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = validation.WebLink("github_link", "ftp://github.com/janedoe")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
