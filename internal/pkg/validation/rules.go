package validation

import (
	"regexp"
	"strings"

	"github.com/tpcell/launchpad/internal/pkg/apperrors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether the address has a plausible email shape
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// PhoneNumber validates an optional phone number field. Phone numbers must be
// at least 10 characters when present.
func PhoneNumber(field, value string) error {
	if value == "" {
		return nil
	}
	if len(value) < 10 {
		return apperrors.NewValidationError(field, "phone number must be at least 10 digits long")
	}
	return nil
}

// WebLink validates an optional external link field. Links must carry an
// explicit http or https scheme when present.
func WebLink(field, value string) error {
	if value == "" {
		return nil
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return apperrors.NewValidationError(field, field+" must be a valid URL starting with http:// or https://")
	}
	return nil
}
