// AngelaMos | 2026
// password.go

package auth

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidPassword enforces the acceptance policy: at least 8 characters with a
// digit, an uppercase letter and a special character. Registered under the
// "password" tag.
func ValidPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasDigit, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	return hasDigit && hasUpper && hasSpecial
}
