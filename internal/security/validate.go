package security

import (
	"errors"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ValidateEmail valida o formato do email (mesma regra em registro e newsletter)
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("Please provide a valid email address.")
	}
	return nil
}

// ValidatePassword valida a senha no registro
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters long.")
	}
	if len(password) > 128 {
		return errors.New("Password must be at most 128 characters long.")
	}
	return nil
}
