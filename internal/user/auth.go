package user

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength applies to both self-registration and admin creation.
const MinPasswordLength = 8

// validateCredentials expects an already normalized email.
func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return ErrEmptyCredentials
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
// A malformed hash never matches.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
