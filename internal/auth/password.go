package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// HashPassword hashes a plaintext password with the configured cost. Rejected
// inputs are the empty string and passwords past bcrypt's 72-byte limit.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", apperrors.NewBadRequest("password required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.NewBadRequest("password is too long")
		}
		return "", apperrors.NewInternalError(err)
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value. A mismatch
// returns false, never an error.
func ComparePassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
