package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/feedbackd/internal/pkg/apperrors"
)

// BcryptCost is the work factor for stored hashes
const BcryptCost = 12

// Password storage modes accepted in configuration
const (
	ModePlaintext = "plaintext"
	ModeBcrypt    = "bcrypt"
)

// PasswordVerifier compares a stored credential against a submitted password.
type PasswordVerifier interface {
	Verify(stored, supplied string) bool
	// Prepare turns a clear password into the form this verifier stores.
	Prepare(password string) (string, error)
}

// PlaintextVerifier compares stored and supplied passwords byte for byte.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func (PlaintextVerifier) Prepare(password string) (string, error) {
	return password, nil
}

// BcryptVerifier expects stored values produced by HashPassword.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return CheckPassword(stored, supplied)
}

func (BcryptVerifier) Prepare(password string) (string, error) {
	return HashPassword(password)
}

// NewPasswordVerifier returns the verifier for a configured mode
func NewPasswordVerifier(mode string) (PasswordVerifier, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModePlaintext:
		return PlaintextVerifier{}, nil
	case ModeBcrypt:
		return BcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported password mode %q", apperrors.ErrInvalidConfig, mode)
	}
}

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches hashedPassword
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
