package helpers

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt hashes without truncation.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned when a password exceeds what bcrypt can hash (72 bytes).
var ErrPasswordTooLong = errors.New("password too long")

// PasswordHasher hashes and verifies passwords with bcrypt at a fixed cost.
type PasswordHasher struct {
	cost  int
	dummy []byte
}

// NewPasswordHasher builds a hasher for the given bcrypt cost. It also prepares a throwaway
// hash of the same cost so that lookups for unknown accounts can spend the same time.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("invalid bcrypt cost %d", cost)
	}
	filler := make([]byte, 32)
	if _, err := rand.Read(filler); err != nil {
		return nil, fmt.Errorf("failed to generate dummy password: %w", err)
	}
	dummy, err := bcrypt.GenerateFromPassword(filler, cost)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dummy hash: %w", err)
	}
	return &PasswordHasher{cost: cost, dummy: dummy}, nil
}

// Cost returns the bcrypt work factor used for new hashes.
func (h *PasswordHasher) Cost() int { return h.cost }

// HashPassword hashes the plain text password using bcrypt
func (h *PasswordHasher) HashPassword(plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// Any failure, including a malformed hash, reports false. Passwords longer than
// MaxPasswordBytes never match: bcrypt would only look at their prefix.
func (h *PasswordHasher) CompareHashAndPassword(hash string, plain string) bool {
	if len(plain) > MaxPasswordBytes {
		return h.CompareDummy(plain)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CompareDummy burns one bcrypt comparison against the throwaway hash. The result is always false.
func (h *PasswordHasher) CompareDummy(plain string) bool {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
	return false
}
