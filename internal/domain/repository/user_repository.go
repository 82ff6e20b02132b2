package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-credential-auth/internal/domain/entity"
)

var (
	// ErrNotFound is returned by FindByEmail when no user has the email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned by Insert when the email violates the uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository is the credential store contract.
type UserRepository interface {
	// FindByEmail returns at most one user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Insert stores a new user and reports the number of rows written.
	// Zero rows means the email is already taken.
	Insert(ctx context.Context, email, passwordHash string) (int64, error)
}
