package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credential-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-credential-auth/internal/domain/repository"
	"github.com/oksasatya/go-credential-auth/pkg/helpers"
)

// PasswordHasher is satisfied by *helpers.PasswordHasher.
type PasswordHasher interface {
	HashPassword(plain string) (string, error)
	CompareHashAndPassword(hash, plain string) bool
	CompareDummy(plain string) bool
}

// TokenIssuer is satisfied by *helpers.JWTIssuer.
type TokenIssuer interface {
	Issue(email string) (helpers.IssuedToken, error)
}

type Service struct {
	Repo   repo.UserRepository
	Hasher PasswordHasher
	Issuer TokenIssuer
	Logger *logrus.Logger
}

func NewService(repo repo.UserRepository, hasher PasswordHasher, issuer TokenIssuer, logger *logrus.Logger) *Service {
	return &Service{
		Repo:   repo,
		Hasher: hasher,
		Issuer: issuer,
		Logger: logger,
	}
}

func validateCredential(op string, c entity.Credential) error {
	if c.Email == "" {
		return newError(op, KindValidation, ErrEmptyEmail)
	}
	if c.Password == "" {
		return newError(op, KindValidation, ErrEmptyPassword)
	}
	return nil
}

// Register stores a new user with a bcrypt hash of the password.
// A second registration for the same email fails with KindConflict and leaves the first row untouched.
func (s *Service) Register(ctx context.Context, c entity.Credential) error {
	const op = "register"
	if err := validateCredential(op, c); err != nil {
		return err
	}

	hash, err := s.Hasher.HashPassword(c.Password)
	if err != nil {
		if errors.Is(err, helpers.ErrPasswordTooLong) {
			return newError(op, KindValidation, err)
		}
		return newError(op, KindStore, err)
	}

	n, err := s.Repo.Insert(ctx, c.Email, hash)
	switch {
	case errors.Is(err, repo.ErrDuplicateEmail):
		return newError(op, KindConflict, repo.ErrDuplicateEmail)
	case err != nil:
		s.Logger.WithError(err).Error("register: insert failed")
		return newError(op, KindStore, err)
	case n == 0:
		return newError(op, KindConflict, repo.ErrDuplicateEmail)
	}

	s.Logger.Debug("register: user created")
	return nil
}

// Authenticate verifies the password against the stored bcrypt hash and issues a token on success.
// Unknown emails still pay for one bcrypt comparison.
func (s *Service) Authenticate(ctx context.Context, c entity.Credential) (helpers.IssuedToken, error) {
	const op = "authenticate"
	if err := validateCredential(op, c); err != nil {
		return helpers.IssuedToken{}, err
	}

	u, err := s.Repo.FindByEmail(ctx, c.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.Hasher.CompareDummy(c.Password)
			return helpers.IssuedToken{}, newError(op, KindNotFound, repo.ErrNotFound)
		}
		s.Logger.WithError(err).Error("authenticate: lookup failed")
		return helpers.IssuedToken{}, newError(op, KindStore, err)
	}

	if !s.Hasher.CompareHashAndPassword(u.PasswordHash, c.Password) {
		return helpers.IssuedToken{}, newError(op, KindInvalidCredential, nil)
	}

	tok, err := s.Issuer.Issue(u.Email)
	if err != nil {
		s.Logger.WithError(err).Error("authenticate: token signing failed")
		return helpers.IssuedToken{}, newError(op, KindSigning, err)
	}

	s.Logger.Debug("authenticate: token issued")
	return tok, nil
}
