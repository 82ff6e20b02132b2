package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptySigningSecret is returned when the issuer is built without a secret.
var ErrEmptySigningSecret = errors.New("jwt signing secret is empty")

// JWTIssuer signs session tokens with a shared HMAC secret.
// It never validates tokens for callers; Parse exists for tooling and tests.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// Claims is the payload embedded in an issued token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssuedToken is a signed token plus its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration, issuer string) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrEmptySigningSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue signs a fresh Claims{email} with iat, exp and a random jti.
func (m *JWTIssuer) Issue(email string) (IssuedToken, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return IssuedToken{Token: s, ExpiresAt: exp}, nil
}

// Parse decodes a token signed by this issuer and checks its signature and expiry.
func (m *JWTIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
