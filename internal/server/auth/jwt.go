// Package auth holds the server's credential primitives: password hashing,
// session token issuing/verification and the authorization predicate used by
// the HTTP access-control layer.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ishwarya-18/todo-app/internal/common"
	"github.com/ishwarya-18/todo-app/internal/server/models"
)

// DefaultTokenValidity is how long a session token stays valid.
const DefaultTokenValidity = 7 * 24 * time.Hour

// Claims is the session token payload. Field names match what browser and
// CLI clients decode: userId, role, iat, exp.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64       `json:"userId"`
	Role   models.Role `json:"role"`
}

// Issuer mints and verifies HS256 session tokens with a process-wide key.
// The key is copied on construction and never changes afterwards; a new key
// means every outstanding token fails verification.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenValidity
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &Issuer{secret: key, ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the issuer that reads time from now.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	c := *i
	c.now = now
	return &c
}

// TTL returns the validity window of issued tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for the account valid for [now, now+ttl).
func (i *Issuer) Issue(accountID int64, role models.Role) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.NewString(),
		},
		UserID: accountID,
		Role:   role,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the token's principal.
// Every failure wraps common.ErrInvalidToken plus one of
// common.ErrTokenMalformed, common.ErrTokenBadSignature or common.ErrTokenExpired.
func (i *Issuer) Verify(tokenString string) (*Principal, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", common.ErrInvalidToken, classify(err), err)
	}

	if claims.UserID <= 0 || !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: %w: missing account or role", common.ErrInvalidToken, common.ErrTokenMalformed)
	}

	return &Principal{
		AccountID: claims.UserID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrTokenBadSignature
	default:
		return common.ErrTokenMalformed
	}
}
