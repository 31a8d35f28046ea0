// Package tokenx reads session tokens on the client side. Nothing here
// verifies signatures: the client cannot, and only uses the payload to
// decide what to show and when to drop a stale token.
package tokenx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no expiry")

// Payload is the decoded, unverified content of a session token.
type Payload struct {
	UserID    int64
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the token claims the administrator role.
func (p *Payload) IsAdmin() bool {
	return p.Role == "admin"
}

type claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// Decode parses token without checking its signature.
func Decode(token string) (*Payload, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if c.ExpiresAt == nil {
		return nil, ErrNoExpiry
	}

	p := &Payload{
		UserID:    c.UserID,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Time
	}
	return p, nil
}

// IsExpired is true when token cannot be decoded or now is at or past its expiry.
func IsExpired(token string, now time.Time) bool {
	p, err := Decode(token)
	if err != nil {
		return true
	}
	return !now.Before(p.ExpiresAt)
}
