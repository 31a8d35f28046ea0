package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxSecretLength is the longest secret bcrypt accepts.
const MaxSecretLength = 72

var (
	// ErrBadSecret means the secret does not match the stored hash.
	ErrBadSecret = errors.New("secret mismatch")
	// ErrSecretTooLong means the secret exceeds MaxSecretLength bytes.
	ErrSecretTooLong = errors.New("password must be at most 72 bytes")
)

// Hasher hashes secrets one way and checks candidates against stored hashes.
type Hasher interface {
	Hash(secret string) (string, error)
	Compare(hash, secret string) error
}

// BcryptHasher is a salted, cost-tunable Hasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, or bcrypt.DefaultCost when
// cost is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Cost() int {
	return h.cost
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	if len(secret) > MaxSecretLength {
		return "", ErrSecretTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, secret string) error {
	if len(secret) > MaxSecretLength {
		return ErrBadSecret
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrBadSecret
	}
	return fmt.Errorf("comparing password: %w", err)
}
