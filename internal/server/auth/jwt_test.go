package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ishwarya-18/todo-app/internal/common"
	"github.com/ishwarya-18/todo-app/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestIssuer(secret string) *Issuer {
	return NewIssuer([]byte(secret), DefaultTokenValidity).WithClock(fixedClock(issuedAt))
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer("super-secret")

	tok, err := iss.Issue(42, models.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Fatalf("expected three dot-separated segments, got %q", tok)
	}

	p, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if p.AccountID != 42 || p.Role != models.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if !p.ExpiresAt.Equal(issuedAt.Add(7 * 24 * time.Hour)) {
		t.Fatalf("unexpected expiry: %v", p.ExpiresAt)
	}
}

func TestVerify_ValidityWindow(t *testing.T) {
	t.Parallel()

	tok, err := newTestIssuer("k").Issue(1, models.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		expired bool
	}{
		{name: "at issuance", at: issuedAt},
		{name: "one day later", at: issuedAt.Add(24 * time.Hour)},
		{name: "last second", at: issuedAt.Add(DefaultTokenValidity - time.Second)},
		{name: "exactly at expiry", at: issuedAt.Add(DefaultTokenValidity), expired: true},
		{name: "after expiry", at: issuedAt.Add(DefaultTokenValidity + time.Hour), expired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestIssuer("k").WithClock(fixedClock(tt.at)).Verify(tok)
			if !tt.expired {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, common.ErrInvalidToken)
			assert.ErrorIs(t, err, common.ErrTokenExpired)
		})
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer("k")
	tok, err := iss.Issue(5, models.RoleUser)
	require.NoError(t, err)

	dot := strings.LastIndex(tok, ".")
	sig := []byte(tok[dot+1:])

	for pos := range sig {
		tampered := make([]byte, len(sig))
		copy(tampered, sig)
		tampered[pos] ^= 1

		_, err := iss.Verify(tok[:dot+1] + string(tampered))
		assert.ErrorIs(t, err, common.ErrInvalidToken, "position %d", pos)
	}
}

func TestVerify_SignatureTrailingBits(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer("k")
	tok, err := iss.Issue(5, models.RoleUser)
	require.NoError(t, err)

	// 32 signature bytes encode to 43 characters; the last one carries 2 spare bits
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	last := len(tok) - 1
	v := strings.IndexByte(alphabet, tok[last])
	require.GreaterOrEqual(t, v, 0)

	for _, bit := range []int{1, 2, 3} {
		_, err := iss.Verify(tok[:last] + string(alphabet[v^bit]))
		assert.ErrorIs(t, err, common.ErrInvalidToken, "bit %d", bit)
	}
}

func TestVerify_TamperedPayloadRole(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer("k")
	userTok, err := iss.Issue(5, models.RoleUser)
	require.NoError(t, err)
	adminTok, err := iss.Issue(5, models.RoleAdmin)
	require.NoError(t, err)

	// admin payload spliced onto the user signature
	u := strings.Split(userTok, ".")
	a := strings.Split(adminTok, ".")
	forged := u[0] + "." + a[1] + "." + u[2]

	_, err = iss.Verify(forged)
	assert.ErrorIs(t, err, common.ErrTokenBadSignature)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestIssuer("right-secret").Issue(2, models.RoleUser)
	require.NoError(t, err)

	_, err = newTestIssuer("wrong-secret").Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenBadSignature)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer("k")
	for _, tok := range []string{"", "not-a-jwt", "not.a.jwt", "a.b"} {
		_, err := iss.Verify(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken, "token %q", tok)
		assert.ErrorIs(t, err, common.ErrTokenMalformed, "token %q", tok)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))},
		UserID:           1,
		Role:             models.RoleAdmin,
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	iss := newTestIssuer("k")
	for _, tok := range []string{none, hs384} {
		_, err := iss.Verify(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken)
	}
}

func TestVerify_MissingClaims(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1, Role: models.RoleUser}).SignedString(secret)
	require.NoError(t, err)
	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))},
		UserID:           1,
	}).SignedString(secret)
	require.NoError(t, err)

	iss := newTestIssuer("k")
	for _, tok := range []string{noExp, noRole} {
		_, err := iss.Verify(tok)
		if !errors.Is(err, common.ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed, got %v", err)
		}
	}
}

func TestNewIssuer_CopiesSecret(t *testing.T) {
	t.Parallel()

	secret := []byte("mutable")
	iss := NewIssuer(secret, time.Hour).WithClock(fixedClock(issuedAt))
	tok, err := iss.Issue(3, models.RoleUser)
	require.NoError(t, err)

	secret[0] = 'X'

	_, err = iss.Verify(tok)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, iss.TTL())
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultTokenValidity, NewIssuer([]byte("k"), 0).TTL())
}
