package auth

import (
	"context"
	"time"

	"github.com/ishwarya-18/todo-app/internal/server/models"
)

// Principal is the identity resolved from a verified token.
type Principal struct {
	AccountID int64
	Role      models.Role
	ExpiresAt time.Time
}

// Satisfies is the only authorization predicate in the server: it reports
// whether the principal may use a route that requires the given role.
func (p *Principal) Satisfies(required models.Role) bool {
	if p == nil {
		return false
	}
	switch required {
	case models.RoleUser:
		return p.Role.Valid()
	case models.RoleAdmin:
		return p.Role == models.RoleAdmin
	default:
		return false
	}
}

type principalKey struct{}

// WithPrincipal attaches p to ctx.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
