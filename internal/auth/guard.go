package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/seminar-portal/backend/internal/tenant"
)

var (
	// ErrInvalidCredentials is returned for any failed password check. It
	// never reveals whether the tenant-scoped or the global check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSecret means no signing secret is configured; the request fails
	// with a generic server error.
	ErrNoSecret = errors.New("server secret not configured")
)

// LockedError is returned while a source address is locked out.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("locked out for another %d minute(s)", e.RemainingMinutes())
}

// RemainingMinutes returns the remaining lock time rounded up to whole
// minutes, for the client-facing message.
func (e *LockedError) RemainingMinutes() int {
	return int(math.Ceil(e.Remaining.Minutes()))
}

// Grant is the result of a successful verification. Tenant is empty for a
// global admin.
type Grant struct {
	Tenant string
}

// Guard verifies admin credentials with per-source lockout. Tenant-scoped
// secrets are tried first when the candidate resolves; otherwise the global
// admin secret applies.
type Guard struct {
	resolver       *tenant.Resolver
	store          LockoutStore
	globalPassword string
}

// NewGuard creates a guard.
func NewGuard(resolver *tenant.Resolver, store LockoutStore, globalPassword string) *Guard {
	return &Guard{resolver: resolver, store: store, globalPassword: globalPassword}
}

// Verify checks the supplied password for the given source address. The
// order is fixed: lockout check (no secret is consulted while locked), then
// tenant-scoped secret, then global secret, then failure accounting.
func (g *Guard) Verify(ctx context.Context, sourceKey, password, tenantCandidate string) (*Grant, error) {
	locked, remaining, err := g.store.Check(ctx, sourceKey)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, &LockedError{Remaining: remaining}
	}

	if secret, ok := g.resolver.ResolveAdminSecret(tenantCandidate); ok && equal(password, secret) {
		if err := g.store.Reset(ctx, sourceKey); err != nil {
			return nil, err
		}
		return &Grant{Tenant: tenantCandidate}, nil
	}

	if g.globalPassword != "" && equal(password, g.globalPassword) {
		if err := g.store.Reset(ctx, sourceKey); err != nil {
			return nil, err
		}
		return &Grant{}, nil
	}

	if _, err := g.store.Fail(ctx, sourceKey); err != nil {
		return nil, err
	}
	return nil, ErrInvalidCredentials
}

func equal(supplied, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) == 1
}
