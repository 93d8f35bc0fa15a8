// Package tenant resolves untrusted tenant identifiers to validated
// configuration bundles. The tenant key set is closed and fixed at deploy
// time; candidates are checked against it before any secret is looked up.
package tenant

import (
	"strings"

	"github.com/seminar-portal/backend/config"
)

// Config is the resolved per-tenant resource bundle.
type Config struct {
	Key                 string
	MasterSpreadsheetID string
	DriveFolderID       string
}

// MailConfig is the outbound mail presentation for a tenant. It is always
// fully populated: unresolved or partially configured tenants fall back
// field by field to the global defaults.
type MailConfig struct {
	FromName     string
	FromEmail    string
	ContactEmail string
}

// Resolver maps tenant keys to their configuration. Built once at startup
// from environment-sourced config and immutable afterwards.
type Resolver struct {
	tenants  map[string]config.TenantEnv
	defaults config.EmailConfig
}

// NewResolver creates a resolver over the fixed tenant set.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{tenants: cfg.Tenants, defaults: cfg.Email}
}

// IsKey reports whether candidate is one of the known tenant keys.
func (r *Resolver) IsKey(candidate string) bool {
	_, ok := r.tenants[candidate]
	return ok
}

// Resolve returns the tenant's resource config, or false if the candidate is
// not a known key or the tenant has no master spreadsheet configured. A
// tenant that cannot reach its data store is treated as nonexistent; callers
// must fall back to global behavior, never pick another tenant.
func (r *Resolver) Resolve(candidate string) (Config, bool) {
	env, ok := r.tenants[candidate]
	if !ok || env.MasterSpreadsheetID == "" {
		return Config{}, false
	}
	// DriveFolderID may be empty; only the spreadsheet id is mandatory.
	return Config{
		Key:                 candidate,
		MasterSpreadsheetID: env.MasterSpreadsheetID,
		DriveFolderID:       env.DriveFolderID,
	}, true
}

// ResolveMailConfig returns the mail presentation for a tenant. Unlike
// Resolve it never fails: data access fails closed, outbound mail degrades
// gracefully so a missing tenant setting never blocks a send.
func (r *Resolver) ResolveMailConfig(candidate string) MailConfig {
	mc := MailConfig{
		FromName:     r.defaults.FromName,
		FromEmail:    r.defaults.FromAddress,
		ContactEmail: r.defaults.ContactEmail,
	}
	env, ok := r.tenants[candidate]
	if !ok {
		return mc
	}
	if v := strings.TrimSpace(env.MailFromName); v != "" {
		mc.FromName = v
	}
	if v := strings.TrimSpace(env.MailFromEmail); v != "" {
		mc.FromEmail = v
	}
	if v := strings.TrimSpace(env.MailContactEmail); v != "" {
		mc.ContactEmail = v
	}
	return mc
}

// ResolveAdminSecret returns the tenant-scoped admin password if the tenant
// is resolvable and a tenant-specific secret is configured. A false return
// signals the caller to fall back to the global admin secret.
func (r *Resolver) ResolveAdminSecret(candidate string) (string, bool) {
	if _, ok := r.Resolve(candidate); !ok {
		return "", false
	}
	env := r.tenants[candidate]
	if env.AdminPassword == "" {
		return "", false
	}
	return env.AdminPassword, true
}

// Label returns the display name for a tenant key, or the key itself when no
// label is registered.
func Label(key string) string {
	if l, ok := config.TenantLabels[key]; ok {
		return l
	}
	return key
}
