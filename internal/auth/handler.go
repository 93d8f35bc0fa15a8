package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seminar-portal/backend/config"
	"github.com/seminar-portal/backend/internal/tenant"
	"github.com/seminar-portal/backend/pkg/response"
)

// SessionCookie is the cookie carrying the signed admin session token.
const SessionCookie = "admin_token"

// LoginRequest is the body for POST /auth.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
	Tenant   string `json:"tenant"`
}

// LoginResponse is returned on successful login. Tenant is omitted for a
// global admin session.
type LoginResponse struct {
	Success bool   `json:"success"`
	Tenant  string `json:"tenant,omitempty"`
}

// Handler handles admin auth HTTP endpoints.
type Handler struct {
	guard        *Guard
	jwt          *JWTService
	logger       *zap.Logger
	expireHours  int
	secureCookie bool
	hasSecret    bool
}

// NewHandler creates an auth handler. secureCookie should be true behind
// TLS so the session cookie is never sent over plain HTTP.
func NewHandler(guard *Guard, jwt *JWTService, cfg config.AdminConfig, secureCookie bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		guard:        guard,
		jwt:          jwt,
		logger:       logger,
		expireHours:  cfg.ExpireHours,
		secureCookie: secureCookie,
		hasSecret:    cfg.JWTSecret != "",
	}
}

// Login handles POST /auth. Responses deliberately stay generic: a 401 never
// says whether the tenant-scoped or the global check failed, and a 500 never
// names the missing secret.
func (h *Handler) Login(c *gin.Context) {
	if !h.hasSecret {
		response.Internal(c, "server configuration error")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}

	sourceKey := c.ClientIP()
	grant, err := h.guard.Verify(c.Request.Context(), sourceKey, req.Password, req.Tenant)
	if err != nil {
		var locked *LockedError
		switch {
		case errors.As(err, &locked):
			c.JSON(http.StatusTooManyRequests, response.Body{
				Success: false,
				Error:   fmt.Sprintf("too many login attempts, retry in %d minute(s)", locked.RemainingMinutes()),
			})
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(c, "invalid password")
		default:
			h.logger.Error("login verification", zap.Error(err))
			response.Internal(c, "authentication failed")
		}
		return
	}

	token, err := h.jwt.Generate(grant.Tenant)
	if err != nil {
		h.logger.Error("token generation", zap.Error(err))
		response.Internal(c, "authentication failed")
		return
	}

	h.logger.Info("admin login",
		zap.String("source", sourceKey),
		zap.String("tenant", grant.Tenant),
	)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, h.expireHours*3600, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, LoginResponse{Success: true, Tenant: grant.Tenant})
}

// Session handles GET /auth/session: echoes the validated session claims so
// the admin UI can restore its state. Any invalid or absent token is a plain
// 401, indistinguishable from no session.
func (h *Handler) Session(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		response.Unauthorized(c, "no session")
		return
	}
	claims, err := h.jwt.Validate(token)
	if err != nil {
		response.Unauthorized(c, "no session")
		return
	}
	response.OK(c, gin.H{
		"role":       claims.Role,
		"tenant":     claims.Tenant,
		"expires_at": claims.ExpiresAt.Time,
	})
}

// Logout handles DELETE /auth by expiring the session cookie. The token
// itself stays valid until its natural expiry; there is no revocation.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.secureCookie, true)
	response.OK(c, gin.H{"logged_out": true})
}

// Tenants handles GET /auth/tenants: the fixed set of tenant keys with
// display labels, for the login screen's tenant selector.
func (h *Handler) Tenants(c *gin.Context) {
	type entry struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
	list := make([]entry, 0, len(config.TenantKeys))
	for _, key := range config.TenantKeys {
		list = append(list, entry{Key: key, Label: tenant.Label(key)})
	}
	response.OK(c, list)
}
