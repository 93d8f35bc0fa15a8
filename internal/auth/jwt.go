package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken covers malformed shape, bad signature and expiry.
	// Callers must treat all three identically to avoid oracle leakage.
	ErrInvalidToken = errors.New("invalid token")
)

// RoleAdmin is the only role this portal issues tokens for.
const RoleAdmin = "admin"

// Claims holds the admin session claims. Tenant is present only for
// tenant-scoped admins; a global admin token carries no tenant claim.
type Claims struct {
	Role   string `json:"role"`
	Tenant string `json:"tenant,omitempty"`
	jwt.RegisteredClaims
}

// JWTService signs and validates admin session tokens. The token is the
// session: nothing is stored server-side and there is no revocation before
// natural expiry.
type JWTService struct {
	secret      []byte
	expireHours int
}

// NewJWTService creates a JWT service.
func NewJWTService(secret string, expireHours int) *JWTService {
	return &JWTService{
		secret:      []byte(secret),
		expireHours: expireHours,
	}
}

// Generate creates an admin session token, tenant-scoped when tenant is
// non-empty.
func (s *JWTService) Generate(tenant string) (string, error) {
	claims := Claims{
		Role:   RoleAdmin,
		Tenant: tenant,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and validates a session token, returning claims or
// ErrInvalidToken. The library recomputes the HMAC over the encoded header
// and payload, compares in constant time, and enforces the three-segment
// shape and expiry.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
