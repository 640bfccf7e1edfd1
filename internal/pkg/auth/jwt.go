package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/pkg/apperrors"
)

// TokenConfig defines session token settings. The secret key is loaded
// once at startup and stays constant for the process lifetime.
type TokenConfig struct {
	SecretKey string
	TokenExp  time.Duration
	Issuer    string
}

// TokenService mints and verifies signed session tokens. It is pure:
// validation never touches the store.
type TokenService struct {
	config TokenConfig
}

// NewTokenService creates a new TokenService
func NewTokenService(config TokenConfig) *TokenService {
	return &TokenService{config: config}
}

// Claims defines session token content. Role travels in the "type"
// claim, identity in the registered subject.
type Claims struct {
	Role models.RoleType `json:"type"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for the given identity and role.
// Returns the compact token and its expiry time.
func (s *TokenService) Issue(subject string, role models.RoleType) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.config.TokenExp)

	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate checks signature and expiry, then enforces role membership.
// Failure kinds: apperrors.ErrTokenMissing, ErrTokenExpired,
// ErrTokenMalformed, ErrRoleMismatch.
func (s *TokenService) Validate(tokenString string, allowed ...models.RoleType) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, apperrors.ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		// Expiry wins over other parse failures so an expired token
		// reports as expired no matter what else is wrong with it.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || !claims.Role.Valid() {
		return nil, apperrors.ErrTokenMalformed
	}

	if len(allowed) > 0 {
		for _, role := range allowed {
			if claims.Role == role {
				return claims, nil
			}
		}
		return nil, apperrors.ErrRoleMismatch
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from an Authorization header value.
func ExtractBearerToken(authHeader string) (string, bool) {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), true
	}
	return "", false
}
