package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/pkg/auth"
	"github.com/studyhub/backend/internal/pkg/logger"
)

// Context keys for the identity injected after successful validation
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware guards routes with session token validation. The API
// and page flavors share one validation core; only the failure
// response differs.
type AuthMiddleware struct {
	tokens *auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// extractToken pulls the token from the Authorization header first,
// then from the role cookies. Both cookies are consulted because some
// routes accept either role.
func extractToken(c *gin.Context) string {
	if token, ok := auth.ExtractBearerToken(c.GetHeader("Authorization")); ok {
		return token
	}
	if token, err := c.Cookie(auth.InstructorCookie); err == nil && token != "" {
		return token
	}
	if token, err := c.Cookie(auth.StudentCookie); err == nil && token != "" {
		return token
	}
	return ""
}

// validate runs the shared validation core and injects the resolved
// identity into the request context on success.
func (m *AuthMiddleware) validate(c *gin.Context, roles ...models.RoleType) error {
	claims, err := m.tokens.Validate(extractToken(c), roles...)
	if err != nil {
		return err
	}

	c.Set(ContextUsername, claims.Subject)
	c.Set(ContextRole, claims.Role)
	return nil
}

// RequireRole is the API flavor: any validation failure aborts with a
// 401 and a deliberately generic message, before the handler body
// runs. Which validation step failed is logged, never echoed.
func (m *AuthMiddleware) RequireRole(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.validate(c, roles...); err != nil {
			logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("request rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("authentication required"))
			return
		}
		c.Next()
	}
}

// RequirePage is the browser flavor: validation failures redirect to
// the home page instead of returning JSON.
func (m *AuthMiddleware) RequirePage(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.validate(c, roles...); err != nil {
			logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("page request redirected")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Username returns the identity injected by the middleware.
func Username(c *gin.Context) string {
	return c.GetString(ContextUsername)
}

// Role returns the role injected by the middleware.
func Role(c *gin.Context) models.RoleType {
	if role, ok := c.Get(ContextRole); ok {
		if r, ok := role.(models.RoleType); ok {
			return r
		}
	}
	return ""
}
