package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/pkg/auth"
)

func newTestMiddleware(t *testing.T) (*AuthMiddleware, *auth.TokenService) {
	t.Helper()
	tokens := auth.NewTokenService(auth.TokenConfig{
		SecretKey: "test-secret",
		TokenExp:  time.Hour,
		Issuer:    "studyhub.test",
	})
	return NewAuthMiddleware(tokens), tokens
}

func newGuardedRouter(m *AuthMiddleware, roles ...models.RoleType) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", m.RequireRole(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": Username(c),
			"role":     string(Role(c)),
		})
	})
	router.GET("/page", m.RequirePage(roles...), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return router
}

func TestRequireRoleTokenSources(t *testing.T) {
	m, tokens := newTestMiddleware(t)
	router := newGuardedRouter(m, models.RoleStudent)

	token, _, err := tokens.Issue("john.doe", models.RoleStudent)
	require.NoError(t, err)

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{
			name: "authorization header",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+token)
			},
		},
		{
			name: "student cookie",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.StudentCookie, Value: token})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "john.doe")
			assert.Contains(t, rec.Body.String(), "student")
		})
	}
}

func TestRequireRoleHeaderBeatsCookie(t *testing.T) {
	m, tokens := newTestMiddleware(t)
	router := newGuardedRouter(m, models.RoleStudent)

	headerToken, _, err := tokens.Issue("emma.smith", models.RoleStudent)
	require.NoError(t, err)
	cookieToken, _, err := tokens.Issue("john.doe", models.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+headerToken)
	req.AddCookie(&http.Cookie{Name: auth.StudentCookie, Value: cookieToken})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "emma.smith")
}

func TestRequireRoleRejections(t *testing.T) {
	m, tokens := newTestMiddleware(t)
	router := newGuardedRouter(m, models.RoleInstructor)

	studentToken, _, err := tokens.Issue("john.doe", models.RoleStudent)
	require.NoError(t, err)

	expiredTokens := auth.NewTokenService(auth.TokenConfig{
		SecretKey: "test-secret",
		TokenExp:  -time.Minute,
		Issuer:    "studyhub.test",
	})
	expiredToken, _, err := expiredTokens.Issue("prof.johnson", models.RoleInstructor)
	require.NoError(t, err)

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{name: "no token", prepare: func(req *http.Request) {}},
		{
			name: "malformed token",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not.a.token")
			},
		},
		{
			name: "expired token",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+expiredToken)
			},
		},
		{
			name: "wrong role",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+studentToken)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			// Failure detail must never reach the client
			assert.Contains(t, rec.Body.String(), "authentication required")
		})
	}
}

func TestRequireRoleEitherRole(t *testing.T) {
	m, tokens := newTestMiddleware(t)
	router := newGuardedRouter(m, models.RoleStudent, models.RoleInstructor)

	for _, role := range []models.RoleType{models.RoleStudent, models.RoleInstructor} {
		token, _, err := tokens.Issue("someone", role)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "role %s should pass", role)
	}
}

func TestRequirePageRedirects(t *testing.T) {
	m, tokens := newTestMiddleware(t)
	router := newGuardedRouter(m, models.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	token, _, err := tokens.Issue("john.doe", models.RoleStudent)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: auth.StudentCookie, Value: token})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dashboard", rec.Body.String())
}
