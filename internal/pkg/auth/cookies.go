package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/backend/internal/app/models"
)

// Role-named session cookies
const (
	StudentCookie    = "studentToken"
	InstructorCookie = "instructorToken"
)

// CookieName returns the session cookie name for a role.
func CookieName(role models.RoleType) string {
	if role == models.RoleInstructor {
		return InstructorCookie
	}
	return StudentCookie
}

// SetSessionCookie mirrors the token into an HttpOnly SameSite=Lax
// cookie whose max-age matches the embedded expiry.
func SetSessionCookie(c *gin.Context, role models.RoleType, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName(role), token, maxAge, "/", "", false, true)
}

// ClearSessionCookie removes the role's session cookie. The token
// itself stays valid until expiry; logout is client-side only.
func ClearSessionCookie(c *gin.Context, role models.RoleType) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName(role), "", -1, "/", "", false, true)
}
