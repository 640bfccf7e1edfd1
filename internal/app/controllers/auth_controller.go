// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/services"
	"github.com/studyhub/backend/internal/middleware"
	"github.com/studyhub/backend/internal/pkg/auth"
)

// cookieMaxAge mirrors the token's 24h embedded expiry
const cookieMaxAge = 24 * 60 * 60

// AuthController handles login, registration and logout for both roles
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// Login returns the login handler for a role. On success the token is
// returned in the body and mirrored into the role's session cookie.
func (c *AuthController) Login(role models.RoleType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req dto.LoginRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("missing credentials"))
			return
		}

		token, _, err := c.authService.Login(ctx.Request.Context(), role, req.Username, req.Password)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		auth.SetSessionCookie(ctx, role, token, cookieMaxAge)
		ctx.JSON(http.StatusOK, dto.TokenResponse{
			Response: dto.OK("Login successful"),
			Token:    token,
		})
	}
}

// Register returns the registration handler for a role. A fresh
// session token is issued so the client is logged in immediately.
func (c *AuthController) Register(role models.RoleType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req dto.RegisterRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("all fields are required"))
			return
		}

		token, _, err := c.authService.Register(ctx.Request.Context(), role, &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		auth.SetSessionCookie(ctx, role, token, cookieMaxAge)
		ctx.JSON(http.StatusCreated, dto.TokenResponse{
			Response: dto.OK("Registered successfully"),
			Token:    token,
		})
	}
}

// Logout returns the logout handler for a role. Only the cookie is
// cleared; an already-issued token stays valid until its expiry.
func (c *AuthController) Logout(role models.RoleType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		auth.ClearSessionCookie(ctx, role)
		ctx.JSON(http.StatusOK, dto.OK("Logout successful"))
	}
}
