package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/repositories/inmem"
	"github.com/studyhub/backend/internal/pkg/apperrors"
	"github.com/studyhub/backend/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *auth.TokenService) {
	tokens := auth.NewTokenService(auth.TokenConfig{
		SecretKey: "test-secret",
		TokenExp:  time.Hour,
		Issuer:    "studyhub.test",
	})
	svc := NewAuthService(inmem.NewStudentRepository(), inmem.NewInstructorRepository(), tokens, zerolog.Nop())
	return svc, tokens
}

func validStudentRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "john.doe",
		Password: "Student@123",
		FullName: "John Doe",
		Email:    "john.doe@example.com",
	}
}

func TestRegisterIssuesValidToken(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	token, expiresAt, err := svc.Register(ctx, models.RoleStudent, validStudentRegistration())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tokens.Validate(token, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "john.doe", claims.Subject)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestRegisterInstructorRequiresSubject(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Username: "prof.johnson",
		Password: "Prof@123",
		FullName: "Professor Johnson",
		Email:    "prof.johnson@example.com",
	}
	_, _, err := svc.Register(ctx, models.RoleInstructor, req)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	req.Subject = "Mathematics"
	_, _, err = svc.Register(ctx, models.RoleInstructor, req)
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.RegisterRequest)
		wantErr error
	}{
		{
			name:    "missing username",
			mutate:  func(req *dto.RegisterRequest) { req.Username = "  " },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "missing fullname",
			mutate:  func(req *dto.RegisterRequest) { req.FullName = "" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "missing email",
			mutate:  func(req *dto.RegisterRequest) { req.Email = "" },
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "malformed email",
			mutate:  func(req *dto.RegisterRequest) { req.Email = "john.doe@nodot" },
			wantErr: apperrors.ErrInvalidEmail,
		},
		{
			name:    "short password",
			mutate:  func(req *dto.RegisterRequest) { req.Password = "Abc1" },
			wantErr: apperrors.ErrInvalidPassword,
		},
		{
			name:    "password without digit",
			mutate:  func(req *dto.RegisterRequest) { req.Password = "NoDigitsHere" },
			wantErr: apperrors.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService()
			req := validStudentRegistration()
			tt.mutate(req)

			_, _, err := svc.Register(context.Background(), models.RoleStudent, req)
			assert.True(t, errors.Is(err, tt.wantErr), "Register() error = %v, want %v", err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.RoleStudent, validStudentRegistration())
	require.NoError(t, err)

	// Same username, different email
	dup := validStudentRegistration()
	dup.Email = "other@example.com"
	_, _, err = svc.Register(ctx, models.RoleStudent, dup)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	// Same email, different username
	dup = validStudentRegistration()
	dup.Username = "other.user"
	_, _, err = svc.Register(ctx, models.RoleStudent, dup)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	req := validStudentRegistration()
	req.Email = "John.Doe@Example.COM"
	_, _, err := svc.Register(ctx, models.RoleStudent, req)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, models.RoleStudent, "john.doe@example.com", "Student@123")
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.RoleStudent, validStudentRegistration())
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		token, _, err := svc.Login(ctx, models.RoleStudent, "john.doe", "Student@123")
		require.NoError(t, err)

		claims, err := tokens.Validate(token, models.RoleStudent)
		require.NoError(t, err)
		assert.Equal(t, "john.doe", claims.Subject)
	})

	t.Run("by email", func(t *testing.T) {
		token, _, err := svc.Login(ctx, models.RoleStudent, "john.doe@example.com", "Student@123")
		require.NoError(t, err)

		// Subject is always the username, even for email logins
		claims, err := tokens.Validate(token, models.RoleStudent)
		require.NoError(t, err)
		assert.Equal(t, "john.doe", claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, models.RoleStudent, "john.doe", "WrongPass1")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("unknown account", func(t *testing.T) {
		_, _, unknownErr := svc.Login(ctx, models.RoleStudent, "nobody", "Student@123")
		assert.True(t, errors.Is(unknownErr, apperrors.ErrInvalidCredentials))

		// Unknown account and wrong password are indistinguishable
		_, _, wrongErr := svc.Login(ctx, models.RoleStudent, "john.doe", "WrongPass1")
		assert.Equal(t, wrongErr, unknownErr)
	})

	t.Run("wrong role store", func(t *testing.T) {
		_, _, err := svc.Login(ctx, models.RoleInstructor, "john.doe", "Student@123")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})
}
