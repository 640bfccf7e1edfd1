package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/repositories"
	"github.com/studyhub/backend/internal/pkg/apperrors"
	"github.com/studyhub/backend/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[\w.+\-]+@[\w\-]+(\.[\w\-]+)*\.[a-zA-Z]{2,}$`)

// AuthService handles registration, credential verification and token
// issuance for both roles.
type AuthService struct {
	students    repositories.IStudentRepository
	instructors repositories.IInstructorRepository
	tokens      *auth.TokenService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	students repositories.IStudentRepository,
	instructors repositories.IInstructorRepository,
	tokens *auth.TokenService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		students:    students,
		instructors: instructors,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register validates the request, stores the account and issues a
// session token. Duplicate username or email surfaces as a conflict
// raised atomically by the store's unique constraints.
func (s *AuthService) Register(ctx context.Context, role models.RoleType, req *dto.RegisterRequest) (string, time.Time, error) {
	if err := s.validateRegistration(role, req); err != nil {
		return "", time.Time{}, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to hash password: %w", err)
	}

	switch role {
	case models.RoleStudent:
		student := &models.Student{
			Username: req.Username,
			FullName: req.FullName,
			Email:    strings.ToLower(req.Email),
			Password: hashed,
		}
		if _, err := s.students.Create(ctx, student); err != nil {
			return "", time.Time{}, err
		}
	case models.RoleInstructor:
		instructor := &models.Instructor{
			Username: req.Username,
			FullName: req.FullName,
			Email:    strings.ToLower(req.Email),
			Password: hashed,
			Subject:  req.Subject,
		}
		if _, err := s.instructors.Create(ctx, instructor); err != nil {
			return "", time.Time{}, err
		}
	default:
		return "", time.Time{}, apperrors.NewValidationError("invalid role")
	}

	s.logger.Info().Str("username", req.Username).Str("role", string(role)).Msg("account registered")

	return s.tokens.Issue(req.Username, role)
}

// Login verifies credentials and issues a session token on success.
// Unknown account and wrong password both surface as
// apperrors.ErrInvalidCredentials; the distinction is logged
// server-side only and never reaches the client.
func (s *AuthService) Login(ctx context.Context, role models.RoleType, identifier, password string) (string, time.Time, error) {
	var (
		username string
		hash     string
		err      error
	)

	switch role {
	case models.RoleStudent:
		var student *models.Student
		student, err = s.students.GetByUsernameOrEmail(ctx, identifier)
		if student != nil {
			username, hash = student.Username, student.Password
		}
	case models.RoleInstructor:
		var instructor *models.Instructor
		instructor, err = s.instructors.GetByUsernameOrEmail(ctx, identifier)
		if instructor != nil {
			username, hash = instructor.Username, instructor.Password
		}
	default:
		return "", time.Time{}, apperrors.NewValidationError("invalid role")
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn().Str("identifier", identifier).Str("role", string(role)).Msg("login failed: account not found")
			return "", time.Time{}, apperrors.ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if !auth.CheckPassword(hash, password) {
		s.logger.Warn().Str("username", username).Str("role", string(role)).Msg("login failed: wrong password")
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("username", username).Str("role", string(role)).Msg("login successful")

	return s.tokens.Issue(username, role)
}

func (s *AuthService) validateRegistration(role models.RoleType, req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return apperrors.NewValidationError("username is required")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return apperrors.NewValidationError("fullname is required")
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}
	if role == models.RoleInstructor && strings.TrimSpace(req.Subject) == "" {
		return apperrors.NewValidationError("subject is required for instructors")
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email is required")
	}
	if !emailRegex.MatchString(email) {
		return &apperrors.CustomError{Err: apperrors.ErrInvalidEmail, Message: "email format is invalid"}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return &apperrors.CustomError{Err: apperrors.ErrInvalidPassword, Message: "password must be at least 8 characters long"}
	}
	for _, char := range password {
		if unicode.IsDigit(char) {
			return nil
		}
	}
	return &apperrors.CustomError{Err: apperrors.ErrInvalidPassword, Message: "password must contain at least one digit"}
}
