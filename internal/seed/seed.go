package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/studyhub/backend/internal/app/models"
	appRepos "github.com/studyhub/backend/internal/app/repositories"
	"github.com/studyhub/backend/internal/pkg/apperrors"
	"github.com/studyhub/backend/internal/pkg/auth"
)

// CreateDefaultData inserts the demo accounts used by the portal's
// sample deployment. Existing accounts are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)
	instructorRepo := appRepos.NewInstructorRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default accounts...")
	var finalErr error

	demoStudents := []struct {
		username, fullname, email, password string
	}{
		{"john.doe", "John Doe", "john.doe@example.com", "Student@123"},
		{"emma.smith", "Emma Smith", "emma.smith@example.com", "Emma@456"},
		{"michael.brown", "Michael Brown", "michael.brown@example.com", "Mike@789"},
		{"sarah.wilson", "Sarah Wilson", "sarah.wilson@example.com", "Sarah@321"},
	}

	demoInstructors := []struct {
		username, fullname, email, password, subject string
	}{
		{"prof.johnson", "Professor Johnson", "prof.johnson@example.com", "Prof@123", "Mathematics"},
		{"dr.smith", "Dr. Smith", "dr.smith@example.com", "Dr@456", "Physics"},
		{"ms.davis", "Ms. Davis", "ms.davis@example.com", "Ms@789", "Computer Science"},
		{"mr.wilson", "Mr. Wilson", "mr.wilson@example.com", "Mr@321", "English"},
	}

	for _, s := range demoStudents {
		hashed, err := auth.HashPassword(s.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", s.username).Msg("Error hashing demo password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		_, err = studentRepo.Create(ctx, &appModels.Student{
			Username: s.username,
			FullName: s.fullname,
			Email:    s.email,
			Password: hashed,
		})
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("username", s.username).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, i := range demoInstructors {
		hashed, err := auth.HashPassword(i.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", i.username).Msg("Error hashing demo password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		_, err = instructorRepo.Create(ctx, &appModels.Instructor{
			Username: i.username,
			FullName: i.fullname,
			Email:    i.email,
			Password: hashed,
			Subject:  i.subject,
		})
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("username", i.username).Msg("Error creating demo instructor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
