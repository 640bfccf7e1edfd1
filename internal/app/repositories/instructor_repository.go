package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/pkg/apperrors"
	"github.com/studyhub/backend/internal/pkg/dberrors"
)

// InstructorRepository handles database operations for instructor accounts
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// Create inserts a new instructor account. Uniqueness of username and
// email is the table's responsibility.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	query := `
		INSERT INTO instructors (username, fullname, email, password, subject)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		instructor.Username,
		instructor.FullName,
		instructor.Email,
		instructor.Password,
		instructor.Subject,
	).Scan(&instructor.ID, &instructor.CreatedAt)

	if err != nil {
		switch {
		case dberrors.IsUniqueViolationOn(err, "instructors_username_key"):
			return 0, apperrors.NewConflictError("username already registered")
		case dberrors.IsUniqueViolationOn(err, "instructors_email_key"):
			return 0, apperrors.NewConflictError("email already registered")
		case dberrors.IsUniqueViolation(err):
			return 0, apperrors.NewConflictError("username or email already registered")
		}
		return 0, fmt.Errorf("error creating instructor: %w", err)
	}

	return instructor.ID, nil
}

// GetByUsernameOrEmail looks the account up by username first, falling
// back to email.
func (r *InstructorRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Instructor, error) {
	instructor, err := r.getBy(ctx, "username", identifier)
	if errors.Is(err, apperrors.ErrNotFound) {
		instructor, err = r.getBy(ctx, "email", identifier)
	}
	return instructor, err
}

func (r *InstructorRepository) getBy(ctx context.Context, column, value string) (*models.Instructor, error) {
	query := fmt.Sprintf(`
		SELECT id, username, fullname, email, password, subject, created_at
		FROM instructors
		WHERE %s = $1
	`, column)

	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, value).Scan(
		&instructor.ID,
		&instructor.Username,
		&instructor.FullName,
		&instructor.Email,
		&instructor.Password,
		&instructor.Subject,
		&instructor.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return &instructor, nil
}

// ListAll returns every instructor ordered by full name, for the
// evaluation selection form.
func (r *InstructorRepository) ListAll(ctx context.Context) ([]models.Instructor, error) {
	query := `
		SELECT id, username, fullname, subject
		FROM instructors
		ORDER BY fullname
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}
	defer rows.Close()

	var instructors []models.Instructor
	for rows.Next() {
		var i models.Instructor
		if err := rows.Scan(&i.ID, &i.Username, &i.FullName, &i.Subject); err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}
