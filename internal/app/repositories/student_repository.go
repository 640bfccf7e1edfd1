package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/pkg/apperrors"
	"github.com/studyhub/backend/internal/pkg/dberrors"
)

// StudentRepository handles database operations for student accounts
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student account. Username and email uniqueness
// is enforced by the table constraints, so the existence check and the
// insert are a single atomic statement.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	query := `
		INSERT INTO students (username, fullname, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Username,
		student.FullName,
		student.Email,
		student.Password,
	).Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		switch {
		case dberrors.IsUniqueViolationOn(err, "students_username_key"):
			return 0, apperrors.NewConflictError("username already registered")
		case dberrors.IsUniqueViolationOn(err, "students_email_key"):
			return 0, apperrors.NewConflictError("email already registered")
		case dberrors.IsUniqueViolation(err):
			return 0, apperrors.NewConflictError("username or email already registered")
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// GetByUsernameOrEmail looks the account up by username first, falling
// back to email.
func (r *StudentRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Student, error) {
	student, err := r.getBy(ctx, "username", identifier)
	if errors.Is(err, apperrors.ErrNotFound) {
		student, err = r.getBy(ctx, "email", identifier)
	}
	return student, err
}

func (r *StudentRepository) getBy(ctx context.Context, column, value string) (*models.Student, error) {
	query := fmt.Sprintf(`
		SELECT id, username, fullname, email, password, created_at
		FROM students
		WHERE %s = $1
	`, column)

	var student models.Student
	err := r.db.QueryRow(ctx, query, value).Scan(
		&student.ID,
		&student.Username,
		&student.FullName,
		&student.Email,
		&student.Password,
		&student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Search finds students whose username, full name or id matches the
// term. Password hashes are never selected.
func (r *StudentRepository) Search(ctx context.Context, term string) ([]models.Student, error) {
	pattern := "%" + term + "%"
	sql, args, err := squirrel.Select("id", "username", "fullname", "email").
		From("students").
		Where(squirrel.Or{
			squirrel.ILike{"username": pattern},
			squirrel.ILike{"fullname": pattern},
			squirrel.Expr("id::text LIKE ?", pattern),
		}).
		OrderBy("fullname").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Username, &s.FullName, &s.Email); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
