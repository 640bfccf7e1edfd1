package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/pkg/apperrors"
)

// ResultRepository handles database operations for grade entries
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create inserts a new result row
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) (int64, error) {
	query := `
		INSERT INTO results (student_id, subject, marks, grade, credits, semester, academic_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		result.StudentID,
		result.Subject,
		result.Marks,
		result.Grade,
		result.Credits,
		result.Semester,
		result.AcademicYear,
	).Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		return 0, fmt.Errorf("error creating result: %w", err)
	}

	return result.ID, nil
}

// ListByStudentTerm returns one student's results for an academic year
// and semester.
func (r *ResultRepository) ListByStudentTerm(ctx context.Context, studentID int64, year, semester string) ([]models.Result, error) {
	query := `
		SELECT id, student_id, subject, marks, grade, credits, semester, academic_year, created_at
		FROM results
		WHERE student_id = $1 AND academic_year = $2 AND semester = $3
	`

	rows, err := r.db.Query(ctx, query, studentID, year, semester)
	if err != nil {
		return nil, fmt.Errorf("error listing student results: %w", err)
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var res models.Result
		err := rows.Scan(
			&res.ID, &res.StudentID, &res.Subject, &res.Marks, &res.Grade,
			&res.Credits, &res.Semester, &res.AcademicYear, &res.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning result row: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}

	return results, nil
}

// ListAllJoined returns every result with the student's full name.
func (r *ResultRepository) ListAllJoined(ctx context.Context) ([]models.Result, error) {
	return r.queryJoined(ctx, "", "", "", "")
}

// Filter returns joined results narrowed by any combination of student
// name, subject, year and semester. Empty arguments are ignored.
func (r *ResultRepository) Filter(ctx context.Context, student, subject, year, semester string) ([]models.Result, error) {
	return r.queryJoined(ctx, student, subject, year, semester)
}

func (r *ResultRepository) queryJoined(ctx context.Context, student, subject, year, semester string) ([]models.Result, error) {
	builder := squirrel.Select(
		"r.id", "r.student_id", "r.subject", "r.marks", "r.grade",
		"r.credits", "r.semester", "r.academic_year", "r.created_at",
		"s.fullname",
	).
		From("results r").
		Join("students s ON r.student_id = s.id").
		OrderBy("r.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if student != "" {
		builder = builder.Where(squirrel.ILike{"s.fullname": "%" + student + "%"})
	}
	if subject != "" {
		builder = builder.Where(squirrel.Eq{"r.subject": subject})
	}
	if year != "" {
		builder = builder.Where(squirrel.Eq{"r.academic_year": year})
	}
	if semester != "" {
		builder = builder.Where(squirrel.Eq{"r.semester": semester})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building result query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying results: %w", err)
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var res models.Result
		err := rows.Scan(
			&res.ID, &res.StudentID, &res.Subject, &res.Marks, &res.Grade,
			&res.Credits, &res.Semester, &res.AcademicYear, &res.CreatedAt,
			&res.StudentName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning result row: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}

	return results, nil
}

// Update changes the mutable fields of a result
func (r *ResultRepository) Update(ctx context.Context, id int64, marks int, grade string, credits int) error {
	query := `
		UPDATE results
		SET marks = $1, grade = $2, credits = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, marks, grade, credits, id)
	if err != nil {
		return fmt.Errorf("error updating result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("result %d not found", id))
	}

	return nil
}

// Delete removes a result by id
func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("result %d not found", id))
	}

	return nil
}
