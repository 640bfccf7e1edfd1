package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/pkg/apperrors"
)

// future_tests date/time columns must come back as formatted text:
// pgx has no binary-format plan from DATE/TIME into string fields.
const (
	futureTestSelectByID = `
		SELECT id, subject, to_char(test_date, 'YYYY-MM-DD'), to_char(test_time, 'HH24:MI'),
		       duration, location, test_type, description, instructor_id, created_at
		FROM future_tests
		WHERE id = $1
	`

	futureTestSelectAll = `
		SELECT ft.id, ft.subject, to_char(ft.test_date, 'YYYY-MM-DD'), to_char(ft.test_time, 'HH24:MI'),
		       ft.duration, ft.location, ft.test_type, ft.description, ft.instructor_id, ft.created_at,
		       i.fullname
		FROM future_tests ft
		JOIN instructors i ON ft.instructor_id = i.id
		ORDER BY ft.test_date ASC, ft.test_time ASC
	`

	futureTestSelectByInstructor = `
		SELECT id, subject, to_char(test_date, 'YYYY-MM-DD'), to_char(test_time, 'HH24:MI'),
		       duration, location, test_type, description, instructor_id, created_at
		FROM future_tests
		WHERE instructor_id = $1
		ORDER BY test_date ASC, test_time ASC
	`
)

// FutureTestRepository handles database operations for upcoming tests
type FutureTestRepository struct {
	db *pgxpool.Pool
}

// NewFutureTestRepository creates a new FutureTestRepository
func NewFutureTestRepository(db *pgxpool.Pool) *FutureTestRepository {
	return &FutureTestRepository{db: db}
}

// Create inserts a new future test owned by an instructor
func (r *FutureTestRepository) Create(ctx context.Context, test *models.FutureTest) (int64, error) {
	query := `
		INSERT INTO future_tests (subject, test_date, test_time, duration, location, test_type, description, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		test.Subject,
		test.TestDate,
		test.TestTime,
		test.Duration,
		test.Location,
		test.TestType,
		test.Description,
		test.InstructorID,
	).Scan(&test.ID, &test.CreatedAt)

	if err != nil {
		return 0, fmt.Errorf("error creating future test: %w", err)
	}

	return test.ID, nil
}

// GetByID retrieves a single test, used for ownership checks
func (r *FutureTestRepository) GetByID(ctx context.Context, id int64) (*models.FutureTest, error) {
	var test models.FutureTest
	err := r.db.QueryRow(ctx, futureTestSelectByID, id).Scan(
		&test.ID, &test.Subject, &test.TestDate, &test.TestTime, &test.Duration,
		&test.Location, &test.TestType, &test.Description, &test.InstructorID, &test.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("future test %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving future test: %w", err)
	}

	return &test, nil
}

// ListAll returns every upcoming test with the owning instructor's
// name, soonest first.
func (r *FutureTestRepository) ListAll(ctx context.Context) ([]models.FutureTest, error) {
	rows, err := r.db.Query(ctx, futureTestSelectAll)
	if err != nil {
		return nil, fmt.Errorf("error listing future tests: %w", err)
	}
	defer rows.Close()

	var tests []models.FutureTest
	for rows.Next() {
		var t models.FutureTest
		err := rows.Scan(
			&t.ID, &t.Subject, &t.TestDate, &t.TestTime, &t.Duration,
			&t.Location, &t.TestType, &t.Description, &t.InstructorID, &t.CreatedAt,
			&t.InstructorName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning future test row: %w", err)
		}
		tests = append(tests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating future test rows: %w", err)
	}

	return tests, nil
}

// ListByInstructor returns one instructor's tests, soonest first
func (r *FutureTestRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]models.FutureTest, error) {
	rows, err := r.db.Query(ctx, futureTestSelectByInstructor, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing instructor future tests: %w", err)
	}
	defer rows.Close()

	var tests []models.FutureTest
	for rows.Next() {
		var t models.FutureTest
		err := rows.Scan(
			&t.ID, &t.Subject, &t.TestDate, &t.TestTime, &t.Duration,
			&t.Location, &t.TestType, &t.Description, &t.InstructorID, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning future test row: %w", err)
		}
		tests = append(tests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating future test rows: %w", err)
	}

	return tests, nil
}

// Update rewrites a test's fields
func (r *FutureTestRepository) Update(ctx context.Context, test *models.FutureTest) error {
	query := `
		UPDATE future_tests
		SET subject = $1, test_date = $2, test_time = $3, duration = $4,
		    location = $5, test_type = $6, description = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		test.Subject, test.TestDate, test.TestTime, test.Duration,
		test.Location, test.TestType, test.Description, test.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating future test: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("future test %d not found", test.ID))
	}

	return nil
}

// Delete removes a test by id
func (r *FutureTestRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM future_tests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting future test: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("future test %d not found", id))
	}

	return nil
}
