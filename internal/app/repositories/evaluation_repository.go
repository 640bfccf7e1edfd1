package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/app/models"
)

// EvaluationRepository handles database operations for instructor evaluations
type EvaluationRepository struct {
	db *pgxpool.Pool
}

// NewEvaluationRepository creates a new EvaluationRepository
func NewEvaluationRepository(db *pgxpool.Pool) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Upsert inserts an evaluation or replaces the existing one for the
// same (student, instructor, subject) triple. The composite unique
// constraint makes the replace atomic.
func (r *EvaluationRepository) Upsert(ctx context.Context, eval *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (student_id, instructor_id, subject, teaching_quality, course_content, communication, overall_rating, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (student_id, instructor_id, subject) DO UPDATE
		SET teaching_quality = EXCLUDED.teaching_quality,
		    course_content = EXCLUDED.course_content,
		    communication = EXCLUDED.communication,
		    overall_rating = EXCLUDED.overall_rating,
		    comments = EXCLUDED.comments,
		    created_at = CURRENT_TIMESTAMP
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		eval.StudentID,
		eval.InstructorID,
		eval.Subject,
		eval.TeachingQuality,
		eval.CourseContent,
		eval.Communication,
		eval.OverallRating,
		eval.Comments,
	).Scan(&eval.ID, &eval.CreatedAt)

	if err != nil {
		return fmt.Errorf("error upserting evaluation: %w", err)
	}

	return nil
}

// ListByInstructor returns an instructor's received evaluations with
// the student's name, newest first.
func (r *EvaluationRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]models.Evaluation, error) {
	query := `
		SELECT e.id, e.student_id, e.instructor_id, e.subject, e.teaching_quality,
		       e.course_content, e.communication, e.overall_rating, e.comments, e.created_at,
		       s.fullname
		FROM evaluations e
		JOIN students s ON e.student_id = s.id
		WHERE e.instructor_id = $1
		ORDER BY e.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing evaluations: %w", err)
	}
	defer rows.Close()

	var evals []models.Evaluation
	for rows.Next() {
		var e models.Evaluation
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.InstructorID, &e.Subject, &e.TeachingQuality,
			&e.CourseContent, &e.Communication, &e.OverallRating, &e.Comments, &e.CreatedAt,
			&e.StudentName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning evaluation row: %w", err)
		}
		evals = append(evals, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evaluation rows: %w", err)
	}

	return evals, nil
}
