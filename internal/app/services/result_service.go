package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/repositories"
)

// ResultService handles grade entries. Mutation is role-scoped: any
// valid instructor token may edit or delete any result, matching the
// portal's historical behavior.
type ResultService struct {
	results  repositories.IResultRepository
	students repositories.IStudentRepository
	logger   zerolog.Logger
}

// NewResultService creates a new ResultService
func NewResultService(results repositories.IResultRepository, students repositories.IStudentRepository, logger zerolog.Logger) *ResultService {
	return &ResultService{results: results, students: students, logger: logger}
}

// Create stores a new result for a student
func (s *ResultService) Create(ctx context.Context, req *dto.CreateResultRequest) (*models.Result, error) {
	result := &models.Result{
		StudentID:    req.StudentID,
		Subject:      req.Subject,
		Marks:        req.Marks,
		Grade:        req.Grade,
		Credits:      req.Credits,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
	}

	if _, err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("resultId", result.ID).Int64("studentId", result.StudentID).Msg("result added")
	return result, nil
}

// ListForStudent returns the calling student's own results for a term,
// plus their identity block.
func (s *ResultService) ListForStudent(ctx context.Context, username, year, semester string) ([]models.Result, *models.Student, error) {
	student, err := s.students.GetByUsernameOrEmail(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	results, err := s.results.ListByStudentTerm(ctx, student.ID, year, semester)
	if err != nil {
		return nil, nil, err
	}

	return results, student, nil
}

// ListAll returns every result joined with student names
func (s *ResultService) ListAll(ctx context.Context) ([]models.Result, error) {
	return s.results.ListAllJoined(ctx)
}

// Filter narrows the joined listing; empty filters are ignored
func (s *ResultService) Filter(ctx context.Context, student, subject, year, semester string) ([]models.Result, error) {
	return s.results.Filter(ctx, student, subject, year, semester)
}

// Update changes the mutable fields of a result
func (s *ResultService) Update(ctx context.Context, id int64, req *dto.UpdateResultRequest) error {
	return s.results.Update(ctx, id, req.Marks, req.Grade, req.Credits)
}

// Delete removes a result by id
func (s *ResultService) Delete(ctx context.Context, id int64) error {
	return s.results.Delete(ctx, id)
}
