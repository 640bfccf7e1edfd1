package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/repositories"
)

// EvaluationService handles student evaluations of instructors
type EvaluationService struct {
	evaluations repositories.IEvaluationRepository
	students    repositories.IStudentRepository
	instructors repositories.IInstructorRepository
	logger      zerolog.Logger
}

// NewEvaluationService creates a new EvaluationService
func NewEvaluationService(
	evaluations repositories.IEvaluationRepository,
	students repositories.IStudentRepository,
	instructors repositories.IInstructorRepository,
	logger zerolog.Logger,
) *EvaluationService {
	return &EvaluationService{
		evaluations: evaluations,
		students:    students,
		instructors: instructors,
		logger:      logger,
	}
}

// Submit upserts the calling student's evaluation: submitting again
// for the same instructor and subject replaces the earlier ratings.
func (s *EvaluationService) Submit(ctx context.Context, studentUsername string, req *dto.EvaluationRequest) error {
	student, err := s.students.GetByUsernameOrEmail(ctx, studentUsername)
	if err != nil {
		return err
	}

	eval := &models.Evaluation{
		StudentID:       student.ID,
		InstructorID:    req.InstructorID,
		Subject:         req.Subject,
		TeachingQuality: req.TeachingQuality,
		CourseContent:   req.CourseContent,
		Communication:   req.Communication,
		OverallRating:   req.OverallRating,
		Comments:        req.Comments,
	}

	if err := s.evaluations.Upsert(ctx, eval); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentId", student.ID).
		Int64("instructorId", req.InstructorID).
		Str("subject", req.Subject).
		Msg("evaluation submitted")
	return nil
}

// ListMine returns the calling instructor's received evaluations
func (s *EvaluationService) ListMine(ctx context.Context, instructorUsername string) ([]models.Evaluation, error) {
	instructor, err := s.instructors.GetByUsernameOrEmail(ctx, instructorUsername)
	if err != nil {
		return nil, err
	}
	return s.evaluations.ListByInstructor(ctx, instructor.ID)
}
