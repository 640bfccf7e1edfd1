package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/repositories"
	"github.com/studyhub/backend/internal/pkg/apperrors"
)

// FutureTestService handles upcoming tests. Unlike results, mutation
// is ownership-scoped: only the instructor who created a test may
// update or delete it.
type FutureTestService struct {
	tests       repositories.IFutureTestRepository
	instructors repositories.IInstructorRepository
	logger      zerolog.Logger
}

// NewFutureTestService creates a new FutureTestService
func NewFutureTestService(tests repositories.IFutureTestRepository, instructors repositories.IInstructorRepository, logger zerolog.Logger) *FutureTestService {
	return &FutureTestService{tests: tests, instructors: instructors, logger: logger}
}

// Create stores a new test owned by the calling instructor
func (s *FutureTestService) Create(ctx context.Context, instructorUsername string, req *dto.FutureTestRequest) (*models.FutureTest, error) {
	instructor, err := s.instructors.GetByUsernameOrEmail(ctx, instructorUsername)
	if err != nil {
		return nil, err
	}

	test := &models.FutureTest{
		Subject:      req.Subject,
		TestDate:     req.TestDate,
		TestTime:     req.TestTime,
		Duration:     req.Duration,
		Location:     req.Location,
		TestType:     req.TestType,
		Description:  req.Description,
		InstructorID: instructor.ID,
	}

	if _, err := s.tests.Create(ctx, test); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("testId", test.ID).Int64("instructorId", instructor.ID).Msg("future test added")
	return test, nil
}

// ListAll returns every upcoming test for the student view
func (s *FutureTestService) ListAll(ctx context.Context) ([]models.FutureTest, error) {
	return s.tests.ListAll(ctx)
}

// ListMine returns the calling instructor's tests
func (s *FutureTestService) ListMine(ctx context.Context, instructorUsername string) ([]models.FutureTest, error) {
	instructor, err := s.instructors.GetByUsernameOrEmail(ctx, instructorUsername)
	if err != nil {
		return nil, err
	}
	return s.tests.ListByInstructor(ctx, instructor.ID)
}

// Update rewrites a test after verifying the caller owns it
func (s *FutureTestService) Update(ctx context.Context, instructorUsername string, id int64, req *dto.FutureTestRequest) error {
	test, err := s.ownedTest(ctx, instructorUsername, id)
	if err != nil {
		return err
	}

	test.Subject = req.Subject
	test.TestDate = req.TestDate
	test.TestTime = req.TestTime
	test.Duration = req.Duration
	test.Location = req.Location
	test.TestType = req.TestType
	test.Description = req.Description

	return s.tests.Update(ctx, test)
}

// Delete removes a test after verifying the caller owns it
func (s *FutureTestService) Delete(ctx context.Context, instructorUsername string, id int64) error {
	if _, err := s.ownedTest(ctx, instructorUsername, id); err != nil {
		return err
	}
	return s.tests.Delete(ctx, id)
}

func (s *FutureTestService) ownedTest(ctx context.Context, instructorUsername string, id int64) (*models.FutureTest, error) {
	instructor, err := s.instructors.GetByUsernameOrEmail(ctx, instructorUsername)
	if err != nil {
		return nil, err
	}

	test, err := s.tests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if test.InstructorID != instructor.ID {
		s.logger.Warn().
			Int64("testId", id).
			Int64("ownerId", test.InstructorID).
			Int64("callerId", instructor.ID).
			Msg("future test mutation denied: not the owner")
		return nil, apperrors.NewForbiddenError("you can only modify your own tests")
	}

	return test, nil
}
