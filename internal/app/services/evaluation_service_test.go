package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/models/dto"
	"github.com/studyhub/backend/internal/app/repositories/inmem"
	"github.com/studyhub/backend/internal/pkg/apperrors"
)

func newTestEvaluationService(t *testing.T) (*EvaluationService, int64) {
	t.Helper()
	students := inmem.NewStudentRepository()
	instructors := inmem.NewInstructorRepository()
	ctx := context.Background()

	_, err := students.Create(ctx, &models.Student{
		Username: "john.doe",
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		Password: "irrelevant",
	})
	require.NoError(t, err)

	instructorID, err := instructors.Create(ctx, &models.Instructor{
		Username: "prof.johnson",
		FullName: "Professor Johnson",
		Email:    "prof.johnson@example.com",
		Password: "irrelevant",
		Subject:  "Mathematics",
	})
	require.NoError(t, err)

	return NewEvaluationService(inmem.NewEvaluationRepository(), students, instructors, zerolog.Nop()), instructorID
}

func sampleEvaluation(instructorID int64) *dto.EvaluationRequest {
	return &dto.EvaluationRequest{
		InstructorID:    instructorID,
		Subject:         "Mathematics",
		TeachingQuality: 4,
		CourseContent:   5,
		Communication:   3,
		OverallRating:   4,
		Comments:        "clear lectures",
	}
}

func TestEvaluationSubmitAndList(t *testing.T) {
	svc, instructorID := newTestEvaluationService(t)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, "john.doe", sampleEvaluation(instructorID)))

	evals, err := svc.ListMine(ctx, "prof.johnson")
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, 4, evals[0].TeachingQuality)
	assert.Equal(t, "clear lectures", evals[0].Comments)
}

func TestEvaluationResubmitReplaces(t *testing.T) {
	svc, instructorID := newTestEvaluationService(t)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, "john.doe", sampleEvaluation(instructorID)))

	updated := sampleEvaluation(instructorID)
	updated.OverallRating = 2
	updated.Comments = "changed my mind"
	require.NoError(t, svc.Submit(ctx, "john.doe", updated))

	evals, err := svc.ListMine(ctx, "prof.johnson")
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, 2, evals[0].OverallRating)
	assert.Equal(t, "changed my mind", evals[0].Comments)
}

func TestEvaluationDistinctSubjectsKept(t *testing.T) {
	svc, instructorID := newTestEvaluationService(t)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, "john.doe", sampleEvaluation(instructorID)))

	other := sampleEvaluation(instructorID)
	other.Subject = "Statistics"
	require.NoError(t, svc.Submit(ctx, "john.doe", other))

	evals, err := svc.ListMine(ctx, "prof.johnson")
	require.NoError(t, err)
	assert.Len(t, evals, 2)
}

func TestEvaluationUnknownStudent(t *testing.T) {
	svc, instructorID := newTestEvaluationService(t)

	err := svc.Submit(context.Background(), "ghost", sampleEvaluation(instructorID))
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
