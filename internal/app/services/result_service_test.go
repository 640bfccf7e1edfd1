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

func newTestResultService(t *testing.T) (*ResultService, int64) {
	t.Helper()
	students := inmem.NewStudentRepository()
	studentID, err := students.Create(context.Background(), &models.Student{
		Username: "john.doe",
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		Password: "irrelevant",
	})
	require.NoError(t, err)
	return NewResultService(inmem.NewResultRepository(students), students, zerolog.Nop()), studentID
}

func sampleResult(studentID int64) *dto.CreateResultRequest {
	return &dto.CreateResultRequest{
		StudentID:    studentID,
		Subject:      "Mathematics",
		Marks:        87,
		Grade:        "A",
		Credits:      4,
		Semester:     "Fall",
		AcademicYear: "2026",
	}
}

func TestResultCreateAndListForStudent(t *testing.T) {
	svc, studentID := newTestResultService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleResult(studentID))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	results, student, err := svc.ListForStudent(ctx, "john.doe", "2026", "Fall")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Mathematics", results[0].Subject)
	assert.Equal(t, "John Doe", student.FullName)

	// Other term is empty
	results, _, err = svc.ListForStudent(ctx, "john.doe", "2026", "Spring")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestResultListForUnknownStudent(t *testing.T) {
	svc, _ := newTestResultService(t)

	_, _, err := svc.ListForStudent(context.Background(), "ghost", "2026", "Fall")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestResultUpdateAndDelete(t *testing.T) {
	svc, studentID := newTestResultService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleResult(studentID))
	require.NoError(t, err)

	err = svc.Update(ctx, created.ID, &dto.UpdateResultRequest{Marks: 92, Grade: "A+", Credits: 4})
	require.NoError(t, err)

	results, _, err := svc.ListForStudent(ctx, "john.doe", "2026", "Fall")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 92, results[0].Marks)
	assert.Equal(t, "A+", results[0].Grade)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	err = svc.Update(ctx, created.ID, &dto.UpdateResultRequest{Marks: 1, Grade: "F", Credits: 1})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestResultFilter(t *testing.T) {
	svc, studentID := newTestResultService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, sampleResult(studentID))
	require.NoError(t, err)

	physics := sampleResult(studentID)
	physics.Subject = "Physics"
	physics.Semester = "Spring"
	_, err = svc.Create(ctx, physics)
	require.NoError(t, err)

	filtered, err := svc.Filter(ctx, "", "Physics", "", "")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Physics", filtered[0].Subject)

	// Empty filters match everything
	all, err := svc.Filter(ctx, "", "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResultFilterByStudentName(t *testing.T) {
	students := inmem.NewStudentRepository()
	ctx := context.Background()

	johnID, err := students.Create(ctx, &models.Student{
		Username: "john.doe", FullName: "John Doe",
		Email: "john.doe@example.com", Password: "irrelevant",
	})
	require.NoError(t, err)
	emmaID, err := students.Create(ctx, &models.Student{
		Username: "emma.smith", FullName: "Emma Smith",
		Email: "emma.smith@example.com", Password: "irrelevant",
	})
	require.NoError(t, err)

	svc := NewResultService(inmem.NewResultRepository(students), students, zerolog.Nop())
	_, err = svc.Create(ctx, sampleResult(johnID))
	require.NoError(t, err)
	_, err = svc.Create(ctx, sampleResult(emmaID))
	require.NoError(t, err)

	// Name filter is a case-insensitive substring match
	filtered, err := svc.Filter(ctx, "emma", "", "", "")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, emmaID, filtered[0].StudentID)
	assert.Equal(t, "Emma Smith", filtered[0].StudentName)

	filtered, err = svc.Filter(ctx, "nobody", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, filtered)

	// Joined listings carry the student name too
	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, res := range all {
		assert.NotEmpty(t, res.StudentName)
	}
}
