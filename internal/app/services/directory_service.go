package services

import (
	"context"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/repositories"
)

// DirectoryService exposes account lookups: student search for
// instructors, the instructor list for the evaluation form, and a
// student's own identity.
type DirectoryService struct {
	students    repositories.IStudentRepository
	instructors repositories.IInstructorRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(students repositories.IStudentRepository, instructors repositories.IInstructorRepository) *DirectoryService {
	return &DirectoryService{students: students, instructors: instructors}
}

// SearchStudents finds students by username, full name or id
func (s *DirectoryService) SearchStudents(ctx context.Context, term string) ([]models.Student, error) {
	return s.students.Search(ctx, term)
}

// ListInstructors returns every instructor for the evaluation form
func (s *DirectoryService) ListInstructors(ctx context.Context) ([]models.Instructor, error) {
	return s.instructors.ListAll(ctx)
}

// StudentInfo returns the authenticated student's own account
func (s *DirectoryService) StudentInfo(ctx context.Context, username string) (*models.Student, error) {
	return s.students.GetByUsernameOrEmail(ctx, username)
}
