// Package inmem provides in-memory repository implementations backing
// tests and local experiments without a database. They mirror the
// store semantics: unique constraints raise conflicts, lookups miss
// with not-found, and evaluation writes upsert on the composite key.
package inmem

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/repositories"
	"github.com/studyhub/backend/internal/pkg/apperrors"
)

// StudentRepository is an in-memory student store.
type StudentRepository struct {
	mu       sync.Mutex
	nextID   int64
	students []models.Student
}

var _ repositories.IStudentRepository = (*StudentRepository)(nil)

// NewStudentRepository creates an empty in-memory student store.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{nextID: 1}
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.Username == student.Username || s.Email == student.Email {
			return 0, apperrors.NewConflictError("username or email already registered")
		}
	}
	student.ID = r.nextID
	student.CreatedAt = time.Now()
	r.nextID++
	r.students = append(r.students, *student)
	return student.ID, nil
}

func (r *StudentRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.Username == identifier || s.Email == identifier {
			out := s
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFoundError("student not found")
}

func (r *StudentRepository) Search(ctx context.Context, term string) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lower := strings.ToLower(term)
	var out []models.Student
	for _, s := range r.students {
		if strings.Contains(strings.ToLower(s.Username), lower) ||
			strings.Contains(strings.ToLower(s.FullName), lower) ||
			strings.Contains(strconv.FormatInt(s.ID, 10), term) {
			out = append(out, s)
		}
	}
	return out, nil
}

// InstructorRepository is an in-memory instructor store.
type InstructorRepository struct {
	mu          sync.Mutex
	nextID      int64
	instructors []models.Instructor
}

var _ repositories.IInstructorRepository = (*InstructorRepository)(nil)

// NewInstructorRepository creates an empty in-memory instructor store.
func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{nextID: 1}
}

func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.instructors {
		if i.Username == instructor.Username || i.Email == instructor.Email {
			return 0, apperrors.NewConflictError("username or email already registered")
		}
	}
	instructor.ID = r.nextID
	instructor.CreatedAt = time.Now()
	r.nextID++
	r.instructors = append(r.instructors, *instructor)
	return instructor.ID, nil
}

func (r *InstructorRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.instructors {
		if i.Username == identifier || i.Email == identifier {
			out := i
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFoundError("instructor not found")
}

func (r *InstructorRepository) ListAll(ctx context.Context) ([]models.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Instructor, len(r.instructors))
	copy(out, r.instructors)
	sort.Slice(out, func(a, b int) bool { return out[a].FullName < out[b].FullName })
	return out, nil
}

func (r *StudentRepository) fullNameByID(id int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.ID == id {
			return s.FullName
		}
	}
	return ""
}

// ResultRepository is an in-memory result store. It joins against the
// student store for the name-bearing queries.
type ResultRepository struct {
	mu       sync.Mutex
	nextID   int64
	results  []models.Result
	students *StudentRepository
}

var _ repositories.IResultRepository = (*ResultRepository)(nil)

// NewResultRepository creates an empty in-memory result store backed
// by the given student store for name joins.
func NewResultRepository(students *StudentRepository) *ResultRepository {
	return &ResultRepository{nextID: 1, students: students}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.Result) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result.ID = r.nextID
	result.CreatedAt = time.Now()
	r.nextID++
	r.results = append(r.results, *result)
	return result.ID, nil
}

func (r *ResultRepository) ListByStudentTerm(ctx context.Context, studentID int64, year, semester string) ([]models.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Result
	for _, res := range r.results {
		if res.StudentID == studentID && res.AcademicYear == year && res.Semester == semester {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *ResultRepository) ListAllJoined(ctx context.Context) ([]models.Result, error) {
	return r.Filter(ctx, "", "", "", "")
}

func (r *ResultRepository) Filter(ctx context.Context, student, subject, year, semester string) ([]models.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Result
	for _, res := range r.results {
		res.StudentName = r.students.fullNameByID(res.StudentID)
		if student != "" && !strings.Contains(strings.ToLower(res.StudentName), strings.ToLower(student)) {
			continue
		}
		if subject != "" && res.Subject != subject {
			continue
		}
		if year != "" && res.AcademicYear != year {
			continue
		}
		if semester != "" && res.Semester != semester {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ResultRepository) Update(ctx context.Context, id int64, marks int, grade string, credits int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.results {
		if r.results[i].ID == id {
			r.results[i].Marks = marks
			r.results[i].Grade = grade
			r.results[i].Credits = credits
			return nil
		}
	}
	return apperrors.NewNotFoundError("result not found")
}

func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.results {
		if r.results[i].ID == id {
			r.results = append(r.results[:i], r.results[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("result not found")
}

// FutureTestRepository is an in-memory future test store.
type FutureTestRepository struct {
	mu     sync.Mutex
	nextID int64
	tests  []models.FutureTest
}

var _ repositories.IFutureTestRepository = (*FutureTestRepository)(nil)

// NewFutureTestRepository creates an empty in-memory future test store.
func NewFutureTestRepository() *FutureTestRepository {
	return &FutureTestRepository{nextID: 1}
}

func (r *FutureTestRepository) Create(ctx context.Context, test *models.FutureTest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	test.ID = r.nextID
	test.CreatedAt = time.Now()
	r.nextID++
	r.tests = append(r.tests, *test)
	return test.ID, nil
}

func (r *FutureTestRepository) GetByID(ctx context.Context, id int64) (*models.FutureTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, test := range r.tests {
		if test.ID == id {
			out := test
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFoundError("test not found")
}

func (r *FutureTestRepository) ListAll(ctx context.Context) ([]models.FutureTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.FutureTest, len(r.tests))
	copy(out, r.tests)
	return out, nil
}

func (r *FutureTestRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]models.FutureTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.FutureTest
	for _, test := range r.tests {
		if test.InstructorID == instructorID {
			out = append(out, test)
		}
	}
	return out, nil
}

func (r *FutureTestRepository) Update(ctx context.Context, test *models.FutureTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tests {
		if r.tests[i].ID == test.ID {
			created := r.tests[i].CreatedAt
			instructor := r.tests[i].InstructorID
			r.tests[i] = *test
			r.tests[i].CreatedAt = created
			r.tests[i].InstructorID = instructor
			return nil
		}
	}
	return apperrors.NewNotFoundError("test not found")
}

func (r *FutureTestRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tests {
		if r.tests[i].ID == id {
			r.tests = append(r.tests[:i], r.tests[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("test not found")
}

// EvaluationRepository is an in-memory evaluation store.
type EvaluationRepository struct {
	mu     sync.Mutex
	nextID int64
	evals  []models.Evaluation
}

var _ repositories.IEvaluationRepository = (*EvaluationRepository)(nil)

// NewEvaluationRepository creates an empty in-memory evaluation store.
func NewEvaluationRepository() *EvaluationRepository {
	return &EvaluationRepository{nextID: 1}
}

func (r *EvaluationRepository) Upsert(ctx context.Context, eval *models.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.evals {
		if r.evals[i].StudentID == eval.StudentID &&
			r.evals[i].InstructorID == eval.InstructorID &&
			r.evals[i].Subject == eval.Subject {
			eval.ID = r.evals[i].ID
			eval.CreatedAt = time.Now()
			r.evals[i] = *eval
			return nil
		}
	}
	eval.ID = r.nextID
	eval.CreatedAt = time.Now()
	r.nextID++
	r.evals = append(r.evals, *eval)
	return nil
}

func (r *EvaluationRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]models.Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Evaluation
	for _, eval := range r.evals {
		if eval.InstructorID == instructorID {
			out = append(out, eval)
		}
	}
	return out, nil
}

// ChatRepository is an in-memory chat message store.
type ChatRepository struct {
	mu       sync.Mutex
	nextID   int64
	messages []models.ChatMessage
}

var _ repositories.IChatRepository = (*ChatRepository)(nil)

// NewChatRepository creates an empty in-memory chat store.
func NewChatRepository() *ChatRepository {
	return &ChatRepository{nextID: 1}
}

func (r *ChatRepository) Create(ctx context.Context, message *models.ChatMessage) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = r.nextID
	// Monotonic timestamps keep history ordering stable even when
	// messages land within the same wall-clock tick
	message.Timestamp = time.Now().Add(time.Duration(r.nextID) * time.Millisecond)
	r.nextID++
	r.messages = append(r.messages, *message)
	return message.ID, nil
}

func (r *ChatRepository) History(ctx context.Context, userA, userB string) ([]models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ChatMessage
	for _, m := range r.messages {
		if (m.Sender == userA && m.Receiver == userB) || (m.Sender == userB && m.Receiver == userA) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Timestamp.Before(out[b].Timestamp) })
	return out, nil
}
