package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyhub/backend/internal/app/models"
)

// IStudentRepository is the student account data-access contract
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Student, error)
	Search(ctx context.Context, term string) ([]models.Student, error)
}

// IInstructorRepository is the instructor account data-access contract
type IInstructorRepository interface {
	Create(ctx context.Context, instructor *models.Instructor) (int64, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Instructor, error)
	ListAll(ctx context.Context) ([]models.Instructor, error)
}

// IResultRepository is the grade data-access contract
type IResultRepository interface {
	Create(ctx context.Context, result *models.Result) (int64, error)
	ListByStudentTerm(ctx context.Context, studentID int64, year, semester string) ([]models.Result, error)
	ListAllJoined(ctx context.Context) ([]models.Result, error)
	Filter(ctx context.Context, student, subject, year, semester string) ([]models.Result, error)
	Update(ctx context.Context, id int64, marks int, grade string, credits int) error
	Delete(ctx context.Context, id int64) error
}

// IFutureTestRepository is the upcoming-test data-access contract
type IFutureTestRepository interface {
	Create(ctx context.Context, test *models.FutureTest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.FutureTest, error)
	ListAll(ctx context.Context) ([]models.FutureTest, error)
	ListByInstructor(ctx context.Context, instructorID int64) ([]models.FutureTest, error)
	Update(ctx context.Context, test *models.FutureTest) error
	Delete(ctx context.Context, id int64) error
}

// IEvaluationRepository is the evaluation data-access contract
type IEvaluationRepository interface {
	Upsert(ctx context.Context, eval *models.Evaluation) error
	ListByInstructor(ctx context.Context, instructorID int64) ([]models.Evaluation, error)
}

// IChatRepository is the chat message data-access contract
type IChatRepository interface {
	Create(ctx context.Context, message *models.ChatMessage) (int64, error)
	History(ctx context.Context, userA, userB string) ([]models.ChatMessage, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Students    *StudentRepository
	Instructors *InstructorRepository
	Results     *ResultRepository
	FutureTests *FutureTestRepository
	Evaluations *EvaluationRepository
	Chat        *ChatRepository
}

// NewRepositories initializes all repositories over the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Students:    NewStudentRepository(db),
		Instructors: NewInstructorRepository(db),
		Results:     NewResultRepository(db),
		FutureTests: NewFutureTestRepository(db),
		Evaluations: NewEvaluationRepository(db),
		Chat:        NewChatRepository(db),
	}
}
