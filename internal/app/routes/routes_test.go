package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/backend/internal/app/controllers"
	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/app/repositories/inmem"
	"github.com/studyhub/backend/internal/app/services"
	"github.com/studyhub/backend/internal/middleware"
	"github.com/studyhub/backend/internal/pkg/auth"
	"github.com/studyhub/backend/internal/pkg/filestorage"
)

func authTokens() *auth.TokenService {
	return auth.NewTokenService(auth.TokenConfig{
		SecretKey: "routes-test-secret",
		TokenExp:  time.Hour,
		Issuer:    "studyhub.test",
	})
}

type staticDownloader struct {
	content string
}

func (d staticDownloader) DownloadTo(ctx context.Context, fileID, destPath string) error {
	return os.WriteFile(destPath, []byte(d.content), 0o644)
}

// newTestRouter wires the full application over in-memory stores.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	lgr := zerolog.Nop()

	students := inmem.NewStudentRepository()
	instructors := inmem.NewInstructorRepository()
	results := inmem.NewResultRepository(students)
	futureTests := inmem.NewFutureTestRepository()
	evaluations := inmem.NewEvaluationRepository()
	chat := inmem.NewChatRepository()

	tokens := authTokens()
	authService := services.NewAuthService(students, instructors, tokens, lgr)
	resultService := services.NewResultService(results, students, lgr)
	futureTestService := services.NewFutureTestService(futureTests, instructors, lgr)
	evaluationService := services.NewEvaluationService(evaluations, students, instructors, lgr)
	chatService := services.NewChatService(chat, lgr)
	directoryService := services.NewDirectoryService(students, instructors)

	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	resourceService := services.NewResourceService(
		storage,
		staticDownloader{content: "guide bytes"},
		map[string]string{"python": "17-abc123"},
		lgr,
	)

	staticDir := t.TempDir()
	for _, page := range []string{"index.html", "student_dashboard.html", "instructor_dashboard.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(staticDir, page), []byte("<html>"+page+"</html>"), 0o644))
	}

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService, lgr),
		controllers.NewResultController(resultService, lgr),
		controllers.NewFutureTestController(futureTestService, lgr),
		controllers.NewEvaluationController(evaluationService, lgr),
		controllers.NewChatController(chatService, lgr),
		controllers.NewDirectoryController(directoryService),
		controllers.NewResourceController(resourceService, lgr),
		controllers.NewPageController(staticDir),
		middleware.NewAuthMiddleware(tokens),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAccount(t *testing.T, router *gin.Engine, role models.RoleType, username, subject string) string {
	t.Helper()
	payload := map[string]string{
		"username": username,
		"password": "Secret@123",
		"fullname": "Account " + username,
		"email":    username + "@example.com",
	}
	if subject != "" {
		payload["subject"] = subject
	}
	rec := doJSON(t, router, http.MethodPost, "/api/"+string(role)+"/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterSetsRoleCookie(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]string{
		"username": "john.doe",
		"password": "Student@123",
		"fullname": "John Doe",
		"email":    "john.doe@example.com",
	}
	rec := doJSON(t, router, http.MethodPost, "/api/student/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "studentToken" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "registration must set the student session cookie")
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, sessionCookie.SameSite)
	assert.Equal(t, 24*60*60, sessionCookie.MaxAge)
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	router := newTestRouter(t)
	registerAccount(t, router, models.RoleStudent, "john.doe", "")

	payload := map[string]string{
		"username": "john.doe",
		"password": "Other@123",
		"fullname": "Someone Else",
		"email":    "else@example.com",
	}
	rec := doJSON(t, router, http.MethodPost, "/api/student/register", "", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginFailureIsUniform(t *testing.T) {
	router := newTestRouter(t)
	registerAccount(t, router, models.RoleStudent, "john.doe", "")

	wrongPassword := doJSON(t, router, http.MethodPost, "/api/student/login", "", map[string]string{
		"username": "john.doe", "password": "Wrong@123",
	})
	unknownAccount := doJSON(t, router, http.MethodPost, "/api/student/login", "", map[string]string{
		"username": "nobody", "password": "Wrong@123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownAccount.Code)
	// Identical bodies: no account-existence oracle
	assert.JSONEq(t, wrongPassword.Body.String(), unknownAccount.Body.String())
}

func TestRoleGuards(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerAccount(t, router, models.RoleStudent, "john.doe", "")
	instructorToken := registerAccount(t, router, models.RoleInstructor, "prof.johnson", "Mathematics")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{name: "student endpoint without token", method: http.MethodGet, path: "/api/student/info", want: http.StatusUnauthorized},
		{name: "student endpoint with instructor token", method: http.MethodGet, path: "/api/student/info", token: instructorToken, want: http.StatusUnauthorized},
		{name: "student endpoint with student token", method: http.MethodGet, path: "/api/student/info", token: studentToken, want: http.StatusOK},
		{name: "instructor endpoint with student token", method: http.MethodGet, path: "/api/results", token: studentToken, want: http.StatusUnauthorized},
		{name: "instructor endpoint with instructor token", method: http.MethodGet, path: "/api/results", token: instructorToken, want: http.StatusOK},
		{name: "chat accepts students", method: http.MethodGet, path: "/api/chat/history?other_user=prof.johnson", token: studentToken, want: http.StatusOK},
		{name: "chat accepts instructors", method: http.MethodGet, path: "/api/chat/history?other_user=john.doe", token: instructorToken, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestResultLifecycle(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerAccount(t, router, models.RoleStudent, "john.doe", "")
	instructorToken := registerAccount(t, router, models.RoleInstructor, "prof.johnson", "Mathematics")

	// Instructor records a grade for student id 1
	rec := doJSON(t, router, http.MethodPost, "/api/results", instructorToken, map[string]any{
		"student_id": 1, "subject": "Mathematics", "marks": 87, "grade": "A",
		"credits": 4, "semester": "Fall", "academic_year": "2026",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Student sees it for the matching term
	rec = doJSON(t, router, http.MethodGet, "/api/student/results?year=2026&semester=Fall", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Results []struct {
			ID      int64  `json:"id"`
			Subject string `json:"subject"`
			Marks   int    `json:"marks"`
		} `json:"results"`
		StudentInfo struct {
			Name string `json:"name"`
		} `json:"student_info"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Results, 1)
	assert.Equal(t, 87, listing.Results[0].Marks)
	assert.Equal(t, "Account john.doe", listing.StudentInfo.Name)

	// A different term is empty
	rec = doJSON(t, router, http.MethodGet, "/api/student/results?year=2026&semester=Spring", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Empty(t, listing.Results)

	// Missing term params are rejected
	rec = doJSON(t, router, http.MethodGet, "/api/student/results", studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Instructor updates and deletes
	rec = doJSON(t, router, http.MethodPut, "/api/results/1", instructorToken, map[string]any{
		"marks": 92, "grade": "A+", "credits": 4,
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, "/api/results/1", instructorToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/results/1", instructorToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFutureTestOwnershipOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	ownerToken := registerAccount(t, router, models.RoleInstructor, "prof.johnson", "Mathematics")
	otherToken := registerAccount(t, router, models.RoleInstructor, "dr.smith", "Physics")
	studentToken := registerAccount(t, router, models.RoleStudent, "john.doe", "")

	rec := doJSON(t, router, http.MethodPost, "/api/instructor/future-tests", ownerToken, map[string]any{
		"subject": "Mathematics", "test_date": "2026-10-01", "test_time": "10:00", "duration": "2 hours",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Students see every test
	rec = doJSON(t, router, http.MethodGet, "/api/student/future-tests", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mathematics")

	// A non-owner instructor cannot mutate it
	rec = doJSON(t, router, http.MethodDelete, "/api/instructor/future-tests/1", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/instructor/future-tests/1", otherToken, map[string]any{
		"subject": "Hijacked", "test_date": "2026-10-02", "test_time": "11:00", "duration": "1 hour",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The owner can
	rec = doJSON(t, router, http.MethodDelete, "/api/instructor/future-tests/1", ownerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvaluationFlow(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerAccount(t, router, models.RoleStudent, "john.doe", "")
	instructorToken := registerAccount(t, router, models.RoleInstructor, "prof.johnson", "Mathematics")

	submit := func(rating int) *httptest.ResponseRecorder {
		return doJSON(t, router, http.MethodPost, "/api/evaluation", studentToken, map[string]any{
			"instructor_id": 1, "subject": "Mathematics",
			"teaching_quality": rating, "course_content": rating,
			"communication": rating, "overall_rating": rating,
		})
	}

	require.Equal(t, http.StatusOK, submit(4).Code)
	require.Equal(t, http.StatusOK, submit(2).Code)

	// Resubmission replaced the first evaluation
	rec := doJSON(t, router, http.MethodGet, "/api/instructor/evaluations", instructorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Evaluations []struct {
			OverallRating int `json:"overallRating"`
		} `json:"evaluations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Evaluations, 1)
	assert.Equal(t, 2, listing.Evaluations[0].OverallRating)

	// Out-of-range ratings are rejected at binding
	rec = doJSON(t, router, http.MethodPost, "/api/evaluation", studentToken, map[string]any{
		"instructor_id": 1, "subject": "Mathematics",
		"teaching_quality": 6, "course_content": 1, "communication": 1, "overall_rating": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatConversation(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerAccount(t, router, models.RoleStudent, "john.doe", "")
	instructorToken := registerAccount(t, router, models.RoleInstructor, "prof.johnson", "Mathematics")

	send := func(token, receiver, message string) {
		rec := doJSON(t, router, http.MethodPost, "/api/chat/send", token, map[string]string{
			"receiver": receiver, "message": message,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	send(studentToken, "prof.johnson", "hello professor")
	send(instructorToken, "john.doe", "hello john")
	send(studentToken, "prof.johnson", "thanks")

	rec := doJSON(t, router, http.MethodGet, "/api/chat/history?other_user=prof.johnson", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var history struct {
		Messages []struct {
			Sender  string `json:"sender"`
			Message string `json:"message"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history.Messages, 3)
	assert.Equal(t, "hello professor", history.Messages[0].Message)
	assert.Equal(t, "prof.johnson", history.Messages[1].Sender)
	assert.Equal(t, "thanks", history.Messages[2].Message)
}

func TestDirectoryEndpoints(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerAccount(t, router, models.RoleStudent, "john.doe", "")
	instructorToken := registerAccount(t, router, models.RoleInstructor, "prof.johnson", "Mathematics")

	rec := doJSON(t, router, http.MethodGet, "/api/students/search?query=john", instructorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "john.doe")

	rec = doJSON(t, router, http.MethodGet, "/api/students/search", instructorToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/instructors", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "prof.johnson")
	assert.Contains(t, rec.Body.String(), "Mathematics")

	rec = doJSON(t, router, http.MethodGet, "/api/student/info", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "student_info")
}

func TestResourceDownload(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerAccount(t, router, models.RoleStudent, "john.doe", "")

	rec := doJSON(t, router, http.MethodGet, "/api/coding-resources/python", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guide bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "python_guide.pdf")

	rec = doJSON(t, router, http.MethodGet, "/api/coding-resources/cooking", studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/coding-resources/download/17-javascript", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "javascript_guide.pdf")
}

func TestDashboardPages(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerAccount(t, router, models.RoleStudent, "john.doe", "")

	// Unauthenticated browsers bounce to the landing page
	req := httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "studentToken", Value: studentToken})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "student_dashboard")
}
