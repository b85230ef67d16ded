package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/un1ck-andy/courses-signup/internal/domain"
)

// --- test plumbing ---

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	if err := tv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "request body does not match the expected schema")
	}
	return nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// --- mocks ---

type mockStudentRepo struct {
	createFn     func(ctx context.Context, fullName, email, passwordHash string) (*domain.Student, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.Student, error)
	getByIDFn    func(ctx context.Context, id int) (*domain.Student, error)
	listFn       func(ctx context.Context) ([]domain.Student, error)
	updateFn     func(ctx context.Context, id int, req *domain.UpdateStudentRequest) (*domain.Student, error)
	deleteFn     func(ctx context.Context, id int) (*domain.Student, error)
}

func (m *mockStudentRepo) CreateStudent(ctx context.Context, fullName, email, passwordHash string) (*domain.Student, error) {
	return m.createFn(ctx, fullName, email, passwordHash)
}
func (m *mockStudentRepo) GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	return m.getByEmailFn(ctx, email)
}
func (m *mockStudentRepo) GetStudentByID(ctx context.Context, id int) (*domain.Student, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockStudentRepo) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return m.listFn(ctx)
}
func (m *mockStudentRepo) UpdateStudent(ctx context.Context, id int, req *domain.UpdateStudentRequest) (*domain.Student, error) {
	return m.updateFn(ctx, id, req)
}
func (m *mockStudentRepo) DeleteStudent(ctx context.Context, id int) (*domain.Student, error) {
	return m.deleteFn(ctx, id)
}

type mockCourseRepo struct {
	listFn    func(ctx context.Context) ([]domain.Course, error)
	getByIDFn func(ctx context.Context, id int) (*domain.Course, error)
	createFn  func(ctx context.Context, req *domain.CreateCourseRequest) (*domain.Course, error)
	updateFn  func(ctx context.Context, id int, req *domain.UpdateCourseRequest) (*domain.Course, error)
	deleteFn  func(ctx context.Context, id int) (*domain.Course, error)
}

func (m *mockCourseRepo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return m.listFn(ctx)
}
func (m *mockCourseRepo) GetCourseByID(ctx context.Context, id int) (*domain.Course, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockCourseRepo) CreateCourse(ctx context.Context, req *domain.CreateCourseRequest) (*domain.Course, error) {
	return m.createFn(ctx, req)
}
func (m *mockCourseRepo) UpdateCourse(ctx context.Context, id int, req *domain.UpdateCourseRequest) (*domain.Course, error) {
	return m.updateFn(ctx, id, req)
}
func (m *mockCourseRepo) DeleteCourse(ctx context.Context, id int) (*domain.Course, error) {
	return m.deleteFn(ctx, id)
}

type mockEnrollmentRepo struct {
	existsFn func(ctx context.Context, studentID, courseID int) (bool, error)
	createFn func(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error)
}

func (m *mockEnrollmentRepo) EnrollmentExists(ctx context.Context, studentID, courseID int) (bool, error) {
	return m.existsFn(ctx, studentID, courseID)
}
func (m *mockEnrollmentRepo) CreateEnrollment(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error) {
	return m.createFn(ctx, studentID, courseID)
}
