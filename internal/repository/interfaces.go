// Package repository defines the persistence interfaces the handlers and
// services depend on. The postgres subpackage implements them.
package repository

import (
	"context"

	"github.com/un1ck-andy/courses-signup/internal/domain"
)

type StudentRepository interface {
	// CreateStudent inserts a new student and returns it.
	// A duplicate email fails with domain.ErrEmailTaken.
	CreateStudent(ctx context.Context, fullName, email, passwordHash string) (*domain.Student, error)

	// GetStudentByEmail returns the student with the given email, including
	// the password digest. Fails with domain.ErrStudentNotFound if absent.
	GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error)

	// GetStudentByID fails with domain.ErrStudentNotFound if absent.
	GetStudentByID(ctx context.Context, id int) (*domain.Student, error)

	ListStudents(ctx context.Context) ([]domain.Student, error)

	// UpdateStudent applies the non-nil fields of req.
	// A duplicate email fails with domain.ErrEmailTaken.
	UpdateStudent(ctx context.Context, id int, req *domain.UpdateStudentRequest) (*domain.Student, error)

	// DeleteStudent removes the student and returns the deleted record.
	DeleteStudent(ctx context.Context, id int) (*domain.Student, error)
}

type CourseRepository interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// GetCourseByID fails with domain.ErrCourseNotFound if absent.
	GetCourseByID(ctx context.Context, id int) (*domain.Course, error)

	// CreateCourse inserts a new course.
	// A duplicate title fails with domain.ErrCourseTitleTaken.
	CreateCourse(ctx context.Context, req *domain.CreateCourseRequest) (*domain.Course, error)

	// UpdateCourse applies the non-nil fields of req.
	UpdateCourse(ctx context.Context, id int, req *domain.UpdateCourseRequest) (*domain.Course, error)

	// DeleteCourse removes the course and returns the deleted record.
	DeleteCourse(ctx context.Context, id int) (*domain.Course, error)
}

type EnrollmentRepository interface {
	// EnrollmentExists reports whether the (student, course) pair is already enrolled.
	EnrollmentExists(ctx context.Context, studentID, courseID int) (bool, error)

	// CreateEnrollment inserts an enrollment. The storage-level unique
	// constraint on (student_id, course_id) is the authoritative duplicate
	// guard; a violation fails with domain.ErrAlreadyEnrolled.
	CreateEnrollment(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error)
}
