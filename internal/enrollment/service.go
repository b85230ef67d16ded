// Package enrollment implements the course sign-up operation.
package enrollment

import (
	"context"

	"github.com/un1ck-andy/courses-signup/internal/domain"
	"github.com/un1ck-andy/courses-signup/internal/repository"
)

type Service struct {
	students    repository.StudentRepository
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
}

func NewService(
	students repository.StudentRepository,
	courses repository.CourseRepository,
	enrollments repository.EnrollmentRepository,
) *Service {
	return &Service{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
	}
}

// Enroll signs a student up for a course. Both must exist, and the pair
// must not be enrolled already. The existence and duplicate checks give
// friendly errors up front; the unique constraint on
// (student_id, course_id) remains the authoritative guard, so a racing
// duplicate insert still comes back as domain.ErrAlreadyEnrolled.
func (s *Service) Enroll(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error) {
	if _, err := s.students.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}

	if _, err := s.courses.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	exists, err := s.enrollments.EnrollmentExists(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyEnrolled
	}

	return s.enrollments.CreateEnrollment(ctx, studentID, courseID)
}
