package postgres

import (
	"context"

	"github.com/un1ck-andy/courses-signup/internal/domain"
)

func (s *Storage) EnrollmentExists(ctx context.Context, studentID, courseID int) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2
        );
    `

	var exists bool
	err := s.pool.QueryRow(ctx, query, studentID, courseID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (s *Storage) CreateEnrollment(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error) {
	const query = `
        INSERT INTO enrollments (student_id, course_id)
        VALUES ($1, $2)
        RETURNING id, student_id, course_id, created_at;
    `

	var enrollment domain.Enrollment
	err := s.pool.QueryRow(ctx, query, studentID, courseID).Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.CreatedAt,
	)
	if err != nil {
		// Two racing enrolls both pass the pre-check; the unique constraint
		// decides the loser here.
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyEnrolled
		}
		return nil, err
	}

	return &enrollment, nil
}
