package domain

import "time"

// Enrollment records that a student is signed up for a course.
// The (student_id, course_id) pair is unique per the enrollments schema.
type Enrollment struct {
	ID        int       `db:"id" json:"id"`
	StudentID int       `db:"student_id" json:"student_id"`
	CourseID  int       `db:"course_id" json:"course_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type EnrollRequest struct {
	StudentID int `json:"student_id" validate:"required"`
	CourseID  int `json:"course_id" validate:"required"`
}
