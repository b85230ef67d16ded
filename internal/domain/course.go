package domain

import "time"

type Course struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}

// UpdateCourseRequest carries a partial update; nil fields keep their stored value.
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
