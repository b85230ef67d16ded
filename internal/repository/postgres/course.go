package postgres

import (
	"context"

	"github.com/un1ck-andy/courses-signup/internal/domain"
)

func (s *Storage) ListCourses(ctx context.Context) ([]domain.Course, error) {
	const query = `
        SELECT id, title, description, created_at
        FROM courses
        ORDER BY id;
    `

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.CreatedAt)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

func (s *Storage) GetCourseByID(ctx context.Context, id int) (*domain.Course, error) {
	const query = `
        SELECT id, title, description, created_at
        FROM courses WHERE id = $1;
    `

	var course domain.Course
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&course.ID, &course.Title, &course.Description, &course.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}

	return &course, nil
}

func (s *Storage) CreateCourse(ctx context.Context, req *domain.CreateCourseRequest) (*domain.Course, error) {
	const query = `
        INSERT INTO courses (title, description)
        VALUES ($1, $2)
        RETURNING id, title, description, created_at;
    `

	var course domain.Course
	err := s.pool.QueryRow(ctx, query, req.Title, req.Description).Scan(
		&course.ID, &course.Title, &course.Description, &course.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCourseTitleTaken
		}
		return nil, err
	}

	return &course, nil
}

func (s *Storage) UpdateCourse(ctx context.Context, id int, req *domain.UpdateCourseRequest) (*domain.Course, error) {
	const query = `
        UPDATE courses
        SET title = COALESCE($2, title),
            description = COALESCE($3, description)
        WHERE id = $1
        RETURNING id, title, description, created_at;
    `

	var course domain.Course
	err := s.pool.QueryRow(ctx, query, id, req.Title, req.Description).Scan(
		&course.ID, &course.Title, &course.Description, &course.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrCourseNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrCourseTitleTaken
		}
		return nil, err
	}

	return &course, nil
}

func (s *Storage) DeleteCourse(ctx context.Context, id int) (*domain.Course, error) {
	const query = `
        DELETE FROM courses WHERE id = $1
        RETURNING id, title, description, created_at;
    `

	var course domain.Course
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&course.ID, &course.Title, &course.Description, &course.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}

	return &course, nil
}
