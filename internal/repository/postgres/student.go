package postgres

import (
	"context"

	"github.com/un1ck-andy/courses-signup/internal/domain"
)

func (s *Storage) CreateStudent(ctx context.Context, fullName, email, passwordHash string) (*domain.Student, error) {
	const query = `
        INSERT INTO students (fullname, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, fullname, email, password_hash, created_at;
    `

	var student domain.Student
	err := s.pool.QueryRow(ctx, query, fullName, email, passwordHash).Scan(
		&student.ID, &student.FullName, &student.Email, &student.PasswordHash, &student.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return &student, nil
}

func (s *Storage) GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	const query = `
        SELECT id, fullname, email, password_hash, created_at
        FROM students WHERE email = $1;
    `

	var student domain.Student
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&student.ID, &student.FullName, &student.Email, &student.PasswordHash, &student.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}

	return &student, nil
}

func (s *Storage) GetStudentByID(ctx context.Context, id int) (*domain.Student, error) {
	const query = `
        SELECT id, fullname, email, password_hash, created_at
        FROM students WHERE id = $1;
    `

	var student domain.Student
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&student.ID, &student.FullName, &student.Email, &student.PasswordHash, &student.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}

	return &student, nil
}

func (s *Storage) ListStudents(ctx context.Context) ([]domain.Student, error) {
	const query = `
        SELECT id, fullname, email, created_at
        FROM students
        ORDER BY id;
    `

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var students []domain.Student
	for rows.Next() {
		var student domain.Student
		err := rows.Scan(&student.ID, &student.FullName, &student.Email, &student.CreatedAt)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

func (s *Storage) UpdateStudent(ctx context.Context, id int, req *domain.UpdateStudentRequest) (*domain.Student, error) {
	const query = `
        UPDATE students
        SET fullname = COALESCE($2, fullname),
            email = COALESCE($3, email)
        WHERE id = $1
        RETURNING id, fullname, email, created_at;
    `

	var student domain.Student
	err := s.pool.QueryRow(ctx, query, id, req.FullName, req.Email).Scan(
		&student.ID, &student.FullName, &student.Email, &student.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrStudentNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return &student, nil
}

func (s *Storage) DeleteStudent(ctx context.Context, id int) (*domain.Student, error) {
	const query = `
        DELETE FROM students WHERE id = $1
        RETURNING id, fullname, email, created_at;
    `

	var student domain.Student
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&student.ID, &student.FullName, &student.Email, &student.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}

	return &student, nil
}
