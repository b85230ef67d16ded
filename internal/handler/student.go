package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/un1ck-andy/courses-signup/internal/auth"
	"github.com/un1ck-andy/courses-signup/internal/domain"
	"github.com/un1ck-andy/courses-signup/internal/repository"
)

func SetupStudentRoutes(e *echo.Echo, students repository.StudentRepository, authority *auth.Authority, authMiddleware echo.MiddlewareFunc) {
	e.POST("/api/v1/students/signup", Signup(students, authority))
	e.POST("/api/v1/students/login", Login(students, authority))
	e.POST("/api/v1/students/refresh", Refresh(authority))

	g := e.Group("/api/v1/students", authMiddleware)
	g.GET("", GetStudents(students))
	g.PUT("/:id", UpdateStudent(students))
	g.DELETE("/:id", DeleteStudent(students))
}

// Signup godoc
// @Summary Register new student
// @Description Create a new student account and return a token pair
// @Tags students
// @Accept json
// @Produce json
// @Param student body domain.SignupRequest true "Student registration details"
// @Success 201 {object} domain.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /students/signup [post]
func Signup(students repository.StudentRepository, authority *auth.Authority) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return err
		}

		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to hash password"})
		}

		student, err := students.CreateStudent(c.Request().Context(), req.FullName, req.Email, passwordHash)
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrEmailTaken.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create student"})
		}

		pair, err := authority.IssuePair(student.ID, student.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate tokens"})
		}

		return c.JSON(http.StatusCreated, domain.AuthResponse{
			TokenPair: *pair,
			Student:   *student,
		})
	}
}

// Login godoc
// @Summary Login student
// @Description Authenticate a student and return a token pair
// @Tags students
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Login credentials"
// @Success 200 {object} domain.AuthResponse
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /students/login [post]
func Login(students repository.StudentRepository, authority *auth.Authority) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return err
		}

		student, err := students.GetStudentByEmail(c.Request().Context(), req.Email)
		if err != nil {
			if errors.Is(err, domain.ErrStudentNotFound) {
				// Same response as a wrong password so the login endpoint
				// does not leak which emails are registered.
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch student"})
		}

		if !auth.VerifyPassword(req.Password, student.PasswordHash) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
		}

		pair, err := authority.IssuePair(student.ID, student.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate tokens"})
		}

		return c.JSON(http.StatusOK, domain.AuthResponse{
			TokenPair: *pair,
			Student:   *student,
		})
	}
}

// Refresh godoc
// @Summary Redeem a refresh token
// @Description Exchange a valid refresh token for a new token pair
// @Tags students
// @Accept json
// @Produce json
// @Param token body domain.RefreshRequest true "Refresh token"
// @Success 200 {object} domain.TokenPair
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /students/refresh [post]
func Refresh(authority *auth.Authority) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return err
		}

		claims, err := authority.Verify(req.RefreshToken, auth.TokenTypeRefresh)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		pair, err := authority.IssuePair(claims.StudentID, claims.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate tokens"})
		}

		return c.JSON(http.StatusOK, pair)
	}
}

// GetStudents godoc
// @Summary Show all students list
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Student
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /students [get]
func GetStudents(students repository.StudentRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := students.ListStudents(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch students"})
		}

		return c.JSON(http.StatusOK, list)
	}
}

// UpdateStudent godoc
// @Summary Update student info
// @Description Update the full name or email of an existing student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param student body domain.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} domain.Student
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /students/{id} [put]
func UpdateStudent(students repository.StudentRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid student id"})
		}

		var req domain.UpdateStudentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return err
		}

		student, err := students.UpdateStudent(c.Request().Context(), id, &req)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrStudentNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrStudentNotFound.Error()})
			case errors.Is(err, domain.ErrEmailTaken):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrEmailTaken.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update student"})
			}
		}

		return c.JSON(http.StatusOK, student)
	}
}

// DeleteStudent godoc
// @Summary Delete student account
// @Description Remove a student and return the deleted record
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} domain.Student
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /students/{id} [delete]
func DeleteStudent(students repository.StudentRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid student id"})
		}

		student, err := students.DeleteStudent(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrStudentNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrStudentNotFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete student"})
		}

		return c.JSON(http.StatusOK, student)
	}
}
