package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/un1ck-andy/courses-signup/internal/domain"
	"github.com/un1ck-andy/courses-signup/internal/enrollment"
)

func SetupEnrollmentRoutes(e *echo.Echo, service *enrollment.Service, authMiddleware echo.MiddlewareFunc) {
	e.POST("/api/v1/courses/signup", SignupToCourse(service), authMiddleware)
}

// SignupToCourse godoc
// @Summary Sign a student up for a course
// @Description Enroll a student in a course; the pair must not be enrolled already
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollment body domain.EnrollRequest true "Student and course to pair"
// @Success 201 {object} domain.Enrollment
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses/signup [post]
func SignupToCourse(service *enrollment.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.EnrollRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return err
		}

		result, err := service.Enroll(c.Request().Context(), req.StudentID, req.CourseID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrStudentNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrStudentNotFound.Error()})
			case errors.Is(err, domain.ErrCourseNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrCourseNotFound.Error()})
			case errors.Is(err, domain.ErrAlreadyEnrolled):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrAlreadyEnrolled.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to sign up for course"})
			}
		}

		return c.JSON(http.StatusCreated, result)
	}
}
