package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/un1ck-andy/courses-signup/internal/domain"
	"github.com/un1ck-andy/courses-signup/internal/repository"
)

func SetupCourseRoutes(e *echo.Echo, courses repository.CourseRepository, authMiddleware echo.MiddlewareFunc) {
	e.GET("/api/v1/courses", GetCourses(courses))
	e.GET("/api/v1/courses/:id", GetCourseByID(courses))

	g := e.Group("/api/v1/courses", authMiddleware)
	g.POST("", CreateCourse(courses))
	g.PUT("/:id", UpdateCourse(courses))
	g.DELETE("/:id", DeleteCourse(courses))
}

// GetCourses godoc
// @Summary Get all courses
// @Description A list of all courses
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {array} domain.Course
// @Failure 500 {object} map[string]string
// @Router /courses [get]
func GetCourses(courses repository.CourseRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := courses.ListCourses(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch courses"})
		}

		return c.JSON(http.StatusOK, list)
	}
}

// GetCourseByID godoc
// @Summary Get course by ID
// @Description Find a course by ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} domain.Course
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func GetCourseByID(courses repository.CourseRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid course id"})
		}

		course, err := courses.GetCourseByID(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrCourseNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrCourseNotFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch course"})
		}

		return c.JSON(http.StatusOK, course)
	}
}

// CreateCourse godoc
// @Summary Add a new course
// @Description Create a course with a unique title
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body domain.CreateCourseRequest true "Course details"
// @Success 201 {object} domain.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses [post]
func CreateCourse(courses repository.CourseRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.CreateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return err
		}

		course, err := courses.CreateCourse(c.Request().Context(), &req)
		if err != nil {
			if errors.Is(err, domain.ErrCourseTitleTaken) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrCourseTitleTaken.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create course"})
		}

		return c.JSON(http.StatusCreated, course)
	}
}

// UpdateCourse godoc
// @Summary Update the course by ID
// @Description Update the title and description of an existing course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param course body domain.UpdateCourseRequest true "Fields to update"
// @Success 202 {object} domain.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [put]
func UpdateCourse(courses repository.CourseRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid course id"})
		}

		var req domain.UpdateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		course, err := courses.UpdateCourse(c.Request().Context(), id, &req)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrCourseNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrCourseNotFound.Error()})
			case errors.Is(err, domain.ErrCourseTitleTaken):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrCourseTitleTaken.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update course"})
			}
		}

		return c.JSON(http.StatusAccepted, course)
	}
}

// DeleteCourse godoc
// @Summary Delete the course by ID
// @Description Remove a course and return the deleted record
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} domain.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [delete]
func DeleteCourse(courses repository.CourseRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid course id"})
		}

		course, err := courses.DeleteCourse(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrCourseNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrCourseNotFound.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete course"})
		}

		return c.JSON(http.StatusOK, course)
	}
}
