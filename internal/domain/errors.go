package domain

import "errors"

var ErrStudentNotFound = errors.New("student not found")
var ErrCourseNotFound = errors.New("course not found")
var ErrCourseTitleTaken = errors.New("course with the same title already exists")
var ErrEmailTaken = errors.New("student with the same email already exists")
var ErrAlreadyEnrolled = errors.New("student is already signed up for this course")
var ErrInvalidCredentials = errors.New("invalid login details")
var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token has expired")
