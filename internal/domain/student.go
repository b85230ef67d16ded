package domain

import "time"

type Student struct {
	ID           int       `db:"id" json:"id"`
	FullName     string    `db:"fullname" json:"fullname"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type SignupRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateStudentRequest carries a partial update; nil fields keep their stored value.
type UpdateStudentRequest struct {
	FullName *string `json:"fullname"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	TokenPair
	Student Student `json:"student"`
}
