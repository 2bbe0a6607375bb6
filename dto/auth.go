package dto

import "time"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"player@example.com"`
	Username string `json:"username" validate:"required,min=3,max=32,alphanum" example:"player01"`
	Password string `json:"password" validate:"required,strong_password" example:"Sup3rSecret"`
}

func (r RegisterRequest) Validate() error {
	return validate.Struct(r)
}

type LoginRequest struct {
	EmailOrUsername string `json:"email_or_username" validate:"required" example:"player@example.com"`
	Password        string `json:"password" validate:"required" example:"Sup3rSecret"`
}

func (r LoginRequest) Validate() error {
	return validate.Struct(r)
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Username          string     `json:"username"`
	Role              string     `json:"role"`
	CompletedSessions int        `json:"completed_sessions"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
