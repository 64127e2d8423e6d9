// Package auth provides authentication and authorization functionality
// This file, `dto.go` (Data Transfer Object), defines the request and response bodies
// of the signup and signin endpoints. `validate` tags are enforced by the validation package;
// `example` tags feed the Swagger documentation.
package auth

import "strings"

// SignupRequest represents the registration request payload.
// bcrypt only looks at the first 72 bytes, so longer passwords are refused outright.
// Email and name are checked after Normalize, so blank padding cannot pass min.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,min=5,email" example:"a@x.com"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"secret1"`
	Name     string `json:"name" validate:"required,min=3" example:"Ann"`
}

// Normalize puts the email in its stored form and trims the name.
func (r *SignupRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	r.Name = strings.TrimSpace(r.Name)
}

// SigninRequest represents the login request payload.
type SigninRequest struct {
	Email    string `json:"email" validate:"required" example:"a@x.com"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

// Normalize puts the email in its stored form.
func (r *SigninRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

// SigninResponse is returned on successful signin.
// The token goes verbatim into the Authorization header of later requests.
type SigninResponse struct {
	Message string `json:"message" example:"User logged in successfully"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
