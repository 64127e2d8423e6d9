// Package users, as part of the user profile management module.
// This file, `dto.go`, defines the response bodies of the profile endpoint.
package users

// UserProfile is the public view of a user. It never includes the id or password hash.
// @Description User profile information
type UserProfile struct {
	// example: Ann
	Name string `json:"name" example:"Ann"`
	// example: a@x.com
	Email string `json:"email" example:"a@x.com"`
}

// UserProfileResponse wraps the profile as `{"user": {...}}`.
type UserProfileResponse struct {
	User UserProfile `json:"user"`
}
