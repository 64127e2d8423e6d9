// Package auth, as previously noted, handles authentication.
// This file, `models.go`, defines the User record held by the credential store.
package auth

import "time"

// User represents a registered account.
// PasswordHash is tagged `json:"-"` so it can never be serialized into a response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}
