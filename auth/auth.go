// Package auth contains authentication and authorization logic.
// It is made of four cooperating pieces:
//   - PasswordHasher (password.go): bcrypt hashing and constant-time verification.
//   - TokenService (token.go): issues and verifies HS256 identity tokens carrying the user id.
//   - Gate (middleware.go): HTTP middleware that turns the Authorization header into a user id
//     on the request context, before any resource handler runs.
//   - Service and Handlers (service.go, handlers.go): signup and signin over the credential
//     store in repository.go.
package auth

import "errors"

// Token verification failures. TokenService.Verify returns exactly one of these.
var (
	ErrTokenInvalid      = errors.New("token is invalid")
	ErrTokenExpired      = errors.New("token has expired")
	ErrSignatureMismatch = errors.New("token signature does not match")
)

// Credential store failures.
var (
	ErrEmailTaken = errors.New("email already registered")
)

// Messages shared by the service and handlers.
const (
	msgUserExists       = "User already exists"
	msgBadCredentials   = "Sorry credentials are incorrect"
	msgUserCreated      = "User created successfully"
	msgUserLoggedIn     = "User logged in successfully"
	msgUnauthorized     = "Unauthorized"
	msgInvalidOrExpired = "Invalid or expired token"
)

const (
	// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
	pgUniqueViolation    = "23505"
	usersEmailConstraint = "users_email_key"
)
