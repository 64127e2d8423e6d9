// Package auth, as part of the authentication module.
// This file, `service.go`, holds the signup and signin business logic.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/validation"
)

// Service implements signup and signin.
type Service struct {
	users  UserRepository
	hasher *PasswordHasher
	tokens *TokenService
}

// NewService creates a new Service.
func NewService(users UserRepository, hasher *PasswordHasher, tokens *TokenService) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens}
}

// Signup registers a new user. A second signup with the same email is a ConflictError.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.NewValidationError(validation.IncorrectInputs, []apperror.FieldError{
				{Field: "password", Message: "password must be at most 72 bytes"},
			})
		}
		return nil, apperror.NewInternalError("Internal server error", err)
	}

	user, err := s.users.Create(ctx, req.Email, digest, req.Name)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperror.NewConflictError(msgUserExists, err)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	slog.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return user, nil
}

// Signin checks the credentials and returns a fresh token.
// Unknown email and wrong password produce the same ForbiddenError after the same bcrypt work.
func (s *Service) Signin(ctx context.Context, req SigninRequest) (string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", apperror.NewDatabaseError("failed to load user", err)
	}

	var ok bool
	if user == nil {
		ok = s.hasher.VerifyNone(req.Password)
	} else {
		ok = s.hasher.Verify(req.Password, user.PasswordHash)
	}
	if !ok {
		return "", apperror.NewForbiddenError(msgBadCredentials, nil)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", apperror.NewInternalError("Internal server error", err)
	}
	return token, nil
}
