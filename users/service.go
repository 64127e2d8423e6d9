// Package users, as part of the user profile management module.
// This file, `service.go`, contains the business logic for user profile operations.
package users

import (
	"context"
	"errors"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/auth"
	"github.com/user/taskflow-go/store"
)

// UserFinder is the part of the credential store the profile needs.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*auth.User, error)
}

// UserService provides methods for user profile management.
type UserService struct {
	users UserFinder
}

// NewUserService creates a new UserService.
func NewUserService(users UserFinder) *UserService {
	return &UserService{users: users}
}

// GetUserProfile retrieves the profile of userID.
// A valid token whose user has since disappeared is reported as not found.
func (s *UserService) GetUserProfile(ctx context.Context, userID string) (*UserProfileResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewDatabaseError("Failed to get user profile", err)
	}

	return &UserProfileResponse{User: UserProfile{Name: user.Name, Email: user.Email}}, nil
}
