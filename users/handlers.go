// Package users encapsulates all functionality related to user profile management.
// This file, `handlers.go`, is responsible for handling HTTP requests related to users.
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/httpx"
)

// UserHandlers provides HTTP handlers for user profile management.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// RegisterRoutes mounts the profile endpoint. The router must already be behind auth.Gate.
func (h *UserHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleGetUserProfile())
}

// HandleGetUserProfile godoc
// @Summary Get current user's profile
// @Description Returns the name and email of the authenticated user.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.UserProfileResponse "Successfully retrieved user profile"
// @Failure 400 {object} apperror.ErrorResponse "User ID is missing"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 403 {object} apperror.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/user [get]
func (h *UserHandlers) HandleGetUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httpx.UserID(r)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		profile, err := h.service.GetUserProfile(r.Context(), userID)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		apperror.WriteJSON(w, http.StatusOK, profile)
	}
}
