// Package auth, as part of the authentication module.
// This file, `handlers.go`, exposes signup and signin over HTTP.
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/validation"
)

// Handlers wraps the Service to provide HTTP handlers.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the public credential endpoints. They must not sit behind the Gate.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.HandleSignup())
	r.Post("/signin", h.HandleSignin())
}

// HandleSignup godoc
// @Summary User Registration
// @Description Registers a new user. Emails are unique and compared case-insensitively.
// @Tags user
// @Accept json
// @Produce json
// @Param signupBody body auth.SignupRequest true "User registration details"
// @Success 200 {object} apperror.MessageResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 403 {object} apperror.ErrorResponse "User already exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/user/signup [post]
func (h *Handlers) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := validation.DecodeJSON(r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		if _, err := h.service.Signup(r.Context(), req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		apperror.WriteMessage(w, http.StatusOK, msgUserCreated)
	}
}

// HandleSignin godoc
// @Summary User Login
// @Description Checks email and password and returns an identity token for the Authorization header.
// @Tags user
// @Accept json
// @Produce json
// @Param signinBody body auth.SigninRequest true "User login credentials"
// @Success 200 {object} auth.SigninResponse "User logged in successfully"
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 403 {object} apperror.ErrorResponse "Sorry credentials are incorrect"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/user/signin [post]
func (h *Handlers) HandleSignin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SigninRequest
		if err := validation.DecodeJSON(r, &req); err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		token, err := h.service.Signin(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		apperror.WriteJSON(w, http.StatusOK, SigninResponse{Message: msgUserLoggedIn, Token: token})
	}
}
