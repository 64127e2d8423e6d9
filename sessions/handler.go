package sessions

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/httpx"
	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/validation"
)

const (
	msgNoSessions     = "No sessions found"
	msgSessionCreated = "Session created successfully"
	msgSessionUpdated = "Session updated successfully"
	msgSessionDeleted = "Session deleted successfully"
)

// SessionHandler handles HTTP requests for sessions.
type SessionHandler struct {
	service SessionService
	lists   httpx.Lists
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service SessionService, lists httpx.Lists) *SessionHandler {
	return &SessionHandler{service: service, lists: lists}
}

// RegisterRoutes registers the session API routes. Mounted at /api/v1/session behind auth.Gate.
func (h *SessionHandler) RegisterRoutes(router chi.Router) {
	router.Post("/new-session", h.createSession)
	router.Get("/", h.listSessions)
	router.Get("/{id}", h.getSession)
	router.Put("/{id}", h.endSession)
	router.Delete("/{id}", h.deleteSession)
}

// createSession godoc
// @Summary Start a session
// @Description Starts a timing session on one of the caller's tasks.
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body sessions.SessionRequest true "Task and start time"
// @Success 201 {object} sessions.CreateSessionResponse
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 404 {object} apperror.ErrorResponse "Task not found or user not authorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/session/new-session [post]
func (h *SessionHandler) createSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, err := httpx.UserID(r)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	session, err := h.service.CreateSession(r.Context(), userID, req)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusCreated, CreateSessionResponse{Message: msgSessionCreated, Session: session})
}

// listSessions godoc
// @Summary List sessions
// @Description Lists the caller's sessions with their task embedded, ordered by id.
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param skip query int false "rows to skip" default(0)
// @Param take query int false "rows to return" default(10)
// @Success 200 {array} sessions.Session
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 404 {object} apperror.ErrorResponse "No sessions found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/session [get]
func (h *SessionHandler) listSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.UserID(r)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	page, err := store.ParsePage(r.URL.Query(), h.lists.MaxTake)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	items, err := h.service.ListSessions(r.Context(), userID, page)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	h.lists.Write(w, r, len(items), items, msgNoSessions)
}

// getSession godoc
// @Summary Get a session
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} sessions.Session
// @Failure 404 {object} apperror.ErrorResponse "Session not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/session/{id} [get]
func (h *SessionHandler) getSession(w http.ResponseWriter, r *http.Request) {
	userID, id, err := httpx.Target(r, MsgSessionNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	session, err := h.service.GetSession(r.Context(), id, userID)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, session)
}

// endSession godoc
// @Summary End a session
// @Description Sets endTime and computes totalTime in whole seconds.
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param session body sessions.EndSessionRequest true "End time"
// @Success 200 {object} sessions.UpdateSessionResponse
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 404 {object} apperror.ErrorResponse "Session not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/session/{id} [put]
func (h *SessionHandler) endSession(w http.ResponseWriter, r *http.Request) {
	var req EndSessionRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, id, err := httpx.Target(r, MsgSessionNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	session, err := h.service.EndSession(r.Context(), id, userID, *req.EndTime)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, UpdateSessionResponse{Message: msgSessionUpdated, UpdatedSession: session})
}

// deleteSession godoc
// @Summary Delete a session
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} apperror.MessageResponse "Session deleted successfully"
// @Failure 404 {object} apperror.ErrorResponse "Session not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/session/{id} [delete]
func (h *SessionHandler) deleteSession(w http.ResponseWriter, r *http.Request) {
	userID, id, err := httpx.Target(r, MsgSessionNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteSession(r.Context(), id, userID); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusOK, msgSessionDeleted)
}
