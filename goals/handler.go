package goals

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/httpx"
	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/validation"
)

const (
	msgNoGoals         = "No goals found for the user"
	msgGoalCreated     = "Goal created successfully"
	msgGoalUpdated     = "Goal updated successfully"
	msgGoalDeleted     = "Goal deleted successfully"
	msgProgressUpdated = "Goal progress updated successfully"
)

// GoalHandler handles HTTP requests for goals.
type GoalHandler struct {
	service GoalService
	lists   httpx.Lists
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(service GoalService, lists httpx.Lists) *GoalHandler {
	return &GoalHandler{service: service, lists: lists}
}

// RegisterRoutes registers the goal API routes. Mounted at /api/v1/goal behind auth.Gate.
func (h *GoalHandler) RegisterRoutes(router chi.Router) {
	router.Post("/new-goal", h.createGoal)
	router.Get("/", h.listGoals)
	router.Get("/{id}", h.getGoal)
	router.Put("/{id}", h.updateGoal)
	router.Delete("/{id}", h.deleteGoal)
	router.Put("/{id}/progress", h.updateProgress)
}

// createGoal godoc
// @Summary Create a goal
// @Tags goal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goal body goals.GoalRequest true "Goal to create"
// @Success 201 {object} apperror.MessageResponse "Goal created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/goal/new-goal [post]
func (h *GoalHandler) createGoal(w http.ResponseWriter, r *http.Request) {
	var req GoalRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, err := httpx.UserID(r)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if _, err := h.service.CreateGoal(r.Context(), userID, req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusCreated, msgGoalCreated)
}

// listGoals godoc
// @Summary List goals
// @Tags goal
// @Produce json
// @Security BearerAuth
// @Param skip query int false "rows to skip" default(0)
// @Param take query int false "rows to return" default(10)
// @Success 200 {array} goals.Goal
// @Failure 404 {object} apperror.ErrorResponse "No goals found for the user"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/goal [get]
func (h *GoalHandler) listGoals(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.service.ListGoals(r.Context(), userID, page)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	h.lists.Write(w, r, len(items), items, msgNoGoals)
}

// getGoal godoc
// @Summary Get a goal
// @Tags goal
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Success 200 {object} goals.Goal
// @Failure 404 {object} apperror.ErrorResponse "Goal not found or access denied"
// @Router /api/v1/goal/{id} [get]
func (h *GoalHandler) getGoal(w http.ResponseWriter, r *http.Request) {
	userID, id, err := httpx.Target(r, MsgGoalNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	goal, err := h.service.GetGoal(r.Context(), id, userID)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, goal)
}

// updateGoal godoc
// @Summary Update a goal
// @Tags goal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Param goal body goals.GoalRequest true "New goal values"
// @Success 200 {object} apperror.MessageResponse "Goal updated successfully"
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 404 {object} apperror.ErrorResponse "Goal not found or access denied"
// @Router /api/v1/goal/{id} [put]
func (h *GoalHandler) updateGoal(w http.ResponseWriter, r *http.Request) {
	var req GoalRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, id, err := httpx.Target(r, MsgGoalNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if _, err := h.service.UpdateGoal(r.Context(), id, userID, req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusOK, msgGoalUpdated)
}

// updateProgress godoc
// @Summary Update goal progress
// @Description Sets progress to a value between 0 and 100.
// @Tags goal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Param progress body goals.ProgressRequest true "New progress"
// @Success 200 {object} apperror.MessageResponse "Goal progress updated successfully"
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 404 {object} apperror.ErrorResponse "Goal not found or access denied"
// @Router /api/v1/goal/{id}/progress [put]
func (h *GoalHandler) updateProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, id, err := httpx.Target(r, MsgGoalNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if _, err := h.service.UpdateProgress(r.Context(), id, userID, *req.Progress); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusOK, msgProgressUpdated)
}

// deleteGoal godoc
// @Summary Delete a goal
// @Tags goal
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Success 200 {object} apperror.MessageResponse "Goal deleted successfully"
// @Failure 404 {object} apperror.ErrorResponse "Goal not found or access denied"
// @Router /api/v1/goal/{id} [delete]
func (h *GoalHandler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, id, err := httpx.Target(r, MsgGoalNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteGoal(r.Context(), id, userID); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusOK, msgGoalDeleted)
}
