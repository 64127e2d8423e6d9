package tasks

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/httpx"
	"github.com/user/taskflow-go/validation"
)

const (
	msgNoTasks     = "No tasks found for the given query parameters"
	msgTaskUpdated = "Task updated successfully"
	msgTaskDeleted = "Task deleted successfully"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service TaskService
	lists   httpx.Lists
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service TaskService, lists httpx.Lists) *TaskHandler {
	return &TaskHandler{service: service, lists: lists}
}

// RegisterRoutes registers the task API routes. Mounted at /api/v1/task behind auth.Gate.
func (h *TaskHandler) RegisterRoutes(router chi.Router) {
	router.Post("/new-task", h.createTask)
	router.Get("/", h.listTasks)
	router.Get("/{id}", h.getTask)
	router.Put("/{id}", h.updateTask)
	router.Delete("/{id}", h.deleteTask)
}

// createTask godoc
// @Summary Create a task
// @Description Creates a task owned by the caller. description defaults to "" and priority to "low".
// @Tags task
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body tasks.TaskRequest true "Task to create"
// @Success 201 {object} tasks.Task
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 403 {object} apperror.ErrorResponse "Invalid or expired token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/task/new-task [post]
func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, err := httpx.UserID(r)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	task, err := h.service.CreateTask(r.Context(), userID, req)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusCreated, task)
}

// listTasks godoc
// @Summary List tasks
// @Description Lists the caller's tasks, ordered by id.
// @Tags task
// @Produce json
// @Security BearerAuth
// @Param status query string false "to_do, in_progress or completed"
// @Param priority query string false "low, medium or high"
// @Param dueDate query string false "only tasks due on or after this date"
// @Param search query string false "case-insensitive title substring"
// @Param skip query int false "rows to skip" default(0)
// @Param take query int false "rows to return" default(10)
// @Success 200 {array} tasks.Task
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 404 {object} apperror.ErrorResponse "No tasks found for the given query parameters"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/task [get]
func (h *TaskHandler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := httpx.UserID(r)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	q, err := ParseTaskQuery(r.URL.Query(), h.lists.MaxTake)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	items, err := h.service.ListTasks(r.Context(), userID, q)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	h.lists.Write(w, r, len(items), items, msgNoTasks)
}

// getTask godoc
// @Summary Get a task
// @Tags task
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} tasks.Task
// @Failure 404 {object} apperror.ErrorResponse "Task not found or access denied"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/task/{id} [get]
func (h *TaskHandler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, id, err := httpx.Target(r, MsgTaskNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	task, err := h.service.GetTask(r.Context(), id, userID)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, task)
}

// updateTask godoc
// @Summary Update a task
// @Description Replaces title, description, status, priority and dueDate.
// @Tags task
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param task body tasks.TaskRequest true "New task values"
// @Success 200 {object} apperror.MessageResponse "Task updated successfully"
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 404 {object} apperror.ErrorResponse "Task not found or access denied"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/task/{id} [put]
func (h *TaskHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, id, err := httpx.Target(r, MsgTaskNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if _, err := h.service.UpdateTask(r.Context(), id, userID, req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusOK, msgTaskUpdated)
}

// deleteTask godoc
// @Summary Delete a task
// @Tags task
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} apperror.MessageResponse "Task deleted successfully"
// @Failure 404 {object} apperror.ErrorResponse "Task not found or access denied"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/task/{id} [delete]
func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, id, err := httpx.Target(r, MsgTaskNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteTask(r.Context(), id, userID); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusOK, msgTaskDeleted)
}
