package notes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/httpx"
	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/validation"
)

const (
	msgNoNotes     = "No notes found"
	msgNoteCreated = "Notes created successfully"
	msgNoteUpdated = "Notes updated successfully"
	msgNoteDeleted = "Notes deleted successfully"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	service NoteService
	lists   httpx.Lists
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(service NoteService, lists httpx.Lists) *NoteHandler {
	return &NoteHandler{service: service, lists: lists}
}

// RegisterRoutes registers the note API routes. Mounted at /api/v1/notes behind auth.Gate.
func (h *NoteHandler) RegisterRoutes(router chi.Router) {
	router.Post("/new-note", h.createNote)
	router.Get("/", h.listNotes)
	router.Get("/{id}", h.getNote)
	router.Put("/{id}", h.updateNote)
	router.Delete("/{id}", h.deleteNote)
}

// createNote godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body notes.NoteRequest true "Note to create"
// @Success 201 {object} apperror.MessageResponse "Notes created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Router /api/v1/notes/new-note [post]
func (h *NoteHandler) createNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, err := httpx.UserID(r)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if _, err := h.service.CreateNote(r.Context(), userID, req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusCreated, msgNoteCreated)
}

// listNotes godoc
// @Summary List notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param skip query int false "rows to skip" default(0)
// @Param take query int false "rows to return" default(10)
// @Success 200 {array} notes.Note
// @Failure 404 {object} apperror.ErrorResponse "No notes found"
// @Router /api/v1/notes [get]
func (h *NoteHandler) listNotes(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.service.ListNotes(r.Context(), userID, page)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	h.lists.Write(w, r, len(items), items, msgNoNotes)
}

// getNote godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} notes.Note
// @Failure 404 {object} apperror.ErrorResponse "Notes not found or access denied"
// @Router /api/v1/notes/{id} [get]
func (h *NoteHandler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, id, err := httpx.Target(r, MsgNoteNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	note, err := h.service.GetNote(r.Context(), id, userID)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, note)
}

// updateNote godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param note body notes.NoteRequest true "New note values"
// @Success 200 {object} apperror.MessageResponse "Notes updated successfully"
// @Failure 400 {object} apperror.ErrorResponse "Incorrect inputs"
// @Failure 404 {object} apperror.ErrorResponse "Notes not found or access denied"
// @Router /api/v1/notes/{id} [put]
func (h *NoteHandler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	userID, id, err := httpx.Target(r, MsgNoteNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if _, err := h.service.UpdateNote(r.Context(), id, userID, req); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusOK, msgNoteUpdated)
}

// deleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} apperror.MessageResponse "Notes deleted successfully"
// @Failure 404 {object} apperror.ErrorResponse "Notes not found or access denied"
// @Router /api/v1/notes/{id} [delete]
func (h *NoteHandler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, id, err := httpx.Target(r, MsgNoteNotFound)
	if err != nil {
		apperror.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteNote(r.Context(), id, userID); err != nil {
		apperror.WriteError(w, r, err)
		return
	}
	apperror.WriteMessage(w, http.StatusOK, msgNoteDeleted)
}
