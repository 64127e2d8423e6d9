package notes

import (
	"context"
	"errors"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/store"
)

// MsgNoteNotFound is the single answer for a note that is absent or owned by someone else.
const MsgNoteNotFound = "Notes not found or access denied"

// NoteService defines the interface for note operations, all scoped to userID.
type NoteService interface {
	CreateNote(ctx context.Context, userID string, req NoteRequest) (*Note, error)
	ListNotes(ctx context.Context, userID string, page store.Page) ([]*Note, error)
	GetNote(ctx context.Context, id int64, userID string) (*Note, error)
	UpdateNote(ctx context.Context, id int64, userID string, req NoteRequest) (*Note, error)
	DeleteNote(ctx context.Context, id int64, userID string) error
}

type noteServiceImpl struct {
	notes *store.Owned[*Note]
}

// NewNoteService creates a NoteService backed by PostgreSQL.
func NewNoteService(db store.DBTX) NoteService {
	return &noteServiceImpl{notes: store.NewOwned(db, table)}
}

func (s *noteServiceImpl) CreateNote(ctx context.Context, userID string, req NoteRequest) (*Note, error) {
	query := `INSERT INTO notes (user_id, title, content, tags) VALUES ($1, $2, $3, $4)` + s.notes.Returning()
	note, err := s.notes.QueryOne(ctx, query, userID, req.Title, req.Content, req.Tags)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create note", err)
	}
	return note, nil
}

func (s *noteServiceImpl) ListNotes(ctx context.Context, userID string, page store.Page) ([]*Note, error) {
	items, err := s.notes.ListOwned(ctx, userID, nil, page)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list notes", err)
	}
	return items, nil
}

func (s *noteServiceImpl) GetNote(ctx context.Context, id int64, userID string) (*Note, error) {
	note, err := s.notes.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to get note")
	}
	return note, nil
}

func (s *noteServiceImpl) UpdateNote(ctx context.Context, id int64, userID string, req NoteRequest) (*Note, error) {
	query := `UPDATE notes SET title = $1, content = $2, tags = $3, updated_at = now() WHERE id = $4 AND user_id = $5` + s.notes.Returning()
	note, err := s.notes.QueryOne(ctx, query, req.Title, req.Content, req.Tags, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to update note")
	}
	return note, nil
}

func (s *noteServiceImpl) DeleteNote(ctx context.Context, id int64, userID string) error {
	if err := s.notes.DeleteOwned(ctx, id, userID); err != nil {
		return mapErr(err, "failed to delete note")
	}
	return nil
}

func mapErr(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NewNotFoundError(MsgNoteNotFound, nil)
	}
	return apperror.NewDatabaseError(msg, err)
}
