package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/validation"
)

const (
	// MsgSessionNotFound is the single answer for a session that is absent or owned by someone else.
	MsgSessionNotFound = "Session not found"
	// MsgTaskNotOwned is returned when a session is started on a task the caller does not own.
	MsgTaskNotOwned = "Task not found or user not authorized"
)

// SessionService defines the interface for session operations, all scoped to userID.
type SessionService interface {
	CreateSession(ctx context.Context, userID string, req SessionRequest) (*Session, error)
	ListSessions(ctx context.Context, userID string, page store.Page) ([]*Session, error)
	GetSession(ctx context.Context, id int64, userID string) (*Session, error)
	EndSession(ctx context.Context, id int64, userID string, end time.Time) (*Session, error)
	DeleteSession(ctx context.Context, id int64, userID string) error
}

type sessionServiceImpl struct {
	db       store.DBTX
	sessions *store.Owned[*Session]
}

// NewSessionService creates a SessionService backed by PostgreSQL.
func NewSessionService(db store.DBTX) SessionService {
	return &sessionServiceImpl{db: db, sessions: store.NewOwned(db, table)}
}

// CreateSession inserts a session only if the task belongs to userID; the check and
// the insert are one statement.
func (s *sessionServiceImpl) CreateSession(ctx context.Context, userID string, req SessionRequest) (*Session, error) {
	query := `INSERT INTO sessions (user_id, task_id, start_time) SELECT $1, tasks.id, $3 FROM tasks WHERE tasks.id = $2 AND tasks.user_id = $1` + returningSession
	session, err := store.QueryOne(ctx, s.db, scanSession, query, userID, req.TaskID, *req.StartTime)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NewNotFoundError(MsgTaskNotOwned, nil)
		}
		return nil, apperror.NewDatabaseError("failed to create session", err)
	}
	return session, nil
}

func (s *sessionServiceImpl) ListSessions(ctx context.Context, userID string, page store.Page) ([]*Session, error) {
	items, err := s.sessions.ListOwned(ctx, userID, nil, page)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list sessions", err)
	}
	return items, nil
}

func (s *sessionServiceImpl) GetSession(ctx context.Context, id int64, userID string) (*Session, error) {
	session, err := s.sessions.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to get session")
	}
	return session, nil
}

// EndSession records end and the whole seconds elapsed since the start.
// An end before the start is a validation error and nothing is written.
func (s *sessionServiceImpl) EndSession(ctx context.Context, id int64, userID string, end time.Time) (*Session, error) {
	current, err := s.sessions.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to get session")
	}
	if end.Before(current.StartTime) {
		return nil, apperror.NewValidationError(validation.IncorrectInputs, []apperror.FieldError{
			{Field: "endTime", Message: "endTime must not be before startTime"},
		})
	}
	total := int64(end.Sub(current.StartTime) / time.Second)

	query := `UPDATE sessions SET end_time = $1, total_time = $2 WHERE id = $3 AND user_id = $4` + returningSession
	updated, err := store.QueryOne(ctx, s.db, scanSession, query, end, total, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to update session")
	}
	return updated, nil
}

func (s *sessionServiceImpl) DeleteSession(ctx context.Context, id int64, userID string) error {
	if err := s.sessions.DeleteOwned(ctx, id, userID); err != nil {
		return mapErr(err, "failed to delete session")
	}
	return nil
}

func mapErr(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NewNotFoundError(MsgSessionNotFound, nil)
	}
	return apperror.NewDatabaseError(msg, err)
}
