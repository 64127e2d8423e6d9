package tasks

import (
	"context"
	"errors"
	"strings"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/store"
)

// MsgTaskNotFound is the single answer for a task that is absent or owned by someone else.
const MsgTaskNotFound = "Task not found or access denied"

// TaskService defines the interface for task operations.
// Every method is scoped to userID; another user's task behaves as if it did not exist.
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req TaskRequest) (*Task, error)
	ListTasks(ctx context.Context, userID string, q TaskQuery) ([]*Task, error)
	GetTask(ctx context.Context, id int64, userID string) (*Task, error)
	UpdateTask(ctx context.Context, id int64, userID string, req TaskRequest) (*Task, error)
	DeleteTask(ctx context.Context, id int64, userID string) error
}

type taskServiceImpl struct {
	tasks *store.Owned[*Task]
}

// NewTaskService creates a TaskService backed by PostgreSQL.
func NewTaskService(db store.DBTX) TaskService {
	return &taskServiceImpl{tasks: store.NewOwned(db, Table)}
}

// CreateTask inserts a task for userID and returns the stored row.
func (s *taskServiceImpl) CreateTask(ctx context.Context, userID string, req TaskRequest) (*Task, error) {
	req.applyDefaults()
	query := `INSERT INTO tasks (user_id, title, description, status, priority, due_date) VALUES ($1, $2, $3, $4, $5, $6)` + s.tasks.Returning()
	task, err := s.tasks.QueryOne(ctx, query, userID, req.Title, req.Description, req.Status, req.Priority, req.DueDate)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create task", err)
	}
	return task, nil
}

// ListTasks returns userID's tasks matching q.
func (s *taskServiceImpl) ListTasks(ctx context.Context, userID string, q TaskQuery) ([]*Task, error) {
	f := store.NewFilter()
	if q.Status != "" {
		f.Where("tasks.status = ?", q.Status)
	}
	if q.Priority != "" {
		f.Where("tasks.priority = ?", q.Priority)
	}
	if q.DueDate != nil {
		f.Where("tasks.due_date >= ?", *q.DueDate)
	}
	if q.Search != "" {
		f.Where("tasks.title ILIKE ?", "%"+likeEscaper.Replace(q.Search)+"%")
	}

	items, err := s.tasks.ListOwned(ctx, userID, f, q.Page)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list tasks", err)
	}
	return items, nil
}

// GetTask loads one of userID's tasks.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64, userID string) (*Task, error) {
	task, err := s.tasks.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to get task")
	}
	return task, nil
}

// UpdateTask replaces the editable fields of one of userID's tasks.
// The ownership check and the write are one statement.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, userID string, req TaskRequest) (*Task, error) {
	req.applyDefaults()
	query := `UPDATE tasks SET title = $1, description = $2, status = $3, priority = $4, due_date = $5, updated_at = now() WHERE id = $6 AND user_id = $7` + s.tasks.Returning()
	task, err := s.tasks.QueryOne(ctx, query, req.Title, req.Description, req.Status, req.Priority, req.DueDate, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to update task")
	}
	return task, nil
}

// DeleteTask removes one of userID's tasks. Its sessions go with it.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64, userID string) error {
	if err := s.tasks.DeleteOwned(ctx, id, userID); err != nil {
		return mapErr(err, "failed to delete task")
	}
	return nil
}

func mapErr(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NewNotFoundError(MsgTaskNotFound, nil)
	}
	return apperror.NewDatabaseError(msg, err)
}

// likeEscaper makes user input match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
