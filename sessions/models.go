// Package sessions is responsible for task-timing sessions: a start and (once ended) an end
// time recorded against one of the caller's own tasks.
package sessions

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/tasks"
)

// Session represents a row of the sessions table. Task is filled on reads only.
type Session struct {
	ID        int64       `json:"id" example:"1"`
	UserID    string      `json:"userId" example:"6f1c1f5e-2a41-4f3a-9d0e-0c7a5b1e8c11"`
	TaskID    int64       `json:"taskId" example:"3"`
	StartTime time.Time   `json:"startTime" example:"2024-05-01T09:00:00Z"`
	EndTime   *time.Time  `json:"endTime" example:"2024-05-01T09:25:30Z"`
	TotalTime *int64      `json:"totalTime" example:"1530"`
	Task      *tasks.Task `json:"task,omitempty"`
}

var sessionColumns = []string{
	"sessions.id", "sessions.user_id", "sessions.task_id",
	"sessions.start_time", "sessions.end_time", "sessions.total_time",
}

func (s *Session) scanTargets() []any {
	return []any{&s.ID, &s.UserID, &s.TaskID, &s.StartTime, &s.EndTime, &s.TotalTime}
}

// scanSession reads a bare session row (sessionColumns only).
func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	if err := row.Scan(s.scanTargets()...); err != nil {
		return nil, err
	}
	return &s, nil
}

// table reads sessions together with their task.
var table = store.Table[*Session]{
	Name:    "sessions",
	Columns: append(append([]string{}, sessionColumns...), tasks.Columns...),
	Join:    "JOIN tasks ON tasks.id = sessions.task_id",
	Scan: func(row pgx.Row) (*Session, error) {
		var s Session
		var t tasks.Task
		if err := row.Scan(append(s.scanTargets(), t.ScanTargets()...)...); err != nil {
			return nil, err
		}
		s.Task = &t
		return &s, nil
	},
}

var returningSession = " RETURNING " + strings.Join(sessionColumns, ", ")

// SessionRequest starts a session on one of the caller's tasks.
type SessionRequest struct {
	TaskID    int64      `json:"taskId" validate:"required,gt=0" example:"3"`
	StartTime *time.Time `json:"startTime" validate:"required" example:"2024-05-01T09:00:00Z"`
}

// EndSessionRequest closes a session.
type EndSessionRequest struct {
	EndTime *time.Time `json:"endTime" validate:"required" example:"2024-05-01T09:25:30Z"`
}

// CreateSessionResponse is returned by the create endpoint.
type CreateSessionResponse struct {
	Message string   `json:"message" example:"Session created successfully"`
	Session *Session `json:"session"`
}

// UpdateSessionResponse is returned by the update endpoint.
type UpdateSessionResponse struct {
	Message        string   `json:"message" example:"Session updated successfully"`
	UpdatedSession *Session `json:"updatedSession"`
}
