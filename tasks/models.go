// Package tasks is responsible for the task resource: a titled to-do item with a status,
// a priority and an optional due date, always owned by exactly one user.
package tasks

import (
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/user/taskflow-go/store"
)

// Task statuses.
const (
	StatusToDo       = "to_do"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a row of the tasks table.
type Task struct {
	ID          int64      `json:"id" example:"1"`
	Title       string     `json:"title" example:"T1"`
	Description string     `json:"description" example:""`
	Status      string     `json:"status" example:"to_do"`
	Priority    string     `json:"priority" example:"low"`
	DueDate     *time.Time `json:"dueDate" example:"2024-06-01T00:00:00Z"`
	UserID      string     `json:"userId" example:"6f1c1f5e-2a41-4f3a-9d0e-0c7a5b1e8c11"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Columns lists the task columns in ScanTargets order, qualified so they survive a join.
var Columns = []string{
	"tasks.id", "tasks.title", "tasks.description", "tasks.status", "tasks.priority",
	"tasks.due_date", "tasks.user_id", "tasks.created_at", "tasks.updated_at",
}

// ScanTargets returns pointers to t's fields in Columns order.
func (t *Task) ScanTargets() []any {
	return []any{&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.UserID, &t.CreatedAt, &t.UpdatedAt}
}

func scanTask(row pgx.Row) (*Task, error) {
	var t Task
	if err := row.Scan(t.ScanTargets()...); err != nil {
		return nil, err
	}
	return &t, nil
}

// Table maps Task onto the tasks table.
var Table = store.Table[*Task]{
	Name:    "tasks",
	Columns: Columns,
	Scan:    scanTask,
}
