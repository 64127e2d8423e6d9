// Package goals is responsible for the goal resource: a target with an optional date and
// a 0..100 progress counter, owned by one user.
package goals

import (
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/user/taskflow-go/store"
)

// Goal represents a row of the goals table.
type Goal struct {
	ID          int64      `json:"id" example:"1"`
	Title       string     `json:"title" example:"Run a marathon"`
	Description *string    `json:"description" example:"Sub 4 hours"`
	TargetDate  *time.Time `json:"targetDate" example:"2025-04-01T00:00:00Z"`
	Progress    int        `json:"progress" example:"40"`
	UserID      string     `json:"userId" example:"6f1c1f5e-2a41-4f3a-9d0e-0c7a5b1e8c11"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

var columns = []string{
	"goals.id", "goals.title", "goals.description", "goals.target_date", "goals.progress",
	"goals.user_id", "goals.created_at", "goals.updated_at",
}

var table = store.Table[*Goal]{
	Name:    "goals",
	Columns: columns,
	Scan: func(row pgx.Row) (*Goal, error) {
		var g Goal
		if err := row.Scan(&g.ID, &g.Title, &g.Description, &g.TargetDate, &g.Progress, &g.UserID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		return &g, nil
	},
}

// GoalRequest is the body of create and update.
// On update an omitted progress keeps the stored value; the other optional fields are cleared.
type GoalRequest struct {
	Title       string     `json:"title" validate:"required" example:"Run a marathon"`
	Description *string    `json:"description" example:"Sub 4 hours"`
	TargetDate  *time.Time `json:"targetDate" example:"2025-04-01T00:00:00Z"`
	Progress    *int       `json:"progress" validate:"omitempty,min=0,max=100" example:"0"`
}

// ProgressRequest is the body of the progress endpoint.
type ProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100" example:"75"`
}
