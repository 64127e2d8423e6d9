// Package notes is responsible for the note resource: a titled free-text note with
// optional comma-separated tags, owned by one user.
package notes

import (
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/user/taskflow-go/store"
)

// Note represents a row of the notes table.
type Note struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Standup"`
	Content   *string   `json:"content" example:"Discussed the release"`
	Tags      *string   `json:"tags" example:"work,meetings"`
	UserID    string    `json:"userId" example:"6f1c1f5e-2a41-4f3a-9d0e-0c7a5b1e8c11"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var table = store.Table[*Note]{
	Name:    "notes",
	Columns: []string{"notes.id", "notes.title", "notes.content", "notes.tags", "notes.user_id", "notes.created_at", "notes.updated_at"},
	Scan: func(row pgx.Row) (*Note, error) {
		var n Note
		if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Tags, &n.UserID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		return &n, nil
	},
}

// NoteRequest is the body of create and update. Update replaces all three fields.
type NoteRequest struct {
	Title   string  `json:"title" validate:"required" example:"Standup"`
	Content *string `json:"content" example:"Discussed the release"`
	Tags    *string `json:"tags" example:"work,meetings"`
}
