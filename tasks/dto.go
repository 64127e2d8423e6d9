package tasks

import (
	"net/url"
	"time"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/validation"
)

// TaskRequest is the body of both create and update. Update replaces every field,
// so omitted optional fields fall back to their defaults there too.
type TaskRequest struct {
	Title       string     `json:"title" validate:"required" example:"T1"`
	Description string     `json:"description" example:"Write the report"`
	Status      string     `json:"status" validate:"required,oneof=to_do in_progress completed" example:"to_do"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high" example:"low"`
	DueDate     *time.Time `json:"dueDate" example:"2024-06-01T00:00:00Z"`
}

func (req *TaskRequest) applyDefaults() {
	if req.Priority == "" {
		req.Priority = PriorityLow
	}
}

// TaskQuery holds the filters of the task list.
type TaskQuery struct {
	Status   string `json:"status" validate:"omitempty,oneof=to_do in_progress completed"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
	// DueDate keeps tasks due on or after it.
	DueDate *time.Time `json:"dueDate"`
	// Search is a case-insensitive substring of the title.
	Search string `json:"search"`
	Page   store.Page
}

// dateLayouts are tried in order for the dueDate query parameter.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseTaskQuery reads and validates the list filters from the query string.
func ParseTaskQuery(q url.Values, maxTake int) (TaskQuery, error) {
	page, err := store.ParsePage(q, maxTake)
	if err != nil {
		return TaskQuery{}, err
	}

	query := TaskQuery{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Search:   q.Get("search"),
		Page:     page,
	}

	if raw := q.Get("dueDate"); raw != "" {
		due, ok := parseDate(raw)
		if !ok {
			return TaskQuery{}, apperror.NewValidationError(validation.IncorrectInputs, []apperror.FieldError{
				{Field: "dueDate", Message: "dueDate must be an RFC 3339 timestamp or a YYYY-MM-DD date"},
			})
		}
		query.DueDate = &due
	}

	if err := validation.Struct(&query); err != nil {
		return TaskQuery{}, err
	}
	return query, nil
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
