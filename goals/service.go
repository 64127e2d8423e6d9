package goals

import (
	"context"
	"errors"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/store"
)

// MsgGoalNotFound is the single answer for a goal that is absent or owned by someone else.
const MsgGoalNotFound = "Goal not found or access denied"

// GoalService defines the interface for goal operations, all scoped to userID.
type GoalService interface {
	CreateGoal(ctx context.Context, userID string, req GoalRequest) (*Goal, error)
	ListGoals(ctx context.Context, userID string, page store.Page) ([]*Goal, error)
	GetGoal(ctx context.Context, id int64, userID string) (*Goal, error)
	UpdateGoal(ctx context.Context, id int64, userID string, req GoalRequest) (*Goal, error)
	UpdateProgress(ctx context.Context, id int64, userID string, progress int) (*Goal, error)
	DeleteGoal(ctx context.Context, id int64, userID string) error
}

type goalServiceImpl struct {
	goals *store.Owned[*Goal]
}

// NewGoalService creates a GoalService backed by PostgreSQL.
func NewGoalService(db store.DBTX) GoalService {
	return &goalServiceImpl{goals: store.NewOwned(db, table)}
}

func (s *goalServiceImpl) CreateGoal(ctx context.Context, userID string, req GoalRequest) (*Goal, error) {
	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}
	query := `INSERT INTO goals (user_id, title, description, target_date, progress) VALUES ($1, $2, $3, $4, $5)` + s.goals.Returning()
	goal, err := s.goals.QueryOne(ctx, query, userID, req.Title, req.Description, req.TargetDate, progress)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create goal", err)
	}
	return goal, nil
}

func (s *goalServiceImpl) ListGoals(ctx context.Context, userID string, page store.Page) ([]*Goal, error) {
	items, err := s.goals.ListOwned(ctx, userID, nil, page)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list goals", err)
	}
	return items, nil
}

func (s *goalServiceImpl) GetGoal(ctx context.Context, id int64, userID string) (*Goal, error) {
	goal, err := s.goals.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to get goal")
	}
	return goal, nil
}

func (s *goalServiceImpl) UpdateGoal(ctx context.Context, id int64, userID string, req GoalRequest) (*Goal, error) {
	query := `UPDATE goals SET title = $1, description = $2, target_date = $3, progress = COALESCE($4, progress), updated_at = now() WHERE id = $5 AND user_id = $6` + s.goals.Returning()
	goal, err := s.goals.QueryOne(ctx, query, req.Title, req.Description, req.TargetDate, req.Progress, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to update goal")
	}
	return goal, nil
}

func (s *goalServiceImpl) UpdateProgress(ctx context.Context, id int64, userID string, progress int) (*Goal, error) {
	query := `UPDATE goals SET progress = $1, updated_at = now() WHERE id = $2 AND user_id = $3` + s.goals.Returning()
	goal, err := s.goals.QueryOne(ctx, query, progress, id, userID)
	if err != nil {
		return nil, mapErr(err, "failed to update goal progress")
	}
	return goal, nil
}

func (s *goalServiceImpl) DeleteGoal(ctx context.Context, id int64, userID string) error {
	if err := s.goals.DeleteOwned(ctx, id, userID); err != nil {
		return mapErr(err, "failed to delete goal")
	}
	return nil
}

func mapErr(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperror.NewNotFoundError(MsgGoalNotFound, nil)
	}
	return apperror.NewDatabaseError(msg, err)
}
