package sessions

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/tasks"
)

var (
	started = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	selectSessions = "SELECT " + strings.Join(table.Columns, ", ") +
		" FROM sessions JOIN tasks ON tasks.id = sessions.task_id"
	sessionRowColumns = []string{"id", "user_id", "task_id", "start_time", "end_time", "total_time"}
	joinedRowColumns  = append(append([]string{}, sessionRowColumns...),
		"t_id", "title", "description", "status", "priority", "due_date", "t_user_id", "created_at", "updated_at")
)

func newMockService(t *testing.T) (SessionService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewSessionService(mock), mock
}

func openSessionRow(id, taskID int64) *pgxmock.Rows {
	return pgxmock.NewRows(sessionRowColumns).
		AddRow(id, "u-1", taskID, started, (*time.Time)(nil), (*int64)(nil))
}

func joinedRow(rows *pgxmock.Rows, id, taskID int64) *pgxmock.Rows {
	due := started.Add(24 * time.Hour)
	return rows.AddRow(id, "u-1", taskID, started, (*time.Time)(nil), (*int64)(nil),
		taskID, "T1", "", tasks.StatusToDo, tasks.PriorityLow, &due, "u-1", started, started)
}

func TestCreateSession_OwnedTask(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO sessions (user_id, task_id, start_time) SELECT $1, tasks.id, $3 FROM tasks WHERE tasks.id = $2 AND tasks.user_id = $1"+returningSession)).
		WithArgs("u-1", int64(3), started).
		WillReturnRows(openSessionRow(1, 3))

	session, err := svc.CreateSession(context.Background(), "u-1", SessionRequest{TaskID: 3, StartTime: &started})
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.ID)
	assert.Equal(t, int64(3), session.TaskID)
	assert.Nil(t, session.EndTime)
	assert.Nil(t, session.TotalTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSession_ForeignTask(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs("u-2", int64(3), started).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.CreateSession(context.Background(), "u-2", SessionRequest{TaskID: 3, StartTime: &started})
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
	assert.Equal(t, MsgTaskNotOwned, appErr.Message)
}

func TestListSessions_EmbedsTask(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectSessions+" WHERE sessions.user_id = $1 ORDER BY sessions.id LIMIT $2 OFFSET $3")).
		WithArgs("u-1", 5, 0).
		WillReturnRows(joinedRow(joinedRow(pgxmock.NewRows(joinedRowColumns), 1, 3), 2, 4))

	items, err := svc.ListSessions(context.Background(), "u-1", store.Page{Take: 5})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[1].Task)
	assert.Equal(t, int64(4), items[1].Task.ID)
	assert.Equal(t, "T1", items[1].Task.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSession_NotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectSessions+" WHERE sessions.id = $1 AND sessions.user_id = $2")).
		WithArgs(int64(9), "u-2").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetSession(context.Background(), 9, "u-2")
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, MsgSessionNotFound, appErr.Message)
}

func TestEndSession_TotalTimeInWholeSeconds(t *testing.T) {
	svc, mock := newMockService(t)
	end := started.Add(25*time.Minute + 30*time.Second + 900*time.Millisecond)
	total := int64(1530)

	mock.ExpectQuery(regexp.QuoteMeta(selectSessions+" WHERE sessions.id = $1 AND sessions.user_id = $2")).
		WithArgs(int64(1), "u-1").
		WillReturnRows(joinedRow(pgxmock.NewRows(joinedRowColumns), 1, 3))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE sessions SET end_time = $1, total_time = $2 WHERE id = $3 AND user_id = $4"+returningSession)).
		WithArgs(end, total, int64(1), "u-1").
		WillReturnRows(pgxmock.NewRows(sessionRowColumns).AddRow(int64(1), "u-1", int64(3), started, &end, &total))

	session, err := svc.EndSession(context.Background(), 1, "u-1", end)
	require.NoError(t, err)
	require.NotNil(t, session.TotalTime)
	assert.Equal(t, int64(1530), *session.TotalTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndSession_BeforeStart(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectSessions)).
		WithArgs(int64(1), "u-1").
		WillReturnRows(joinedRow(pgxmock.NewRows(joinedRowColumns), 1, 3))

	_, err := svc.EndSession(context.Background(), 1, "u-1", started.Add(-time.Second))
	assert.True(t, apperror.IsValidationError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndSession_AtStartIsZero(t *testing.T) {
	svc, mock := newMockService(t)
	zero := int64(0)

	mock.ExpectQuery(regexp.QuoteMeta(selectSessions)).
		WithArgs(int64(1), "u-1").
		WillReturnRows(joinedRow(pgxmock.NewRows(joinedRowColumns), 1, 3))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE sessions")).
		WithArgs(started, zero, int64(1), "u-1").
		WillReturnRows(pgxmock.NewRows(sessionRowColumns).AddRow(int64(1), "u-1", int64(3), started, &started, &zero))

	session, err := svc.EndSession(context.Background(), 1, "u-1", started)
	require.NoError(t, err)
	assert.Equal(t, int64(0), *session.TotalTime)
}

func TestDeleteSession_Twice(t *testing.T) {
	svc, mock := newMockService(t)
	q := regexp.QuoteMeta("DELETE FROM sessions WHERE id = $1 AND user_id = $2")

	mock.ExpectExec(q).WithArgs(int64(1), "u-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(q).WithArgs(int64(1), "u-1").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, svc.DeleteSession(context.Background(), 1, "u-1"))
	err := svc.DeleteSession(context.Background(), 1, "u-1")
	assert.True(t, apperror.IsNotFound(err))
}
