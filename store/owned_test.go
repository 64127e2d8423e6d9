package store

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskflow-go/apperror"
)

type widget struct {
	ID     int64
	UserID string
	Title  string
}

var widgetTable = Table[*widget]{
	Name:    "widgets",
	Columns: []string{"widgets.id", "widgets.user_id", "widgets.title"},
	Scan: func(row pgx.Row) (*widget, error) {
		var w widget
		if err := row.Scan(&w.ID, &w.UserID, &w.Title); err != nil {
			return nil, err
		}
		return &w, nil
	},
}

var widgetColumns = []string{"id", "user_id", "title"}

func newMockRepo(t *testing.T) (*Owned[*widget], pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewOwned[*widget](mock, widgetTable), mock
}

func TestFindOwned_Found(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT widgets.id, widgets.user_id, widgets.title FROM widgets WHERE widgets.id = $1 AND widgets.user_id = $2")).
		WithArgs(int64(7), "user-a").
		WillReturnRows(pgxmock.NewRows(widgetColumns).AddRow(int64(7), "user-a", "gear"))

	got, err := repo.FindOwned(context.Background(), 7, "user-a")
	require.NoError(t, err)
	assert.Equal(t, &widget{ID: 7, UserID: "user-a", Title: "gear"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOwned_OtherOwnerLooksMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Same query shape whether the row is absent or owned by someone else.
	mock.ExpectQuery(regexp.QuoteMeta("FROM widgets WHERE widgets.id = $1 AND widgets.user_id = $2")).
		WithArgs(int64(7), "user-b").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.FindOwned(context.Background(), 7, "user-b")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOwned_DriverError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM widgets WHERE")).
		WithArgs(int64(1), "user-a").
		WillReturnError(errors.New("conn reset"))

	_, err := repo.FindOwned(context.Background(), 1, "user-a")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListOwned_FiltersAndPaging(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT widgets.id, widgets.user_id, widgets.title FROM widgets WHERE widgets.user_id = $1 AND widgets.title ILIKE $2 AND widgets.id > $3 ORDER BY widgets.id LIMIT $4 OFFSET $5")).
		WithArgs("user-a", "%ge%", int64(1), 5, 10).
		WillReturnRows(pgxmock.NewRows(widgetColumns).
			AddRow(int64(2), "user-a", "gear").
			AddRow(int64(3), "user-a", "hinge"))

	f := NewFilter().Where("widgets.title ILIKE ?", "%ge%").Where("widgets.id > ?", int64(1))
	got, err := repo.ListOwned(context.Background(), "user-a", f, Page{Skip: 10, Take: 5})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hinge", got[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOwned_EmptyIsNotNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE widgets.user_id = $1 ORDER BY widgets.id LIMIT $2 OFFSET $3")).
		WithArgs("user-a", DefaultTake, 0).
		WillReturnRows(pgxmock.NewRows(widgetColumns))

	got, err := repo.ListOwned(context.Background(), "user-a", nil, Page{Take: DefaultTake})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeleteOwned(t *testing.T) {
	repo, mock := newMockRepo(t)
	del := regexp.QuoteMeta("DELETE FROM widgets WHERE id = $1 AND user_id = $2")

	mock.ExpectExec(del).WithArgs(int64(4), "user-a").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(del).WithArgs(int64(4), "user-a").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteOwned(context.Background(), 4, "user-a"))
	// Second delete of the same id: gone, not an internal failure.
	assert.ErrorIs(t, repo.DeleteOwned(context.Background(), 4, "user-a"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReturning(t *testing.T) {
	repo, _ := newMockRepo(t)
	assert.Equal(t, " RETURNING widgets.id, widgets.user_id, widgets.title", repo.Returning())
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage(url.Values{}, 100)
	require.NoError(t, err)
	assert.Equal(t, Page{Skip: 0, Take: DefaultTake}, p)

	p, err = ParsePage(url.Values{"skip": {"20"}, "take": {"500"}}, 100)
	require.NoError(t, err)
	assert.Equal(t, Page{Skip: 20, Take: 100}, p)

	_, err = ParsePage(url.Values{"skip": {"-1"}, "take": {"abc"}}, 100)
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Len(t, appErr.Details, 2)
}
