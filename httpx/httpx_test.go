package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/auth"
)

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestParseID(t *testing.T) {
	base := httptest.NewRequest(http.MethodGet, "/", nil)

	id, err := ParseID(withID(base, "42"), "Task not found or access denied")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5", "99999999999999999999"} {
		_, err := ParseID(withID(base, raw), "Task not found or access denied")
		require.Error(t, err, raw)
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
		assert.Equal(t, "Task not found or access denied", appErr.Message)
	}
}

func TestUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := UserID(req)
	require.Error(t, err)
	appErr, _ := apperror.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Equal(t, MsgUserIDMissing, appErr.Message)

	id, err := UserID(req.WithContext(auth.WithUserID(req.Context(), "u-1")))
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestLists_Write(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec := httptest.NewRecorder()
	Lists{EmptyAsNotFound: true}.Write(rec, req, 0, []string{}, "No notes found")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"No notes found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Lists{EmptyAsNotFound: false}.Write(rec, req, 0, []string{}, "No notes found")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	Lists{EmptyAsNotFound: true}.Write(rec, req, 1, []string{"a"}, "No notes found")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["a"]`, rec.Body.String())
}

func TestDetach(t *testing.T) {
	type key struct{}
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "kept"))
	cancel()

	var seen context.Context
	h := Detach(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))

	require.NotNil(t, seen)
	assert.NoError(t, seen.Err())
	assert.Equal(t, "kept", seen.Value(key{}))
}
