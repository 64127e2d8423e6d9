// Package httpx holds the request plumbing every resource handler repeats:
// reading the authenticated user id, parsing the `{id}` path parameter, and
// answering list endpoints under the configured empty-list policy.
package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/auth"
	"github.com/user/taskflow-go/config"
)

// MsgUserIDMissing is returned when a handler runs without an authenticated user id.
const MsgUserIDMissing = "User ID is missing"

// UserID returns the authenticated user id placed on the context by auth.Gate.
// Its absence is a 400, never a panic.
func UserID(r *http.Request) (string, error) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return "", apperror.NewBadRequestError(MsgUserIDMissing, nil)
	}
	return userID, nil
}

// ParseID reads the `{id}` path parameter. Anything that is not a positive integer
// cannot name a record, so it yields the resource's not-found error.
func ParseID(r *http.Request, notFound string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFoundError(notFound, nil)
	}
	return id, nil
}

// Target resolves both the caller and the `{id}` path parameter of an item route.
func Target(r *http.Request, notFound string) (string, int64, error) {
	userID, err := UserID(r)
	if err != nil {
		return "", 0, err
	}
	id, err := ParseID(r, notFound)
	if err != nil {
		return "", 0, err
	}
	return userID, id, nil
}

// Lists decides how list endpoints answer.
type Lists struct {
	EmptyAsNotFound bool
	MaxTake         int
}

// NewLists builds the list policy from configuration.
func NewLists(cfg *config.ListConfig) Lists {
	return Lists{EmptyAsNotFound: cfg.EmptyAsNotFound, MaxTake: cfg.MaxTake}
}

// Write answers a list request. An empty result is a 404 carrying emptyMessage when
// EmptyAsNotFound is set, otherwise `[]` with 200.
func (l Lists) Write(w http.ResponseWriter, r *http.Request, n int, items any, emptyMessage string) {
	if n == 0 && l.EmptyAsNotFound {
		apperror.WriteError(w, r, apperror.NewNotFoundError(emptyMessage, nil))
		return
	}
	apperror.WriteJSON(w, http.StatusOK, items)
}

// Detach keeps the request's values but drops its cancellation, so a client that
// disconnects does not abort a store operation already in flight.
// Register it before middleware.Timeout, which still bounds the request.
func Detach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithoutCancel(r.Context())))
	})
}
