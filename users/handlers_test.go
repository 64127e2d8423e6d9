package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/taskflow-go/auth"
	"github.com/user/taskflow-go/store"
)

type fakeUsers map[string]*auth.User

func (f fakeUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	if id == "broken" {
		return nil, errors.New("connection reset")
	}
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

func TestHandleGetUserProfile(t *testing.T) {
	users := fakeUsers{"u-1": {ID: "u-1", Email: "a@x.com", Name: "Ann", PasswordHash: "digest"}}
	h := NewUserHandlers(NewUserService(users)).HandleGetUserProfile()

	tests := []struct {
		name       string
		userID     string
		wantStatus int
		wantBody   string
	}{
		{name: "found", userID: "u-1", wantStatus: http.StatusOK, wantBody: `{"user":{"name":"Ann","email":"a@x.com"}}`},
		{name: "deleted user", userID: "u-2", wantStatus: http.StatusNotFound, wantBody: `{"message":"User not found"}`},
		{name: "store failure", userID: "broken", wantStatus: http.StatusInternalServerError, wantBody: `{"message":"Failed to get user profile"}`},
		{name: "no identity", userID: "", wantStatus: http.StatusBadRequest, wantBody: `{"message":"User ID is missing"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
			if tt.userID != "" {
				req = req.WithContext(auth.WithUserID(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "digest")
		})
	}
}
