package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/user/taskflow-go/store"
)

func newTestRouter(t *testing.T, repo *mockUserRepository) http.Handler {
	t.Helper()
	svc, _, _ := newTestService(t, repo)
	r := chi.NewRouter()
	NewHandlers(svc).RegisterRoutes(r)
	return r
}

func doJSON(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleSignup(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, "a@x.com", mock.AnythingOfType("string"), "Ann").
		Return(&User{ID: testUserID, Email: "a@x.com", Name: "Ann"}, nil).Once()
	repo.On("Create", mock.Anything, "a@x.com", mock.AnythingOfType("string"), "Ann").
		Return(nil, ErrEmailTaken).Once()
	h := newTestRouter(t, repo)
	body := `{"email":"a@x.com","password":"secret1","name":"Ann"}`

	rec := doJSON(h, http.MethodPost, "/signup", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User created successfully"}`, rec.Body.String())

	rec = doJSON(h, http.MethodPost, "/signup", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, rec.Body.String())
}

func TestHandleSignup_InvalidInput(t *testing.T) {
	repo := new(mockUserRepository)
	h := newTestRouter(t, repo)

	for _, body := range []string{
		``,
		`{"email":`,
		`{"email":"a@x","password":"secret1","name":"Ann"}`,
		`{"email":"a@x.com","password":"short","name":"Ann"}`,
		`{"email":"a@x.com","password":"secret1","name":"An"}`,
		`{"email":"a@x.com","password":123,"name":"Ann"}`,
		`{"email":"      ","password":"secret1","name":"Ann"}`,
		`{"email":"  a@x  ","password":"secret1","name":"Ann"}`,
		`{"email":"not-an-email","password":"secret1","name":"Ann"}`,
		`{"email":"a@x.com","password":"secret1","name":"      "}`,
		`{"email":"a@x.com","password":"secret1","name":"Ann"} trailing`,
	} {
		rec := doJSON(h, http.MethodPost, "/signup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Incorrect inputs", resp["message"])
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleSignup_NormalizesEmailBeforeStoring(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, "a@x.com", mock.AnythingOfType("string"), "Ann").
		Return(&User{ID: testUserID, Email: "a@x.com", Name: "Ann"}, nil).Once()
	h := newTestRouter(t, repo)

	rec := doJSON(h, http.MethodPost, "/signup", `{"email":"  A@X.com ","password":"secret1","name":" Ann "}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestHandleSignin_BlankEmail(t *testing.T) {
	repo := new(mockUserRepository)
	h := newTestRouter(t, repo)

	rec := doJSON(h, http.MethodPost, "/signin", `{"email":"      ","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestHandleSignin(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := NewPasswordHasher(4)
	digest, err := hasher.Hash("secret1")
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "a@x.com").
		Return(&User{ID: testUserID, Email: "a@x.com", PasswordHash: digest}, nil)
	repo.On("FindByEmail", mock.Anything, "b@x.com").Return(nil, store.ErrNotFound)
	h := newTestRouter(t, repo)

	rec := doJSON(h, http.MethodPost, "/signin", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp SigninResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User logged in successfully", resp.Message)
	assert.NotEmpty(t, resp.Token)

	for _, body := range []string{
		`{"email":"a@x.com","password":"wrong-pass"}`,
		`{"email":"b@x.com","password":"secret1"}`,
	} {
		rec := doJSON(h, http.MethodPost, "/signin", body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Sorry credentials are incorrect"}`, rec.Body.String())
	}
}
