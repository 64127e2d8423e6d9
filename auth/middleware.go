// Package auth, as part of the authentication module.
// This file, `middleware.go`, defines the Gate: the HTTP middleware every protected route sits behind.
package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/user/taskflow-go/apperror"
)

// Gate verifies the Authorization header and stores the user id on the request context.
//
//   - no header (or only whitespace): 401 {"message":"Unauthorized"}
//   - any verification failure: 403 {"message":"Invalid or expired token"}
//
// The header carries the raw token; a "Bearer " prefix is accepted too.
// The Gate never touches the data store.
func Gate(tokens TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r.Header.Get("Authorization"))
			if token == "" {
				apperror.WriteError(w, r, apperror.NewUnauthenticatedError(msgUnauthorized, nil))
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				slog.DebugContext(r.Context(), "token rejected",
					"reason", err.Error(),
					"request_id", middleware.GetReqID(r.Context()),
				)
				apperror.WriteError(w, r, apperror.NewForbiddenError(msgInvalidOrExpired, err))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// extractToken strips an optional "Bearer" scheme. A header holding only the scheme is empty.
func extractToken(header string) string {
	token := strings.TrimSpace(header)
	if scheme, rest, found := strings.Cut(token, " "); found && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(rest)
	}
	if strings.EqualFold(token, "bearer") {
		return ""
	}
	return token
}
