package apperror

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// MessageResponse is the confirmation body used by write endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Task deleted successfully"`
}

// WriteJSON serializes `data` to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; all we can do is record it.
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteMessage writes `{"message": msg}` with the given status.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageResponse{Message: msg})
}

// WriteError converts any error into a standardized JSON error response.
// Errors that are not already *AppError become InternalError so nothing escapes
// unclassified. 5xx errors are logged with the request id; the client only sees the message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("Internal server error", err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"status", status,
			"error", appErr.Error(),
		)
	}

	WriteJSON(w, status, appErr.ToResponse())
}

// Recoverer converts a panic in any downstream handler into an InternalError response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				slog.ErrorContext(r.Context(), "panic recovered",
					"panic", rvr,
					"request_id", middleware.GetReqID(r.Context()),
				)
				WriteError(w, r, NewInternalError("Internal server error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// MsgTimeout is the body of a request that ran past its deadline.
const MsgTimeout = "Request timed out"

// Timeout bounds every request by d. When the deadline passes and the handler returns
// without having answered, the client gets a 504 with the usual JSON error body.
// Handlers must honor context cancellation for this to fire.
func Timeout(d time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			if ww.Status() == 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				WriteError(w, r, NewTimeoutError(MsgTimeout, ctx.Err()))
			}
		})
	}
}
