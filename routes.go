package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/auth"
	"github.com/user/taskflow-go/config"
	"github.com/user/taskflow-go/goals"
	"github.com/user/taskflow-go/httpx"
	"github.com/user/taskflow-go/logging"
	"github.com/user/taskflow-go/notes"
	"github.com/user/taskflow-go/sessions"
	"github.com/user/taskflow-go/store"
	"github.com/user/taskflow-go/tasks"
	"github.com/user/taskflow-go/users"
)

// database is what the application needs from *pgxpool.Pool.
type database interface {
	store.DBTX
	Ping(ctx context.Context) error
}

// application holds the wired services. Handlers are built from it by newRouter.
type application struct {
	cfg    *config.AppConfig
	logger *slog.Logger
	db     database
	tokens auth.TokenVerifier

	auth     *auth.Service
	users    *users.UserService
	tasks    tasks.TaskService
	goals    goals.GoalService
	notes    notes.NoteService
	sessions sessions.SessionService
}

// newApplication performs the manual dependency injection for every service.
func newApplication(cfg *config.AppConfig, logger *slog.Logger, db database) (*application, error) {
	tokens, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}
	userRepo := auth.NewUserRepository(db)

	return &application{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		tokens:   tokens,
		auth:     auth.NewService(userRepo, auth.NewPasswordHasher(cfg.Auth.BcryptCost), tokens),
		users:    users.NewUserService(userRepo),
		tasks:    tasks.NewTaskService(db),
		goals:    goals.NewGoalService(db),
		notes:    notes.NewNoteService(db),
		sessions: sessions.NewSessionService(db),
	}, nil
}

// newRouter creates the chi router with global middleware and every route group.
// Chi requires all middleware to be registered before any routes.
func newRouter(app *application) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(app.logger))
	r.Use(apperror.Recoverer)
	r.Use(httpx.Detach)
	r.Use(apperror.Timeout(app.cfg.Server.WriteTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", handleHealth(app.db))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	lists := httpx.NewLists(app.cfg.List)
	gate := auth.Gate(app.tokens)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			auth.NewHandlers(app.auth).RegisterRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(gate)
				users.NewUserHandlers(app.users).RegisterRoutes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(gate)
			r.Route("/task", tasks.NewTaskHandler(app.tasks, lists).RegisterRoutes)
			r.Route("/goal", goals.NewGoalHandler(app.goals, lists).RegisterRoutes)
			r.Route("/notes", notes.NewNoteHandler(app.notes, lists).RegisterRoutes)
			r.Route("/session", sessions.NewSessionHandler(app.sessions, lists).RegisterRoutes)
		})
	})

	return r
}

type healthResponse struct {
	Status string `json:"status" example:"ok"`
}

// handleHealth godoc
// @Summary Health check
// @Description Pings the database pool.
// @Tags ops
// @Produce json
// @Success 200 {object} main.healthResponse
// @Failure 503 {object} main.healthResponse
// @Router /healthz [get]
func handleHealth(db database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			slog.WarnContext(r.Context(), "health check failed", "error", err)
			apperror.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		apperror.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
