package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/marufsabili148/lombaku/internal/api/handler"
	"github.com/marufsabili148/lombaku/internal/api/middleware"
	"github.com/marufsabili148/lombaku/internal/services/auth"
	"github.com/marufsabili148/lombaku/internal/services/directory"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	DirectoryService *directory.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	categoryHandler := handler.NewCategoryHandler(cfg.DirectoryService)
	competitionHandler := handler.NewCompetitionHandler(cfg.DirectoryService)

	// Create middleware
	sessionMiddleware := middleware.Session(cfg.AuthService)
	requireSession := middleware.RequireSession()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware. Every route sees the
	// device-local session; protected subrouters additionally require one.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(sessionMiddleware)

	// Auth routes (no session required for registering/signing in)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected auth routes
	api.Handle("/auth/me", requireSession(http.HandlerFunc(authHandler.GetMe))).Methods(http.MethodGet)
	api.Handle("/auth/me", requireSession(http.HandlerFunc(authHandler.Rename))).Methods(http.MethodPatch)

	// Category routes (public)
	api.HandleFunc("/categories", categoryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", categoryHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}/competitions", categoryHandler.Competitions).Methods(http.MethodGet)

	// Competition routes. The saved view and all overlay writes need a
	// session; browsing does not. Register /saved and /featured before
	// /{id} so the literal paths win.
	api.HandleFunc("/competitions", competitionHandler.List).Methods(http.MethodGet)
	api.Handle("/competitions", requireSession(http.HandlerFunc(competitionHandler.Create))).Methods(http.MethodPost)
	api.HandleFunc("/competitions/featured", competitionHandler.Featured).Methods(http.MethodGet)
	api.Handle("/competitions/saved", requireSession(http.HandlerFunc(competitionHandler.Saved))).Methods(http.MethodGet)
	api.HandleFunc("/competitions/{id}", competitionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/competitions/{id}", competitionHandler.Delete).Methods(http.MethodDelete)
	api.Handle("/competitions/{id}/bookmark", requireSession(http.HandlerFunc(competitionHandler.AddBookmark))).Methods(http.MethodPut)
	api.Handle("/competitions/{id}/bookmark", requireSession(http.HandlerFunc(competitionHandler.RemoveBookmark))).Methods(http.MethodDelete)
	api.Handle("/competitions/{id}/comments", requireSession(http.HandlerFunc(competitionHandler.AddComment))).Methods(http.MethodPost)
	api.Handle("/comments/{id}", requireSession(http.HandlerFunc(competitionHandler.DeleteComment))).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
