package middleware

import (
	"context"
	"net/http"

	"github.com/marufsabili148/lombaku/internal/api/apierr"
	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/services/auth"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Session creates middleware that resolves the device-local session and
// attaches it to the request context. Signed-out requests pass through
// with no session attached.
func Session(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := authService.CurrentSession(r.Context())
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			if session != nil {
				ctx := context.WithValue(r.Context(), sessionContextKey, session)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession rejects requests that have no session attached.
// Must run after Session.
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetSession(r.Context()) == nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSession returns the session from the request context, or nil when
// signed out
func GetSession(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionContextKey).(*model.Session)
	return session
}

// MustGetSession returns the session or panics
func MustGetSession(ctx context.Context) *model.Session {
	session := GetSession(ctx)
	if session == nil {
		panic("no session in context - session middleware not applied?")
	}
	return session
}
