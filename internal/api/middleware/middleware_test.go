package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marufsabili148/lombaku/internal/api/middleware"
	"github.com/marufsabili148/lombaku/internal/dependencies/mocks"
	kvmemory "github.com/marufsabili148/lombaku/internal/kv/memory"
	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/overlay"
	remotememory "github.com/marufsabili148/lombaku/internal/remote/memory"
	"github.com/marufsabili148/lombaku/internal/services/auth"
)

func newAuthService(t *testing.T) (*auth.Service, *overlay.Store) {
	t.Helper()

	clk := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	overlayStore := overlay.New(kvmemory.New(), clk, mocks.NewMockRandom())
	return auth.New(remotememory.New(clk), overlayStore, auth.DefaultConfig()), overlayStore
}

func TestLoggingRecordsRequests(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	wrapped := middleware.Logging(logger)(next)

	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/somewhere", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Contains(t, buf.String(), `"path":"/somewhere"`)
	assert.Contains(t, buf.String(), `"status":418`)
}

func TestSessionAttachesSignedInUser(t *testing.T) {
	authService, overlayStore := newAuthService(t)

	require.NoError(t, overlayStore.SetSession(context.Background(), model.Session{
		UserID: "u1",
		Email:  "a@x.com",
		Name:   "A",
	}))

	var got *model.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetSession(r.Context())
	})
	wrapped := middleware.Session(authService)(next)

	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, model.UserID("u1"), got.UserID)
}

func TestRequireSessionRejectsSignedOut(t *testing.T) {
	authService, _ := newAuthService(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})
	wrapped := middleware.Session(authService)(middleware.RequireSession()(next))

	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNAUTHORIZED")
}
