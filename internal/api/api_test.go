package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marufsabili148/lombaku/internal/api"
	"github.com/marufsabili148/lombaku/internal/api/response"
	"github.com/marufsabili148/lombaku/internal/factory"
	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/remote"
)

// testServer wires the router over an in-memory application
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		DirectoryService: app.DirectoryService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// register creates an account, which also signs the device in
func (ts *testServer) register(t *testing.T, email, name string) response.User {
	t.Helper()

	body := map[string]string{"email": email, "password": "secret", "name": name}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.User
}

func (ts *testServer) seedCompetition(t *testing.T, title string, userID model.UserID) model.Competition {
	t.Helper()

	comp, err := ts.app.Remote.InsertCompetition(context.Background(), remote.NewCompetition{
		Title:      title,
		CategoryID: "cat-tech",
		UserID:     userID,
	})
	require.NoError(t, err)
	return *comp
}

func seedCategory(ts *testServer) {
	ts.app.RemoteMemory.SeedCategory(model.Category{
		ID:   "cat-tech",
		Name: "Technology",
	})
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	user := ts.register(t, "alice@example.com", "Alice")
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEmpty(t, user.ID)

	// Registering signs the device in
	rr := ts.request(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Sign out, then back in
	rr = ts.request(http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	loginBody := map[string]string{"email": "alice@example.com", "password": "secret"}
	rr = ts.request(http.MethodPost, "/api/v1/auth/login", loginBody)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice@example.com", "Alice")
	ts.request(http.MethodPost, "/api/v1/auth/logout", nil)

	body := map[string]string{"email": "alice@example.com", "password": "wrong"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CREDENTIALS")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice@example.com", "Alice")

	body := map[string]string{"email": "Alice@Example.com", "password": "other", "name": "Other"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "EMAIL_EXISTS")
}

func TestRename(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice@example.com", "Alice")

	rr := ts.request(http.MethodPatch, "/api/v1/auth/me", map[string]string{"name": "Alicia"})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Alicia", resp.User.Name)
}

func TestListCategories(t *testing.T) {
	ts := newTestServer(t)
	seedCategory(ts)

	rr := ts.request(http.MethodGet, "/api/v1/categories", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var categories []response.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Technology", categories[0].Name)
}

func TestGetCategoryNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/categories/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "CATEGORY_NOT_FOUND")
}

func TestCreateAndGetCompetition(t *testing.T) {
	ts := newTestServer(t)
	seedCategory(ts)
	user := ts.register(t, "alice@example.com", "Alice")

	body := map[string]any{
		"title":       "Hackathon 2025",
		"description": "48 hour build",
		"category_id": "cat-tech",
		"organizer":   "Tech Org",
		"is_online":   true,
	}
	rr := ts.request(http.MethodPost, "/api/v1/competitions", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created response.Competition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Hackathon 2025", created.Title)
	assert.Equal(t, user.ID, created.UserID)

	rr = ts.request(http.MethodGet, "/api/v1/competitions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var detail response.CompetitionDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	assert.Equal(t, created.ID, detail.Competition.ID)
	require.NotNil(t, detail.Category)
	assert.Equal(t, "Technology", detail.Category.Name)
	assert.True(t, detail.Owned)
	assert.False(t, detail.Bookmarked)
	assert.Empty(t, detail.Comments)
}

func TestCreateCompetitionRequiresSession(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"title": "Hackathon", "category_id": "cat-tech"}
	rr := ts.request(http.MethodPost, "/api/v1/competitions", body)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDeleteCompetitionOwnership(t *testing.T) {
	ts := newTestServer(t)
	seedCategory(ts)
	owner := ts.register(t, "owner@example.com", "Owner")
	comp := ts.seedCompetition(t, "Owned", model.UserID(owner.ID))

	// Another account on this device cannot delete it
	ts.request(http.MethodPost, "/api/v1/auth/logout", nil)
	ts.register(t, "other@example.com", "Other")

	rr := ts.request(http.MethodDelete, "/api/v1/competitions/"+string(comp.ID), nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_OWNER")

	// The owner can
	ts.request(http.MethodPost, "/api/v1/auth/logout", nil)
	loginBody := map[string]string{"email": "owner@example.com", "password": "secret"}
	rr = ts.request(http.MethodPost, "/api/v1/auth/login", loginBody)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/competitions/"+string(comp.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/competitions/"+string(comp.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBookmarkAndSavedView(t *testing.T) {
	ts := newTestServer(t)
	seedCategory(ts)
	user := ts.register(t, "alice@example.com", "Alice")
	first := ts.seedCompetition(t, "First", model.UserID(user.ID))
	ts.app.MockClock.Advance(time.Minute)
	second := ts.seedCompetition(t, "Second", model.UserID(user.ID))

	// Nothing saved yet
	rr := ts.request(http.MethodGet, "/api/v1/competitions/saved", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var saved []response.Competition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	assert.Empty(t, saved)

	// Bookmark both, oldest first
	rr = ts.request(http.MethodPut, "/api/v1/competitions/"+string(first.ID)+"/bookmark", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = ts.request(http.MethodPut, "/api/v1/competitions/"+string(second.ID)+"/bookmark", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Saved view is newest first
	rr = ts.request(http.MethodGet, "/api/v1/competitions/saved", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	require.Len(t, saved, 2)
	assert.Equal(t, "Second", saved[0].Title)
	assert.Equal(t, "First", saved[1].Title)

	// Detail reflects the bookmark
	rr = ts.request(http.MethodGet, "/api/v1/competitions/"+string(first.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var detail response.CompetitionDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	assert.True(t, detail.Bookmarked)

	// Remove one
	rr = ts.request(http.MethodDelete, "/api/v1/competitions/"+string(first.ID)+"/bookmark", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/competitions/saved", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "Second", saved[0].Title)
}

func TestSavedRequiresSession(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/competitions/saved", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestComments(t *testing.T) {
	ts := newTestServer(t)
	seedCategory(ts)
	user := ts.register(t, "alice@example.com", "Alice")
	comp := ts.seedCompetition(t, "Commented", model.UserID(user.ID))

	// Too short after trimming
	rr := ts.request(http.MethodPost, "/api/v1/competitions/"+string(comp.ID)+"/comments", map[string]string{"content": "  hi  "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/competitions/"+string(comp.ID)+"/comments", map[string]string{"content": "Looks great!"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var comment response.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))
	assert.Equal(t, "Looks great!", comment.Content)
	assert.Equal(t, "Alice", comment.UserName)

	// Visible on the detail view
	rr = ts.request(http.MethodGet, "/api/v1/competitions/"+string(comp.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var detail response.CompetitionDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, comment.ID, detail.Comments[0].ID)

	// Another account cannot delete it
	ts.request(http.MethodPost, "/api/v1/auth/logout", nil)
	ts.register(t, "other@example.com", "Other")
	rr = ts.request(http.MethodDelete, "/api/v1/comments/"+comment.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// The author can
	ts.request(http.MethodPost, "/api/v1/auth/logout", nil)
	loginBody := map[string]string{"email": "alice@example.com", "password": "secret"}
	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/auth/login", loginBody).Code)

	rr = ts.request(http.MethodDelete, "/api/v1/comments/"+comment.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestListCompetitionsFilters(t *testing.T) {
	ts := newTestServer(t)
	seedCategory(ts)
	user := ts.register(t, "alice@example.com", "Alice")
	ts.seedCompetition(t, "Robotics Sprint", model.UserID(user.ID))
	ts.app.MockClock.Advance(time.Minute)
	ts.seedCompetition(t, "Essay Contest", model.UserID(user.ID))

	rr := ts.request(http.MethodGet, "/api/v1/competitions?q=robotics", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var competitions []response.Competition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &competitions))
	require.Len(t, competitions, 1)
	assert.Equal(t, "Robotics Sprint", competitions[0].Title)

	rr = ts.request(http.MethodGet, "/api/v1/competitions?limit=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &competitions))
	require.Len(t, competitions, 1)
	assert.Equal(t, "Essay Contest", competitions[0].Title)

	rr = ts.request(http.MethodGet, "/api/v1/competitions?limit=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
