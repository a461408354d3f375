package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/marufsabili148/lombaku/internal/api/middleware"
	"github.com/marufsabili148/lombaku/internal/api/request"
	"github.com/marufsabili148/lombaku/internal/api/response"
	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/remote"
	"github.com/marufsabili148/lombaku/internal/services/directory"
)

// CompetitionHandler handles competition, bookmark and comment endpoints
type CompetitionHandler struct {
	directoryService *directory.Service
}

// NewCompetitionHandler creates a new competition handler
func NewCompetitionHandler(directoryService *directory.Service) *CompetitionHandler {
	return &CompetitionHandler{
		directoryService: directoryService,
	}
}

// List handles GET /api/v1/competitions
// Supports category, featured, q and limit query parameters
func (h *CompetitionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := remote.CompetitionFilter{
		CategoryID:   model.CategoryID(q.Get("category")),
		FeaturedOnly: q.Get("featured") == "true",
		Search:       q.Get("q"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		filter.Limit = limit
	}

	competitions, err := h.directoryService.ListCompetitions(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompetitionsFromModel(competitions))
}

// Featured handles GET /api/v1/competitions/featured
func (h *CompetitionHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	competitions, err := h.directoryService.FeaturedCompetitions(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompetitionsFromModel(competitions))
}

// Saved handles GET /api/v1/competitions/saved
func (h *CompetitionHandler) Saved(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	competitions, err := h.directoryService.SavedCompetitions(r.Context(), session.UserID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompetitionsFromModel(competitions))
}

// Get handles GET /api/v1/competitions/{id}
func (h *CompetitionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])
	session := middleware.GetSession(r.Context())

	detail, err := h.directoryService.GetDetail(r.Context(), id, session)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DetailFromService(detail))
}

// Create handles POST /api/v1/competitions
func (h *CompetitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session := middleware.MustGetSession(r.Context())

	competition, err := h.directoryService.CreateCompetition(r.Context(), session, remote.NewCompetition{
		Title:             req.Title,
		Description:       req.Description,
		CategoryID:        model.CategoryID(req.CategoryID),
		Organizer:         req.Organizer,
		RegistrationStart: req.RegistrationStart,
		RegistrationEnd:   req.RegistrationEnd,
		EventStart:        req.EventStart,
		EventEnd:          req.EventEnd,
		Location:          req.Location,
		IsOnline:          req.IsOnline,
		RegistrationLink:  req.RegistrationLink,
		Prize:             req.Prize,
		Requirements:      req.Requirements,
		ContactInfo:       req.ContactInfo,
		ImageURL:          req.ImageURL,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CompetitionFromModel(*competition))
}

// Delete handles DELETE /api/v1/competitions/{id}
func (h *CompetitionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])
	session := middleware.GetSession(r.Context())

	if err := h.directoryService.DeleteCompetition(r.Context(), id, session); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddBookmark handles PUT /api/v1/competitions/{id}/bookmark
func (h *CompetitionHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])
	session := middleware.MustGetSession(r.Context())

	if err := h.directoryService.AddBookmark(r.Context(), id, session); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RemoveBookmark handles DELETE /api/v1/competitions/{id}/bookmark
func (h *CompetitionHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])
	session := middleware.MustGetSession(r.Context())

	if err := h.directoryService.RemoveBookmark(r.Context(), id, session); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddComment handles POST /api/v1/competitions/{id}/comments
func (h *CompetitionHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req request.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	id := model.CompetitionID(mux.Vars(r)["id"])
	session := middleware.MustGetSession(r.Context())

	comment, err := h.directoryService.AddComment(r.Context(), id, session, req.Content)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CommentFromModel(*comment))
}

// DeleteComment handles DELETE /api/v1/comments/{id}
func (h *CompetitionHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := model.CommentID(mux.Vars(r)["id"])
	session := middleware.MustGetSession(r.Context())

	deleted, err := h.directoryService.DeleteComment(r.Context(), id, session)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !deleted {
		WriteError(w, NewNotFoundError(CodeCommentNotFound, "Comment not found"))
		return
	}

	response.NoContent(w)
}
