package directory

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/overlay"
	"github.com/marufsabili148/lombaku/internal/remote"
)

// Comment length bounds, in characters, applied after trimming
const (
	MinCommentLength = 3
	MaxCommentLength = 500
)

// Errors
var (
	ErrSignInRequired   = errors.New("sign in required")
	ErrNotOwner         = errors.New("only the owner can delete this")
	ErrCommentEmpty     = errors.New("comment text is required")
	ErrCommentLength    = errors.New("comment must be between 3 and 500 characters")
	ErrTitleRequired    = errors.New("title is required")
	ErrCategoryRequired = errors.New("category is required")
)

// Service composes remote directory data with the device-local overlay
// into the views consumed by presentation code. It owns no data itself.
type Service struct {
	remote  remote.Store
	overlay *overlay.Store
}

// New creates a new directory service
func New(remoteStore remote.Store, overlayStore *overlay.Store) *Service {
	return &Service{
		remote:  remoteStore,
		overlay: overlayStore,
	}
}

// Detail is a competition augmented with its category and the viewer's
// overlay state
type Detail struct {
	Competition model.Competition
	Category    *model.Category
	Bookmarked  bool
	Owned       bool
	Comments    []model.Comment
}

// Catalog queries

// ListCompetitions returns listings matching the filter, newest first
func (s *Service) ListCompetitions(ctx context.Context, filter remote.CompetitionFilter) ([]model.Competition, error) {
	return s.remote.ListCompetitions(ctx, filter)
}

// FeaturedCompetitions returns up to limit featured listings, newest first
func (s *Service) FeaturedCompetitions(ctx context.Context, limit int) ([]model.Competition, error) {
	return s.remote.ListCompetitions(ctx, remote.CompetitionFilter{
		FeaturedOnly: true,
		Limit:        limit,
	})
}

// ListCategories returns all categories
func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.remote.ListCategories(ctx)
}

// GetCategory returns a single category
func (s *Service) GetCategory(ctx context.Context, id model.CategoryID) (*model.Category, error) {
	return s.remote.GetCategory(ctx, id)
}

// GetDetail resolves a competition together with the current viewer's
// bookmark state, ownership and comment thread. Bookmark state and
// ownership are always false for a signed-out viewer.
func (s *Service) GetDetail(ctx context.Context, id model.CompetitionID, session *model.Session) (*Detail, error) {
	competition, err := s.remote.GetCompetition(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Competition: *competition,
		Owned:       s.Owns(session, competition.UserID),
	}

	// The category is decoration; a missing one doesn't fail the view
	if category, err := s.remote.GetCategory(ctx, competition.CategoryID); err == nil {
		detail.Category = category
	}

	if session != nil {
		bookmarked, err := s.overlay.IsBookmarked(ctx, id, session.UserID)
		if err != nil {
			return nil, err
		}
		detail.Bookmarked = bookmarked
	}

	comments, err := s.overlay.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Comments = comments

	return detail, nil
}

// SavedCompetitions resolves the user's bookmarked listings. An empty
// bookmark set short-circuits without a remote round-trip.
func (s *Service) SavedCompetitions(ctx context.Context, userID model.UserID) ([]model.Competition, error) {
	ids, err := s.overlay.ListBookmarkedCompetitionIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Competition{}, nil
	}

	return s.remote.ListCompetitions(ctx, remote.CompetitionFilter{IDs: ids})
}

// Mutations

// CreateCompetition inserts a listing owned by the signed-in user
func (s *Service) CreateCompetition(ctx context.Context, session *model.Session, input remote.NewCompetition) (*model.Competition, error) {
	if session == nil {
		return nil, ErrSignInRequired
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.CategoryID == "" {
		return nil, ErrCategoryRequired
	}

	input.UserID = session.UserID
	return s.remote.InsertCompetition(ctx, input)
}

// DeleteCompetition removes a listing through the combined (id AND owner)
// predicate; zero rows affected means the remote store refused the delete.
func (s *Service) DeleteCompetition(ctx context.Context, id model.CompetitionID, session *model.Session) error {
	if session == nil {
		return ErrSignInRequired
	}

	affected, err := s.remote.DeleteCompetition(ctx, id, session.UserID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotOwner
	}
	return nil
}

// Bookmark operations (overlay pass-throughs, session-gated)

// AddBookmark records a bookmark for the signed-in user
func (s *Service) AddBookmark(ctx context.Context, id model.CompetitionID, session *model.Session) error {
	if session == nil {
		return ErrSignInRequired
	}
	return s.overlay.AddBookmark(ctx, id, session.UserID)
}

// RemoveBookmark removes a bookmark for the signed-in user
func (s *Service) RemoveBookmark(ctx context.Context, id model.CompetitionID, session *model.Session) error {
	if session == nil {
		return ErrSignInRequired
	}
	return s.overlay.RemoveBookmark(ctx, id, session.UserID)
}

// Comment operations

// AddComment validates and appends a comment by the signed-in user.
// Validation happens before any storage access.
func (s *Service) AddComment(ctx context.Context, id model.CompetitionID, session *model.Session, content string) (*model.Comment, error) {
	if session == nil {
		return nil, ErrSignInRequired
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrCommentEmpty
	}
	if n := utf8.RuneCountInString(trimmed); n < MinCommentLength || n > MaxCommentLength {
		return nil, ErrCommentLength
	}

	return s.overlay.AddComment(ctx, id, session.UserID, trimmed)
}

// DeleteComment removes a comment when the signed-in user is its author.
// An ownership mismatch is a normal outcome reported as deleted=false.
func (s *Service) DeleteComment(ctx context.Context, id model.CommentID, session *model.Session) (bool, error) {
	if session == nil {
		return false, nil
	}
	return s.overlay.DeleteComment(ctx, id, session.UserID)
}

// Owns reports whether the session strictly owns the given user's
// content. No session means nothing is owned.
func (s *Service) Owns(session *model.Session, ownerID model.UserID) bool {
	return session != nil && session.UserID == ownerID
}
