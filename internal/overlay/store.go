package overlay

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/marufsabili148/lombaku/internal/dependencies/clock"
	"github.com/marufsabili148/lombaku/internal/dependencies/random"
	"github.com/marufsabili148/lombaku/internal/kv"
	"github.com/marufsabili148/lombaku/internal/model"
)

const (
	// commentIDSuffixLength is the random tail appended to comment IDs so
	// two comments created within the same millisecond cannot collide
	commentIDSuffixLength   = 9
	commentIDSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Store holds the device-local overlay over the shared directory: the
// signed-in session, bookmark membership, and comments. It is a pure
// function of its key-value storage and never talks to the network.
//
// "Not found" and "already in desired state" are success paths throughout;
// the only error condition is storage unavailability.
type Store struct {
	kv     kv.Store
	clock  clock.Clock
	random random.Random
}

// New creates an overlay store over the given key-value storage
func New(kvStore kv.Store, clk clock.Clock, rnd random.Random) *Store {
	return &Store{
		kv:     kvStore,
		clock:  clk,
		random: rnd,
	}
}

// Session operations

// GetSession returns the current session, or nil when signed out
func (s *Store) GetSession(ctx context.Context) (*model.Session, error) {
	data, ok, err := s.kv.Get(ctx, keySession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// An unreadable session record is treated as signed out
		return nil, nil
	}
	return &session, nil
}

// SetSession overwrites the durable session record
func (s *Store) SetSession(ctx context.Context, session model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, keySession, data)
}

// ClearSession removes the session record. Clearing an absent session succeeds.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.kv.Delete(ctx, keySession)
}

// Bookmark operations

// AddBookmark records a (competition, user) membership pair. Adding a pair
// that is already present is a no-op, not a duplicate.
func (s *Store) AddBookmark(ctx context.Context, competitionID model.CompetitionID, userID model.UserID) error {
	bookmarks, err := s.loadBookmarks(ctx)
	if err != nil {
		return err
	}

	pair := model.Bookmark{CompetitionID: competitionID, UserID: userID}
	for _, b := range bookmarks {
		if b == pair {
			return nil
		}
	}

	return s.saveBookmarks(ctx, append(bookmarks, pair))
}

// RemoveBookmark removes a membership pair. Removing an absent pair succeeds.
func (s *Store) RemoveBookmark(ctx context.Context, competitionID model.CompetitionID, userID model.UserID) error {
	bookmarks, err := s.loadBookmarks(ctx)
	if err != nil {
		return err
	}

	pair := model.Bookmark{CompetitionID: competitionID, UserID: userID}
	kept := bookmarks[:0]
	for _, b := range bookmarks {
		if b != pair {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bookmarks) {
		return nil
	}

	return s.saveBookmarks(ctx, kept)
}

// IsBookmarked reports whether the pair is present
func (s *Store) IsBookmarked(ctx context.Context, competitionID model.CompetitionID, userID model.UserID) (bool, error) {
	bookmarks, err := s.loadBookmarks(ctx)
	if err != nil {
		return false, err
	}

	pair := model.Bookmark{CompetitionID: competitionID, UserID: userID}
	for _, b := range bookmarks {
		if b == pair {
			return true, nil
		}
	}
	return false, nil
}

// ListBookmarkedCompetitionIDs returns the competitions the given user has
// bookmarked, in no particular order
func (s *Store) ListBookmarkedCompetitionIDs(ctx context.Context, userID model.UserID) ([]model.CompetitionID, error) {
	bookmarks, err := s.loadBookmarks(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]model.CompetitionID, 0, len(bookmarks))
	for _, b := range bookmarks {
		if b.UserID == userID {
			ids = append(ids, b.CompetitionID)
		}
	}
	return ids, nil
}

// Comment operations

// AddComment appends a comment with a freshly generated identifier and both
// timestamps stamped with the current time. The author's display name is
// mirrored from the session when it matches, so threads stay readable
// without a remote lookup.
func (s *Store) AddComment(ctx context.Context, competitionID model.CompetitionID, userID model.UserID, content string) (*model.Comment, error) {
	comments, err := s.loadComments(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	// Regenerate on the (unlikely) collision with an existing ID
	var id model.CommentID
	for {
		id = model.CommentID(fmt.Sprintf("comment-%d-%s",
			now.UnixMilli(), s.random.String(commentIDSuffixLength, commentIDSuffixAlphabet)))
		if !commentIDExists(comments, id) {
			break
		}
	}

	comment := model.Comment{
		ID:            id,
		CompetitionID: competitionID,
		UserID:        userID,
		UserName:      s.authorName(ctx, userID),
		Content:       content,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.saveComments(ctx, append(comments, comment)); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns the comments for a competition, newest first.
// Comments sharing a creation timestamp come back in reverse insertion order.
func (s *Store) ListComments(ctx context.Context, competitionID model.CompetitionID) ([]model.Comment, error) {
	comments, err := s.loadComments(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Comment, 0)
	for i := len(comments) - 1; i >= 0; i-- {
		if comments[i].CompetitionID == competitionID {
			matched = append(matched, comments[i])
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// DeleteComment removes a comment if it exists and the requester is its
// author. A missing comment or an ownership mismatch is reported as
// deleted=false, not as an error.
func (s *Store) DeleteComment(ctx context.Context, commentID model.CommentID, requestingUserID model.UserID) (bool, error) {
	comments, err := s.loadComments(ctx)
	if err != nil {
		return false, err
	}

	index := -1
	for i, c := range comments {
		if c.ID == commentID {
			index = i
			break
		}
	}
	if index == -1 || comments[index].UserID != requestingUserID {
		return false, nil
	}

	comments = append(comments[:index], comments[index+1:]...)
	if err := s.saveComments(ctx, comments); err != nil {
		return false, err
	}
	return true, nil
}

// Collection codecs

func (s *Store) loadBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	data, ok, err := s.kv.Get(ctx, keyBookmarks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var encoded []string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, nil
	}

	bookmarks := make([]model.Bookmark, 0, len(encoded))
	for _, e := range encoded {
		if b, ok := decodeBookmark(e); ok {
			bookmarks = append(bookmarks, b)
		}
	}
	return bookmarks, nil
}

func (s *Store) saveBookmarks(ctx context.Context, bookmarks []model.Bookmark) error {
	encoded := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		encoded[i] = encodeBookmark(b)
	}
	data, err := json.Marshal(encoded)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, keyBookmarks, data)
}

func (s *Store) loadComments(ctx context.Context) ([]model.Comment, error) {
	data, ok, err := s.kv.Get(ctx, keyComments)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var comments []model.Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, nil
	}
	return comments, nil
}

func (s *Store) saveComments(ctx context.Context, comments []model.Comment) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, keyComments, data)
}

// authorName looks up the author's display name in the current session.
// Comments by anyone else keep an empty name.
func (s *Store) authorName(ctx context.Context, userID model.UserID) string {
	session, err := s.GetSession(ctx)
	if err != nil || session == nil || session.UserID != userID {
		return ""
	}
	return session.Name
}

func commentIDExists(comments []model.Comment, id model.CommentID) bool {
	for _, c := range comments {
		if c.ID == id {
			return true
		}
	}
	return false
}
