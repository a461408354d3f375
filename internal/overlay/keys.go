package overlay

import (
	"net/url"
	"strings"

	"github.com/marufsabili148/lombaku/internal/model"
)

// The overlay owns exactly three durable keys, each holding one JSON
// document: the session object, the bookmark membership array, and the
// comment array.
const (
	keySession   = "session"
	keyBookmarks = "bookmarks"
	keyComments  = "comments"
)

// encodeBookmark renders a membership pair as one durable string. Both
// components are percent-escaped before joining so identifiers that
// contain the separator can never collide with another pair.
func encodeBookmark(b model.Bookmark) string {
	return url.PathEscape(string(b.CompetitionID)) + "/" + url.PathEscape(string(b.UserID))
}

// decodeBookmark parses a durable string back into a membership pair
func decodeBookmark(s string) (model.Bookmark, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return model.Bookmark{}, false
	}
	competitionID, err := url.PathUnescape(parts[0])
	if err != nil {
		return model.Bookmark{}, false
	}
	userID, err := url.PathUnescape(parts[1])
	if err != nil {
		return model.Bookmark{}, false
	}
	return model.Bookmark{
		CompetitionID: model.CompetitionID(competitionID),
		UserID:        model.UserID(userID),
	}, true
}
