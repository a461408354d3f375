package model

import "time"

// Session is the device-local record of the signed-in user, if any.
// It mirrors the User that existed in the remote store when it was created
// and is never re-validated afterwards.
type Session struct {
	UserID    UserID    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentID uniquely identifies a comment within the device's collection
type CommentID string

// Comment is a device-local comment attached to a competition
type Comment struct {
	ID            CommentID     `json:"id"`
	CompetitionID CompetitionID `json:"competition_id"`
	UserID        UserID        `json:"user_id"`
	UserName      string        `json:"user_name,omitempty"`
	Content       string        `json:"content"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Bookmark is one (competition, user) membership pair. The pair is the
// identity: a given pair appears at most once in the overlay set.
type Bookmark struct {
	CompetitionID CompetitionID `json:"competition_id"`
	UserID        UserID        `json:"user_id"`
}
