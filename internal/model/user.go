package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a registered account in the remote store
type User struct {
	ID           UserID    `json:"id"`
	Email        string    `json:"email"` // stored lowercased, unique
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // salted SHA-256 digest, never serialized
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
