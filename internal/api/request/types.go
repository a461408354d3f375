package request

import "time"

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the request body for signing in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RenameRequest is the request body for updating the display name
type RenameRequest struct {
	Name string `json:"name"`
}

// CreateCompetitionRequest is the request body for publishing a listing
type CreateCompetitionRequest struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	CategoryID        string    `json:"category_id"`
	Organizer         string    `json:"organizer"`
	RegistrationStart time.Time `json:"registration_start"`
	RegistrationEnd   time.Time `json:"registration_end"`
	EventStart        time.Time `json:"event_start"`
	EventEnd          time.Time `json:"event_end"`
	Location          string    `json:"location"`
	IsOnline          bool      `json:"is_online"`
	RegistrationLink  string    `json:"registration_link"`
	Prize             string    `json:"prize"`
	Requirements      string    `json:"requirements"`
	ContactInfo       string    `json:"contact_info"`
	ImageURL          string    `json:"image_url"`
}

// AddCommentRequest is the request body for posting a comment
type AddCommentRequest struct {
	Content string `json:"content"`
}
