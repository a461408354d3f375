package model

import "time"

// CompetitionID uniquely identifies a competition listing
type CompetitionID string

// Competition is a single listing in the shared directory
type Competition struct {
	ID          CompetitionID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CategoryID  CategoryID    `json:"category_id"`
	Organizer   string        `json:"organizer"`

	// Timeline
	RegistrationStart time.Time `json:"registration_start"`
	RegistrationEnd   time.Time `json:"registration_end"`
	EventStart        time.Time `json:"event_start"`
	EventEnd          time.Time `json:"event_end"`

	Location         string `json:"location"`
	IsOnline         bool   `json:"is_online"`
	RegistrationLink string `json:"registration_link"`
	Prize            string `json:"prize"`
	Requirements     string `json:"requirements"`
	ContactInfo      string `json:"contact_info"`
	ImageURL         string `json:"image_url"`
	IsFeatured       bool   `json:"is_featured"`

	// UserID is the owning account; only the owner may delete the listing
	UserID    UserID    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
