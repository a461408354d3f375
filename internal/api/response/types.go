package response

import (
	"time"

	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/services/directory"
)

// User represents the signed-in account in API responses
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromSession converts a model.Session to a response User
func UserFromSession(s *model.Session) User {
	return User{
		ID:        string(s.UserID),
		Email:     s.Email,
		Name:      s.Name,
		AvatarURL: s.AvatarURL,
		CreatedAt: s.CreatedAt,
	}
}

// SessionResponse is the response for authentication endpoints
type SessionResponse struct {
	User User `json:"user"`
}

// Category represents a category in API responses
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// CategoryFromModel converts a model.Category
func CategoryFromModel(c model.Category) Category {
	return Category{
		ID:          string(c.ID),
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
	}
}

// CategoriesFromModel converts a slice of categories
func CategoriesFromModel(cs []model.Category) []Category {
	out := make([]Category, len(cs))
	for i, c := range cs {
		out[i] = CategoryFromModel(c)
	}
	return out
}

// Competition represents a listing in API responses
type Competition struct {
	ID                string    `json:"id"`
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
	ImageURL          string    `json:"image_url,omitempty"`
	IsFeatured        bool      `json:"is_featured"`
	UserID            string    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// CompetitionFromModel converts a model.Competition
func CompetitionFromModel(c model.Competition) Competition {
	return Competition{
		ID:                string(c.ID),
		Title:             c.Title,
		Description:       c.Description,
		CategoryID:        string(c.CategoryID),
		Organizer:         c.Organizer,
		RegistrationStart: c.RegistrationStart,
		RegistrationEnd:   c.RegistrationEnd,
		EventStart:        c.EventStart,
		EventEnd:          c.EventEnd,
		Location:          c.Location,
		IsOnline:          c.IsOnline,
		RegistrationLink:  c.RegistrationLink,
		Prize:             c.Prize,
		Requirements:      c.Requirements,
		ContactInfo:       c.ContactInfo,
		ImageURL:          c.ImageURL,
		IsFeatured:        c.IsFeatured,
		UserID:            string(c.UserID),
		CreatedAt:         c.CreatedAt,
	}
}

// CompetitionsFromModel converts a slice of competitions
func CompetitionsFromModel(cs []model.Competition) []Competition {
	out := make([]Competition, len(cs))
	for i, c := range cs {
		out[i] = CompetitionFromModel(c)
	}
	return out
}

// Comment represents a comment in API responses
type Comment struct {
	ID            string    `json:"id"`
	CompetitionID string    `json:"competition_id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// CommentFromModel converts a model.Comment
func CommentFromModel(c model.Comment) Comment {
	return Comment{
		ID:            string(c.ID),
		CompetitionID: string(c.CompetitionID),
		UserID:        string(c.UserID),
		UserName:      c.UserName,
		Content:       c.Content,
		CreatedAt:     c.CreatedAt,
	}
}

// CommentsFromModel converts a slice of comments
func CommentsFromModel(cs []model.Comment) []Comment {
	out := make([]Comment, len(cs))
	for i, c := range cs {
		out[i] = CommentFromModel(c)
	}
	return out
}

// CompetitionDetail is a listing augmented with the viewer's overlay state
type CompetitionDetail struct {
	Competition Competition `json:"competition"`
	Category    *Category   `json:"category,omitempty"`
	Bookmarked  bool        `json:"bookmarked"`
	Owned       bool        `json:"owned"`
	Comments    []Comment   `json:"comments"`
}

// DetailFromService converts a directory.Detail
func DetailFromService(d *directory.Detail) CompetitionDetail {
	out := CompetitionDetail{
		Competition: CompetitionFromModel(d.Competition),
		Bookmarked:  d.Bookmarked,
		Owned:       d.Owned,
		Comments:    CommentsFromModel(d.Comments),
	}
	if d.Category != nil {
		cat := CategoryFromModel(*d.Category)
		out.Category = &cat
	}
	return out
}
