package remote

import (
	"context"
	"time"

	"github.com/marufsabili148/lombaku/internal/model"
)

// CompetitionFilter narrows a competition listing query. Zero-value fields
// are ignored; set fields combine with AND.
type CompetitionFilter struct {
	// IDs restricts results to a set of identifiers
	IDs []model.CompetitionID

	// CategoryID restricts results to one category
	CategoryID model.CategoryID

	// FeaturedOnly keeps only featured listings
	FeaturedOnly bool

	// Search matches title, description or organizer, case-insensitively
	Search string

	// Limit caps the number of results; 0 means no cap
	Limit int
}

// NewUser carries the fields of a user insert; the store assigns the
// identifier and creation timestamp.
type NewUser struct {
	Email        string // stored lowercased
	Name         string
	PasswordHash string
}

// NewCompetition carries the fields of a competition insert; the store
// assigns the identifier and both timestamps.
type NewCompetition struct {
	Title             string
	Description       string
	CategoryID        model.CategoryID
	Organizer         string
	RegistrationStart time.Time
	RegistrationEnd   time.Time
	EventStart        time.Time
	EventEnd          time.Time
	Location          string
	IsOnline          bool
	RegistrationLink  string
	Prize             string
	Requirements      string
	ContactInfo       string
	ImageURL          string
	IsFeatured        bool
	UserID            model.UserID
}

// Store is the adapter over the shared relational dataset. It holds no
// local state; every method is a filtered read or write against the
// authoritative store. Results always come back ordered by creation
// timestamp descending where ordering matters.
type Store interface {
	// User operations
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByCredentials(ctx context.Context, email, passwordHash string) (*model.User, error)
	InsertUser(ctx context.Context, user NewUser) (*model.User, error)
	UpdateUserName(ctx context.Context, id model.UserID, name string) error

	// Category operations
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id model.CategoryID) (*model.Category, error)

	// Competition operations
	ListCompetitions(ctx context.Context, filter CompetitionFilter) ([]model.Competition, error)
	GetCompetition(ctx context.Context, id model.CompetitionID) (*model.Competition, error)
	InsertCompetition(ctx context.Context, competition NewCompetition) (*model.Competition, error)

	// DeleteCompetition deletes with a combined (id AND owner) predicate
	// and reports the number of rows affected; callers treat zero as a
	// refused delete.
	DeleteCompetition(ctx context.Context, id model.CompetitionID, userID model.UserID) (int64, error)
}
