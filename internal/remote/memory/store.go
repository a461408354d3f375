package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/marufsabili148/lombaku/internal/dependencies/clock"
	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/remote"
)

// Store is an in-memory implementation of the remote store interface,
// used by tests and as a zero-dependency runtime mode
type Store struct {
	mu sync.RWMutex

	clock clock.Clock

	users        map[model.UserID]*model.User
	emailIndex   map[string]model.UserID
	categories   map[model.CategoryID]*model.Category
	competitions map[model.CompetitionID]*model.Competition

	// insertion counter breaks created-at ties deterministically
	seq    int
	seqFor map[model.CompetitionID]int
}

// New creates a new in-memory remote store
func New(clk clock.Clock) *Store {
	return &Store{
		clock:        clk,
		users:        make(map[model.UserID]*model.User),
		emailIndex:   make(map[string]model.UserID),
		categories:   make(map[model.CategoryID]*model.Category),
		competitions: make(map[model.CompetitionID]*model.Competition),
		seqFor:       make(map[model.CompetitionID]int),
	}
}

// Ensure Store implements the interface
var _ remote.Store = (*Store)(nil)

// User operations

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[strings.ToLower(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user := *s.users[id]
	return &user, nil
}

func (s *Store) GetUserByCredentials(ctx context.Context, email, passwordHash string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[strings.ToLower(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user := s.users[id]
	if user.PasswordHash != passwordHash {
		return nil, model.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (s *Store) InsertUser(ctx context.Context, nu remote.NewUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Email:        strings.ToLower(nu.Email),
		Name:         nu.Name,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    s.clock.Now(),
	}
	s.users[user.ID] = user
	s.emailIndex[user.Email] = user.ID

	out := *user
	return &out, nil
}

func (s *Store) UpdateUserName(ctx context.Context, id model.UserID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	user.Name = name
	return nil
}

// Category operations

func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (s *Store) GetCategory(ctx context.Context, id model.CategoryID) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.categories[id]
	if !ok {
		return nil, model.ErrCategoryNotFound
	}
	out := *category
	return &out, nil
}

// SeedCategory inserts a category directly (fixtures and tests)
func (s *Store) SeedCategory(category model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := category
	s.categories[c.ID] = &c
}

// Competition operations

func (s *Store) ListCompetitions(ctx context.Context, filter remote.CompetitionFilter) ([]model.Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var idSet map[model.CompetitionID]struct{}
	if filter.IDs != nil {
		idSet = make(map[model.CompetitionID]struct{}, len(filter.IDs))
		for _, id := range filter.IDs {
			idSet[id] = struct{}{}
		}
	}

	matched := make([]model.Competition, 0)
	for _, c := range s.competitions {
		if idSet != nil {
			if _, ok := idSet[c.ID]; !ok {
				continue
			}
		}
		if filter.CategoryID != "" && c.CategoryID != filter.CategoryID {
			continue
		}
		if filter.FeaturedOnly && !c.IsFeatured {
			continue
		}
		if filter.Search != "" && !matchesSearch(c, filter.Search) {
			continue
		}
		matched = append(matched, *c)
	}

	// Newest first, insertion order breaking ties
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return s.seqFor[matched[i].ID] > s.seqFor[matched[j].ID]
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *Store) GetCompetition(ctx context.Context, id model.CompetitionID) (*model.Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	competition, ok := s.competitions[id]
	if !ok {
		return nil, model.ErrCompetitionNotFound
	}
	out := *competition
	return &out, nil
}

func (s *Store) InsertCompetition(ctx context.Context, nc remote.NewCompetition) (*model.Competition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	competition := &model.Competition{
		ID:                model.CompetitionID(uuid.NewString()),
		Title:             nc.Title,
		Description:       nc.Description,
		CategoryID:        nc.CategoryID,
		Organizer:         nc.Organizer,
		RegistrationStart: nc.RegistrationStart,
		RegistrationEnd:   nc.RegistrationEnd,
		EventStart:        nc.EventStart,
		EventEnd:          nc.EventEnd,
		Location:          nc.Location,
		IsOnline:          nc.IsOnline,
		RegistrationLink:  nc.RegistrationLink,
		Prize:             nc.Prize,
		Requirements:      nc.Requirements,
		ContactInfo:       nc.ContactInfo,
		ImageURL:          nc.ImageURL,
		IsFeatured:        nc.IsFeatured,
		UserID:            nc.UserID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.competitions[competition.ID] = competition
	s.seq++
	s.seqFor[competition.ID] = s.seq

	out := *competition
	return &out, nil
}

func (s *Store) DeleteCompetition(ctx context.Context, id model.CompetitionID, userID model.UserID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	competition, ok := s.competitions[id]
	if !ok || competition.UserID != userID {
		return 0, nil
	}
	delete(s.competitions, id)
	delete(s.seqFor, id)
	return 1, nil
}

func matchesSearch(c *model.Competition, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle) ||
		strings.Contains(strings.ToLower(c.Organizer), needle)
}
