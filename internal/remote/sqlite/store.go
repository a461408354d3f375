package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/marufsabili148/lombaku/internal/dependencies/clock"
	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/remote"
	"github.com/marufsabili148/lombaku/internal/remote/sqlite/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store implements the remote store interface over SQLite
type Store struct {
	db    *sql.DB
	clock clock.Clock
}

// New opens (or creates) the database at path, runs pending migrations
// and returns a ready store. path can be ":memory:" for tests.
func New(path string, clk clock.Clock) (*Store, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, clock: clk}, nil
}

// NewFromDB wraps an existing connection; the caller is responsible for
// its configuration and schema.
func NewFromDB(db *sql.DB, clk clock.Clock) *Store {
	return &Store{db: db, clock: clk}
}

// OpenConnection opens and configures a SQLite connection with the
// PRAGMAs the schema relies on.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite ships with foreign keys OFF for backward compatibility
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements the interface
var _ remote.Store = (*Store)(nil)

// User operations

const userColumns = "id, email, name, password_hash, avatar_url, created_at"

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", strings.ToLower(email))
	return scanUser(row)
}

func (s *Store) GetUserByCredentials(ctx context.Context, email, passwordHash string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ? AND password_hash = ?",
		strings.ToLower(email), passwordHash)
	return scanUser(row)
}

func (s *Store) InsertUser(ctx context.Context, nu remote.NewUser) (*model.User, error) {
	user := model.User{
		ID:           model.UserID(uuid.NewString()),
		Email:        strings.ToLower(nu.Email),
		Name:         nu.Name,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    s.clock.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, name, password_hash, avatar_url, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.Name, user.PasswordHash, user.AvatarURL, user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return &user, nil
}

func (s *Store) UpdateUserName(ctx context.Context, id model.UserID, name string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("updating user name: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// Category operations

const categoryColumns = "id, name, description, icon, color, created_at"

func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) GetCategory(ctx context.Context, id model.CategoryID) (*model.Category, error) {
	var c model.Category
	err := s.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return &c, nil
}

// SeedCategory inserts a category directly (fixtures and tests)
func (s *Store) SeedCategory(ctx context.Context, category model.Category) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, description, icon, color, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		category.ID, category.Name, category.Description, category.Icon, category.Color, category.CreatedAt)
	return err
}

// Competition operations

const competitionColumns = `id, title, description, category_id, organizer,
	registration_start, registration_end, event_start, event_end,
	location, is_online, registration_link, prize, requirements,
	contact_info, image_url, is_featured, user_id, created_at, updated_at`

func (s *Store) ListCompetitions(ctx context.Context, filter remote.CompetitionFilter) ([]model.Competition, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.IDs != nil {
		if len(filter.IDs) == 0 {
			return []model.Competition{}, nil
		}
		placeholders := make([]string, len(filter.IDs))
		for i, id := range filter.IDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		conditions = append(conditions, "id IN ("+strings.Join(placeholders, ", ")+")")
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.FeaturedOnly {
		conditions = append(conditions, "is_featured = TRUE")
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		conditions = append(conditions,
			"(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(organizer) LIKE ?)")
		args = append(args, needle, needle, needle)
	}

	query := "SELECT " + competitionColumns + " FROM competitions"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing competitions: %w", err)
	}
	defer rows.Close()

	competitions := make([]model.Competition, 0)
	for rows.Next() {
		c, err := scanCompetition(rows)
		if err != nil {
			return nil, err
		}
		competitions = append(competitions, *c)
	}
	return competitions, rows.Err()
}

func (s *Store) GetCompetition(ctx context.Context, id model.CompetitionID) (*model.Competition, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+competitionColumns+" FROM competitions WHERE id = ?", id)
	c, err := scanCompetition(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCompetitionNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Store) InsertCompetition(ctx context.Context, nc remote.NewCompetition) (*model.Competition, error) {
	now := s.clock.Now().UTC()
	competition := model.Competition{
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO competitions (`+competitionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		competition.ID, competition.Title, competition.Description, competition.CategoryID,
		competition.Organizer, competition.RegistrationStart, competition.RegistrationEnd,
		competition.EventStart, competition.EventEnd, competition.Location, competition.IsOnline,
		competition.RegistrationLink, competition.Prize, competition.Requirements,
		competition.ContactInfo, competition.ImageURL, competition.IsFeatured,
		competition.UserID, competition.CreatedAt, competition.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting competition: %w", err)
	}
	return &competition, nil
}

func (s *Store) DeleteCompetition(ctx context.Context, id model.CompetitionID, userID model.UserID) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM competitions WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return 0, fmt.Errorf("deleting competition: %w", err)
	}
	return result.RowsAffected()
}

// Row scanning

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.AvatarURL, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func scanCompetition(row rowScanner) (*model.Competition, error) {
	var c model.Competition
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.CategoryID, &c.Organizer,
		&c.RegistrationStart, &c.RegistrationEnd, &c.EventStart, &c.EventEnd,
		&c.Location, &c.IsOnline, &c.RegistrationLink, &c.Prize, &c.Requirements,
		&c.ContactInfo, &c.ImageURL, &c.IsFeatured, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning competition: %w", err)
	}
	return &c, nil
}
