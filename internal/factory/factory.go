package factory

import (
	"errors"

	"github.com/marufsabili148/lombaku/internal/dependencies/clock"
	"github.com/marufsabili148/lombaku/internal/dependencies/random"
	"github.com/marufsabili148/lombaku/internal/kv"
	kvfile "github.com/marufsabili148/lombaku/internal/kv/file"
	kvmemory "github.com/marufsabili148/lombaku/internal/kv/memory"
	kvredis "github.com/marufsabili148/lombaku/internal/kv/redis"
	"github.com/marufsabili148/lombaku/internal/overlay"
	"github.com/marufsabili148/lombaku/internal/remote"
	remotememory "github.com/marufsabili148/lombaku/internal/remote/memory"
	remotesqlite "github.com/marufsabili148/lombaku/internal/remote/sqlite"
	"github.com/marufsabili148/lombaku/internal/services/auth"
	"github.com/marufsabili148/lombaku/internal/services/directory"
)

// Remote store backend constants
const (
	RemoteTypeMemory = "memory"
	RemoteTypeSQLite = "sqlite"
)

// Overlay backend constants
const (
	OverlayTypeMemory = "memory"
	OverlayTypeFile   = "file"
	OverlayTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Stores
	Remote remote.Store
	KV     kv.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Overlay and services
	Overlay          *overlay.Store
	AuthService      *auth.Service
	DirectoryService *directory.Service
}

// Config holds configuration for the application factory
type Config struct {
	// RemoteType selects the remote store backend ("memory" or "sqlite")
	// If empty, defaults to "memory"
	RemoteType string
	// SQLitePath is the database file path (required if RemoteType is "sqlite")
	SQLitePath string

	// OverlayType selects the overlay backend ("memory", "file" or "redis")
	// If empty, defaults to "memory"
	OverlayType string
	// OverlayDir is the overlay directory (required if OverlayType is "file")
	OverlayDir string
	// RedisConfig holds Redis settings (required if OverlayType is "redis")
	RedisConfig *kvredis.Config

	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	clk := clock.New()
	rnd := random.New()

	// Create the remote store
	var remoteStore remote.Store
	remoteType := cfg.RemoteType
	if remoteType == "" {
		remoteType = RemoteTypeMemory
	}

	switch remoteType {
	case RemoteTypeMemory:
		remoteStore = remotememory.New(clk)
	case RemoteTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when RemoteType is sqlite")
		}
		sqliteStore, err := remotesqlite.New(cfg.SQLitePath, clk)
		if err != nil {
			return nil, err
		}
		remoteStore = sqliteStore
	default:
		return nil, errors.New("invalid RemoteType: must be 'memory' or 'sqlite'")
	}

	// Create the overlay backend
	var kvStore kv.Store
	overlayType := cfg.OverlayType
	if overlayType == "" {
		overlayType = OverlayTypeMemory
	}

	switch overlayType {
	case OverlayTypeMemory:
		kvStore = kvmemory.New()
	case OverlayTypeFile:
		if cfg.OverlayDir == "" {
			return nil, errors.New("OverlayDir required when OverlayType is file")
		}
		fileStore, err := kvfile.New(cfg.OverlayDir)
		if err != nil {
			return nil, err
		}
		kvStore = fileStore
	case OverlayTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when OverlayType is redis")
		}
		redisStore, err := kvredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		kvStore = redisStore
	default:
		return nil, errors.New("invalid OverlayType: must be 'memory', 'file' or 'redis'")
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.Salt == "" {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(remoteStore, kvStore, clk, rnd, authCfg), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(remoteStore remote.Store, kvStore kv.Store, clk clock.Clock, rnd random.Random, authCfg auth.Config) *App {
	overlayStore := overlay.New(kvStore, clk, rnd)
	authService := auth.New(remoteStore, overlayStore, authCfg)
	directoryService := directory.New(remoteStore, overlayStore)

	return &App{
		Remote:           remoteStore,
		KV:               kvStore,
		Clock:            clk,
		Random:           rnd,
		Overlay:          overlayStore,
		AuthService:      authService,
		DirectoryService: directoryService,
	}
}
