package factory

import (
	"time"

	"github.com/marufsabili148/lombaku/internal/dependencies/mocks"
	kvmemory "github.com/marufsabili148/lombaku/internal/kv/memory"
	remotememory "github.com/marufsabili148/lombaku/internal/remote/memory"
	"github.com/marufsabili148/lombaku/internal/services/auth"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// RemoteMemory is the in-memory remote store for seeding test data
	RemoteMemory *remotememory.Store

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	remoteStore := remotememory.New(mockClock)
	kvStore := kvmemory.New()

	app := newWithDependencies(remoteStore, kvStore, mockClock, mockRandom, auth.DefaultConfig())

	return &TestApp{
		App:          app,
		RemoteMemory: remoteStore,
		MockClock:    mockClock,
		MockRandom:   mockRandom,
	}
}
