package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/marufsabili148/lombaku/internal/dependencies/mocks"
	"github.com/marufsabili148/lombaku/internal/dependencies/random"
	kvmemory "github.com/marufsabili148/lombaku/internal/kv/memory"
	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/overlay"
	"github.com/marufsabili148/lombaku/internal/remote"
	remotememory "github.com/marufsabili148/lombaku/internal/remote/memory"
)

type ServiceSuite struct {
	suite.Suite
	remote  *remotememory.Store
	overlay *overlay.Store
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.remote = remotememory.New(s.clock)
	s.overlay = overlay.New(kvmemory.New(), s.clock, mocks.NewMockRandom())
	s.service = New(s.remote, s.overlay, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ServiceSuite) seedUser(email, password, name string) *model.User {
	user, err := s.remote.InsertUser(s.ctx, remote.NewUser{
		Email:        email,
		Name:         name,
		PasswordHash: HashPassword(password, DefaultSalt),
	})
	s.Require().NoError(err)
	return user
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	seeded := s.seedUser("a@x.com", "secret", "A")

	session, err := s.service.Login(s.ctx, "a@x.com", "secret")
	s.Require().NoError(err)
	s.Equal(seeded.ID, session.UserID)
	s.Equal("a@x.com", session.Email)
	s.Equal("A", session.Name)
}

func (s *ServiceSuite) TestLoginFoldsEmailCase() {
	s.seedUser("a@x.com", "secret", "A")

	session, err := s.service.Login(s.ctx, "A@X.COM", "secret")
	s.Require().NoError(err)
	s.Equal("a@x.com", session.Email)
}

func (s *ServiceSuite) TestLoginPersistsSession() {
	s.seedUser("a@x.com", "secret", "A")

	_, _ = s.service.Login(s.ctx, "a@x.com", "secret")

	current, err := s.service.CurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(current)
	s.Equal("A", current.Name)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	s.seedUser("a@x.com", "secret", "A")

	_, err := s.service.Login(s.ctx, "a@x.com", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)

	current, _ := s.service.CurrentSession(s.ctx)
	s.Nil(current) // still signed out
}

func (s *ServiceSuite) TestLoginFailsWithUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@x.com", "secret")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "B@X.com", "hunter2", "B")
	s.Require().NoError(err)
	s.Equal("b@x.com", session.Email)
	s.Equal("B", session.Name)
	s.NotEmpty(session.UserID)
}

func (s *ServiceSuite) TestRegisterStoresDigestNotPassword() {
	_, _ = s.service.Register(s.ctx, "b@x.com", "hunter2", "B")

	user, err := s.remote.GetUserByEmail(s.ctx, "b@x.com")
	s.Require().NoError(err)
	s.NotEqual("hunter2", user.PasswordHash)
	s.Equal(HashPassword("hunter2", DefaultSalt), user.PasswordHash)
}

func (s *ServiceSuite) TestRegisterRejectsDuplicateEmail() {
	s.seedUser("b@x.com", "first", "B")

	_, err := s.service.Register(s.ctx, "B@x.com", "second", "B2")
	s.ErrorIs(err, ErrEmailExists)
}

func (s *ServiceSuite) TestRegisterThenLogin() {
	_, _ = s.service.Register(s.ctx, "b@x.com", "hunter2", "B")
	_ = s.service.Logout(s.ctx)

	session, err := s.service.Login(s.ctx, "b@x.com", "hunter2")
	s.Require().NoError(err)
	s.Equal("B", session.Name)
}

// Logout tests

func (s *ServiceSuite) TestLogoutClearsSession() {
	s.seedUser("a@x.com", "secret", "A")
	_, _ = s.service.Login(s.ctx, "a@x.com", "secret")

	s.Require().NoError(s.service.Logout(s.ctx))

	current, _ := s.service.CurrentSession(s.ctx)
	s.Nil(current)
}

func (s *ServiceSuite) TestLogoutWhileSignedOutSucceeds() {
	s.NoError(s.service.Logout(s.ctx))
}

// Rename tests

func (s *ServiceSuite) TestRenameUpdatesRemoteAndLocal() {
	s.seedUser("a@x.com", "secret", "A")
	_, _ = s.service.Login(s.ctx, "a@x.com", "secret")

	session, err := s.service.Rename(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal("Alice", session.Name)

	user, _ := s.remote.GetUserByEmail(s.ctx, "a@x.com")
	s.Equal("Alice", user.Name)

	current, _ := s.service.CurrentSession(s.ctx)
	s.Equal("Alice", current.Name)
}

func (s *ServiceSuite) TestRenameRequiresSession() {
	_, err := s.service.Rename(s.ctx, "Alice")
	s.ErrorIs(err, ErrNotSignedIn)
}

func (s *ServiceSuite) TestRenameLeavesLocalNameOnRemoteFailure() {
	s.seedUser("a@x.com", "secret", "A")
	_, _ = s.service.Login(s.ctx, "a@x.com", "secret")

	failing := New(&renameFailingStore{Store: s.remote}, s.overlay, DefaultConfig())

	_, err := failing.Rename(s.ctx, "Alice")
	s.Error(err)

	current, _ := s.service.CurrentSession(s.ctx)
	s.Equal("A", current.Name) // unchanged
}

// Digest tests

func (s *ServiceSuite) TestHashPasswordIsDeterministic() {
	s.Equal(HashPassword("secret", DefaultSalt), HashPassword("secret", DefaultSalt))
}

func (s *ServiceSuite) TestHashPasswordSeparatesDistinctInputs() {
	rnd := random.New()
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#"

	for i := 0; i < 100; i++ {
		a := rnd.String(1+rnd.Intn(24), alphabet)
		b := rnd.String(1+rnd.Intn(24), alphabet)
		if a == b {
			continue
		}
		s.NotEqual(HashPassword(a, DefaultSalt), HashPassword(b, DefaultSalt),
			"digests of %q and %q collided", a, b)
	}
}

func (s *ServiceSuite) TestHashPasswordUsesSalt() {
	s.NotEqual(HashPassword("secret", "salt-a"), HashPassword("secret", "salt-b"))
}

// renameFailingStore wraps a remote store and fails every name update
type renameFailingStore struct {
	remote.Store
}

func (f *renameFailingStore) UpdateUserName(ctx context.Context, id model.UserID, name string) error {
	return errors.New("remote store unavailable")
}
