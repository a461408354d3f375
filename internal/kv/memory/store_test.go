package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *StoreSuite) TestSetAndGet() {
	err := s.store.Set(s.ctx, "session", []byte(`{"id":"u1"}`))
	s.Require().NoError(err)

	value, ok, err := s.store.Get(s.ctx, "session")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(`{"id":"u1"}`, string(value))
}

func (s *StoreSuite) TestGetAbsentKey() {
	_, ok, err := s.store.Get(s.ctx, "bookmarks")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestGetReturnsCopy() {
	_ = s.store.Set(s.ctx, "bookmarks", []byte(`["a"]`))

	value, _, _ := s.store.Get(s.ctx, "bookmarks")
	value[0] = 'X'

	again, _, _ := s.store.Get(s.ctx, "bookmarks")
	s.Equal(`["a"]`, string(again))
}

func (s *StoreSuite) TestDeleteAbsentKeySucceeds() {
	s.NoError(s.store.Delete(s.ctx, "comments"))
}
