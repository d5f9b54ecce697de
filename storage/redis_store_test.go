package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisStoreSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	store  *RedisStore
	ctx    context.Context
}

func (s *RedisStoreSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })

	s.store = NewRedisStore(client)
	s.ctx = context.Background()
}

func (s *RedisStoreSuite) TestMissingKeyIsNotFound() {
	_, err := s.store.Get(s.ctx, KeyCart)
	s.ErrorIs(err, ErrNotFound)
}

func (s *RedisStoreSuite) TestSetThenGetRoundTrip() {
	payload := []byte(`{"items":[],"totalQuantity":0,"totalAmount":0}`)

	s.Require().NoError(s.store.Set(s.ctx, KeyCart, payload))

	got, err := s.store.Get(s.ctx, KeyCart)
	s.Require().NoError(err)
	s.Equal(payload, got)
}

func (s *RedisStoreSuite) TestKeysCarryStorefrontPrefix() {
	s.Require().NoError(s.store.Set(s.ctx, KeyCart, []byte(`{}`)))

	s.True(s.server.Exists("storefront:cart"))
	s.False(s.server.Exists("cart"))
}

func (s *RedisStoreSuite) TestOverwriteKeepsLastWrite() {
	s.Require().NoError(s.store.Set(s.ctx, KeyFilters, []byte(`{"sortBy":"default"}`)))
	s.Require().NoError(s.store.Set(s.ctx, KeyFilters, []byte(`{"sortBy":"price-asc"}`)))

	got, err := s.store.Get(s.ctx, KeyFilters)
	s.Require().NoError(err)
	s.JSONEq(`{"sortBy":"price-asc"}`, string(got))
}

func (s *RedisStoreSuite) TestDeleteRemovesKey() {
	s.Require().NoError(s.store.Set(s.ctx, KeyWishlist, []byte(`{"items":[]}`)))
	s.Require().NoError(s.store.Delete(s.ctx, KeyWishlist))

	_, err := s.store.Get(s.ctx, KeyWishlist)
	s.ErrorIs(err, ErrNotFound)
}

func (s *RedisStoreSuite) TestDeleteMissingKeyIsNoOp() {
	s.NoError(s.store.Delete(s.ctx, KeyCompare))
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}
