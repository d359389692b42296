//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"nicgate/internal/validation/models"
	"nicgate/internal/validation/store"
	"nicgate/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *store.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = store.NewRedisCache(s.redis.Client, 5*time.Minute)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()
	record := &models.ValidationRecord{
		ID:            uuid.New(),
		NIC:           "891234567V",
		Accepted:      true,
		SemanticValid: true,
		Format:        "legacy",
		BirthYear:     1989,
		DayOfYear:     123,
		Gender:        "male",
		FinalState:    "legacy_suffix",
		Trace:         []string{"start", "year_1", "year_2"},
		CheckedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}

	s.Require().NoError(s.cache.Save(ctx, record))

	found, err := s.cache.Find(ctx, "891234567V")
	s.Require().NoError(err)
	s.Equal(record.ID, found.ID)
	s.Equal(record.NIC, found.NIC)
	s.Equal(record.Trace, found.Trace)
	s.Equal(record.BirthYear, found.BirthYear)
	s.True(found.Accepted)
}

func (s *RedisCacheSuite) TestMissReturnsErrNotFound() {
	_, err := s.cache.Find(context.Background(), "199851234567")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *RedisCacheSuite) TestNilRecordIsNoOp() {
	s.Require().NoError(s.cache.Save(context.Background(), nil))
}

func (s *RedisCacheSuite) TestTTLEviction() {
	ctx := context.Background()
	shortTTLCache := store.NewRedisCache(s.redis.Client, 50*time.Millisecond)

	record := &models.ValidationRecord{
		ID:        uuid.New(),
		NIC:       "851234567X",
		Accepted:  true,
		CheckedAt: time.Now().UTC(),
	}
	s.Require().NoError(shortTTLCache.Save(ctx, record))

	time.Sleep(90 * time.Millisecond)

	_, err := shortTTLCache.Find(ctx, "851234567X")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *RedisCacheSuite) TestRejectedVerdictCachedToo() {
	ctx := context.Background()
	record := &models.ValidationRecord{
		ID:         uuid.New(),
		NIC:        "900012345678",
		Accepted:   false,
		Reason:     "invalid_numeric",
		FinalState: "reject",
		Trace:      []string{"start", "year_1"},
		CheckedAt:  time.Now().UTC(),
	}
	s.Require().NoError(s.cache.Save(ctx, record))

	found, err := s.cache.Find(ctx, "900012345678")
	s.Require().NoError(err)
	s.False(found.Accepted)
	s.Equal("invalid_numeric", found.Reason)
}
