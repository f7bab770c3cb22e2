package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alimikegami/seller-dashboard/config"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type CacheTestSuite struct {
	suite.Suite
	client *goredis.Client
	cache  *Cache
}

func (s *CacheTestSuite) SetupSuite() {
	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		s.T().Skip("TEST_REDIS_ADDRESS not set")
	}

	client, err := CreateRedisClient(context.Background(), config.RedisConfig{Address: addr})
	s.Require().NoError(err)

	s.client = client
	s.cache = CreateCache(client)
}

func (s *CacheTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *CacheTestSuite) Test_SetGetDelete() {
	ctx := context.Background()
	type payload struct {
		Name string `json:"name"`
	}

	s.Require().NoError(s.cache.Set(ctx, "test:cache", payload{Name: "shoes"}, time.Minute))

	var got payload
	s.Require().NoError(s.cache.Get(ctx, "test:cache", &got))
	s.Equal("shoes", got.Name)

	s.Require().NoError(s.cache.Delete(ctx, "test:cache"))
	s.ErrorIs(s.cache.Get(ctx, "test:cache", &got), ErrCacheMiss)
}

func (s *CacheTestSuite) Test_SetOnceAndTake() {
	ctx := context.Background()

	ok, err := s.cache.SetOnce(ctx, "test:state", "1", time.Minute)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.cache.SetOnce(ctx, "test:state", "2", time.Minute)
	s.Require().NoError(err)
	s.False(ok)

	v, err := s.cache.Take(ctx, "test:state")
	s.Require().NoError(err)
	s.Equal("1", v)

	_, err = s.cache.Take(ctx, "test:state")
	s.ErrorIs(err, ErrCacheMiss)
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}
