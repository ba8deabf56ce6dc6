package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trainer-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	client, err := redis.NewClient("", nil)
	s.Error(err)
	s.Nil(client)
}

func (s *ClientTestSuite) TestNewClientPing() {
	client, err := redis.NewClient(s.mr.Addr(), &redis.Options{PoolSize: 2})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client, time.Second))
}

func (s *ClientTestSuite) TestNewClientFromURL() {
	client, err := redis.NewClientFromURL("redis://" + s.mr.Addr() + "/0")
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client, time.Second))

	_, err = redis.NewClientFromURL("http://not-redis")
	s.Error(err)
}

func (s *ClientTestSuite) TestPingUnreachable() {
	addr := s.mr.Addr()
	s.mr.Close()

	client, err := redis.NewClient(addr, &redis.Options{MaxRetries: -1})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.Error(redis.Ping(context.Background(), client, 200*time.Millisecond))
}
