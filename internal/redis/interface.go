package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories use. Embedding
// UniversalClient lets a single node or cluster client satisfy it.
type Client interface {
	redis.UniversalClient
}
