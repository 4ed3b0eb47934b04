package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores can take a single instance or a cluster
type Client interface {
	redis.UniversalClient
}
