package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores depend on this package only
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil

// Z is a sorted set member
type Z = redis.Z
