package redis

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

// Client is the redis surface the repositories use
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
var Nil = redis.Nil

// IsNil reports whether err is a missing key
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
