package db

import (
	"context"
	"time"
)

// RedisClient defines the methods available in the Redis-backed cache client
type RedisClient interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	GetContext() context.Context
	Ping() error
}

type cacheMissError struct{}

func (cacheMissError) Error() string { return "cache miss" }

// ErrCacheMiss distinguishes an absent key from a transport failure.
var ErrCacheMiss error = cacheMissError{}
