package database

import "github.com/redis/go-redis/v9"

// Redis wraps a go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis creates a Redis client for the given address.
func NewRedis(addr, password string, db int) *Redis {
	return &Redis{Client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}
