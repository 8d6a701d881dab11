package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoMySQL-Admin/GoMySQL-Admin/internal/config"
)

const (
	defaultRedisPort = 6379
	pingTimeout      = 5 * time.Second
)

// Redis keeps assignments as plain string keys in redis.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to redis and verifies the connection.
func NewRedis(ctx context.Context, cfg config.Store) (*Redis, error) {
	port := cfg.Redis.Port
	if port == 0 {
		port = defaultRedisPort
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("assignment: redis ping: %w", err)
	}

	return NewRedisFromClient(client, cfg.Prefix), nil
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(username string) string {
	if r.prefix == "" {
		return username
	}

	return r.prefix + ":" + username
}

// Get implements role.AssignmentStore.
func (r *Redis) Get(ctx context.Context, username string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.key(username)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return val, true, nil
}

// Set implements role.AssignmentStore.
func (r *Redis) Set(ctx context.Context, username, role string) error {
	return r.client.Set(ctx, r.key(username), role, 0).Err()
}

// Delete implements role.AssignmentStore.
func (r *Redis) Delete(ctx context.Context, username string) error {
	return r.client.Del(ctx, r.key(username)).Err()
}

// Close implements Store.
func (r *Redis) Close() error {
	return r.client.Close()
}
