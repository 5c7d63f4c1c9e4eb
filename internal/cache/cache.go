// Package cache is a small Redis backed JSON cache.
//
// A nil *Cache is valid and disables caching: every fetch calls the loader.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Default is the cache used by the API. It is nil unless Redis is configured.
var Default *Cache

// Cache wraps a Redis client. Keys are namespaced and versioned so that a
// whole namespace can be invalidated at once.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect creates a Redis client and verifies the connection.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: ping: %w", err)
	}

	return client, nil
}

// New returns a cache storing values for ttl.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Enabled reports whether values are cached.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Ping checks the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func versionKey(namespace string) string {
	return namespace + ":version"
}

// version returns the current version of a namespace. Missing versions are 0.
func (c *Cache) version(ctx context.Context, namespace string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(namespace)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Key composes a versioned key in a namespace.
func (c *Cache) Key(ctx context.Context, namespace string, parts ...string) (string, error) {
	key := namespace
	if len(parts) > 0 {
		key = namespace + ":" + strings.Join(parts, ":")
	}

	if !c.Enabled() {
		return key, nil
	}

	v, err := c.version(ctx, namespace)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:v%d", key, v), nil
}

// FetchJSON loads a cached value into dest. On a miss, the loader is called and its
// result is stored.
//
// Redis errors are logged and the loader is used, the cache never fails a request.
func (c *Cache) FetchJSON(ctx context.Context, namespace string, parts []string, dest any, loader func(context.Context) (any, error)) error {
	if !c.Enabled() {
		return load(ctx, dest, loader)
	}

	key, err := c.Key(ctx, namespace, parts...)
	if err != nil {
		log.Warn().Err(err).Str("namespace", namespace).Msg("cache unavailable")
		return load(ctx, dest, loader)
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return json.Unmarshal(payload, dest)
	}

	if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return load(ctx, dest, loader)
	}

	value, err := loader(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return json.Unmarshal(raw, dest)
}

// Invalidate drops all values of a namespace by bumping its version.
func (c *Cache) Invalidate(ctx context.Context, namespace string) error {
	if !c.Enabled() {
		return nil
	}

	return c.client.Incr(ctx, versionKey(namespace)).Err()
}

func load(ctx context.Context, dest any, loader func(context.Context) (any, error)) error {
	value, err := loader(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, dest)
}
