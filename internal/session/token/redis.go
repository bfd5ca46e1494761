// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/olegiv/lumina-go/internal/model"
)

// RedisStore persists the session slot in Redis, for deployments where
// the process is not pinned to one host.
type RedisStore struct {
	client *redis.Client
	key    string
}

// RedisStoreOptions configures the Redis session store.
type RedisStoreOptions struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// Prefix is prepended to the slot key (e.g., "lumina:")
	Prefix string

	// ConnectTimeout is the timeout for establishing a connection
	ConnectTimeout time.Duration
}

// NewRedisStore creates a Redis session store and verifies the connection.
func NewRedisStore(opts RedisStoreOptions) (*RedisStore, error) {
	if opts.URL == "" {
		return nil, errors.New("redis URL is required")
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &RedisStore{
		client: client,
		key:    opts.Prefix + "session:" + slotName,
	}, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, user model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializing session: %w", err)
	}

	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Load implements Store. A missing key or an unparseable payload both
// yield "no session".
func (s *RedisStore) Load(ctx context.Context) (model.User, bool, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var user model.User
	if err := json.Unmarshal(payload, &user); err != nil {
		slog.Warn("discarding corrupt session payload", "error", err)
		return model.User{}, false, nil
	}
	return user, true, nil
}

// Clear implements Store.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
