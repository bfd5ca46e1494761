// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package token

import "github.com/olegiv/lumina-go/internal/config"

// NewFromConfig creates the session slot backend selected by the
// configuration: Redis when LUMINA_REDIS_URL is set, SQLite otherwise.
func NewFromConfig(cfg *config.Config) (Store, error) {
	if cfg.UseRedisSessions() {
		return NewRedisStore(RedisStoreOptions{
			URL:    cfg.RedisURL,
			Prefix: cfg.SessionPrefix,
		})
	}
	return NewSQLiteStore(cfg.SessionDBPath)
}
