// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/olegiv/lumina-go/internal/config"
	"github.com/olegiv/lumina-go/internal/logging"
	"github.com/olegiv/lumina-go/internal/session"
	"github.com/olegiv/lumina-go/internal/session/token"
	"github.com/olegiv/lumina-go/internal/store"
	"github.com/olegiv/lumina-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Lumina - publishing platform backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LUMINA_SESSION_DB_PATH  SQLite session database path (default: ./data/lumina.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LUMINA_REDIS_URL        Redis URL for the session slot (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LUMINA_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LUMINA_LOG_LEVEL        Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LUMINA_DO_SEED          Load sample content on startup (default: true)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("lumina %s\n", info)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger with the in-memory event log for WARN and above
	logLevel := logging.ParseLevel(cfg.LogLevel)
	eventLog := logging.NewEventLog(logging.DefaultEventCapacity)
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(logging.NewEventLogHandler(textHandler, eventLog)))

	// Durable session slot
	if !cfg.UseRedisSessions() {
		if err := os.MkdirAll(filepath.Dir(cfg.SessionDBPath), 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	tokens, err := token.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("initializing session storage: %w", err)
	}
	defer func() {
		if err := tokens.Close(); err != nil {
			slog.Error("closing session storage", "error", err)
		}
	}()

	// Repositories
	st := store.New()
	if cfg.DoSeed {
		store.Seed(st)
	}

	// Session manager with the demo fallback identity from the seed set.
	opts := []session.Option{}
	if fallback, ok := st.Users.GetByEmail(store.DefaultAdminEmail); ok {
		opts = append(opts, session.WithFallback(fallback))
	}
	sessions := session.NewManager(st.Users, tokens, opts...)

	ctx := context.Background()
	if current, ok := sessions.Current(ctx); ok {
		slog.Info("restored session", "email", current.Email, "role", current.Role)
	}

	stats := st.Stats()
	slog.Info("lumina backend ready",
		"env", cfg.Env,
		"posts", stats.PostCount,
		"pages", stats.PageCount,
		"users", stats.UserCount,
		"media", stats.MediaCount,
	)

	return nil
}
