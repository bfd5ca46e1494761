package token

import (
	"context"
	"os"
	"testing"

	"github.com/olegiv/lumina-go/internal/model"
)

// skipIfNoRedis skips the test if Redis is not configured.
func skipIfNoRedis(t *testing.T) string {
	url := os.Getenv("LUMINA_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: LUMINA_TEST_REDIS_URL not set")
	}
	return url
}

func TestRedisStoreRoundTrip(t *testing.T) {
	url := skipIfNoRedis(t)

	s, err := NewRedisStore(RedisStoreOptions{URL: url, Prefix: "test:"})
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	_ = s.Clear(ctx)

	_, ok, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Fatal("Load() ok = true on empty slot")
	}

	user := model.User{ID: "u2", Email: "mod@lumina.com", Role: model.RoleModerator}
	if err := s.Save(ctx, user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok || got.Email != user.Email {
		t.Errorf("Load() = (%+v, %v), want saved user", got, ok)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	_, ok, _ = s.Load(ctx)
	if ok {
		t.Error("Load() ok = true after Clear")
	}
}

func TestRedisStoreRequiresURL(t *testing.T) {
	if _, err := NewRedisStore(RedisStoreOptions{}); err == nil {
		t.Error("NewRedisStore() with no URL must fail")
	}
}
