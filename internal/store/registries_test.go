package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/lumina-go/internal/model"
)

func TestCategoryUpsertAndRemove(t *testing.T) {
	repo := NewCategoryRepo()

	created := repo.Upsert(model.Category{Name: "Technology"})
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "technology", created.Slug)

	created.Name = "Tech"
	repo.Upsert(created)

	listing := repo.List()
	require.Len(t, listing, 1)
	assert.Equal(t, "Tech", listing[0].Name)

	repo.Remove(created.ID)
	repo.Remove(created.ID) // idempotent
	assert.Empty(t, repo.List())
}

func TestMediaAddPrependsNewestFirst(t *testing.T) {
	repo := NewMediaRepo()

	repo.Add(model.MediaItem{ID: "m1", Filename: "first.jpg", Type: model.MediaTypeImage})
	repo.Add(model.MediaItem{ID: "m2", Filename: "second.jpg", Type: model.MediaTypeImage})

	listing := repo.List()
	require.Len(t, listing, 2)
	assert.Equal(t, "m2", listing[0].ID, "most recent upload must list first")

	assert.False(t, listing[0].UploadedAt.IsZero())
}

func TestMediaUpsertReplacesInPlace(t *testing.T) {
	repo := NewMediaRepo()
	repo.Add(model.MediaItem{ID: "m1", Filename: "first.jpg", Type: model.MediaTypeImage})
	repo.Add(model.MediaItem{ID: "m2", Filename: "second.jpg", Type: model.MediaTypeImage})

	repo.Upsert(model.MediaItem{ID: "m1", Filename: "renamed.jpg", Type: model.MediaTypeImage})

	listing := repo.List()
	require.Len(t, listing, 2)
	assert.Equal(t, "m2", listing[0].ID)
	assert.Equal(t, "renamed.jpg", listing[1].Filename)
}

func TestMediaRemove(t *testing.T) {
	repo := NewMediaRepo()
	repo.Add(model.MediaItem{ID: "m1", Filename: "first.jpg", Type: model.MediaTypeImage})

	repo.Remove("m1")
	assert.Empty(t, repo.List())

	repo.Remove("m1") // no-op
	assert.Empty(t, repo.List())
}

func TestPluginToggleTwiceRestoresFlag(t *testing.T) {
	repo := NewPluginRepo()
	repo.Upsert(model.Plugin{ID: "pl1", Name: "SEO Booster Pro", Active: true, Version: "1.2.0"})

	once, ok := repo.Toggle("pl1")
	require.True(t, ok)
	assert.False(t, once.Active)

	twice, ok := repo.Toggle("pl1")
	require.True(t, ok)
	assert.True(t, twice.Active, "toggling twice must restore the original flag")

	_, ok = repo.Toggle("unknown")
	assert.False(t, ok)
}

func TestUserGetByEmail(t *testing.T) {
	repo := NewUserRepo()
	repo.Upsert(model.User{ID: "u1", Email: "admin@lumina.com", Role: model.RoleAdmin})

	u, ok := repo.GetByEmail("admin@lumina.com")
	require.True(t, ok)
	assert.Equal(t, "u1", u.ID)

	_, ok = repo.GetByEmail("nobody@lumina.com")
	assert.False(t, ok)
}

func TestUserUpsertSetsIDAndCreatedAt(t *testing.T) {
	repo := NewUserRepo()

	created := repo.Upsert(model.User{Name: "New Author", Email: "author@lumina.com", Role: model.RoleAuthor})
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	created.Name = "Renamed Author"
	repo.Upsert(created)
	assert.Equal(t, 1, repo.Count())
}
