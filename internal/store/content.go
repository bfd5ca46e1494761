// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/lumina-go/internal/model"
	"github.com/olegiv/lumina-go/internal/service"
	"github.com/olegiv/lumina-go/internal/util"
)

// ContentRepo owns the collection of posts and pages. New entities are
// prepended so listings read most-recently-created first; in-place
// updates keep their position.
type ContentRepo struct {
	mu    sync.RWMutex
	posts []model.Post
}

// NewContentRepo creates an empty content repository.
func NewContentRepo() *ContentRepo {
	return &ContentRepo{}
}

// List returns posts matching the given type, optionally filtered by
// status. Pass an empty status to list drafts and published entities alike.
func (r *ContentRepo) List(contentType, status string) []model.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Post, 0)
	for i := range r.posts {
		if r.posts[i].Type != contentType {
			continue
		}
		if status != "" && r.posts[i].Status != status {
			continue
		}
		out = append(out, r.posts[i].Clone())
	}
	return out
}

// GetByID returns the post with the given id.
func (r *ContentRepo) GetByID(id string) (model.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			return r.posts[i].Clone(), true
		}
	}
	return model.Post{}, false
}

// GetBySlug returns the post with the given slug. Slugs are unique per
// type at write time, so a slug identifies at most one post and one page.
func (r *ContentRepo) GetBySlug(slug string) (model.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.posts {
		if r.posts[i].Slug == slug {
			return r.posts[i].Clone(), true
		}
	}
	return model.Post{}, false
}

// Save stores a post. An existing id is replaced in place with a
// refreshed UpdatedAt; otherwise the post is inserted at the front with
// CreatedAt and UpdatedAt set to now. An empty id gets a fresh UUID, an
// empty slug is derived from the title, and slugs are de-duplicated per
// type with a numeric suffix. Missing excerpt and reading time are
// derived from the content. Returns the stored record.
func (r *ContentRepo) Save(post model.Post) model.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Slug == "" {
		post.Slug = util.Slugify(post.Title)
	}
	post.Slug = r.uniqueSlug(post.Slug, post.Type, post.ID)

	if post.Excerpt == "" {
		post.Excerpt = service.Excerpt(post.Content)
	}
	if post.ReadingTime == 0 {
		post.ReadingTime = service.ReadingTime(post.Content)
	}

	switch post.Status {
	case model.PostStatusPublished:
		if post.PublishedAt == nil {
			t := now
			post.PublishedAt = &t
		}
	case model.PostStatusDraft:
		post.PublishedAt = nil
	}

	post.UpdatedAt = now

	for i := range r.posts {
		if r.posts[i].ID == post.ID {
			// In-place replace preserves position and the original CreatedAt.
			post.CreatedAt = r.posts[i].CreatedAt
			r.posts[i] = post.Clone()
			return post
		}
	}

	post.CreatedAt = now
	r.posts = append([]model.Post{post.Clone()}, r.posts...)
	return post
}

// Delete removes the post with the given id. Deleting an unknown id is
// a no-op, so the operation is idempotent.
func (r *ContentRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return
		}
	}
}

// Count returns the number of entities of the given type.
func (r *ContentRepo) Count(contentType string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for i := range r.posts {
		if r.posts[i].Type == contentType {
			n++
		}
	}
	return n
}

// uniqueSlug appends a numeric suffix until the slug is unique among
// entities of the same type, ignoring the entity being saved.
// Caller must hold the lock.
func (r *ContentRepo) uniqueSlug(slug, contentType, selfID string) string {
	candidate := slug
	for n := 2; r.slugTaken(candidate, contentType, selfID); n++ {
		candidate = fmt.Sprintf("%s-%d", slug, n)
	}
	return candidate
}

func (r *ContentRepo) slugTaken(slug, contentType, selfID string) bool {
	for i := range r.posts {
		if r.posts[i].Type == contentType && r.posts[i].Slug == slug && r.posts[i].ID != selfID {
			return true
		}
	}
	return false
}
