// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Post statuses
const (
	PostStatusDraft     = "DRAFT"
	PostStatusPublished = "PUBLISHED"
)

// Content types
const (
	ContentTypePost = "post"
	ContentTypePage = "page"
)

// Post represents a content entity: either a blog post or a standalone
// page, discriminated by Type. Content is raw markdown and is treated
// as opaque text by the repositories.
type Post struct {
	ID               string     `json:"id"`
	AuthorID         string     `json:"author_id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt,omitempty"`
	Status           string     `json:"status"`
	Type             string     `json:"type"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	FeaturedImageURL string     `json:"featured_image_url,omitempty"`
	MetaTitle        string     `json:"meta_title,omitempty"`
	MetaDescription  string     `json:"meta_description,omitempty"`
	ReadingTime      int        `json:"reading_time,omitempty"` // minutes
	Tags             []string   `json:"tags"`
	CategoryID       string     `json:"category_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsPublished returns true if the post is published.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// IsDraft returns true if the post is a draft.
func (p *Post) IsDraft() bool {
	return p.Status == PostStatusDraft
}

// IsPage returns true if the entity is a standalone page.
func (p *Post) IsPage() bool {
	return p.Type == ContentTypePage
}

// Clone returns a deep copy of the post so callers never alias
// repository-internal state.
func (p *Post) Clone() Post {
	out := *p
	if p.Tags != nil {
		out.Tags = make([]string, len(p.Tags))
		copy(out.Tags, p.Tags)
	}
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		out.PublishedAt = &t
	}
	return out
}
