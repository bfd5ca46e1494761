package model

import (
	"testing"
	"time"
)

func TestPostPredicates(t *testing.T) {
	p := Post{Status: PostStatusPublished, Type: ContentTypePost}
	if !p.IsPublished() || p.IsDraft() {
		t.Error("published post misreported")
	}
	if p.IsPage() {
		t.Error("IsPage() = true for a post")
	}

	d := Post{Status: PostStatusDraft, Type: ContentTypePage}
	if d.IsPublished() || !d.IsDraft() {
		t.Error("draft page misreported")
	}
	if !d.IsPage() {
		t.Error("IsPage() = false for a page")
	}
}

func TestPostClone(t *testing.T) {
	published := time.Now()
	p := Post{
		ID:          "p1",
		Tags:        []string{"a", "b"},
		PublishedAt: &published,
	}

	c := p.Clone()
	c.Tags[0] = "mutated"
	*c.PublishedAt = published.Add(time.Hour)

	if p.Tags[0] != "a" {
		t.Error("Clone() shares the tags slice")
	}
	if !p.PublishedAt.Equal(published) {
		t.Error("Clone() shares the published_at pointer")
	}
}
