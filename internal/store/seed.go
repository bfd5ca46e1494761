package store

import (
	"log/slog"
	"time"

	"github.com/olegiv/lumina-go/internal/model"
)

// Default identity used for the demo login fallback.
const (
	DefaultAdminEmail = "admin@lumina.com"
	DefaultAdminName  = "Admin User"
)

// Seed loads the sample fixtures so the admin surface has non-empty
// state to render immediately. The values are fixtures only and carry
// no semantic weight. Seeding an already-populated store is skipped.
func Seed(s *Store) {
	if s.Users.Count() > 0 {
		slog.Info("store already seeded, skipping")
		return
	}

	now := time.Now()

	users := []model.User{
		{ID: "u1", Name: DefaultAdminName, Email: DefaultAdminEmail, Role: model.RoleAdmin,
			AvatarURL: "https://picsum.photos/id/64/100/100", CreatedAt: now},
		{ID: "u2", Name: "Jane Moderator", Email: "mod@lumina.com", Role: model.RoleModerator,
			AvatarURL: "https://picsum.photos/id/65/100/100", CreatedAt: now},
		{ID: "u3", Name: "John Doe", Email: "john@gmail.com", Role: model.RoleUser,
			AvatarURL: "https://picsum.photos/id/66/100/100", CreatedAt: now},
	}
	for _, u := range users {
		s.Users.Upsert(u)
	}

	categories := []model.Category{
		{ID: "c1", Name: "Technology", Slug: "tech", Count: 5},
		{ID: "c2", Name: "Lifestyle", Slug: "lifestyle", Count: 3},
		{ID: "c3", Name: "Tutorials", Slug: "tutorials", Count: 8},
	}
	for _, c := range categories {
		s.Categories.Upsert(c)
	}

	media := []model.MediaItem{
		{ID: "m3", URL: "https://picsum.photos/id/3/800/400", Filename: "coding-setup.jpg", Type: model.MediaTypeImage, UploadedAt: now},
		{ID: "m2", URL: "https://picsum.photos/id/2/800/400", Filename: "writing-notebook.jpg", Type: model.MediaTypeImage, UploadedAt: now},
		{ID: "m1", URL: "https://picsum.photos/id/20/800/400", Filename: "laptop-work.jpg", Type: model.MediaTypeImage, UploadedAt: now},
	}
	for _, m := range media {
		s.Media.Add(m)
	}

	plugins := []model.Plugin{
		{ID: "pl1", Name: "SEO Booster Pro", Description: "Automatically generates meta tags and sitemaps.", Active: true, Version: "1.2.0"},
		{ID: "pl2", Name: "AGC RSS Importer", Description: "Auto-generate content from RSS feeds.", Active: false, Version: "0.9.beta"},
		{ID: "pl3", Name: "Super Cache", Description: "Speed up your site by caching static pages.", Active: true, Version: "2.0.1"},
	}
	for _, p := range plugins {
		s.Plugins.Upsert(p)
	}

	if err := s.Config.SaveSettings(model.SiteSettings{
		General: model.GeneralSettings{Title: "Lumina CMS", Description: "A modern blogging platform", Language: "en"},
		SEO:     model.SEOSettings{SearchEngineVisible: true, MetaKeywords: "blog, cms, lumina"},
		Social:  model.SocialSettings{Facebook: "https://facebook.com", Twitter: "@lumina"},
		SMTP:    model.SMTPSettings{Host: "smtp.gmail.com", Port: "587", User: "noreply@lumina.com", Enabled: false},
	}); err != nil {
		slog.Error("seeding settings", "error", err)
	}

	if err := s.Config.SaveTheme(model.ThemeConfig{
		ActiveTheme: "default-light",
		Layout:      model.LayoutSidebarRight,
		ShowRSSFeed: true,
	}); err != nil {
		slog.Error("seeding theme", "error", err)
	}

	s.Content.Save(model.Post{
		ID:               "p1",
		AuthorID:         "u1",
		Title:            "Welcome to Lumina CMS",
		Slug:             "welcome-to-lumina",
		Content:          "# Welcome to the Future of Blogging\n\nLumina is a minimalist CMS designed for speed.",
		Excerpt:          "An introduction to the new Lumina Content Management System.",
		Status:           model.PostStatusPublished,
		Type:             model.ContentTypePost,
		FeaturedImageURL: "https://picsum.photos/id/20/800/400",
		Tags:             []string{"Announcement", "Tech"},
		CategoryID:       "c1",
		ReadingTime:      2,
	})

	s.Content.Save(model.Post{
		ID:       "page1",
		AuthorID: "u1",
		Title:    "About Us",
		Slug:     "about",
		Content:  "# About Lumina\n\nWe are a team of passionate developers.",
		Excerpt:  "Learn more about the team behind Lumina.",
		Status:   model.PostStatusPublished,
		Type:     model.ContentTypePage,
		Tags:     []string{},
	})

	slog.Info("sample content seeded",
		"users", s.Users.Count(),
		"posts", s.Content.Count(model.ContentTypePost),
		"pages", s.Content.Count(model.ContentTypePage),
	)
}
