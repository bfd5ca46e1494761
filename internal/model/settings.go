// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Theme layouts
const (
	LayoutSidebarLeft  = "sidebar-left"
	LayoutSidebarRight = "sidebar-right"
	LayoutNoSidebar    = "no-sidebar"
)

// IsValidLayout checks if a layout is one of the known theme layouts.
func IsValidLayout(layout string) bool {
	switch layout {
	case LayoutSidebarLeft, LayoutSidebarRight, LayoutNoSidebar:
		return true
	default:
		return false
	}
}

// GeneralSettings holds the site identity section.
type GeneralSettings struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
}

// SEOSettings holds search engine related options.
type SEOSettings struct {
	SearchEngineVisible bool   `json:"searchEngineVisible"`
	MetaKeywords        string `json:"metaKeywords"`
}

// SocialSettings holds social profile links.
type SocialSettings struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// SMTPSettings holds outgoing mail configuration. Host/port are not
// validated here; enabling SMTP is a pure flag.
type SMTPSettings struct {
	Host    string `json:"host"`
	Port    string `json:"port"`
	User    string `json:"user"`
	Enabled bool   `json:"enabled"`
}

// AdsSettings holds ad slot snippets per layout position.
type AdsSettings struct {
	HeaderSlot  string `json:"headerSlot"`
	SidebarSlot string `json:"sidebarSlot"`
	FooterSlot  string `json:"footerSlot"`
}

// AGCSettings holds auto-generated-content import options.
type AGCSettings struct {
	RSSSourceURL string `json:"rssSourceUrl"`
	Enabled      bool   `json:"enabled"`
}

// SiteSettings is the fixed-shape site configuration document.
// Each section is replaced as a whole; cross-section consistency is
// the caller's responsibility.
type SiteSettings struct {
	General GeneralSettings `json:"general"`
	SEO     SEOSettings     `json:"seo"`
	Social  SocialSettings  `json:"social"`
	SMTP    SMTPSettings    `json:"smtp"`
	Ads     AdsSettings     `json:"ads"`
	AGC     AGCSettings     `json:"agc"`
}

// ThemeConfig holds the active theme and layout choice, replaced
// wholesale on each save.
type ThemeConfig struct {
	ActiveTheme string `json:"activeTheme"`
	Layout      string `json:"layout"`
	ShowRSSFeed bool   `json:"showRssFeed"`
}
