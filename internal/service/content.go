// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic services.
package service

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// wordsPerMinute is the average reading speed used for estimates.
const wordsPerMinute = 200

// excerptMaxRunes limits the length of a derived excerpt.
const excerptMaxRunes = 160

// markdown is the shared goldmark instance used to render content for
// text extraction. Content is arbitrary text; goldmark renders anything
// without erroring on malformed markup.
var markdown = goldmark.New()

// stripPolicy removes all HTML tags, leaving plain text only.
var stripPolicy = bluemonday.StrictPolicy()

// PlainText renders markdown content and strips all markup, returning
// whitespace-normalized plain text.
func PlainText(content string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		// Fall back to the raw text; content is opaque and may not be markdown.
		return strings.Join(strings.Fields(content), " ")
	}

	text := stripPolicy.Sanitize(buf.String())
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// ReadingTime estimates the reading time of markdown content in whole
// minutes. Non-empty content always takes at least one minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(PlainText(content)))
	if words == 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return minutes
}

// Excerpt derives a short plain-text excerpt from markdown content,
// cut at a word boundary.
func Excerpt(content string) string {
	text := PlainText(content)
	runes := []rune(text)
	if len(runes) <= excerptMaxRunes {
		return text
	}

	cut := string(runes[:excerptMaxRunes])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
