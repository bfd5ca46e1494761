// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Supported media types
const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
)

// MediaItem represents an entry in the media library. The binary
// payload lives elsewhere; the item only carries a resolvable URL.
type MediaItem struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// IsImage returns true if the media item is an image.
func (m *MediaItem) IsImage() bool {
	return m.Type == MediaTypeImage
}

// SupportedMediaTypes returns all supported media types.
func SupportedMediaTypes() []string {
	return []string{MediaTypeImage, MediaTypeVideo, MediaTypeDocument}
}

// IsSupportedMediaType checks if a media type is supported.
func IsSupportedMediaType(t string) bool {
	for _, s := range SupportedMediaTypes() {
		if s == t {
			return true
		}
	}
	return false
}
