package service

import (
	"strings"
	"testing"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "heading and paragraph",
			input:    "# Welcome\n\nLumina is a minimalist CMS.",
			expected: "Welcome Lumina is a minimalist CMS.",
		},
		{
			name:     "inline markup stripped",
			input:    "Some **bold** and _italic_ text",
			expected: "Some bold and italic text",
		},
		{
			name:     "raw html stripped",
			input:    "before <script>alert(1)</script> after",
			expected: "before after",
		},
		{
			name:     "plain text unchanged",
			input:    "just words",
			expected: "just words",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.input); got != tt.expected {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReadingTime(t *testing.T) {
	if got := ReadingTime(""); got != 0 {
		t.Errorf("ReadingTime of empty content = %d, want 0", got)
	}
	if got := ReadingTime("a few short words"); got != 1 {
		t.Errorf("ReadingTime of short content = %d, want 1", got)
	}

	long := strings.Repeat("word ", 450)
	if got := ReadingTime(long); got != 3 {
		t.Errorf("ReadingTime of 450 words = %d, want 3", got)
	}
}

func TestExcerpt(t *testing.T) {
	short := "# Title\n\nA short body."
	if got := Excerpt(short); got != "Title A short body." {
		t.Errorf("Excerpt(short) = %q", got)
	}

	long := strings.Repeat("lorem ipsum ", 40)
	got := Excerpt(long)
	if len([]rune(got)) > 161 {
		t.Errorf("Excerpt too long: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Excerpt of long content should end with ellipsis, got %q", got)
	}
}
