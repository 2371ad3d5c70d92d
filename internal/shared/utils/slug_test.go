package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"simple title", "article title", "article-title"},
		{"uppercase", "Article Title", "article-title"},
		{"diacritics", "Crème Brûlée für Alle", "creme-brulee-fur-alle"},
		{"special characters", "what's new in go 1.24?", "whats-new-in-go-124"},
		{"consecutive separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  !hello!  ", "hello"},
		{"digits kept", "top 10 posts", "top-10-posts"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"article title", "Crème Brûlée", "a--b--c", "Tag A, Tag B"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestSlugifyAlphabet(t *testing.T) {
	// Every produced rune must be in [a-z0-9-].
	for _, in := range []string{"Hello, World!", "ŁÓDŹ 2024", "x y z"} {
		slug := Slugify(in)
		assert.NotEmpty(t, slug)
		for _, r := range slug {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.Truef(t, ok, "unexpected rune %q in slug %q", r, slug)
		}
	}
}

func TestAvatarUploadPath(t *testing.T) {
	assert.Equal(t,
		"static/library/author/author/avatar.png",
		AvatarUploadPath("author", "avatar.png"),
	)
	assert.Equal(t,
		"static/library/author/jane/photo.jpg",
		AvatarUploadPath("jane", "photo.jpg"),
	)
}
