package content_test

import (
	"testing"

	"devblogg/backend/internal/content"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Go 1.22: What's New?", "go-122-whats-new"},
		{"whitespace runs collapse", "  spaced \t out\n title  ", "spaced-out-title"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"non-ascii dropped", "Héllo Wörld", "hllo-wrld"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, content.Slugify(tc.title))
		})
	}
}
