package engine

import (
	"strings"
	"testing"

	"virtual-ta/internal/content"
)

func TestLinkLabel(t *testing.T) {
	cases := []struct {
		name string
		meta content.Metadata
		want string
	}{
		{
			name: "course material by filename",
			meta: content.Metadata{Source: "data/course_content/week3_scraping.md"},
			want: "Course Material: week3_scraping.md",
		},
		{
			name: "discussion with title",
			meta: content.Metadata{Source: "https://discourse.example.com/t/ga4/155939", Title: "GA4 Bonus"},
			want: "Discussion: GA4 Bonus",
		},
		{
			name: "discussion without title uses post id",
			meta: content.Metadata{Source: "https://discourse.example.com/t/5/7"},
			want: "Discussion Post #7",
		},
		{
			name: "trailing slash stripped before post id",
			meta: content.Metadata{Source: "https://discourse.example.com/t/5/7/"},
			want: "Discussion Post #7",
		},
		{
			name: "non-url source falls back to filename",
			meta: content.Metadata{Source: "some-opaque-ref", Filename: "notes.md"},
			want: "notes.md",
		},
		{
			name: "no filename falls back to raw source",
			meta: content.Metadata{Source: "some-opaque-ref"},
			want: "some-opaque-ref",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := linkLabel(tc.meta); got != tc.want {
				t.Errorf("linkLabel(%+v) = %q, want %q", tc.meta, got, tc.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	withContext := buildPrompt("What is the deadline?", "The deadline is Friday.")
	if !strings.Contains(withContext, "CONTEXT:") || !strings.Contains(withContext, "The deadline is Friday.") {
		t.Errorf("context prompt missing context block: %q", withContext)
	}
	if !strings.Contains(withContext, "What is the deadline?") {
		t.Error("context prompt missing the question")
	}

	without := buildPrompt("What is the deadline?", "")
	if strings.Contains(without, "CONTEXT:") {
		t.Errorf("no-context prompt should not carry a context block: %q", without)
	}
	if !strings.Contains(without, "What is the deadline?") {
		t.Error("no-context prompt missing the question")
	}
	if !strings.HasPrefix(withContext, persona) || !strings.HasPrefix(without, persona) {
		t.Error("both prompts should open with the persona line")
	}
}
