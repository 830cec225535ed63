package engine

import (
	"path"
	"strings"

	"virtual-ta/internal/content"
)

// linkLabel derives a human-readable label for a chunk's source.
// Course materials are labeled by filename, discussion URLs by the
// document title (or the post ID when no title was extracted), and
// anything else falls back to the raw filename.
func linkLabel(meta content.Metadata) string {
	source := meta.Source
	switch {
	case strings.Contains(source, "course_content"):
		return "Course Material: " + path.Base(source)

	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		if meta.Title != "" {
			return "Discussion: " + meta.Title
		}
		return "Discussion Post #" + lastSegment(source)

	case meta.Filename != "":
		return meta.Filename

	default:
		return source
	}
}

// lastSegment returns the final path element of a URL.
func lastSegment(url string) string {
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
