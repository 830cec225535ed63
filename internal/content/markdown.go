package content

import (
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readMarkdown returns the full markdown text verbatim. The title is the
// first heading in the document, or empty when there is none; discussion
// exports without a heading fall back to URL-derived link labels.
func readMarkdown(path string) (string, string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(src), firstHeading(src), nil
}

// firstHeading walks the goldmark AST and returns the text of the first
// heading at any level.
func firstHeading(src []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			return string(h.Text(src))
		}
	}
	return ""
}
