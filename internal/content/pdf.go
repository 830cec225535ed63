package content

import (
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// readPDF extracts plain text from a PDF course material, one page at a
// time. Pages that fail to decode are skipped rather than failing the file.
func readPDF(path string) (string, string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(strings.TrimSpace(text))
	}

	title := strings.TrimSuffix(filepath.Base(path), ".pdf")
	return buf.String(), title, nil
}
