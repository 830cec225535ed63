package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// urlMarker tags the metadata line that carries a document's canonical URL.
// The preprocessing step writes it as the third line of every discussion file.
const urlMarker = "**URL:**"

// Load reads every supported file directly under dir and returns one
// Document per file. A missing directory yields an empty slice; a file
// that fails to read is logged and skipped, it never aborts the batch.
func Load(dir string, log *slog.Logger) []Document {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error("reading content directory", "dir", dir, "error", err)
		}
		return nil
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		doc, err := loadFile(path)
		if err != nil {
			log.Error("loading content file", "path", path, "error", err)
			continue
		}
		docs = append(docs, doc)
	}

	log.Info("loaded content directory", "dir", dir, "documents", len(docs))
	return docs
}

// IsSupported reports whether the loader can read the given filename.
func IsSupported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown", ".txt", ".html", ".htm", ".pdf", ".docx":
		return true
	}
	return false
}

func loadFile(path string) (Document, error) {
	filename := filepath.Base(path)

	var text, title string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		text, title, err = readMarkdown(path)
	case ".txt":
		text, title, err = readText(path)
	case ".html", ".htm":
		text, title, err = readHTML(path)
	case ".pdf":
		text, title, err = readPDF(path)
	case ".docx":
		text, title, err = readDOCX(path)
	default:
		err = fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
	if err != nil {
		return Document{}, err
	}

	return Document{
		Content: text,
		Meta: Metadata{
			Source:   sourceURL(text),
			Filename: filename,
			Title:    title,
		},
	}, nil
}

// sourceURL scans the document text for the URL metadata marker and
// returns the remainder of that line, trimmed. Empty when absent.
func sourceURL(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, urlMarker) {
			return strings.TrimSpace(strings.Replace(line, urlMarker, "", 1))
		}
	}
	return ""
}

// readText returns a plain text file verbatim, titled by its filename stem.
func readText(path string) (string, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return string(raw), title, nil
}
