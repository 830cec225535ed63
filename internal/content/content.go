package content

// Metadata identifies where a piece of text came from.
type Metadata struct {
	// Source is the canonical URL of the discussion or material,
	// empty when the file carries none.
	Source   string
	Filename string
	// Title is a human-readable document title used for link labels.
	Title string
}

// Document is a single loaded content file.
type Document struct {
	Content string
	Meta    Metadata
}
