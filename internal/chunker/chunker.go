package chunker

import (
	"strings"

	"virtual-ta/internal/content"
)

// Config controls chunking behavior. Sizes are in characters (runes).
type Config struct {
	ChunkSize    int // Target maximum chunk length.
	ChunkOverlap int // Characters shared between consecutive chunks.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:    1000,
		ChunkOverlap: 100,
	}
}

// Chunk is a bounded-length slice of a document, carrying the parent
// document's metadata unchanged. Chunks are the unit stored in the
// vector index.
type Chunk struct {
	Text string
	Meta content.Metadata
}

// Split breaks documents into overlapping chunks of at most ChunkSize
// characters. Splitting prefers paragraph boundaries, then sentence
// boundaries, and falls back to a hard cut. Each chunk after the first
// begins ChunkOverlap characters before the end of the previous one.
func Split(docs []content.Document, cfg Config) []Chunk {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultConfig().ChunkSize
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		cfg.ChunkOverlap = DefaultConfig().ChunkOverlap
	}

	var chunks []Chunk
	for _, doc := range docs {
		for _, part := range splitText(doc.Content, cfg.ChunkSize, cfg.ChunkOverlap) {
			chunks = append(chunks, Chunk{Text: part, Meta: doc.Meta})
		}
	}
	return chunks
}

// splitText produces overlapping windows of at most size runes.
func splitText(text string, size, overlap int) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if len([]rune(trimmed)) <= size {
		return []string{trimmed}
	}

	var out []string
	var cur []rune

	emit := func(chunk []rune) {
		if s := strings.TrimSpace(string(chunk)); s != "" {
			out = append(out, s)
		}
	}

	// add appends a piece that fits in a chunk on its own, flushing the
	// current chunk first when it would overflow. The flushed chunk's
	// last overlap runes seed the next one.
	add := func(piece []rune, sep string) {
		sr := []rune(sep)
		if len(cur) > 0 && len(cur)+len(sr)+len(piece) > size {
			emit(cur)
			cur = overlapTail(cur, overlap)
		}
		if len(cur) > 0 {
			// The carried tail plus the new piece may still overflow;
			// shrink the tail from the front so the chunk stays bounded.
			if excess := len(cur) + len(sr) + len(piece) - size; excess > 0 {
				if excess >= len(cur) {
					cur = nil
				} else {
					cur = cur[excess:]
				}
			}
		}
		if len(cur) > 0 {
			cur = append(cur, sr...)
		}
		cur = append(cur, piece...)
	}

	// hardCut slices an oversized piece into exact windows; the remainder
	// stays in cur so following pieces continue the chunk.
	hardCut := func(piece []rune) {
		if len(cur) > 0 {
			emit(cur)
			cur = nil
		}
		step := size - overlap
		start := 0
		for start+size < len(piece) {
			emit(piece[start : start+size])
			start += step
		}
		cur = append(cur, piece[start:]...)
	}

	for _, para := range splitParagraphs(text) {
		pr := []rune(para)
		if len(pr) <= size {
			add(pr, "\n\n")
			continue
		}
		for _, sent := range splitSentences(para) {
			sr := []rune(sent)
			if len(sr) <= size {
				add(sr, " ")
			} else {
				hardCut(sr)
			}
		}
	}
	emit(cur)

	return out
}

func overlapTail(chunk []rune, overlap int) []rune {
	if overlap <= 0 || len(chunk) == 0 {
		return nil
	}
	if overlap > len(chunk) {
		overlap = len(chunk)
	}
	tail := make([]rune, overlap)
	copy(tail, chunk[len(chunk)-overlap:])
	return tail
}

// splitParagraphs splits on blank lines.
func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// splitSentences does basic sentence splitting.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && runes[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, strings.TrimSpace(current.String()))
	}

	return sentences
}
