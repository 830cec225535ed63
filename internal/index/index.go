// Package index provides a persistent nearest-neighbor index over chunk
// embeddings, backed by chromem-go. The index directory round-trips:
// reopening it reproduces the search results of the in-memory index it
// was built from.
package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/philippgille/chromem-go"

	"virtual-ta/internal/chunker"
	"virtual-ta/internal/content"
)

const collectionName = "chunks"

// EmbedFunc maps text to an embedding vector. It is called for every
// chunk at build time and for the query at search time.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// Index is a searchable collection of (embedding, chunk) pairs persisted
// under a single directory. Safe for concurrent reads after Build.
type Index struct {
	col *chromem.Collection
	log *slog.Logger
}

// Open loads the index stored at path, creating an empty one when no
// persisted state exists. Callers check Empty to decide whether a build
// is needed.
func Open(path string, embed EmbedFunc, log *slog.Logger) (*Index, error) {
	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, fmt.Errorf("opening vector store at %s: %w", path, err)
	}
	col, err := db.GetOrCreateCollection(collectionName, nil, chromem.EmbeddingFunc(embed))
	if err != nil {
		return nil, fmt.Errorf("opening collection: %w", err)
	}
	return &Index{col: col, log: log}, nil
}

// Empty reports whether the index holds no chunks.
func (ix *Index) Empty() bool {
	return ix == nil || ix.col == nil || ix.col.Count() == 0
}

// Build embeds every chunk and adds it to the index. Each document is
// persisted as it is added, so a completed Build survives a restart.
func (ix *Index) Build(ctx context.Context, chunks []chunker.Chunk) error {
	if len(chunks) == 0 {
		ix.log.Warn("no chunks to index")
		return nil
	}

	docs := make([]chromem.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = chromem.Document{
			// Zero-padded positional IDs keep tie-breaking stable across
			// rebuilds from the same chunk set.
			ID:      fmt.Sprintf("%06d", i),
			Content: c.Text,
			Metadata: map[string]string{
				"source":   c.Meta.Source,
				"filename": c.Meta.Filename,
				"title":    c.Meta.Title,
			},
		}
	}

	if err := ix.col.AddDocuments(ctx, docs, 1); err != nil {
		return fmt.Errorf("adding %d chunks to index: %w", len(docs), err)
	}
	ix.log.Info("built vector index", "chunks", len(docs))
	return nil
}

// Search embeds the query and returns up to k nearest chunks, best match
// first. An absent or empty index yields an empty result, not an error.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]chunker.Chunk, error) {
	if ix == nil || ix.col == nil || k <= 0 {
		return nil, nil
	}
	count := ix.col.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	results, err := ix.col.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	chunks := make([]chunker.Chunk, len(results))
	for i, r := range results {
		chunks[i] = chunker.Chunk{
			Text: r.Content,
			Meta: content.Metadata{
				Source:   r.Metadata["source"],
				Filename: r.Metadata["filename"],
				Title:    r.Metadata["title"],
			},
		}
	}
	return chunks, nil
}
