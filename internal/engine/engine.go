// Package engine implements the retrieval-augmented answering pipeline:
// background warm-up of the Gemini models and the vector index, readiness
// reporting, and per-question handling (retrieve, assemble prompt,
// generate, shape the response with attributed links).
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"virtual-ta/internal/chunker"
	"virtual-ta/internal/config"
	"virtual-ta/internal/content"
	"virtual-ta/internal/gemini"
	"virtual-ta/internal/index"
)

// Retriever finds the chunks most similar to a question.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]chunker.Chunk, error)
}

// Generator produces a free-text answer from a prompt and optional image.
type Generator interface {
	Generate(ctx context.Context, prompt string, img *gemini.Image) (string, error)
}

// Link is an attributed source reference returned alongside an answer.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Result is the shaped response for one question. Links preserve the
// order of the retrieved chunks that produced them; duplicate URLs are
// retained.
type Result struct {
	Answer string `json:"answer"`
	Links  []Link `json:"links"`
}

// Engine coordinates the pipeline components. The embedder, generator
// and index are process-wide singletons constructed once by the warm-up
// task and read-shared by all question-answering calls afterwards.
type Engine struct {
	cfg config.Config
	log *slog.Logger

	status    atomic.Pointer[Status]
	startOnce sync.Once

	// Set by the warm-up goroutine before the ready transition;
	// read-only once the state is ready.
	retriever Retriever
	generator Generator
}

// New creates an Engine in the initializing state. Call Start to launch
// the warm-up.
func New(cfg config.Config, log *slog.Logger) *Engine {
	e := &Engine{cfg: cfg, log: log}
	e.status.Store(&Status{State: StateInitializing})
	return e
}

// Start launches the one-time background warm-up. Additional calls are
// no-ops; the warm-up never races itself.
func (e *Engine) Start(ctx context.Context) {
	e.startOnce.Do(func() {
		go e.warmup(ctx)
	})
}

// warmup initializes the models and the index, then makes the terminal
// transition to ready or error. Failure is permanent for this process;
// restarting is the only recovery path.
func (e *Engine) warmup(ctx context.Context) {
	start := time.Now()
	e.log.Info("starting engine warm-up")

	client, err := gemini.NewClient(ctx, e.cfg.GoogleAPIKey)
	if err != nil {
		e.fail(fmt.Errorf("initializing gemini client: %w", err))
		return
	}
	embedder := client.Embedder(e.cfg.EmbeddingModel)
	e.generator = client.Generator(e.cfg.GeminiModel)

	ix, err := index.Open(e.cfg.VectorDBPath, embedder.Embed, e.log)
	if err != nil {
		e.fail(fmt.Errorf("opening vector index: %w", err))
		return
	}

	if ix.Empty() {
		e.log.Info("no persisted index found, building from content",
			"discourse", e.cfg.DiscourseDataPath, "course", e.cfg.CourseDataPath)

		docs := content.Load(e.cfg.DiscourseDataPath, e.log)
		docs = append(docs, content.Load(e.cfg.CourseDataPath, e.log)...)

		chunks := chunker.Split(docs, chunker.Config{
			ChunkSize:    e.cfg.ChunkSize,
			ChunkOverlap: e.cfg.ChunkOverlap,
		})
		e.log.Info("split documents into chunks", "documents", len(docs), "chunks", len(chunks))

		if err := ix.Build(ctx, chunks); err != nil {
			e.fail(fmt.Errorf("building vector index: %w", err))
			return
		}
	} else {
		e.log.Info("loaded persisted vector index", "path", e.cfg.VectorDBPath)
	}

	e.retriever = ix
	e.status.Store(&Status{State: StateReady})
	e.log.Info("engine warm-up complete", "elapsed", time.Since(start).Round(time.Millisecond))
}

func (e *Engine) fail(err error) {
	e.status.Store(&Status{State: StateError, Err: err.Error()})
	e.log.Error("engine warm-up failed", "error", err)
}

// Status returns the current initialization state. Never blocks.
func (e *Engine) Status() Status {
	return *e.status.Load()
}

// Answer runs the per-question pipeline. The only error it returns is
// ErrNotReady; every fault past the readiness check degrades into a
// well-formed Result instead of propagating.
func (e *Engine) Answer(ctx context.Context, question, imageB64 string) (Result, error) {
	if e.Status().State != StateReady {
		return Result{}, ErrNotReady
	}

	start := time.Now()

	img := e.decodeImage(imageB64)

	chunks := e.retrieve(ctx, question)
	contextBlock, links := buildContext(chunks)

	prompt := buildPrompt(question, contextBlock)

	genStart := time.Now()
	answer, err := e.generator.Generate(ctx, prompt, img)
	if err != nil {
		e.log.Error("answer generation failed", "error", err)
		return Result{
			Answer: fmt.Sprintf("I'm sorry, I encountered an error while processing your question. "+
				"Please try again or contact support if the issue persists. Error details: %v", err),
			Links: []Link{},
		}, nil
	}
	e.log.Info("generated answer", "elapsed", time.Since(genStart).Round(time.Millisecond))

	elapsed := time.Since(start)
	if elapsed > e.cfg.MaxResponseTime {
		e.log.Warn("answer exceeded soft response-time budget",
			"elapsed", elapsed.Round(time.Millisecond), "budget", e.cfg.MaxResponseTime)
	} else {
		e.log.Info("answered question", "elapsed", elapsed.Round(time.Millisecond), "links", len(links))
	}

	return Result{Answer: answer, Links: links}, nil
}

// retrieve returns the top chunks for the question, degrading to an
// empty set on any retrieval failure.
func (e *Engine) retrieve(ctx context.Context, question string) []chunker.Chunk {
	if e.retriever == nil {
		return nil
	}
	searchStart := time.Now()
	chunks, err := e.retriever.Search(ctx, question, e.cfg.NumRetrievedDocs)
	if err != nil {
		e.log.Error("retrieving documents", "error", err)
		return nil
	}
	e.log.Info("retrieved relevant chunks", "count", len(chunks),
		"elapsed", time.Since(searchStart).Round(time.Millisecond))
	return chunks
}

// buildContext concatenates retrieved chunk texts into the context block
// and derives one attributed link per chunk with a non-empty source,
// preserving retrieval order and keeping duplicates.
func buildContext(chunks []chunker.Chunk) (string, []Link) {
	var b []byte
	links := []Link{}
	for _, c := range chunks {
		if len(b) > 0 {
			b = append(b, "\n\n"...)
		}
		b = append(b, c.Text...)
		if c.Meta.Source != "" {
			links = append(links, Link{URL: c.Meta.Source, Text: linkLabel(c.Meta)})
		}
	}
	return string(b), links
}
