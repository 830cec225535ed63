package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client wraps a Gemini API connection shared by the embedder and the
// generator. Constructed once during warm-up and reused for the lifetime
// of the process.
type Client struct {
	genai *genai.Client
}

// NewClient connects to the Gemini API with the given key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Client{genai: c}, nil
}

// Embedder returns an embedding provider backed by the given model.
func (c *Client) Embedder(model string) *Embedder {
	return &Embedder{client: c.genai, model: model}
}

// Generator returns an answer generator backed by the given model.
func (c *Client) Generator(model string) *Generator {
	return &Generator{client: c.genai, model: model}
}

// Embedder maps text to fixed-dimension vectors. Deterministic for a
// fixed model version, so index rebuilds are reproducible.
type Embedder struct {
	client *genai.Client
	model  string
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return resp.Embeddings[0].Values, nil
}

// Image is a decoded image attachment passed alongside a prompt.
type Image struct {
	Data []byte
	MIME string
}

// Generator produces free-text answers from a prompt and an optional
// image. One call per question; no streaming, no internal retries.
type Generator struct {
	client *genai.Client
	model  string
}

// Generate invokes the model once and returns its text response.
func (g *Generator) Generate(ctx context.Context, prompt string, img *Image) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if img != nil {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIME))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
