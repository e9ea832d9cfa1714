package depth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/resumeiq/resumeiq/internal/utils"
)

const (
	defaultEmbeddingModel = "text-embedding-004"
	defaultEmbeddingDims  = 768

	// embedBatchSize keeps requests comfortably under the API content limit.
	embedBatchSize = 64

	retryBackoff = 2 * time.Second
)

// GeminiEmbedder produces sentence embeddings through the Gemini API.
type GeminiEmbedder struct {
	client     *genai.Client
	modelName  string
	dims       int
	maxRetries int
	logger     *zap.Logger
}

// NewGeminiEmbedder creates an embedder backed by the Gemini API.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*GeminiEmbedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbeddingModel
	}

	if maxRetries < 0 {
		maxRetries = 0
	}

	return &GeminiEmbedder{
		client:     client,
		modelName:  model,
		dims:       defaultEmbeddingDims,
		maxRetries: maxRetries,
		logger:     logger,
	}, nil
}

// Embed returns one embedding vector per input text, preserving order.
func (g *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}

	vectors := make([][]float64, 0, len(texts))

	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := g.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}

		vectors = append(vectors, batch...)
	}

	return vectors, nil
}

func (g *GeminiEmbedder) embedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.Text(text)...)
	}

	var resp *genai.EmbedContentResponse
	var err error

	for attempt := 0; ; attempt++ {
		resp, err = g.client.Models.EmbedContent(ctx, g.modelName, contents, nil)
		if err == nil {
			break
		}

		if attempt >= g.maxRetries {
			return nil, fmt.Errorf("embed content: %w", err)
		}

		g.logger.Warn("embedding request failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", g.maxRetries),
			zap.Error(err),
		)

		if err := utils.WaitFor(ctx, retryBackoff); err != nil {
			return nil, err
		}
	}

	if resp == nil || len(resp.Embeddings) != len(texts) {
		got := 0
		if resp != nil {
			got = len(resp.Embeddings)
		}
		return nil, fmt.Errorf("embedding api returned %d vectors for %d texts", got, len(texts))
	}

	vectors := make([][]float64, len(texts))
	for i, embedding := range resp.Embeddings {
		vec := make([]float64, len(embedding.Values))
		for j, value := range embedding.Values {
			vec[j] = float64(value)
		}
		vectors[i] = vec
	}

	return vectors, nil
}

// Model returns the embedding model name.
func (g *GeminiEmbedder) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}

// Dims returns the embedding width.
func (g *GeminiEmbedder) Dims() int {
	if g == nil {
		return 0
	}
	return g.dims
}
