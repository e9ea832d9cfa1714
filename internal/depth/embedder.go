package depth

import "context"

// Embedder converts sentences into fixed-width embedding vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
	Model() string
	Dims() int
}
