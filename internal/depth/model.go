// Package depth classifies resume bullets as deep (specific action, tooling,
// measurable impact) or shallow. Features are sentence embeddings; the
// classifier on top is the same logistic regression the STAR model uses.
package depth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/resumeiq/resumeiq/internal/logreg"
)

const artifactKind = "depth"

// DefaultThreshold is the probability above which a bullet counts as deep.
const DefaultThreshold = 0.5

// Model scores bullets for depth using an embedder and a trained classifier.
type Model struct {
	embedder   Embedder
	classifier *logreg.Model
	embedModel string
	dims       int
}

type artifact struct {
	Version    int           `json:"version"`
	Kind       string        `json:"kind"`
	Embedding  embeddingInfo `json:"embedding"`
	Classifier *logreg.Model `json:"classifier"`
}

type embeddingInfo struct {
	Model string `json:"model"`
	Dims  int    `json:"dims"`
}

// NewModel wraps an embedder and a classifier trained on its embeddings.
func NewModel(embedder Embedder, classifier *logreg.Model) (*Model, error) {
	if embedder == nil || classifier == nil {
		return nil, fmt.Errorf("embedder and classifier are required")
	}
	if embedder.Dims() != len(classifier.Weights) {
		return nil, fmt.Errorf("embedder width %d does not match classifier width %d",
			embedder.Dims(), len(classifier.Weights))
	}

	return &Model{
		embedder:   embedder,
		classifier: classifier,
		embedModel: embedder.Model(),
		dims:       embedder.Dims(),
	}, nil
}

// Load reads a depth artifact and binds it to the given embedder. The
// embedder must match the model the artifact was trained with.
func Load(path string, embedder Embedder) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading depth artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing depth artifact: %w", err)
	}

	if a.Kind != artifactKind {
		return nil, fmt.Errorf("artifact %q has kind %q, want %q", path, a.Kind, artifactKind)
	}

	if embedder.Model() != a.Embedding.Model {
		return nil, fmt.Errorf("artifact was trained with embedding model %q, embedder provides %q",
			a.Embedding.Model, embedder.Model())
	}

	return NewModel(embedder, a.Classifier)
}

// Save writes the model as a JSON artifact. The embedder itself is not
// persisted, only its identity.
func (m *Model) Save(path string) error {
	a := artifact{
		Version:    1,
		Kind:       artifactKind,
		Embedding:  embeddingInfo{Model: m.embedModel, Dims: m.dims},
		Classifier: m.classifier,
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding depth artifact: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing depth artifact: %w", err)
	}

	return nil
}

// Score returns the probability that each bullet is deep, in input order.
func (m *Model) Score(ctx context.Context, bullets []string) ([]float64, error) {
	if len(bullets) == 0 {
		return nil, nil
	}

	embeddings, err := m.embedder.Embed(ctx, bullets)
	if err != nil {
		return nil, fmt.Errorf("embedding bullets: %w", err)
	}

	scores := make([]float64, len(embeddings))
	for i, embedding := range embeddings {
		proba, err := m.classifier.Proba(embedding)
		if err != nil {
			return nil, fmt.Errorf("scoring bullet %d: %w", i, err)
		}
		scores[i] = proba
	}

	return scores, nil
}
