// Package star holds the STAR-method sentence classifier: a TF-IDF
// vectorizer feeding a logistic regression model, persisted together as a
// single JSON artifact.
package star

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/resumeiq/resumeiq/internal/logreg"
	"github.com/resumeiq/resumeiq/internal/tfidf"
)

const artifactKind = "star"

// Model classifies sentences as STAR-compliant or not. A loaded model is
// read-only and safe for concurrent use.
type Model struct {
	vectorizer *tfidf.Vectorizer
	classifier *logreg.Model
}

type artifact struct {
	Version    int               `json:"version"`
	Kind       string            `json:"kind"`
	Vectorizer *tfidf.Vectorizer `json:"vectorizer"`
	Classifier *logreg.Model     `json:"classifier"`
}

// NewModel wraps a fitted vectorizer and classifier pair.
func NewModel(vectorizer *tfidf.Vectorizer, classifier *logreg.Model) (*Model, error) {
	if vectorizer == nil || classifier == nil {
		return nil, fmt.Errorf("vectorizer and classifier are required")
	}
	if vectorizer.Width() != len(classifier.Weights) {
		return nil, fmt.Errorf("vectorizer width %d does not match classifier width %d",
			vectorizer.Width(), len(classifier.Weights))
	}
	return &Model{vectorizer: vectorizer, classifier: classifier}, nil
}

// Load reads a STAR model artifact from disk.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing model artifact: %w", err)
	}

	if a.Kind != artifactKind {
		return nil, fmt.Errorf("artifact %q has kind %q, want %q", path, a.Kind, artifactKind)
	}

	return NewModel(a.Vectorizer, a.Classifier)
}

// Save writes the model as a JSON artifact.
func (m *Model) Save(path string) error {
	a := artifact{
		Version:    1,
		Kind:       artifactKind,
		Vectorizer: m.vectorizer,
		Classifier: m.classifier,
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding model artifact: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing model artifact: %w", err)
	}

	return nil
}

// Predict reports whether the sentence follows the STAR method, together with
// the classifier confidence for the positive class.
func (m *Model) Predict(sentence string) (bool, float64, error) {
	proba, err := m.classifier.Proba(m.vectorizer.Transform(sentence))
	if err != nil {
		return false, 0, fmt.Errorf("classifying sentence: %w", err)
	}
	return proba >= 0.5, proba, nil
}
