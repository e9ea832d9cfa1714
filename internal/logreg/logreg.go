// Package logreg provides the L2-regularized binary logistic regression used
// by both the STAR and depth classifiers.
package logreg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Model is a trained logistic regression classifier. The decision function is
// sigmoid(w·x + b) with the positive class at probability >= 0.5.
type Model struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// Proba returns the probability of the positive class for the feature vector.
func (m *Model) Proba(x []float64) (float64, error) {
	if len(x) != len(m.Weights) {
		return 0, fmt.Errorf("feature width %d does not match model width %d", len(x), len(m.Weights))
	}
	return sigmoid(floats.Dot(m.Weights, x) + m.Bias), nil
}

// Predict returns true when the feature vector is classified positive.
func (m *Model) Predict(x []float64) (bool, error) {
	p, err := m.Proba(x)
	if err != nil {
		return false, err
	}
	return p >= 0.5, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
