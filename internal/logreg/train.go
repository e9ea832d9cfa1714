package logreg

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// TrainConfig controls the gradient descent fit.
type TrainConfig struct {
	// C is the inverse regularization strength.
	C float64
	// Epochs is the number of full passes over the training set.
	Epochs int
	// LearningRate is the gradient step size.
	LearningRate float64
}

// DefaultTrainConfig matches the defaults the STAR trainer sweeps around.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{C: 1, Epochs: 500, LearningRate: 0.5}
}

// Train fits a logistic regression model on the given feature vectors and
// binary labels using full-batch gradient descent with L2 regularization.
// Training is deterministic for fixed inputs.
func Train(xs [][]float64, ys []int, cfg TrainConfig) (*Model, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("training set is empty")
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("got %d feature vectors for %d labels", len(xs), len(ys))
	}

	width := len(xs[0])
	for i, x := range xs {
		if len(x) != width {
			return nil, fmt.Errorf("feature vector %d has width %d, want %d", i, len(x), width)
		}
	}
	for i, y := range ys {
		if y != 0 && y != 1 {
			return nil, fmt.Errorf("label %d is %d, want 0 or 1", i, y)
		}
	}

	if cfg.C <= 0 {
		cfg.C = 1
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = DefaultTrainConfig().Epochs
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = DefaultTrainConfig().LearningRate
	}

	n := float64(len(xs))
	lambda := 1 / (cfg.C * n)

	model := &Model{Weights: make([]float64, width)}
	grad := make([]float64, width)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for i := range grad {
			grad[i] = 0
		}
		gradBias := 0.0

		for i, x := range xs {
			p := sigmoid(floats.Dot(model.Weights, x) + model.Bias)
			residual := p - float64(ys[i])
			floats.AddScaled(grad, residual/n, x)
			gradBias += residual / n
		}

		// L2 penalty on the weights only, not the bias.
		floats.AddScaled(grad, lambda, model.Weights)

		floats.AddScaled(model.Weights, -cfg.LearningRate, grad)
		model.Bias -= cfg.LearningRate * gradBias
	}

	return model, nil
}

// SplitIndices returns a deterministic shuffled train/test index split, with
// testFraction of the data held out.
func SplitIndices(n int, testFraction float64, seed int64) (train, test []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	testSize := int(float64(n) * testFraction)
	if testSize < 1 && n > 1 && testFraction > 0 {
		testSize = 1
	}

	return perm[testSize:], perm[:testSize]
}
