package depth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/resumeiq/resumeiq/internal/logreg"
)

const splitSeed = 42

// TrainSummary reports the held-out metrics of a depth training run.
type TrainSummary struct {
	Examples int            `json:"examples"`
	Holdout  logreg.Metrics `json:"holdout"`
}

// Train embeds the labeled bullets and fits a logistic regression on top,
// evaluating on a 20% held-out split before refitting on everything.
func Train(ctx context.Context, embedder Embedder, bullets []string, labels []int, logger *zap.Logger) (*Model, *TrainSummary, error) {
	if len(bullets) != len(labels) {
		return nil, nil, fmt.Errorf("got %d bullets for %d labels", len(bullets), len(labels))
	}
	if len(bullets) < 4 {
		return nil, nil, fmt.Errorf("need at least 4 labeled bullets, got %d", len(bullets))
	}

	logger.Info("embedding labeled bullets",
		zap.Int("count", len(bullets)),
		zap.String("embedding_model", embedder.Model()),
	)

	embeddings, err := embedder.Embed(ctx, bullets)
	if err != nil {
		return nil, nil, fmt.Errorf("embedding dataset: %w", err)
	}

	trainIdx, testIdx := logreg.SplitIndices(len(embeddings), 0.2, splitSeed)
	trainX, trainY := gather(embeddings, labels, trainIdx)
	testX, testY := gather(embeddings, labels, testIdx)

	cfg := logreg.DefaultTrainConfig()

	holdoutModel, err := logreg.Train(trainX, trainY, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("training depth classifier: %w", err)
	}

	metrics, err := logreg.Evaluate(holdoutModel, testX, testY)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluating depth classifier: %w", err)
	}

	classifier, err := logreg.Train(embeddings, labels, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("refitting depth classifier: %w", err)
	}

	model, err := NewModel(embedder, classifier)
	if err != nil {
		return nil, nil, err
	}

	summary := &TrainSummary{Examples: len(bullets), Holdout: metrics}

	logger.Info("trained depth model",
		zap.Int("examples", summary.Examples),
		zap.Float64("holdout_f1", metrics.F1),
		zap.Float64("holdout_accuracy", metrics.Accuracy),
	)

	return model, summary, nil
}

func gather(xs [][]float64, ys []int, idx []int) ([][]float64, []int) {
	gx := make([][]float64, 0, len(idx))
	gy := make([]int, 0, len(idx))
	for _, i := range idx {
		gx = append(gx, xs[i])
		gy = append(gy, ys[i])
	}
	return gx, gy
}
