package star

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/resumeiq/resumeiq/internal/logreg"
	"github.com/resumeiq/resumeiq/internal/tfidf"
)

// splitSeed keeps the train/test split reproducible across runs.
const splitSeed = 42

// cSweep is the inverse regularization grid the trainer searches, selecting
// by F1 on the held-out split.
var cSweep = []float64{0.01, 0.1, 1, 10}

// TrainSummary reports how the sweep went.
type TrainSummary struct {
	Examples int            `json:"examples"`
	BestC    float64        `json:"best_c"`
	Holdout  logreg.Metrics `json:"holdout"`
}

// Train fits a STAR model on labeled sentences. The vocabulary is learned
// from the full dataset; the classifier is selected with a C sweep evaluated
// on a 20% held-out split and then refitted on all examples.
func Train(sentences []string, labels []int, logger *zap.Logger) (*Model, *TrainSummary, error) {
	if len(sentences) != len(labels) {
		return nil, nil, fmt.Errorf("got %d sentences for %d labels", len(sentences), len(labels))
	}
	if len(sentences) < 4 {
		return nil, nil, fmt.Errorf("need at least 4 labeled sentences, got %d", len(sentences))
	}

	vectorizer := tfidf.NewVectorizer()
	if err := vectorizer.Fit(sentences); err != nil {
		return nil, nil, fmt.Errorf("fitting vectorizer: %w", err)
	}

	vectors := vectorizer.TransformAll(sentences)

	trainIdx, testIdx := logreg.SplitIndices(len(vectors), 0.2, splitSeed)
	trainX, trainY := gather(vectors, labels, trainIdx)
	testX, testY := gather(vectors, labels, testIdx)

	summary := &TrainSummary{Examples: len(sentences)}
	bestF1 := -1.0

	for _, c := range cSweep {
		cfg := logreg.DefaultTrainConfig()
		cfg.C = c

		candidate, err := logreg.Train(trainX, trainY, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("training with C=%v: %w", c, err)
		}

		metrics, err := logreg.Evaluate(candidate, testX, testY)
		if err != nil {
			return nil, nil, fmt.Errorf("evaluating with C=%v: %w", c, err)
		}

		logger.Debug("sweep step",
			zap.Float64("c", c),
			zap.Float64("f1", metrics.F1),
			zap.Float64("accuracy", metrics.Accuracy),
		)

		// Ties prefer the weaker regularization.
		if metrics.F1 >= bestF1 {
			bestF1 = metrics.F1
			summary.BestC = c
			summary.Holdout = metrics
		}
	}

	// Refit on the full dataset with the winning C.
	cfg := logreg.DefaultTrainConfig()
	cfg.C = summary.BestC

	classifier, err := logreg.Train(vectors, labels, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("refitting classifier: %w", err)
	}

	model, err := NewModel(vectorizer, classifier)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("trained star model",
		zap.Int("examples", summary.Examples),
		zap.Float64("best_c", summary.BestC),
		zap.Float64("holdout_f1", summary.Holdout.F1),
		zap.Float64("holdout_accuracy", summary.Holdout.Accuracy),
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
