package logreg

// Metrics summarizes classifier quality on a labeled set.
type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Evaluate scores the model against labeled feature vectors.
func Evaluate(m *Model, xs [][]float64, ys []int) (Metrics, error) {
	var tp, tn, fp, fn float64

	for i, x := range xs {
		positive, err := m.Predict(x)
		if err != nil {
			return Metrics{}, err
		}

		switch {
		case positive && ys[i] == 1:
			tp++
		case positive && ys[i] == 0:
			fp++
		case !positive && ys[i] == 1:
			fn++
		default:
			tn++
		}
	}

	metrics := Metrics{}
	if total := tp + tn + fp + fn; total > 0 {
		metrics.Accuracy = (tp + tn) / total
	}
	if tp+fp > 0 {
		metrics.Precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		metrics.Recall = tp / (tp + fn)
	}
	if metrics.Precision+metrics.Recall > 0 {
		metrics.F1 = 2 * metrics.Precision * metrics.Recall / (metrics.Precision + metrics.Recall)
	}

	return metrics, nil
}
