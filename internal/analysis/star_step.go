package analysis

import (
	"context"

	"github.com/resumeiq/resumeiq/internal/star"
)

type starStep struct {
	model     *star.Model
	breakdown bool
}

// NewStarStep scores every sentence with the STAR model. With breakdown set,
// the report carries the per-sentence verdicts as well.
func NewStarStep(model *star.Model, breakdown bool) Step {
	return &starStep{model: model, breakdown: breakdown}
}

func (s *starStep) Name() string { return "star" }

func (s *starStep) IsEnabled() bool { return true }

func (s *starStep) Disable(string) {}

func (s *starStep) Run(_ context.Context, doc *Document, report *Report) error {
	for _, sentence := range doc.Sentences {
		positive, confidence, err := s.model.Predict(sentence)
		if err != nil {
			return err
		}

		if positive {
			report.StarSentences++
			report.Flagged = append(report.Flagged, sentence)
		}

		if s.breakdown {
			report.Sentences = append(report.Sentences, SentenceScore{
				Text:       sentence,
				Star:       positive,
				Confidence: confidence,
			})
		}
	}

	report.StarPercentage = Percentage(report.StarSentences, report.TotalSentences)
	return nil
}
