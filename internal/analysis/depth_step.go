package analysis

import (
	"context"

	"github.com/resumeiq/resumeiq/internal/depth"
)

type depthStep struct {
	model     *depth.Model
	threshold float64

	disabled bool
	reason   string
}

// NewDepthStep scores the resume bullets with the depth model. A nil model
// disables the step.
func NewDepthStep(model *depth.Model, threshold float64) Step {
	step := &depthStep{model: model, threshold: threshold}
	if threshold <= 0 {
		step.threshold = depth.DefaultThreshold
	}
	if model == nil {
		step.Disable("depth model not configured")
	}
	return step
}

func (s *depthStep) Name() string { return "depth" }

func (s *depthStep) IsEnabled() bool { return !s.disabled }

func (s *depthStep) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *depthStep) Run(ctx context.Context, doc *Document, report *Report) error {
	summary := &DepthSummary{TotalBullets: len(doc.Bullets)}

	scores, err := s.model.Score(ctx, doc.Bullets)
	if err != nil {
		return err
	}

	for _, score := range scores {
		if score >= s.threshold {
			summary.DeepBullets++
		}
	}

	summary.Percentage = Percentage(summary.DeepBullets, summary.TotalBullets)
	report.Depth = summary
	return nil
}
