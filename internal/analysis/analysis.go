// Package analysis runs the resume scoring pipeline as a sequence of named
// steps over an extracted document, collecting everything into one report.
package analysis

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/resumeiq/resumeiq/internal/extract"
	"github.com/resumeiq/resumeiq/internal/segment"
)

// Document is a resume after extraction and segmentation. It is built once
// per request and read-only afterwards.
type Document struct {
	Path      string
	Text      string
	Sentences []string
	Bullets   []string
}

// NewDocument extracts and segments the resume at path. An empty document is
// not an error: scoring treats it as the degenerate zero case.
func NewDocument(path string, minBulletWords int) (*Document, error) {
	text, err := extract.ResumeText(path)
	if err != nil {
		return nil, err
	}

	text = extract.CleanText(text)

	return &Document{
		Path:      path,
		Text:      text,
		Sentences: segment.Sentences(text),
		Bullets:   segment.Bullets(text, minBulletWords),
	}, nil
}

// Step is one unit of resume analysis. Disabled steps stay in the list so
// the runner can report them as skipped.
type Step interface {
	Name() string
	IsEnabled() bool
	Disable(reason string)
	Run(ctx context.Context, doc *Document, report *Report) error
}

// Runner executes analysis steps sequentially.
type Runner struct {
	steps  []Step
	logger *zap.Logger
}

// NewRunner creates a runner over the given steps.
func NewRunner(steps []Step, logger *zap.Logger) *Runner {
	return &Runner{steps: steps, logger: logger}
}

// Run analyzes the document and returns the assembled report.
func (r *Runner) Run(ctx context.Context, doc *Document) (*Report, error) {
	report := &Report{
		File:           doc.Path,
		TotalSentences: len(doc.Sentences),
	}

	for _, step := range r.steps {
		if !step.IsEnabled() {
			r.logger.Info("analysis step skipped", zap.String("name", step.Name()))
			continue
		}

		if err := step.Run(ctx, doc, report); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		r.logger.Info("analysis step done", zap.String("name", step.Name()))
	}

	return report, nil
}

// Percentage converts a positive count over a total into a percentage in
// [0, 100], rounded to two decimals, with the zero-total case defined as 0.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
