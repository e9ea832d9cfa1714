package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/resumeiq/resumeiq/internal/depth"
	"github.com/resumeiq/resumeiq/internal/extract"
	"github.com/resumeiq/resumeiq/internal/logreg"
	"github.com/resumeiq/resumeiq/internal/roles"
	"github.com/resumeiq/resumeiq/internal/star"
)

var (
	achievementSentences = []string{
		"Reduced deployment time by 40 percent resulting in faster releases",
		"Increased conversion rate by 25 percent resulting in higher revenue",
		"Reduced infrastructure cost by 30 percent resulting in large savings",
		"Increased test coverage by 50 percent resulting in fewer incidents",
	}
	vagueSentences = []string{
		"Responsible for various backend projects",
		"Worked on multiple tasks within the team",
		"Responsible for several internal tools",
		"Worked on assorted maintenance duties",
	}
)

func trainedStarModel(t *testing.T) *star.Model {
	t.Helper()

	sentences := append(append([]string{}, achievementSentences...), vagueSentences...)
	labels := []int{1, 1, 1, 1, 0, 0, 0, 0}

	model, _, err := star.Train(sentences, labels, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return model
}

func TestRunnerStarStep(t *testing.T) {
	model := trainedStarModel(t)

	doc := &Document{
		Path:      "resume.pdf",
		Sentences: append(append([]string{}, achievementSentences...), vagueSentences...),
	}

	runner := NewRunner([]Step{NewStarStep(model, true)}, zap.NewNop())

	report, err := runner.Run(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalSentences != len(doc.Sentences) {
		t.Fatalf("expected %d total sentences, got %d", len(doc.Sentences), report.TotalSentences)
	}

	if report.StarSentences == 0 {
		t.Fatalf("expected at least one STAR sentence")
	}

	if report.StarPercentage < 0 || report.StarPercentage > 100 {
		t.Fatalf("expected a percentage in [0, 100], got %v", report.StarPercentage)
	}

	if len(report.Flagged) != report.StarSentences {
		t.Fatalf("expected %d flagged sentences, got %d", report.StarSentences, len(report.Flagged))
	}

	if len(report.Sentences) != report.TotalSentences {
		t.Fatalf("expected a breakdown entry per sentence, got %d", len(report.Sentences))
	}
}

func TestRunnerEmptyDocument(t *testing.T) {
	model := trainedStarModel(t)

	runner := NewRunner([]Step{NewStarStep(model, false)}, zap.NewNop())

	report, err := runner.Run(context.Background(), &Document{Path: "empty.pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalSentences != 0 || report.StarSentences != 0 {
		t.Fatalf("expected zero counts, got %+v", report)
	}

	if report.StarPercentage != 0 {
		t.Fatalf("expected a zero percentage for an empty resume, got %v", report.StarPercentage)
	}
}

type recordingStep struct {
	name     string
	disabled bool
	err      error
	runs     int
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) IsEnabled() bool { return !s.disabled }

func (s *recordingStep) Disable(string) { s.disabled = true }

func (s *recordingStep) Run(context.Context, *Document, *Report) error {
	s.runs++
	return s.err
}

func TestRunnerSkipsDisabledSteps(t *testing.T) {
	enabled := &recordingStep{name: "enabled"}
	disabled := &recordingStep{name: "disabled", disabled: true}

	runner := NewRunner([]Step{disabled, enabled}, zap.NewNop())

	if _, err := runner.Run(context.Background(), &Document{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if disabled.runs != 0 {
		t.Fatalf("expected the disabled step to be skipped")
	}
	if enabled.runs != 1 {
		t.Fatalf("expected the enabled step to run once, ran %d times", enabled.runs)
	}
}

func TestRunnerWrapsStepErrors(t *testing.T) {
	failing := &recordingStep{name: "contacts", err: fmt.Errorf("boom")}

	runner := NewRunner([]Step{failing}, zap.NewNop())

	_, err := runner.Run(context.Background(), &Document{})
	if err == nil || !strings.Contains(err.Error(), "contacts: boom") {
		t.Fatalf("expected the error to carry the step name, got %v", err)
	}
}

func TestRoleStep(t *testing.T) {
	doc := &Document{
		Bullets: []string{
			"Built the API gateway with SQL backed storage on a REST server",
			"Organized the quarterly offsite",
		},
	}

	step := NewRoleStep("Backend Developer", roles.Builtin())
	report := &Report{}

	if err := step.Run(context.Background(), doc, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.RoleMatch == nil {
		t.Fatalf("expected a role match in the report")
	}
	if report.RoleMatch.Role != "Backend Developer" {
		t.Fatalf("unexpected role: %s", report.RoleMatch.Role)
	}
	if report.RoleMatch.Bullets != 2 {
		t.Fatalf("expected 2 bullets, got %d", report.RoleMatch.Bullets)
	}
	if report.RoleMatch.BestScore <= 0 || report.RoleMatch.BestScore > 1 {
		t.Fatalf("expected a best score in (0, 1], got %v", report.RoleMatch.BestScore)
	}
	if report.RoleMatch.Score > report.RoleMatch.BestScore {
		t.Fatalf("expected the mean to not exceed the best score, got %+v", report.RoleMatch)
	}
}

func TestRoleStepUnknownRole(t *testing.T) {
	step := NewRoleStep("Street Magician", roles.Builtin())

	err := step.Run(context.Background(), &Document{}, &Report{})
	if err == nil || !strings.Contains(err.Error(), "unknown role") {
		t.Fatalf("expected an unknown role error, got %v", err)
	}
}

func TestRoleStepDisabledWithoutRole(t *testing.T) {
	if step := NewRoleStep("  ", roles.Builtin()); step.IsEnabled() {
		t.Fatalf("expected the role step to be disabled without a target role")
	}
}

type fixedEmbedder struct {
	vectors map[string][]float64
}

func (f *fixedEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	embeddings := make([][]float64, len(texts))
	for i, text := range texts {
		vec, ok := f.vectors[text]
		if !ok {
			return nil, fmt.Errorf("no embedding for %q", text)
		}
		embeddings[i] = vec
	}
	return embeddings, nil
}

func (f *fixedEmbedder) Model() string { return "fixed" }

func (f *fixedEmbedder) Dims() int { return 2 }

func TestDepthStep(t *testing.T) {
	embedder := &fixedEmbedder{vectors: map[string][]float64{
		"Rebuilt the ingestion pipeline cutting latency by 40 percent": {1, 0},
		"Worked on backend services": {0, 1},
	}}

	classifier := &logreg.Model{Weights: []float64{4, -4}}

	model, err := depth.NewModel(embedder, classifier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := &Document{Bullets: []string{
		"Rebuilt the ingestion pipeline cutting latency by 40 percent",
		"Worked on backend services",
	}}

	report := &Report{}
	if err := NewDepthStep(model, 0).Run(context.Background(), doc, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Depth == nil {
		t.Fatalf("expected a depth summary in the report")
	}
	if report.Depth.TotalBullets != 2 || report.Depth.DeepBullets != 1 {
		t.Fatalf("expected 1 of 2 bullets deep, got %+v", report.Depth)
	}
	if report.Depth.Percentage != 50 {
		t.Fatalf("expected 50 percent, got %v", report.Depth.Percentage)
	}
}

func TestDepthStepDisabledWithoutModel(t *testing.T) {
	if step := NewDepthStep(nil, 0); step.IsEnabled() {
		t.Fatalf("expected the depth step to be disabled without a model")
	}
}

func TestContactsStep(t *testing.T) {
	doc := &Document{Text: "Reach me at jane.doe@gmail.com or github.com/jane"}

	report := &Report{}
	if err := NewContactsStep().Run(context.Background(), doc, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Contacts == nil || len(report.Contacts.Emails) != 1 {
		t.Fatalf("expected the email to be collected, got %+v", report.Contacts)
	}
}

func TestNewDocumentUnsupportedFormat(t *testing.T) {
	_, err := NewDocument("resume.txt", 0)
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count  int
		total  int
		expect float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{3, 3, 100},
	}

	for _, tt := range tests {
		if got := Percentage(tt.count, tt.total); got != tt.expect {
			t.Fatalf("Percentage(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.expect)
		}
	}
}
