package star

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// A small separable corpus: achievement sentences with actions and measurable
// outcomes against vague responsibility statements.
var (
	starSentences = []string{
		"Reduced deployment time by 40 percent resulting in faster releases",
		"Increased conversion rate by 25 percent resulting in higher revenue",
		"Reduced infrastructure cost by 30 percent resulting in large savings",
		"Increased test coverage by 50 percent resulting in fewer incidents",
		"Reduced page load time by 60 percent resulting in better retention",
		"Increased api throughput by 35 percent resulting in smoother peaks",
		"Reduced error rate by 45 percent resulting in happier customers",
		"Increased onboarding speed by 20 percent resulting in quicker ramp",
	}
	plainSentences = []string{
		"Responsible for various backend projects",
		"Worked on multiple tasks within the team",
		"Responsible for several internal tools",
		"Worked on assorted maintenance duties",
		"Responsible for miscellaneous team activities",
		"Worked on different ongoing initiatives",
		"Responsible for general support work",
		"Worked on everyday operational chores",
	}
)

func trainedModel(t *testing.T) *Model {
	t.Helper()

	sentences := append(append([]string{}, starSentences...), plainSentences...)
	labels := make([]int, 0, len(sentences))
	for range starSentences {
		labels = append(labels, 1)
	}
	for range plainSentences {
		labels = append(labels, 0)
	}

	model, summary, err := Train(sentences, labels, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Examples != len(sentences) {
		t.Fatalf("expected %d examples in the summary, got %d", len(sentences), summary.Examples)
	}

	return model
}

func TestTrainAndPredict(t *testing.T) {
	model := trainedModel(t)

	positive, proba, err := model.Predict(starSentences[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !positive {
		t.Fatalf("expected an achievement sentence to be classified positive, got proba %v", proba)
	}
	if proba < 0.5 || proba > 1 {
		t.Fatalf("expected proba in [0.5, 1], got %v", proba)
	}

	negative, proba, err := model.Predict(plainSentences[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if negative {
		t.Fatalf("expected a vague sentence to be classified negative, got proba %v", proba)
	}
}

func TestTrainValidatesInput(t *testing.T) {
	logger := zap.NewNop()

	if _, _, err := Train([]string{"one"}, []int{1, 0}, logger); err == nil {
		t.Fatalf("expected an error for mismatched lengths")
	}

	if _, _, err := Train([]string{"one", "two"}, []int{1, 0}, logger); err == nil {
		t.Fatalf("expected an error for a dataset that is too small")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	model := trainedModel(t)

	path := filepath.Join(t.TempDir(), "star_model.json")
	if err := model.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, sentence := range []string{starSentences[0], starSentences[1], plainSentences[0]} {
		wantPositive, wantProba, err := model.Predict(sentence)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		gotPositive, gotProba, err := loaded.Predict(sentence)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotPositive != wantPositive || math.Abs(gotProba-wantProba) > 1e-9 {
			t.Fatalf("loaded model disagrees on %q: got (%v, %v), want (%v, %v)",
				sentence, gotPositive, gotProba, wantPositive, wantProba)
		}
	}
}

func TestLoadRejectsWrongKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depth_model.json")
	artifact := `{"version": 1, "kind": "depth", "vectorizer": null, "classifier": null}`
	if err := os.WriteFile(path, []byte(artifact), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "kind") {
		t.Fatalf("expected a kind mismatch error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing artifact")
	}
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "star_data.txt")
	content := strings.Join([]string{
		"Reduced costs by 30 percent | 1",
		"Worked on various projects | 0",
		"A heading without any label",
		"Tuned the etl | pipeline | 1",
		"Bad label line | yes",
		"   | 1",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sentences, labels, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sentences) != 3 {
		t.Fatalf("expected 3 examples, got %d: %v", len(sentences), sentences)
	}

	// The split is on the last pipe, so sentences may contain pipes.
	if sentences[2] != "Tuned the etl | pipeline" {
		t.Fatalf("expected the pipe to survive in the sentence, got %q", sentences[2])
	}

	want := []int{1, 0, 1}
	for i, label := range labels {
		if label != want[i] {
			t.Fatalf("expected labels %v, got %v", want, labels)
		}
	}
}

func TestLoadDatasetEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "star_data.txt")
	if err := os.WriteFile(path, []byte("no labels here\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := LoadDataset(path); err == nil {
		t.Fatalf("expected an error for a dataset without labeled sentences")
	}
}
