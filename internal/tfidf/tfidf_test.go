package tfidf

import (
	"math"
	"testing"
)

func TestFitBuildsSortedVocabularyWithBigrams(t *testing.T) {
	v := NewVectorizer()

	docs := []string{
		"improved latency dramatically",
		"improved error budget",
	}

	if err := v.Fit(docs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unigrams and bigrams of both documents, stop words removed.
	if v.Width() != 9 {
		t.Fatalf("expected 9 features, got %d", v.Width())
	}

	if _, ok := v.Vocabulary["improved latency"]; !ok {
		t.Fatalf("expected bigram 'improved latency' in the vocabulary")
	}

	idx, ok := v.Vocabulary["improved"]
	if !ok {
		t.Fatalf("expected 'improved' in the vocabulary")
	}

	// A term present in every document gets the smoothed minimum IDF of 1.
	if math.Abs(v.IDF[idx]-1) > 1e-12 {
		t.Fatalf("expected IDF 1 for 'improved', got %v", v.IDF[idx])
	}

	rare, ok := v.Vocabulary["latency"]
	if !ok {
		t.Fatalf("expected 'latency' in the vocabulary")
	}

	want := math.Log(3.0/2.0) + 1
	if math.Abs(v.IDF[rare]-want) > 1e-12 {
		t.Fatalf("expected IDF %v for 'latency', got %v", want, v.IDF[rare])
	}
}

func TestTransformProducesUnitVectors(t *testing.T) {
	v := NewVectorizer()
	if err := v.Fit([]string{"improved latency dramatically", "improved error budget"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vec := v.Transform("improved latency dramatically")
	if len(vec) != v.Width() {
		t.Fatalf("expected width %d, got %d", v.Width(), len(vec))
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
		t.Fatalf("expected an L2-normalized vector, got norm %v", math.Sqrt(norm))
	}
}

func TestTransformIgnoresUnknownTerms(t *testing.T) {
	v := NewVectorizer()
	if err := v.Fit([]string{"improved latency"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vec := v.Transform("quantum entanglement")
	for i, x := range vec {
		if x != 0 {
			t.Fatalf("expected a zero vector, got %v at %d", x, i)
		}
	}
}

func TestTransformDropsStopWords(t *testing.T) {
	v := NewVectorizer()
	if err := v.Fit([]string{"improved latency"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vec := v.Transform("the and or with")
	for i, x := range vec {
		if x != 0 {
			t.Fatalf("expected stop words to vectorize to zero, got %v at %d", x, i)
		}
	}
}

func TestFitRejectsBadInput(t *testing.T) {
	if err := NewVectorizer().Fit(nil); err == nil {
		t.Fatalf("expected an error for an empty corpus")
	}

	v := &Vectorizer{NgramMin: 2, NgramMax: 1}
	if err := v.Fit([]string{"improved latency"}); err == nil {
		t.Fatalf("expected an error for an invalid ngram range")
	}
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word   string
		expect bool
	}{
		{"the", true},
		{"and", true},
		{"latency", false},
		{"kubernetes", false},
	}

	for _, tt := range tests {
		if got := IsStopWord(tt.word); got != tt.expect {
			t.Fatalf("IsStopWord(%q) = %v, want %v", tt.word, got, tt.expect)
		}
	}
}
