// Package tfidf implements the term frequency / inverse document frequency
// vectorization the STAR classifier consumes: tokens of two or more word
// characters, English stop words removed, word n-grams, smoothed IDF and
// L2-normalized rows.
package tfidf

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer converts sentences into fixed-width feature vectors using a
// vocabulary learned with Fit. A fitted Vectorizer is immutable and safe for
// concurrent Transform calls.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	NgramMin   int            `json:"ngram_min"`
	NgramMax   int            `json:"ngram_max"`
}

// NewVectorizer returns an unfitted vectorizer producing unigram and bigram
// features.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{NgramMin: 1, NgramMax: 2}
}

// Fit learns the vocabulary and IDF weights from the given documents.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return fmt.Errorf("fit requires at least one document")
	}
	if v.NgramMin <= 0 || v.NgramMax < v.NgramMin {
		return fmt.Errorf("invalid ngram range (%d, %d)", v.NgramMin, v.NgramMax)
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range v.terms(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	if len(df) == 0 {
		return fmt.Errorf("no terms survived tokenization")
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1.
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return nil
}

// Transform converts a document into a dense, L2-normalized TF-IDF vector of
// vocabulary width. Unknown terms are ignored.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.IDF))
	for _, term := range v.terms(doc) {
		idx, ok := v.Vocabulary[term]
		if !ok {
			continue
		}
		vec[idx] += v.IDF[idx]
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}

	return vec
}

// TransformAll vectorizes every document in order.
func (v *Vectorizer) TransformAll(docs []string) [][]float64 {
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return vectors
}

// Width returns the number of features a Transform call produces.
func (v *Vectorizer) Width() int {
	return len(v.IDF)
}

func (v *Vectorizer) terms(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)

	tokens := raw[:0]
	for _, token := range raw {
		if IsStopWord(token) {
			continue
		}
		tokens = append(tokens, token)
	}

	var terms []string
	for n := v.NgramMin; n <= v.NgramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}

	return terms
}
