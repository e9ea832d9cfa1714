package analysis

import "github.com/resumeiq/resumeiq/internal/extract"

// SentenceScore is the per-sentence classifier verdict.
type SentenceScore struct {
	Text       string  `json:"text"`
	Star       bool    `json:"star"`
	Confidence float64 `json:"confidence"`
}

// RoleMatch summarizes how well the resume bullets cover a role's keywords.
type RoleMatch struct {
	Role      string  `json:"role"`
	Score     float64 `json:"score"`
	BestScore float64 `json:"best_score"`
	Bullets   int     `json:"bullets"`
}

// DepthSummary aggregates the depth classifier over the resume bullets.
type DepthSummary struct {
	DeepBullets  int     `json:"deep_bullets"`
	TotalBullets int     `json:"total_bullets"`
	Percentage   float64 `json:"percentage"`
}

// Report is the final scoring output for one resume.
type Report struct {
	File           string `json:"file"`
	TotalSentences int    `json:"total_sentences"`

	StarSentences  int     `json:"star_sentences"`
	StarPercentage float64 `json:"star_percentage"`

	// Sentences carries the per-sentence breakdown when requested.
	Sentences []SentenceScore `json:"sentences,omitempty"`

	// Flagged lists the STAR-compliant sentences.
	Flagged []string `json:"flagged,omitempty"`

	Contacts  *extract.Contacts `json:"contacts,omitempty"`
	RoleMatch *RoleMatch        `json:"role_match,omitempty"`
	Depth     *DepthSummary     `json:"depth,omitempty"`
}
