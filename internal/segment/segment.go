package segment

import (
	"strings"
	"unicode"
)

// DefaultMinBulletWords filters out headings and stray fragments when
// collecting bullets for labeling.
const DefaultMinBulletWords = 6

var bulletMarkers = []string{"•", "●", "▪", "‣", "·", "- ", "* ", "– ", "— "}

// Sentences splits extracted resume text into candidate sentences. Sentence
// boundaries are terminal punctuation or line breaks; whitespace-only spans
// are dropped.
func Sentences(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})

	var sentences []string
	for _, field := range fields {
		sentence := normalizeSpace(field)
		if sentence == "" {
			continue
		}
		sentences = append(sentences, sentence)
	}

	return sentences
}

// Bullets collects bullet-like lines from resume text: lines introduced by a
// bullet marker, or plain lines long enough to be a real statement. Lines
// shorter than minWords words are skipped; minWords <= 0 selects the default.
func Bullets(text string, minWords int) []string {
	if minWords <= 0 {
		minWords = DefaultMinBulletWords
	}

	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = normalizeSpace(line)
		if line == "" {
			continue
		}

		for _, marker := range bulletMarkers {
			if strings.HasPrefix(line, marker) {
				line = normalizeSpace(strings.TrimPrefix(line, marker))
				break
			}
		}

		if len(strings.Fields(line)) < minWords {
			continue
		}

		bullets = append(bullets, line)
	}

	return bullets
}

func normalizeSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
