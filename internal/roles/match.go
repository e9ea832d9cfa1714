package roles

import (
	"math"
	"regexp"
	"strings"
)

// Weights of required vs. recommended keyword coverage in the final score.
const (
	requiredWeight    = 0.7
	recommendedWeight = 0.3
)

var punctuation = regexp.MustCompile(`[^\w\s]`)

// Score computes how relevant a bullet is to the role definition: the
// weighted fraction of required and recommended keywords present as whole
// words. The result is in [0, 1], rounded to three decimals.
func Score(bullet string, def Definition) float64 {
	processed := preprocess(bullet)

	var reqScore, recScore float64
	if len(def.Required) > 0 {
		reqScore = float64(matchCount(processed, def.Required)) / float64(len(def.Required))
	}
	if len(def.Recommended) > 0 {
		recScore = float64(matchCount(processed, def.Recommended)) / float64(len(def.Recommended))
	}

	score := requiredWeight*reqScore + recommendedWeight*recScore
	return math.Round(score*1000) / 1000
}

// MeanScore averages Score over all bullets; zero bullets score 0.
func MeanScore(bullets []string, def Definition) float64 {
	if len(bullets) == 0 {
		return 0
	}

	var sum float64
	for _, bullet := range bullets {
		sum += Score(bullet, def)
	}

	return math.Round(sum/float64(len(bullets))*1000) / 1000
}

func preprocess(text string) string {
	return punctuation.ReplaceAllString(strings.ToLower(text), "")
}

func matchCount(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		if pattern.MatchString(text) {
			count++
		}
	}
	return count
}
