package analyzer

import (
	"regexp"
	"strings"
)

// Relevance scores how densely the keywords occur in text, in [0, 1].
// Exact word-boundary hits weigh 2, remaining substring hits weigh 1, and the
// sum is normalized against a perfect score of one exact hit per keyword.
// This is a cheap ranking heuristic, not a probability.
func Relevance(text string, keywords []string) float64 {
	if strings.TrimSpace(text) == "" || len(keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	total := 0
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		if kwLower == "" {
			continue
		}
		exact := len(wordBoundaryRe(kwLower).FindAllStringIndex(lower, -1))
		partial := strings.Count(lower, kwLower) - exact
		if partial < 0 {
			partial = 0
		}
		total += exact*2 + partial
	}

	score := float64(total) / float64(2*len(keywords))
	if score > 1 {
		score = 1
	}
	return score
}

func wordBoundaryRe(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}
