// Package analyzer holds the stateless text-analysis and review-ranking
// engine: sentiment and category classification, keyword relevance scoring,
// the filter/sort pipeline, and insight aggregation. Every function is a pure
// function of its inputs and safe for concurrent use.
package analyzer

import (
	"strings"
	"unicode"

	"reviewscope-go-scraper/internal/models"
)

var positiveWords = map[string]struct{}{
	"excellent": {}, "amazing": {}, "great": {}, "love": {}, "perfect": {}, "awesome": {},
	"fantastic": {}, "wonderful": {}, "brilliant": {}, "outstanding": {}, "superb": {},
	"recommend": {}, "happy": {}, "satisfied": {}, "pleased": {}, "impressed": {},
}

var negativeWords = map[string]struct{}{
	"terrible": {}, "awful": {}, "hate": {}, "horrible": {}, "worst": {}, "bad": {},
	"disappointed": {}, "poor": {}, "useless": {}, "waste": {}, "regret": {},
	"broken": {}, "defective": {}, "faulty": {}, "cheap": {}, "flimsy": {},
}

// categoryLexicons is ordered so Categories always reports matches in the
// same sequence regardless of map iteration.
var categoryLexicons = []struct {
	name     string
	keywords []string
}{
	{"assembly", []string{
		"assembly", "assemble", "put together", "setup", "installation",
		"install", "build", "construction", "instructions", "manual",
		"easy to assemble", "hard to assemble", "difficult assembly",
	}},
	{"quality", []string{
		"quality", "build quality", "material", "sturdy", "durable",
		"solid", "cheap", "flimsy", "well made", "construction",
		"materials", "finish", "craftsmanship",
	}},
	{"value", []string{
		"value", "price", "worth", "expensive", "cheap", "affordable",
		"money", "cost", "budget", "overpriced", "good deal",
		"bang for buck", "value for money",
	}},
	{"size", []string{
		"size", "big", "small", "large", "compact", "spacious",
		"dimensions", "fit", "space", "room", "tiny", "huge",
		"perfect size", "too big", "too small",
	}},
	{"comfort", []string{
		"comfort", "comfortable", "ergonomic", "soft", "firm",
		"cushion", "support", "padding", "cozy", "uncomfortable",
	}},
	{"delivery", []string{
		"delivery", "shipping", "arrived", "package", "packaging",
		"fast shipping", "slow delivery", "damaged", "box",
		"delivered", "received",
	}},
	{"customer_service", []string{
		"customer service", "support", "help", "response", "staff",
		"representative", "helpful", "rude", "friendly", "contact",
	}},
	{"durability", []string{
		"durability", "durable", "last", "lasting", "wear", "tear",
		"broke", "broken", "sturdy", "reliable", "falls apart",
	}},
}

// CategoryNames returns the fixed category set in declaration order.
func CategoryNames() []string {
	out := make([]string, 0, len(categoryLexicons))
	for _, c := range categoryLexicons {
		out = append(out, c.name)
	}
	return out
}

// Sentiment tags text by intersecting its word set with the positive and
// negative lexicons; the strictly larger side wins, ties are neutral.
func Sentiment(text string) models.Sentiment {
	if text == "" {
		return models.SentimentNeutral
	}

	words := map[string]struct{}{}
	token := func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsNumber(r) }
	for _, w := range strings.FieldsFunc(strings.ToLower(text), token) {
		words[w] = struct{}{}
	}

	pos, neg := 0, 0
	for w := range words {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
	}

	switch {
	case pos > neg:
		return models.SentimentPositive
	case neg > pos:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// Categories returns every category with at least one lexicon keyword
// appearing as a case-insensitive substring of text. Each category is
// reported at most once.
func Categories(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var matched []string
	for _, cat := range categoryLexicons {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, cat.name)
				break
			}
		}
	}
	return matched
}
