package models

import "fmt"

// Validate rejects malformed filter parameters before any filtering runs.
// A zero Limit is allowed and means "use the default".
func (q FilterQuery) Validate() error {
	if q.MinRating < 0 {
		return fmt.Errorf("minRating must be >= 0, got %v", q.MinRating)
	}
	if q.MaxRating < q.MinRating {
		return fmt.Errorf("maxRating %v is below minRating %v", q.MaxRating, q.MinRating)
	}
	if q.Limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", q.Limit)
	}
	if _, ok := ParseSentiment(string(q.Sentiment)); !ok {
		return fmt.Errorf("unknown sentiment %q", q.Sentiment)
	}
	return nil
}
