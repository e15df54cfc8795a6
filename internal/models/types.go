package models

// Sentiment classifies the overall tone of a review's text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment validates a sentiment string. Empty input is allowed and
// means "no sentiment filter".
func ParseSentiment(s string) (Sentiment, bool) {
	switch Sentiment(s) {
	case "", SentimentPositive, SentimentNegative, SentimentNeutral:
		return Sentiment(s), true
	}
	return "", false
}

// SortKey selects the ordering applied to filtered reviews. Anything outside
// the known set preserves input order, which is the documented default.
type SortKey string

const (
	SortByRelevance SortKey = "relevance"
	SortByRating    SortKey = "rating"
	SortByDate      SortKey = "date"
	SortByLength    SortKey = "length"
)

// Review is a single extracted review, as read off the page.
type Review struct {
	ReviewerName string  `json:"reviewerName"`
	Rating       float64 `json:"rating"`
	ReviewText   string  `json:"reviewText"`
	Date         string  `json:"date"`
	SourceURL    string  `json:"sourceUrl"`
	Source       string  `json:"source"`
	PlatformName string  `json:"platformName"`
}

// AnnotatedReview is a Review plus the fields derived during filtering.
type AnnotatedReview struct {
	Review
	Sentiment        Sentiment `json:"sentiment"`
	Categories       []string  `json:"categories"`
	KeywordRelevance float64   `json:"keywordRelevance"`
}

// FilterQuery carries the caller's filtering and ranking intent.
type FilterQuery struct {
	Keywords   []string  `json:"keywords,omitempty"`
	Categories []string  `json:"categories,omitempty"`
	MinRating  float64   `json:"minRating"`
	MaxRating  float64   `json:"maxRating"`
	Sentiment  Sentiment `json:"sentiment,omitempty"`
	SortBy     SortKey   `json:"sortBy"`
	Limit      int       `json:"limit"`
}

// DefaultFilterQuery returns a query that passes everything through.
func DefaultFilterQuery() FilterQuery {
	return FilterQuery{
		MinRating: 0,
		MaxRating: 5,
		SortBy:    SortByRelevance,
		Limit:     50,
	}
}

// Insights summarizes a filtered review collection.
type Insights struct {
	TotalReviews       int            `json:"totalReviews"`
	AverageRating      float64        `json:"averageRating"`
	CategoryBreakdown  map[string]int `json:"categoryBreakdown"`
	SentimentBreakdown map[string]int `json:"sentimentBreakdown"`
	TopCategories      []string       `json:"topCategories"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
}
