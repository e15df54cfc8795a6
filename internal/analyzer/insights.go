package analyzer

import (
	"sort"

	"reviewscope-go-scraper/internal/models"
)

// Summarize aggregates a filtered collection into Insights. Empty input
// yields a zero-valued Insights with empty breakdowns, never an error.
func Summarize(reviews []models.AnnotatedReview) models.Insights {
	ins := models.Insights{
		CategoryBreakdown:  map[string]int{},
		SentimentBreakdown: map[string]int{},
		RatingDistribution: ratingBuckets(nil),
	}
	if len(reviews) == 0 {
		return ins
	}

	ins.TotalReviews = len(reviews)

	var ratings []float64
	var sum float64
	for _, r := range reviews {
		for _, c := range r.Categories {
			ins.CategoryBreakdown[c]++
		}
		ins.SentimentBreakdown[string(r.Sentiment)]++
		ratings = append(ratings, r.Rating)
		sum += r.Rating
	}

	ins.AverageRating = sum / float64(len(ratings))
	ins.RatingDistribution = ratingBuckets(ratings)
	ins.TopCategories = topCategories(ins.CategoryBreakdown, 5)
	return ins
}

// topCategories returns up to n category names by descending count, name
// ascending on ties so output is deterministic.
func topCategories(counts map[string]int, n int) []string {
	type kv struct {
		K string
		V int
	}
	var list []kv
	for k, v := range counts {
		list = append(list, kv{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].V == list[j].V {
			return list[i].K < list[j].K
		}
		return list[i].V > list[j].V
	})
	if n > len(list) {
		n = len(list)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, list[i].K)
	}
	return out
}

func ratingBuckets(ratings []float64) map[string]int {
	buckets := map[string]int{
		"5_star": 0, "4_star": 0, "3_star": 0, "2_star": 0, "1_star": 0,
	}
	for _, r := range ratings {
		switch {
		case r >= 4.5:
			buckets["5_star"]++
		case r >= 3.5:
			buckets["4_star"]++
		case r >= 2.5:
			buckets["3_star"]++
		case r >= 1.5:
			buckets["2_star"]++
		default:
			buckets["1_star"]++
		}
	}
	return buckets
}
