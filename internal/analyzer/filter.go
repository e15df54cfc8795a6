package analyzer

import (
	"sort"

	"reviewscope-go-scraper/internal/models"
)

// RelevanceThreshold is the minimum keyword relevance a review must reach to
// survive a keyword-filtered query.
const RelevanceThreshold = 0.10

const defaultLimit = 50

// Filter annotates, filters, sorts, and truncates reviews per the query.
// All predicates are evaluated before a review is included: rating bounds,
// sentiment, category intersection, then keyword relevance. The sort is
// stable, so ties keep their input order.
func Filter(reviews []models.Review, q models.FilterQuery) ([]models.AnnotatedReview, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	kept := make([]models.AnnotatedReview, 0, len(reviews))
	for _, rev := range reviews {
		if rev.Rating < q.MinRating || rev.Rating > q.MaxRating {
			continue
		}

		sentiment := Sentiment(rev.ReviewText)
		if q.Sentiment != "" && sentiment != q.Sentiment {
			continue
		}

		categories := Categories(rev.ReviewText)
		if len(q.Categories) > 0 && !intersects(categories, q.Categories) {
			continue
		}

		relevance := 1.0
		if len(q.Keywords) > 0 {
			relevance = Relevance(rev.ReviewText, q.Keywords)
			if relevance <= RelevanceThreshold {
				continue
			}
		}

		kept = append(kept, models.AnnotatedReview{
			Review:           rev,
			Sentiment:        sentiment,
			Categories:       categories,
			KeywordRelevance: relevance,
		})
	}

	sortReviews(kept, q.SortBy)

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept, nil
}

// sortReviews orders in place, descending on the chosen key. An unrecognized
// key preserves input order.
func sortReviews(reviews []models.AnnotatedReview, key models.SortKey) {
	switch key {
	case models.SortByRelevance:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].KeywordRelevance > reviews[j].KeywordRelevance
		})
	case models.SortByRating:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Rating > reviews[j].Rating
		})
	case models.SortByDate:
		// best-effort: raw date strings compared lexicographically
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Date > reviews[j].Date
		})
	case models.SortByLength:
		sort.SliceStable(reviews, func(i, j int) bool {
			return len(reviews[i].ReviewText) > len(reviews[j].ReviewText)
		})
	}
}

func intersects(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
