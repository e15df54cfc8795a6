package analyzer

import (
	"reflect"
	"testing"

	"reviewscope-go-scraper/internal/models"
)

func TestSummarizeEmpty(t *testing.T) {
	ins := Summarize(nil)
	if ins.TotalReviews != 0 {
		t.Fatalf("want 0 total, got %d", ins.TotalReviews)
	}
	if ins.AverageRating != 0 {
		t.Fatalf("want 0 average, got %v", ins.AverageRating)
	}
	if len(ins.CategoryBreakdown) != 0 || len(ins.SentimentBreakdown) != 0 {
		t.Fatalf("want empty breakdowns, got %+v", ins)
	}
	if len(ins.TopCategories) != 0 {
		t.Fatalf("want no top categories, got %v", ins.TopCategories)
	}
}

func annotated(rating float64, sentiment models.Sentiment, categories ...string) models.AnnotatedReview {
	return models.AnnotatedReview{
		Review:     models.Review{Rating: rating, ReviewText: "x"},
		Sentiment:  sentiment,
		Categories: categories,
	}
}

func TestSummarize(t *testing.T) {
	reviews := []models.AnnotatedReview{
		annotated(5, models.SentimentPositive, "quality", "assembly"),
		annotated(4, models.SentimentPositive, "quality"),
		annotated(2, models.SentimentNegative, "delivery"),
		annotated(3, models.SentimentNeutral),
	}

	ins := Summarize(reviews)

	if ins.TotalReviews != 4 {
		t.Fatalf("total = %d, want 4", ins.TotalReviews)
	}
	if ins.AverageRating != 3.5 {
		t.Fatalf("average = %v, want 3.5", ins.AverageRating)
	}
	if ins.CategoryBreakdown["quality"] != 2 || ins.CategoryBreakdown["assembly"] != 1 || ins.CategoryBreakdown["delivery"] != 1 {
		t.Fatalf("category breakdown wrong: %v", ins.CategoryBreakdown)
	}
	if ins.SentimentBreakdown["positive"] != 2 || ins.SentimentBreakdown["negative"] != 1 || ins.SentimentBreakdown["neutral"] != 1 {
		t.Fatalf("sentiment breakdown wrong: %v", ins.SentimentBreakdown)
	}
	// quality leads, then assembly/delivery tie broken by name
	if !reflect.DeepEqual(ins.TopCategories, []string{"quality", "assembly", "delivery"}) {
		t.Fatalf("top categories = %v", ins.TopCategories)
	}

	dist := ins.RatingDistribution
	if dist["5_star"] != 1 || dist["4_star"] != 1 || dist["3_star"] != 1 || dist["2_star"] != 1 || dist["1_star"] != 0 {
		t.Fatalf("rating distribution wrong: %v", dist)
	}
}

func TestSummarizeBucketEdges(t *testing.T) {
	reviews := []models.AnnotatedReview{
		annotated(4.5, models.SentimentNeutral), // lowest 5-star
		annotated(4.49, models.SentimentNeutral),
		annotated(1.5, models.SentimentNeutral), // lowest 2-star
		annotated(1.49, models.SentimentNeutral),
		annotated(0, models.SentimentNeutral),
	}
	dist := Summarize(reviews).RatingDistribution
	if dist["5_star"] != 1 || dist["4_star"] != 1 || dist["2_star"] != 1 || dist["1_star"] != 2 {
		t.Fatalf("bucket edges wrong: %v", dist)
	}
}

func TestSummarizeTopFiveCap(t *testing.T) {
	reviews := []models.AnnotatedReview{
		annotated(3, models.SentimentNeutral,
			"assembly", "quality", "value", "size", "comfort", "delivery", "durability"),
	}
	top := Summarize(reviews).TopCategories
	if len(top) != 5 {
		t.Fatalf("want 5 top categories, got %d: %v", len(top), top)
	}
}
