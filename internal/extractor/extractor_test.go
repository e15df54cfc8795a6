package extractor

import (
	"strings"
	"testing"

	"reviewscope-go-scraper/internal/sites"
)

var testCfg = sites.Config{
	Name:            "TestShop",
	Domain:          "testshop.com",
	ReviewContainer: ".review-item",
	ReviewerName:    ".review-author",
	Rating:          ".review-rating",
	ReviewText:      ".review-text",
	Date:            ".review-date",
	RatingScale:     5,
	MaxReviews:      10,
}

const reviewsHTML = `<!doctype html><html><body>
<div class="review-item">
  <span class="review-author">Jane D.</span>
  <span class="review-rating" aria-label="4.5 out of 5 stars">stars</span>
  <p class="review-text"> Great quality desk, easy assembly. </p>
  <time class="review-date" datetime="2024-03-01">March 1, 2024</time>
</div>
<div class="review-item">
  <span class="review-rating">3 stars</span>
  <p class="review-text">Decent for the price.</p>
  <span class="review-date">Feb 12, 2024</span>
</div>
<div class="review-item">
  <span class="review-author">Ghost</span>
  <span class="review-rating">no number here</span>
  <p class="review-text">   </p>
</div>
</body></html>`

func TestExtract(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(reviewsHTML), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}

	reviews := New(nil).Extract(doc, "testshop", testCfg, "https://testshop.com/p/1")
	if len(reviews) != 2 {
		t.Fatalf("want 2 reviews (third has no content), got %d", len(reviews))
	}

	first := reviews[0]
	if first.ReviewerName != "Jane D." {
		t.Fatalf("want Jane D., got %q", first.ReviewerName)
	}
	if first.Rating != 4.5 {
		t.Fatalf("want 4.5 from aria-label, got %v", first.Rating)
	}
	if first.ReviewText != "Great quality desk, easy assembly." {
		t.Fatalf("text not trimmed: %q", first.ReviewText)
	}
	if first.Date != "2024-03-01" {
		t.Fatalf("want datetime attribute preferred, got %q", first.Date)
	}
	if first.Source != "testshop_scraping" || first.PlatformName != "TestShop" {
		t.Fatalf("bad provenance: %+v", first)
	}

	second := reviews[1]
	if second.ReviewerName != "Anonymous" {
		t.Fatalf("want Anonymous default, got %q", second.ReviewerName)
	}
	if second.Rating != 3 {
		t.Fatalf("want 3 from rating text, got %v", second.Rating)
	}
	if second.Date != "Feb 12, 2024" {
		t.Fatalf("want text fallback date, got %q", second.Date)
	}
}

func TestExtractMaxReviewsCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 25; i++ {
		b.WriteString(`<div class="review-item"><p class="review-text">fine product</p></div>`)
	}
	b.WriteString("</body></html>")

	cfg := testCfg
	cfg.MaxReviews = 7

	doc, err := ParseDocument(strings.NewReader(b.String()), "text/html")
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	reviews := New(nil).Extract(doc, "testshop", cfg, "https://testshop.com/p/2")
	if len(reviews) != 7 {
		t.Fatalf("want 7 reviews, got %d", len(reviews))
	}
}

func TestExtractScopedToContainer(t *testing.T) {
	// the second container must not pick up the first container's fields
	html := `<html><body>
<div class="review-item">
  <span class="review-author">A</span>
  <p class="review-text">first</p>
</div>
<div class="review-item">
  <p class="review-text">second</p>
</div>
</body></html>`

	doc, err := ParseDocument(strings.NewReader(html), "text/html")
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	reviews := New(nil).Extract(doc, "testshop", testCfg, "https://testshop.com/p/3")
	if len(reviews) != 2 {
		t.Fatalf("want 2 reviews, got %d", len(reviews))
	}
	if reviews[1].ReviewerName != "Anonymous" {
		t.Fatalf("second review leaked the first author: %q", reviews[1].ReviewerName)
	}
}

func TestExtractNoContainers(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader("<html><body><p>no reviews</p></body></html>"), "text/html")
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	if reviews := New(nil).Extract(doc, "testshop", testCfg, "https://testshop.com/p/4"); len(reviews) != 0 {
		t.Fatalf("want 0 reviews, got %d", len(reviews))
	}
}
