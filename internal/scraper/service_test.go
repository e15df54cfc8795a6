package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reviewscope-go-scraper/internal/extractor"
	"reviewscope-go-scraper/internal/sites"
)

// costco uses plain .review-item selectors, handy for fixtures
const costcoHTML = `<html><body>
<div class="review-item">
  <span class="review-author">Sam</span>
  <span class="review-rating" aria-label="5 out of 5">stars</span>
  <p class="review-text">Solid build quality.</p>
  <span class="review-date">2024-05-02</span>
</div>
</body></html>`

func newTestService() *Service {
	client := NewHTTPClient(5*time.Second, 2*time.Second, 1<<20, "reviewscope-test/1.0")
	return NewService(client, extractor.New(nil), nil)
}

func TestScrapeWithPlatformOverride(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(costcoHTML))
	}))
	defer ts.Close()

	// httptest hosts are raw IPs, so detection cannot apply; the override
	// path exercises lookup + fetch + extract
	res, err := newTestService().Scrape(context.Background(), ts.URL, "costco")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if res.PlatformID != "costco" || res.PlatformName != "Costco" {
		t.Fatalf("bad platform info: %+v", res)
	}
	if len(res.Reviews) != 1 {
		t.Fatalf("want 1 review, got %d", len(res.Reviews))
	}
	r := res.Reviews[0]
	if r.ReviewerName != "Sam" || r.Rating != 5 || r.ReviewText != "Solid build quality." {
		t.Fatalf("bad review: %+v", r)
	}
	if r.Source != "costco_scraping" {
		t.Fatalf("bad source tag: %q", r.Source)
	}
}

func TestScrapeUnknownPlatform(t *testing.T) {
	_, err := newTestService().Scrape(context.Background(), "https://no-such-shop.example.com/p/1", "")
	if !errors.Is(err, sites.ErrPlatformNotFound) {
		t.Fatalf("want ErrPlatformNotFound, got %v", err)
	}
}

func TestScrapeBadOverride(t *testing.T) {
	_, err := newTestService().Scrape(context.Background(), "https://example.com/p/1", "myspace")
	if !errors.Is(err, sites.ErrPlatformNotFound) {
		t.Fatalf("want ErrPlatformNotFound, got %v", err)
	}
}

func TestScrapeNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	_, err := newTestService().Scrape(context.Background(), ts.URL, "costco")
	if err == nil {
		t.Fatal("want error for upstream failure")
	}
	if errors.Is(err, sites.ErrPlatformNotFound) {
		t.Fatal("network failure mislabeled as platform error")
	}
}

func TestScrapeEmptyPageIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>no reviews yet</p></body></html>"))
	}))
	defer ts.Close()

	res, err := newTestService().Scrape(context.Background(), ts.URL, "costco")
	if err != nil {
		t.Fatalf("empty page must not fail: %v", err)
	}
	if len(res.Reviews) != 0 {
		t.Fatalf("want 0 reviews, got %d", len(res.Reviews))
	}
}
