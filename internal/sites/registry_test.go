package sites

import "testing"

func TestDetectRegisteredDomains(t *testing.T) {
	// every registry entry must be detectable from a URL on its own domain,
	// including extra path and query segments
	for _, p := range List() {
		url := "https://www." + p.Domain + "/some/product-123?page=2&sort=newest"
		id, ok := Detect(url)
		if !ok {
			t.Fatalf("Detect(%q) found nothing, want %q", url, p.ID)
		}
		cfg, err := Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", id, err)
		}
		if cfg.Domain != p.Domain && id != p.ID {
			t.Fatalf("Detect(%q) = %q, want %q", url, id, p.ID)
		}
	}
}

func TestDetectFirstMatchWins(t *testing.T) {
	id, ok := Detect("https://www.walmart.com/ip/standing-desk")
	if !ok || id != "walmart" {
		t.Fatalf("want walmart, got %q ok=%v", id, ok)
	}
}

func TestDetectCaseInsensitiveHost(t *testing.T) {
	id, ok := Detect("https://WWW.Target.COM/p/chair")
	if !ok || id != "target" {
		t.Fatalf("want target, got %q ok=%v", id, ok)
	}
}

func TestDetectFailsClosed(t *testing.T) {
	for _, bad := range []string{"", "not a url", "https://unknown-shop.example.com/x", "::bad::"} {
		if id, ok := Detect(bad); ok {
			t.Fatalf("Detect(%q) = %q, want no match", bad, id)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("myspace"); err == nil {
		t.Fatal("expected error for unknown platform")
	}
}

func TestRegistryDefaults(t *testing.T) {
	for _, p := range List() {
		cfg, err := Lookup(p.ID)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", p.ID, err)
		}
		if cfg.Domain == "" {
			t.Fatalf("%s: empty domain", p.ID)
		}
		if cfg.RatingScale != 5 {
			t.Fatalf("%s: rating scale %d, want 5", p.ID, cfg.RatingScale)
		}
		if cfg.MaxReviews != 10 {
			t.Fatalf("%s: max reviews %d, want 10", p.ID, cfg.MaxReviews)
		}
		if cfg.ReviewContainer == "" || cfg.ReviewText == "" {
			t.Fatalf("%s: missing selectors", p.ID)
		}
	}
}
