package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"reviewscope-go-scraper/internal/analyzer"
	"reviewscope-go-scraper/internal/config"
	"reviewscope-go-scraper/internal/extractor"
	"reviewscope-go-scraper/internal/models"
	"reviewscope-go-scraper/internal/scraper"
	"reviewscope-go-scraper/internal/sites"
	"reviewscope-go-scraper/pkg/logger"
)

func main() {
	cfg := config.Load()
	l := logger.New()

	client := scraper.NewHTTPClient(cfg.FetchTimeout, cfg.DialTimeout, cfg.MaxBodyBytes, cfg.UserAgent)
	svc := scraper.NewService(client, extractor.New(l), l)

	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":     "reviewscope",
			"description": "Universal review scraper with keyword filtering across 40+ platforms",
			"endpoints": map[string]string{
				"health":     "/health - GET - Health check",
				"platforms":  "/platforms - GET - List supported platforms",
				"categories": "/categories - GET - Available filter categories",
				"reviews":    "/reviews?url=... - GET - Scrape reviews from a supported page",
				"search":     "/search?url=...&keywords=a,b - GET - Scrape, filter, rank, and summarize",
			},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/platforms", func(w http.ResponseWriter, req *http.Request) {
		platforms := sites.List()
		writeJSON(w, http.StatusOK, map[string]any{
			"platforms":      platforms,
			"totalPlatforms": len(platforms),
		})
	})

	r.Get("/categories", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"categories":      categoryDescriptions(),
			"totalCategories": len(analyzer.CategoryNames()),
		})
	})

	// GET /reviews?url=...&platform=optional
	r.Get("/reviews", func(w http.ResponseWriter, req *http.Request) {
		rawURL := req.URL.Query().Get("url")
		if err := validatePageURL(rawURL); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(req.Context(), cfg.FetchTimeout+5*time.Second)
		defer cancel()

		res, err := svc.Scrape(ctx, rawURL, req.URL.Query().Get("platform"))
		if err != nil {
			writeScrapeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"reviews":      res.Reviews,
			"totalReviews": len(res.Reviews),
			"platform":     res.PlatformID,
			"platformName": res.PlatformName,
			"sourceUrl":    res.SourceURL,
			"fetchMs":      res.FetchMs,
		})
	})

	// GET /search?url=...&keywords=a,b&categories=x,y&min_rating=&max_rating=&sentiment=&sort_by=&limit=
	r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
		rawURL := req.URL.Query().Get("url")
		if err := validatePageURL(rawURL); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		query, err := queryFromValues(req.URL.Query())
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(req.Context(), cfg.FetchTimeout+5*time.Second)
		defer cancel()

		res, err := svc.Scrape(ctx, rawURL, req.URL.Query().Get("platform"))
		if err != nil {
			writeScrapeError(w, err)
			return
		}

		filtered, err := analyzer.Filter(res.Reviews, query)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"reviews":       filtered,
			"insights":      analyzer.Summarize(filtered),
			"filterApplied": query,
			"totalFound":    len(filtered),
			"totalScraped":  len(res.Reviews),
			"platform":      res.PlatformID,
			"platformName":  res.PlatformName,
			"sourceUrl":     res.SourceURL,
		})
	})

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      logRequest(l, r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		l.Infof("server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			l.Errorf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	l.Infof("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Infof("bye")
}

// queryFromValues builds a FilterQuery from request parameters, rejecting
// malformed values instead of silently applying defaults.
func queryFromValues(v url.Values) (models.FilterQuery, error) {
	q := models.DefaultFilterQuery()

	q.Keywords = splitCSV(v.Get("keywords"))
	q.Categories = splitCSV(v.Get("categories"))

	if s := v.Get("min_rating"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return q, errors.New("min_rating must be a number")
		}
		q.MinRating = f
	}
	if s := v.Get("max_rating"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return q, errors.New("max_rating must be a number")
		}
		q.MaxRating = f
	}
	if s := v.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return q, errors.New("limit must be an integer")
		}
		q.Limit = n
	}

	sentiment, ok := models.ParseSentiment(v.Get("sentiment"))
	if !ok {
		return q, errors.New("sentiment must be one of: positive, negative, neutral")
	}
	q.Sentiment = sentiment

	if s := v.Get("sort_by"); s != "" {
		// unknown sort keys fall through to input-order, by contract
		q.SortBy = models.SortKey(s)
	}

	return q, q.Validate()
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validatePageURL(raw string) error {
	if raw == "" {
		return errors.New("missing required parameter: url")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return errors.New("url must start with http:// or https://")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return errors.New("invalid url format")
	}
	return nil
}

// writeScrapeError maps pipeline failures onto distinguishable status codes:
// unsupported platform is a client problem, anything else is an upstream one.
func writeScrapeError(w http.ResponseWriter, err error) {
	if errors.Is(err, sites.ErrPlatformNotFound) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":              err.Error(),
			"supportedPlatforms": sites.List(),
		})
		return
	}
	writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
}

func categoryDescriptions() map[string]string {
	return map[string]string{
		"assembly":         "Reviews about product assembly, setup, and installation",
		"quality":          "Reviews about build quality, materials, and construction",
		"value":            "Reviews about price, value for money, and cost",
		"size":             "Reviews about product size, dimensions, and fit",
		"comfort":          "Reviews about comfort, ergonomics, and feel",
		"delivery":         "Reviews about shipping, delivery, and packaging",
		"customer_service": "Reviews about customer support and service",
		"durability":       "Reviews about product longevity and durability",
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func logRequest(l *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		l.Infof("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
