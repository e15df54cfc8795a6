package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"reviewscope-go-scraper/internal/analyzer"
	"reviewscope-go-scraper/internal/config"
	"reviewscope-go-scraper/internal/extractor"
	"reviewscope-go-scraper/internal/ioformats"
	"reviewscope-go-scraper/internal/models"
	"reviewscope-go-scraper/internal/scraper"
	"reviewscope-go-scraper/internal/storage"
	"reviewscope-go-scraper/pkg/logger"
)

func main() {
	urlFlag := flag.String("url", "", "single review page URL to scrape")
	in := flag.String("input", "", "input file with URLs (csv with 'url' column or ndjson)")
	out := flag.String("output", "", "output NDJSON file (default stdout)")
	concurrency := flag.Int("concurrency", 5, "worker concurrency")

	keywords := flag.String("keywords", "", "comma-separated keywords to rank by")
	categories := flag.String("categories", "", "comma-separated categories to require")
	minRating := flag.Float64("min-rating", 0, "minimum rating")
	maxRating := flag.Float64("max-rating", 5, "maximum rating")
	sentimentFlag := flag.String("sentiment", "", "filter by sentiment (positive|negative|neutral)")
	sortBy := flag.String("sort-by", "relevance", "sort key (relevance|rating|date|length)")
	limit := flag.Int("limit", 50, "maximum reviews in output")

	csvOut := flag.String("csv", "", "also write raw reviews to this CSV file")
	persist := flag.Bool("persist", false, "write raw reviews to Postgres (needs DATABASE_URL)")
	showInsights := flag.Bool("insights", false, "print an insight summary to stderr")
	flag.Parse()

	l := logger.New()
	cfg := config.Load()

	urls, err := collectURLs(*urlFlag, *in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sentiment, ok := models.ParseSentiment(*sentimentFlag)
	if !ok {
		fmt.Fprintln(os.Stderr, "invalid -sentiment: must be positive, negative, or neutral")
		os.Exit(2)
	}
	query := models.FilterQuery{
		Keywords:   splitCSV(*keywords),
		Categories: splitCSV(*categories),
		MinRating:  *minRating,
		MaxRating:  *maxRating,
		Sentiment:  sentiment,
		SortBy:     models.SortKey(*sortBy),
		Limit:      *limit,
	}
	if err := query.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid query:", err)
		os.Exit(2)
	}

	client := scraper.NewHTTPClient(cfg.FetchTimeout, cfg.DialTimeout, cfg.MaxBodyBytes, cfg.UserAgent)
	svc := scraper.NewService(client, extractor.New(l), l)

	results := make([][]models.Review, len(urls))
	sem := make(chan struct{}, *concurrency)
	done := make(chan int, len(urls))

	for i, u := range urls {
		i, u := i, u
		sem <- struct{}{} // acquire
		go func() {
			defer func() { <-sem; done <- i }()
			res, err := svc.Scrape(context.Background(), u, "")
			if err != nil {
				l.Errorf("scrape %s: %v", u, err)
				return
			}
			results[i] = res.Reviews
		}()
	}
	for range urls {
		<-done
	}

	var raw []models.Review
	for _, rs := range results {
		raw = append(raw, rs...)
	}

	if *csvOut != "" {
		if err := writeSink(raw, mustCSV(*csvOut)); err != nil {
			l.Errorf("csv output: %v", err)
		}
	}
	if *persist {
		if cfg.DatabaseURL == "" {
			fmt.Fprintln(os.Stderr, "-persist requires DATABASE_URL")
			os.Exit(2)
		}
		pw, err := storage.NewPostgresWriter(cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "postgres:", err)
			os.Exit(1)
		}
		if err := writeSink(raw, pw); err != nil {
			l.Errorf("postgres output: %v", err)
		}
	}

	filtered, err := analyzer.Filter(raw, query)
	if err != nil {
		fmt.Fprintln(os.Stderr, "filter:", err)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create output:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := ioformats.WriteReviewsNDJSON(w, filtered); err != nil {
		fmt.Fprintln(os.Stderr, "write output:", err)
		os.Exit(1)
	}

	if *showInsights {
		printInsights(analyzer.Summarize(filtered), len(raw))
	}
}

func collectURLs(single, inputPath string) ([]string, error) {
	if single == "" && inputPath == "" {
		return nil, fmt.Errorf("missing --url or --input")
	}
	if single != "" {
		return []string{single}, nil
	}
	urls, err := ioformats.ReadURLs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return urls, nil
}

func mustCSV(path string) storage.ReviewSink {
	cw, err := storage.NewCSVWriter(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "csv:", err)
		os.Exit(1)
	}
	return cw
}

func writeSink(reviews []models.Review, sink storage.ReviewSink) error {
	defer sink.Close()
	return sink.Write(reviews)
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

func printInsights(ins models.Insights, totalScraped int) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Review insights")
	fmt.Fprintln(os.Stderr, "---------------")
	fmt.Fprintf(os.Stderr, "matched %d of %d scraped reviews\n", ins.TotalReviews, totalScraped)
	fmt.Fprintf(os.Stderr, "average rating: %.2f\n", ins.AverageRating)
	if len(ins.TopCategories) > 0 {
		fmt.Fprintf(os.Stderr, "top categories: %v\n", ins.TopCategories)
	}
	for _, s := range []string{"positive", "neutral", "negative"} {
		if n := ins.SentimentBreakdown[s]; n > 0 {
			fmt.Fprintf(os.Stderr, "  %-8s %d\n", s, n)
		}
	}
	for _, b := range []string{"5_star", "4_star", "3_star", "2_star", "1_star"} {
		fmt.Fprintf(os.Stderr, "  %-7s %d\n", b, ins.RatingDistribution[b])
	}
}
