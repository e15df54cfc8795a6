// Package scraper composes platform detection, page fetch, document parsing,
// and review extraction into one pipeline. It is the error boundary that
// keeps "nothing matched" distinguishable from "the call failed".
package scraper

import (
	"context"
	"fmt"

	"reviewscope-go-scraper/internal/extractor"
	"reviewscope-go-scraper/internal/models"
	"reviewscope-go-scraper/internal/sites"
	"reviewscope-go-scraper/pkg/logger"
)

type Service struct {
	client *HTTPClient
	ext    *extractor.Extractor
	log    *logger.Logger
}

func NewService(client *HTTPClient, ext *extractor.Extractor, log *logger.Logger) *Service {
	if log == nil {
		log = logger.New()
	}
	return &Service{client: client, ext: ext, log: log}
}

// Result is one completed scrape.
type Result struct {
	PlatformID   string          `json:"platform"`
	PlatformName string          `json:"platformName"`
	SourceURL    string          `json:"sourceUrl"`
	FetchMs      int64           `json:"fetchMs"`
	Reviews      []models.Review `json:"reviews"`
}

// Scrape resolves the platform for rawURL (platformOverride skips detection),
// fetches the page, and extracts its reviews. An empty Reviews slice with a
// nil error means the page genuinely yielded nothing.
func (s *Service) Scrape(ctx context.Context, rawURL, platformOverride string) (Result, error) {
	id := platformOverride
	if id == "" {
		detected, ok := sites.Detect(rawURL)
		if !ok {
			return Result{}, fmt.Errorf("%w: no registered domain matches %q", sites.ErrPlatformNotFound, rawURL)
		}
		id = detected
	}

	cfg, err := sites.Lookup(id)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", err, id)
	}

	body, finalURL, contentType, elapsed, err := s.client.Fetch(ctx, rawURL)
	if err != nil {
		return Result{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer body.Close()

	doc, err := extractor.ParseDocument(body, contentType)
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", rawURL, err)
	}

	reviews := s.ext.Extract(doc, id, cfg, rawURL)
	s.log.Infof("scraper: %s -> %d reviews in %s", cfg.Name, len(reviews), elapsed)

	return Result{
		PlatformID:   id,
		PlatformName: cfg.Name,
		SourceURL:    finalURL,
		FetchMs:      elapsed.Milliseconds(),
		Reviews:      reviews,
	}, nil
}
