// Package extractor turns a parsed page into normalized review records using
// the selector set of a site config. It is fully generic over the config: no
// platform-specific branches live here.
package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"reviewscope-go-scraper/internal/models"
	"reviewscope-go-scraper/internal/sites"
	"reviewscope-go-scraper/pkg/logger"
)

const anonymousReviewer = "Anonymous"

var ratingRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

type Extractor struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Extractor {
	if log == nil {
		log = logger.New()
	}
	return &Extractor{log: log}
}

// Extract walks every element matching cfg.ReviewContainer (capped at
// cfg.MaxReviews) and emits one Review per container with meaningful content.
// A container whose text is empty and whose rating cannot be parsed is
// skipped; a single bad container never aborts the page.
func (e *Extractor) Extract(doc *goquery.Document, platformID string, cfg sites.Config, sourceURL string) []models.Review {
	var reviews []models.Review

	doc.Find(cfg.ReviewContainer).EachWithBreak(func(i int, container *goquery.Selection) bool {
		if i >= cfg.MaxReviews {
			return false
		}
		rev, ok := e.extractOne(container, platformID, cfg, sourceURL)
		if !ok {
			e.log.Debugf("extractor: skipping container %d on %s: no meaningful content", i, sourceURL)
			return true
		}
		reviews = append(reviews, rev)
		return true
	})

	e.log.Infof("extractor: %d reviews from %s", len(reviews), cfg.Name)
	return reviews
}

// extractOne reads the four sub-fields scoped to a single container. Missing
// sub-elements yield field defaults, not errors.
func (e *Extractor) extractOne(container *goquery.Selection, platformID string, cfg sites.Config, sourceURL string) (models.Review, bool) {
	name := anonymousReviewer
	if nameEl := container.Find(cfg.ReviewerName).First(); nameEl.Length() > 0 {
		if t := strings.TrimSpace(nameEl.Text()); t != "" {
			name = t
		}
	}

	rating := 0.0
	if ratingEl := container.Find(cfg.Rating).First(); ratingEl.Length() > 0 {
		rating = parseRating(ratingEl)
	}

	text := ""
	if textEl := container.Find(cfg.ReviewText).First(); textEl.Length() > 0 {
		text = strings.TrimSpace(textEl.Text())
	}

	date := ""
	if dateEl := container.Find(cfg.Date).First(); dateEl.Length() > 0 {
		// machine-readable datetime wins over display text
		date = strings.TrimSpace(dateEl.AttrOr("datetime", ""))
		if date == "" {
			date = strings.TrimSpace(dateEl.Text())
		}
	}

	if text == "" && rating == 0 {
		return models.Review{}, false
	}

	return models.Review{
		ReviewerName: name,
		Rating:       rating,
		ReviewText:   text,
		Date:         date,
		SourceURL:    sourceURL,
		Source:       platformID + "_scraping",
		PlatformName: cfg.Name,
	}, true
}

// parseRating pulls the first decimal number out of the element's aria-label
// if set, otherwise its text. Returns 0 when no number is present.
func parseRating(sel *goquery.Selection) float64 {
	raw := sel.AttrOr("aria-label", "")
	if raw == "" {
		raw = sel.Text()
	}
	m := ratingRe.FindString(raw)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}
