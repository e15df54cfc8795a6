// Package sites holds the static per-platform scraping descriptors and the
// URL-based platform detection built on top of them.
package sites

import (
	"errors"
	"net/url"
	"strings"
)

// Config describes how to locate review fields within one platform's markup.
// Selector strings are opaque to this package; the extractor hands them to
// the DOM query layer as-is.
type Config struct {
	Name            string
	Domain          string
	ReviewContainer string
	ReviewerName    string
	Rating          string
	ReviewText      string
	Date            string
	RatingScale     int
	MaxReviews      int
}

// Platform is a registry listing row.
type Platform struct {
	ID     string `json:"platform"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

var ErrPlatformNotFound = errors.New("platform not in registry")

type entry struct {
	id  string
	cfg Config
}

const (
	defaultRatingScale = 5
	defaultMaxReviews  = 10
)

// registry is ordered: Detect returns the first entry whose domain matches,
// so iteration order must be the declaration order of the table.
var registry = buildRegistry()

var index = func() map[string]int {
	m := make(map[string]int, len(registry))
	for i, e := range registry {
		m[e.id] = i
	}
	return m
}()

// Lookup returns the config for a platform id.
func Lookup(id string) (Config, error) {
	i, ok := index[id]
	if !ok {
		return Config{}, ErrPlatformNotFound
	}
	return registry[i].cfg, nil
}

// List returns every registered platform in registry order.
func List() []Platform {
	out := make([]Platform, 0, len(registry))
	for _, e := range registry {
		out = append(out, Platform{ID: e.id, Name: e.cfg.Name, Domain: e.cfg.Domain})
	}
	return out
}

// Detect returns the id of the first platform whose domain is a substring of
// the URL's host. Malformed URLs fail closed with ok=false.
func Detect(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", false
	}
	host := strings.ToLower(u.Host)
	for _, e := range registry {
		if strings.Contains(host, e.cfg.Domain) {
			return e.id, true
		}
	}
	return "", false
}

func buildRegistry() []entry {
	raw := []entry{
		// Major US retailers
		{"walmart", Config{Name: "Walmart", Domain: "walmart.com",
			ReviewContainer: "[data-automation-id='reviews-section'] [data-testid='reviews-section-review']",
			ReviewerName:    "[data-automation-id='review-author-name']",
			Rating:          "[data-automation-id='review-star-rating']",
			ReviewText:      "[data-automation-id='review-text']",
			Date:            "[data-automation-id='review-date']"}},
		{"target", Config{Name: "Target", Domain: "target.com",
			ReviewContainer: "[data-test='review-content']",
			ReviewerName:    "[data-test='review-author']",
			Rating:          "[data-test='review-stars']",
			ReviewText:      "[data-test='review-text']",
			Date:            "[data-test='review-date']"}},
		{"costco", Config{Name: "Costco", Domain: "costco.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"bestbuy", Config{Name: "Best Buy", Domain: "bestbuy.com",
			ReviewContainer: ".review-item-content", ReviewerName: ".sr-only",
			Rating: ".sr-only", ReviewText: ".review-text", Date: ".review-date"}},
		{"homedepot", Config{Name: "Home Depot", Domain: "homedepot.com",
			ReviewContainer: "[data-testid='review']", ReviewerName: "[data-testid='review-author']",
			Rating: "[data-testid='review-rating']", ReviewText: "[data-testid='review-text']",
			Date: "[data-testid='review-date']"}},
		{"lowes", Config{Name: "Lowe's", Domain: "lowes.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-content", Date: ".review-date"}},
		{"macys", Config{Name: "Macy's", Domain: "macys.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"kohls", Config{Name: "Kohl's", Domain: "kohls.com",
			ReviewContainer: "[data-testid='review-item']", ReviewerName: "[data-testid='reviewer-name']",
			Rating: "[data-testid='review-rating']", ReviewText: "[data-testid='review-text']",
			Date: "[data-testid='review-date']"}},
		{"jcpenney", Config{Name: "JCPenney", Domain: "jcpenney.com",
			ReviewContainer: ".review-content", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"sears", Config{Name: "Sears", Domain: "sears.com",
			ReviewContainer: ".review-item", ReviewerName: ".reviewer-name",
			Rating: ".rating-stars", ReviewText: ".review-text", Date: ".review-date"}},
		{"nordstrom", Config{Name: "Nordstrom", Domain: "nordstrom.com",
			ReviewContainer: "[data-testid='review']", ReviewerName: "[data-testid='reviewer-name']",
			Rating: "[data-testid='review-rating']", ReviewText: "[data-testid='review-text']",
			Date: "[data-testid='review-date']"}},
		{"bloomingdales", Config{Name: "Bloomingdale's", Domain: "bloomingdales.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"saksoff5th", Config{Name: "Saks OFF 5TH", Domain: "saksoff5th.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".rating-display", ReviewText: ".review-text", Date: ".review-date"}},

		// Electronics & tech
		{"newegg", Config{Name: "Newegg", Domain: "newegg.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"microcenter", Config{Name: "Micro Center", Domain: "microcenter.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".star-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"tigerdirect", Config{Name: "TigerDirect", Domain: "tigerdirect.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"bhphotovideo", Config{Name: "B&H Photo Video", Domain: "bhphotovideo.com",
			ReviewContainer: "[data-selenium='reviewItem']", ReviewerName: "[data-selenium='reviewerName']",
			Rating: "[data-selenium='reviewRating']", ReviewText: "[data-selenium='reviewText']",
			Date: "[data-selenium='reviewDate']"}},
		{"adorama", Config{Name: "Adorama", Domain: "adorama.com",
			ReviewContainer: ".review-item", ReviewerName: ".reviewer-name",
			Rating: ".rating-stars", ReviewText: ".review-text", Date: ".review-date"}},

		// Marketplace platforms
		{"ebay", Config{Name: "eBay", Domain: "ebay.com",
			ReviewContainer: ".reviews .review-item-content", ReviewerName: ".review-item-author",
			Rating: ".star-rating", ReviewText: ".review-item-text", Date: ".review-item-date"}},
		{"etsy", Config{Name: "Etsy", Domain: "etsy.com",
			ReviewContainer: "[data-region='review']", ReviewerName: "[data-region='review-author']",
			Rating: "[data-region='review-rating']", ReviewText: "[data-region='review-text']",
			Date: "[data-region='review-date']"}},
		{"facebook", Config{Name: "Facebook Marketplace", Domain: "facebook.com",
			ReviewContainer: "[data-testid='review-item']", ReviewerName: "[data-testid='reviewer-name']",
			Rating: "[data-testid='review-rating']", ReviewText: "[data-testid='review-text']",
			Date: "[data-testid='review-date']"}},
		{"mercari", Config{Name: "Mercari", Domain: "mercari.com",
			ReviewContainer: ".review-item", ReviewerName: ".reviewer-name",
			Rating: ".rating-display", ReviewText: ".review-text", Date: ".review-date"}},
		{"poshmark", Config{Name: "Poshmark", Domain: "poshmark.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".star-rating", ReviewText: ".review-text", Date: ".review-date"}},

		// Home & garden
		{"wayfair", Config{Name: "Wayfair", Domain: "wayfair.com",
			ReviewContainer: "[data-enzyme-id='ReviewListItem']", ReviewerName: "[data-enzyme-id='ReviewAuthor']",
			Rating: "[data-enzyme-id='ReviewRating']", ReviewText: "[data-enzyme-id='ReviewText']",
			Date: "[data-enzyme-id='ReviewDate']"}},
		{"overstock", Config{Name: "Overstock", Domain: "overstock.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"ikea", Config{Name: "IKEA", Domain: "ikea.com",
			ReviewContainer: ".review-item", ReviewerName: ".reviewer-name",
			Rating: ".rating-stars", ReviewText: ".review-text", Date: ".review-date"}},
		{"ashleyfurniture", Config{Name: "Ashley Furniture", Domain: "ashleyfurniture.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".star-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"potterybarn", Config{Name: "Pottery Barn", Domain: "potterybarn.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"crateandbarrel", Config{Name: "Crate & Barrel", Domain: "crateandbarrel.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".rating-display", ReviewText: ".review-text", Date: ".review-date"}},

		// Fashion & apparel
		{"nike", Config{Name: "Nike", Domain: "nike.com",
			ReviewContainer: ".review-item", ReviewerName: ".reviewer-name",
			Rating: ".star-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"adidas", Config{Name: "Adidas", Domain: "adidas.com",
			ReviewContainer: "[data-testid='review']", ReviewerName: "[data-testid='reviewer-name']",
			Rating: "[data-testid='review-rating']", ReviewText: "[data-testid='review-text']",
			Date: "[data-testid='review-date']"}},
		{"gap", Config{Name: "Gap", Domain: "gap.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".rating-stars", ReviewText: ".review-text", Date: ".review-date"}},
		{"hm", Config{Name: "H&M", Domain: "hm.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"zara", Config{Name: "Zara", Domain: "zara.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".star-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"forever21", Config{Name: "Forever 21", Domain: "forever21.com",
			ReviewContainer: ".review-item", ReviewerName: ".reviewer-name",
			Rating: ".rating-display", ReviewText: ".review-text", Date: ".review-date"}},
		{"uniqlo", Config{Name: "Uniqlo", Domain: "uniqlo.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".rating-stars", ReviewText: ".review-text", Date: ".review-date"}},

		// Grocery & food
		{"wholefoods", Config{Name: "Whole Foods", Domain: "wholefoodsmarket.com",
			ReviewContainer: ".review-item", ReviewerName: ".reviewer-name",
			Rating: ".star-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"kroger", Config{Name: "Kroger", Domain: "kroger.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".rating-display", ReviewText: ".review-text", Date: ".review-date"}},
		{"safeway", Config{Name: "Safeway", Domain: "safeway.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"publix", Config{Name: "Publix", Domain: "publix.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".star-rating", ReviewText: ".review-text", Date: ".review-date"}},

		// Auto & specialty
		{"autozone", Config{Name: "AutoZone", Domain: "autozone.com",
			ReviewContainer: ".review-content", ReviewerName: ".reviewer-name",
			Rating: ".star-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"gamestop", Config{Name: "GameStop", Domain: "gamestop.com",
			ReviewContainer: ".review-item", ReviewerName: ".review-author",
			Rating: ".review-rating", ReviewText: ".review-text", Date: ".review-date"}},
		{"petsmart", Config{Name: "PetSmart", Domain: "petsmart.com",
			ReviewContainer: ".review-item", ReviewerName: ".reviewer-name",
			Rating: ".rating-stars", ReviewText: ".review-text", Date: ".review-date"}},

		// Review platforms
		{"tripadvisor", Config{Name: "TripAdvisor", Domain: "tripadvisor.com",
			ReviewContainer: "[data-test-target='review-card']", ReviewerName: "[data-test-target='reviewer-name']",
			Rating: "[data-test-target='review-rating']", ReviewText: "[data-test-target='review-text']",
			Date: "[data-test-target='review-date']"}},
		{"trustpilot", Config{Name: "Trustpilot", Domain: "trustpilot.com",
			ReviewContainer: "[data-service-review-card-paper]", ReviewerName: "[data-consumer-name-typography]",
			Rating: "[data-service-review-rating]", ReviewText: "[data-service-review-text-typography]",
			Date: "[data-service-review-date-time-ago]"}},
		{"glassdoor", Config{Name: "Glassdoor", Domain: "glassdoor.com",
			ReviewContainer: "[data-test='review-item']", ReviewerName: "[data-test='reviewer-name']",
			Rating: "[data-test='review-rating']", ReviewText: "[data-test='review-text']",
			Date: "[data-test='review-date']"}},
	}

	for i := range raw {
		if raw[i].cfg.Domain == "" {
			panic("sites: registry entry " + raw[i].id + " has empty domain")
		}
		if raw[i].cfg.RatingScale == 0 {
			raw[i].cfg.RatingScale = defaultRatingScale
		}
		if raw[i].cfg.MaxReviews == 0 {
			raw[i].cfg.MaxReviews = defaultMaxReviews
		}
	}
	return raw
}
