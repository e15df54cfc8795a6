package storage

import "reviewscope-go-scraper/internal/models"

// ReviewSink is the interface any persistence backend must satisfy.
type ReviewSink interface {
	Write(reviews []models.Review) error
	Close() error
}
