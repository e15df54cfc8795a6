package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"reviewscope-go-scraper/internal/models"
)

// PostgresWriter persists extracted reviews to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection, waits for the server to come up, and
// ensures the reviews table exists.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS reviews (
			id            SERIAL PRIMARY KEY,
			platform      VARCHAR(100) NOT NULL,
			source        VARCHAR(120) NOT NULL,
			reviewer_name TEXT         NOT NULL DEFAULT 'Anonymous',
			rating        NUMERIC(4,2) NOT NULL DEFAULT 0,
			review_text   TEXT         NOT NULL DEFAULT '',
			review_date   TEXT         NOT NULL DEFAULT '',
			source_url    TEXT         NOT NULL,
			scraped_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_reviews_platform ON reviews(platform);
		CREATE INDEX IF NOT EXISTS idx_reviews_rating   ON reviews(rating);
	`)
	return err
}

// Write batch-inserts all reviews.
func (pw *PostgresWriter) Write(reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(reviews); i += batchSize {
		end := i + batchSize
		if end > len(reviews) {
			end = len(reviews)
		}
		if err := pw.insertBatch(reviews[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []models.Review) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*7)

	for idx, r := range batch {
		base := idx * 7
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			r.PlatformName, r.Source, r.ReviewerName, r.Rating, r.ReviewText, r.Date, r.SourceURL)
	}

	query := fmt.Sprintf(`
		INSERT INTO reviews (platform, source, reviewer_name, rating, review_text, review_date, source_url)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
