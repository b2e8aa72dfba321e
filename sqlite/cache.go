package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webreduce"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webreduce.PageCache = (*PageCache)(nil)

// PageCache implements webreduce.PageCache using SQLite. Cached bodies
// are keyed by a hash of the URL so the lookup index stays compact.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// hashURL computes xxHash of a URL and returns a hex string.
func hashURL(url string) string {
	h := xxhash.Sum64String(url)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Get returns the cached body for a URL. Returns ENOTFOUND when the URL
// has not been cached.
func (c *PageCache) Get(ctx context.Context, url string) (string, error) {
	var body string

	err := c.db.QueryRowContext(ctx, `
		SELECT body FROM pages WHERE url_hash = ?
	`, hashURL(url)).Scan(&body)

	if err == sql.ErrNoRows {
		return "", webreduce.Errorf(webreduce.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return "", err
	}

	return body, nil
}

// Put stores the body for a URL, replacing any previous entry.
func (c *PageCache) Put(ctx context.Context, url string, body string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, url_hash, body, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url_hash) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at
	`, uuid.New().String(), url, hashURL(url), body, time.Now().UTC().Format(time.RFC3339))

	return err
}
