package inkwell

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// RenderCache persists converted HTML keyed by a hash of the Markdown
// source, so rebuilds skip conversion for unchanged files. It survives
// across processes, which is where a build cache earns its keep.
type RenderCache struct {
	db *sql.DB

	mu      sync.Mutex
	touched map[string]struct{}
}

// NewRenderCache opens (or creates) the cache database at path, ensures the
// parent directory exists, and bootstraps the schema.
func NewRenderCache(path string) (*RenderCache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets a watch-mode rebuild read while a previous sweep finishes,
	// and the busy timeout makes writers wait instead of failing with
	// SQLITE_BUSY. synchronous=NORMAL is safe under WAL and skips an fsync
	// per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	c := &RenderCache{db: db, touched: make(map[string]struct{})}
	if err := c.ensureSchema(); err != nil {
		return nil, err
	}
	return c, nil
}

// Close closes the underlying database connection.
func (c *RenderCache) Close() error {
	return c.db.Close()
}

func (c *RenderCache) ensureSchema() error {
	_, err := c.db.Exec(`
CREATE TABLE IF NOT EXISTS rendered (
    hash TEXT PRIMARY KEY,
    html TEXT NOT NULL
);
`)
	return err
}

// Get returns the cached HTML for hash. ok is false on a miss.
func (c *RenderCache) Get(hash string) (html string, ok bool, err error) {
	err = c.db.QueryRow(`SELECT html FROM rendered WHERE hash = ?`, hash).Scan(&html)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	c.touch(hash)
	return html, true, nil
}

// Put stores the HTML for hash, replacing any previous entry.
func (c *RenderCache) Put(hash, html string) error {
	if _, err := c.db.Exec(`INSERT OR REPLACE INTO rendered (hash, html) VALUES (?, ?)`, hash, html); err != nil {
		return err
	}
	c.touch(hash)
	return nil
}

func (c *RenderCache) touch(hash string) {
	c.mu.Lock()
	c.touched[hash] = struct{}{}
	c.mu.Unlock()
}

// Sweep deletes every entry that no Get or Put has touched since the cache
// was opened. Called after a full build, it evicts content that no longer
// exists in the source tree.
func (c *RenderCache) Sweep() error {
	c.mu.Lock()
	live := make([]string, 0, len(c.touched))
	for h := range c.touched {
		live = append(live, h)
	}
	c.mu.Unlock()

	if len(live) == 0 {
		_, err := c.db.Exec(`DELETE FROM rendered`)
		return err
	}
	args := make([]any, len(live))
	for i, h := range live {
		args[i] = h
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(live)), ",")
	_, err := c.db.Exec(`DELETE FROM rendered WHERE hash NOT IN (`+placeholders+`)`, args...)
	return err
}

// HashContent returns the hex SHA-256 of b, the key used by the render cache.
func HashContent(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
