package mail

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// DefaultFlushBatch is how many insertions accumulate before the dedup set
// is written back to disk. A crash between flushes can lose up to
// DefaultFlushBatch-1 recent entries, causing those messages to be refetched
// on restart (at-least-once ingestion).
const DefaultFlushBatch = 10

// FileDedupCache is a persisted set of provider message ids already handled.
// It is loaded once at adapter construction and flushed back in batches.
// Safe for concurrent use, though adapters hold one fetch in flight at a time.
type FileDedupCache struct {
	path       string
	flushBatch int

	mu      sync.Mutex
	seen    map[string]struct{}
	pending int
}

// NewFileDedupCache loads the persisted set from path. A missing file is an
// empty set, not an error.
func NewFileDedupCache(path string, flushBatch int) (*FileDedupCache, error) {
	if flushBatch <= 0 {
		flushBatch = DefaultFlushBatch
	}
	c := &FileDedupCache{
		path:       path,
		flushBatch: flushBatch,
		seen:       make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dedup cache %s: %w", path, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse dedup cache %s: %w", path, err)
	}
	for _, id := range ids {
		c.seen[id] = struct{}{}
	}

	log.WithFields(log.Fields{
		"path":    path,
		"entries": len(ids),
	}).Info("Dedup cache loaded")

	return c, nil
}

// Contains reports whether id has already been handled.
func (c *FileDedupCache) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[id]
	return ok
}

// MarkProcessed adds id to the set. The on-disk copy is rewritten only every
// flushBatch-th insertion to bound I/O.
func (c *FileDedupCache) MarkProcessed(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[id]; ok {
		return nil
	}
	c.seen[id] = struct{}{}
	c.pending++

	if c.pending >= c.flushBatch {
		return c.flushLocked()
	}
	return nil
}

// Flush writes the set to disk unconditionally. Called after each completed
// fetch and on shutdown.
func (c *FileDedupCache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == 0 {
		return nil
	}
	return c.flushLocked()
}

func (c *FileDedupCache) flushLocked() error {
	ids := make([]string, 0, len(c.seen))
	for id := range c.seen {
		ids = append(ids, id)
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal dedup cache: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot truncate the set.
	tmp := c.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create dedup cache dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dedup cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("failed to replace dedup cache: %w", err)
	}

	log.WithFields(log.Fields{
		"path":    c.path,
		"entries": len(ids),
	}).Debug("Dedup cache flushed")

	c.pending = 0
	return nil
}
