package store

import (
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
)

// existenceCache answers "does this handler file already exist" without
// a filesystem stat on the common path, and remembers which directories
// this run has already created. It is scoped to one Store, never a
// package-level singleton: a fresh run starts with an empty cache and
// falls back to the filesystem on a miss (spec §4.6, §9).
type existenceCache struct {
	db     *badger.DB
	filter *negativeFilter

	mu      sync.Mutex
	dirDone map[string]bool
}

func newExistenceCache() (*existenceCache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening in-memory existence cache: %w", err)
	}
	return &existenceCache{
		db:      db,
		filter:  newNegativeFilter(1<<20, 7),
		dirDone: make(map[string]bool),
	}, nil
}

func (c *existenceCache) Close() error {
	return c.db.Close()
}

// fileExists reports whether path already has a handler file on disk,
// consulting the Bloom filter and badger before falling back to a stat
// (spec §4.6 S6-style existence short-circuit).
func (c *existenceCache) fileExists(path string) (bool, error) {
	if c.filter.mightContain(path) {
		var found bool
		err := c.db.View(func(txn *badger.Txn) error {
			_, err := txn.Get([]byte(path))
			if err == badger.ErrKeyNotFound {
				return nil
			}
			if err != nil {
				return err
			}
			found = true
			return nil
		})
		if err != nil {
			return false, fmt.Errorf("reading existence cache: %w", err)
		}
		if found {
			return true, nil
		}
	}

	if _, err := os.Stat(path); err == nil {
		c.markExists(path)
		return true, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return false, nil
}

// markExists records that path now has a handler file, so later lookups
// in the same run skip the stat.
func (c *existenceCache) markExists(path string) {
	c.filter.add(path)
	_ = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(path), nil)
	})
}

// ensureDir creates dir (and parents) the first time this run sees it,
// mirroring check_and_create_path's directory-trie short-circuit so a
// repeated MkdirAll for the same directory costs nothing after the first
// call (spec §4.6).
func (c *existenceCache) ensureDir(dir string) error {
	c.mu.Lock()
	done := c.dirDone[dir]
	c.mu.Unlock()
	if done {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	c.mu.Lock()
	c.dirDone[dir] = true
	c.mu.Unlock()
	return nil
}
