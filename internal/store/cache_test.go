package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExistenceCacheFallsBackToStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.raw")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := newExistenceCache()
	if err != nil {
		t.Fatalf("newExistenceCache: %v", err)
	}
	defer c.Close()

	exists, err := c.fileExists(path)
	if err != nil {
		t.Fatalf("fileExists: %v", err)
	}
	if !exists {
		t.Fatalf("expected fileExists to fall back to a stat and find the file")
	}

	missing, err := c.fileExists(filepath.Join(dir, "missing.raw"))
	if err != nil {
		t.Fatalf("fileExists: %v", err)
	}
	if missing {
		t.Fatalf("expected fileExists to report false for a nonexistent path")
	}
}

func TestExistenceCacheMarkExistsSkipsStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b.raw")

	c, err := newExistenceCache()
	if err != nil {
		t.Fatalf("newExistenceCache: %v", err)
	}
	defer c.Close()

	c.markExists(path)

	exists, err := c.fileExists(path)
	if err != nil {
		t.Fatalf("fileExists: %v", err)
	}
	if !exists {
		t.Fatalf("expected fileExists to report true after markExists, without the file existing on disk")
	}
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	c, err := newExistenceCache()
	if err != nil {
		t.Fatalf("newExistenceCache: %v", err)
	}
	defer c.Close()

	if err := c.ensureDir(dir); err != nil {
		t.Fatalf("ensureDir: %v", err)
	}
	if err := c.ensureDir(dir); err != nil {
		t.Fatalf("second ensureDir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory should exist: %v", err)
	}
}
