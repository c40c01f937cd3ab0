// Package store implements the on-disk layout: partitioned handler files,
// shard-spilled queues, and an in-memory existence accelerator in front of
// both (spec §5, §4.6-§4.7).
package store

import (
	"path/filepath"

	"github.com/dbavisi/1.d4/internal/board"
)

const (
	fileExtension = ".raw"
	handlerSubdir = ".handlers"
	queueSubdir   = ".queue"
)

func modeDir(root string, side board.Side) string {
	return filepath.Join(root, side.String())
}

func handlerDir(root string, side board.Side) string {
	return filepath.Join(modeDir(root, side), handlerSubdir)
}

func queueDir(root string, side board.Side) string {
	return filepath.Join(modeDir(root, side), queueSubdir)
}

// partitionedPath splits hexStr into six 8-character groups used as
// nested subdirectories under parentDir, leaving the trailing 16
// characters out of the directory skeleton; the leaf file is named with
// the full hex string (spec §5, grounded on original_source's
// partitioned_filename).
func partitionedPath(parentDir, hexStr string) string {
	const groupLen = 8
	const groups = 6
	parts := make([]string, 0, groups+2)
	parts = append(parts, parentDir)
	for i := 0; i < groups; i++ {
		parts = append(parts, hexStr[i*groupLen:(i+1)*groupLen])
	}
	parts = append(parts, hexStr+fileExtension)
	return filepath.Join(parts...)
}
