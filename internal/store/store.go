package store

import (
	"path/filepath"
	"sync"

	"github.com/dbavisi/1.d4/internal/board"
)

// Store is the on-disk handler/queue tree rooted at a directory, fronted
// by a per-run existence accelerator (spec §5, §9: never a global
// singleton).
type Store struct {
	root               string
	maxQueueShardBytes int64
	cache              *existenceCache

	mu      sync.Mutex
	queues  map[board.Side]*ShardQueue
}

// Open prepares root for both sides: handler and queue directories are
// created eagerly, and a fresh in-memory existence cache is attached.
func Open(root string, maxQueueShardBytes int64) (*Store, error) {
	cache, err := newExistenceCache()
	if err != nil {
		return nil, err
	}
	s := &Store{
		root:               root,
		maxQueueShardBytes: maxQueueShardBytes,
		cache:              cache,
		queues:             make(map[board.Side]*ShardQueue),
	}
	for _, side := range []board.Side{board.Light, board.Dark} {
		if err := s.cache.ensureDir(handlerDir(root, side)); err != nil {
			return nil, err
		}
		if err := s.cache.ensureDir(queueDir(root, side)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Close releases the existence cache's resources.
func (s *Store) Close() error {
	return s.cache.Close()
}

// HandlerPath returns the partitioned handler-file path for a position on
// side's handler tree.
func (s *Store) HandlerPath(side board.Side, hexStr string) string {
	return partitionedPath(handlerDir(s.root, side), hexStr)
}

// HandlerExists reports whether a handler file already exists for hexStr
// on side's tree, consulting the existence accelerator first.
func (s *Store) HandlerExists(side board.Side, hexStr string) (bool, error) {
	return s.cache.fileExists(s.HandlerPath(side, hexStr))
}

// MarkHandlerExists records that hexStr's handler file was just created,
// so a later HandlerExists call in this run skips its stat.
func (s *Store) MarkHandlerExists(side board.Side, hexStr string) {
	s.cache.markExists(s.HandlerPath(side, hexStr))
}

// EnsureHandlerDir creates the partitioned directory skeleton that will
// hold hexStr's handler file on side's tree.
func (s *Store) EnsureHandlerDir(side board.Side, hexStr string) error {
	return s.cache.ensureDir(filepath.Dir(s.HandlerPath(side, hexStr)))
}

// QueueFor returns the shared shard queue for side's pending-position
// queue, creating it on first use. The same instance is returned to every
// caller so nested Enter/Leave scopes observe one writer and reader pair.
func (s *Store) QueueFor(side board.Side) *ShardQueue {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queues[side]
	if !ok {
		q = newShardQueue(queueDir(s.root, side), s.maxQueueShardBytes)
		s.queues[side] = q
	}
	return q
}

