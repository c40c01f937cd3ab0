// Package frontier drives the two-colour breadth-first materialization of
// the position graph onto a Store: packing one position's handler file
// and feeding its newly-discovered successors into the opposite side's
// queue (spec §4.6, §4.8).
package frontier

import (
	"fmt"
	"os"

	"github.com/dbavisi/1.d4/internal/board"
	"github.com/dbavisi/1.d4/internal/rules"
	"github.com/dbavisi/1.d4/internal/store"
)

// Pack computes every legal move for mover on b, writes the resulting
// handler file to mover's tree, and enqueues every not-yet-seen successor
// onto the opposite side's queue, ready for that side's own Pack call
// (spec §4.6). It reports (false, nil) when b's handler file already
// exists for mover, in which case nothing is written or enqueued.
func Pack(st *store.Store, mover board.Side, b board.Board) (ok bool, err error) {
	hexStr := b.ToHex()

	if err := st.EnsureHandlerDir(mover, hexStr); err != nil {
		return false, err
	}
	if err := st.EnsureHandlerDir(mover.Other(), hexStr); err != nil {
		return false, err
	}

	exists, err := st.HandlerExists(mover, hexStr)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	opponent := mover.Other()
	queue := st.QueueFor(opponent)
	queue.Enter()
	defer func() {
		if lerr := queue.Leave(); lerr != nil && err == nil {
			err = lerr
		}
	}()

	path := st.HandlerPath(mover, hexStr)
	f, ferr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if ferr != nil {
		if os.IsExist(ferr) {
			return false, nil
		}
		return false, fmt.Errorf("creating handler file %s: %w", path, ferr)
	}
	defer f.Close()
	st.MarkHandlerExists(mover, hexStr)

	for _, mv := range rules.AllPossibleMoves(b, mover) {
		successor := b.Apply(mv.From, mv.To)
		blob := successor.ToBlob()

		if err := store.WriteRecord(f, mv.From, mv.To, blob); err != nil {
			return false, err
		}

		successorHex := successor.ToHex()
		if err := st.EnsureHandlerDir(opponent, successorHex); err != nil {
			return false, err
		}
		seen, err := st.HandlerExists(opponent, successorHex)
		if err != nil {
			return false, err
		}
		if seen {
			continue
		}
		if err := queue.Write(blob[:]); err != nil {
			return false, err
		}
	}
	return true, err
}
