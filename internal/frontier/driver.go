package frontier

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dbavisi/1.d4/internal/board"
	"github.com/dbavisi/1.d4/internal/obslog"
	"github.com/dbavisi/1.d4/internal/store"
)

// Driver alternates draining the light and dark queues, packing each
// position it pops until both queues run dry in the same pass (spec
// §4.8).
type Driver struct {
	st        *store.Store
	log       obslog.Logger
	batchSize int
}

// NewDriver returns a Driver bound to st, packing at most batchSize
// positions per queue in each drain pass.
func NewDriver(st *store.Store, log obslog.Logger, batchSize int) *Driver {
	return &Driver{st: st, log: log, batchSize: batchSize}
}

// Run packs root under light (a no-op if it is already packed), which
// feeds its successors into the dark queue, and then alternates draining
// the light and dark queues until a full pass over both finds nothing left
// to pack (spec §4.8).
func (d *Driver) Run(root board.Board) error {
	if ok, err := Pack(d.st, board.Light, root); err != nil {
		return fmt.Errorf("packing root position: %w", err)
	} else if ok {
		d.log.V(1).Info("packed root position", "side", board.Light.String())
	}

	for {
		lightCount, err := d.drain(board.Light)
		if err != nil {
			return err
		}
		darkCount, err := d.drain(board.Dark)
		if err != nil {
			return err
		}
		d.log.Info(fmt.Sprintf("drain pass complete: light=%s dark=%s",
			humanize.Comma(int64(lightCount)), humanize.Comma(int64(darkCount))))
		if lightCount == 0 && darkCount == 0 {
			return nil
		}
	}
}

// drain pops positions from mover's queue and packs each until
// d.batchSize of them have been packed or the queue runs dry, returning
// how many were actually packed (positions already packed by a concurrent
// or earlier run are popped and skipped without counting toward
// d.batchSize).
func (d *Driver) drain(mover board.Side) (int, error) {
	queue := d.st.QueueFor(mover)
	queue.Enter()
	defer queue.Leave()

	packed := 0
	for packed < d.batchSize {
		blob, ok, err := queue.Next(32)
		if err != nil {
			return packed, fmt.Errorf("reading %s queue: %w", mover, err)
		}
		if !ok {
			break
		}
		b, err := board.FromBlob(blob)
		if err != nil {
			return packed, fmt.Errorf("decoding %s queue entry: %w", mover, err)
		}
		didPack, err := Pack(d.st, mover, b)
		if err != nil {
			return packed, fmt.Errorf("packing %s position %s: %w", mover, b.ToHex(), err)
		}
		if didPack {
			packed++
		}
	}
	return packed, nil
}
