// Command packer materializes the position graph reachable from the
// standard opening onto a Store, alternating light and dark queues until
// both run dry (spec §6).
package main

import (
	"log"
	"os"

	"github.com/dbavisi/1.d4/internal/board"
	"github.com/dbavisi/1.d4/internal/config"
	"github.com/dbavisi/1.d4/internal/frontier"
	"github.com/dbavisi/1.d4/internal/obslog"
	"github.com/dbavisi/1.d4/internal/store"
)

func main() {
	cfg := config.FromEnv()

	logger := obslog.Default("packer")

	st, err := store.Open(cfg.StoreRoot, cfg.MaxQueueShardBytes)
	if err != nil {
		log.Fatalf("opening store at %s: %v", cfg.StoreRoot, err)
	}
	defer st.Close()

	driver := frontier.NewDriver(st, logger, cfg.BatchSize)
	if err := driver.Run(board.StandardOpening()); err != nil {
		logger.Error(err, "driver run failed")
		os.Exit(1)
	}
}
