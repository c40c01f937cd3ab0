// Package obslog defines the logging contract shared across the engine:
// a logr.Logger, kept as an external collaborator behind a type alias so
// callers depend on the contract, not a specific backend (spec §6).
package obslog

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Logger is the contract every package logs through.
type Logger = logr.Logger

// Default returns the stdlib-log-backed transport used outside of tests:
// stdr wrapping a log.Logger writing to stderr with a component prefix.
func Default(name string) Logger {
	std := log.New(os.Stderr, "", log.LstdFlags)
	return stdr.New(std).WithName(name)
}
