// Package rules computes legal moves on a board.Board: pseudo-move
// generation per piece kind, a relaxed pass used to build the set of
// squares unsafe for the mover's anchor, and the two-pass legality filter
// that combines them (spec §4.2-§4.5).
package rules

import "github.com/dbavisi/1.d4/internal/board"

// Mode is the result of comparing the flag on a square against the side
// to move.
type Mode int

const (
	ModeVoid Mode = iota
	ModeSame
	ModeDifferent
)

// inbounds reports whether v is a legal horizon or axis value.
func inbounds(v int) bool { return v >= 0 && v <= 7 }

// testMode classifies the cell at c relative to side.
func testMode(b board.Board, c board.Coord, side board.Side) Mode {
	cell := b.At(c)
	if cell.IsVoid() {
		return ModeVoid
	}
	if cell.Side() == side {
		return ModeSame
	}
	return ModeDifferent
}
