package rules

import "github.com/dbavisi/1.d4/internal/board"

// Move is a single legal transition: the piece at From moves to To.
type Move struct {
	From board.Coord
	To   board.Coord
}

// findAnchor locates side's anchor, or ok=false if the board has none
// (spec §8 S2: an anchor-less board is legal and yields no Anchor entry).
func findAnchor(b board.Board, side board.Side) (board.Coord, bool) {
	for h := 0; h < 8; h++ {
		for a := 0; a < 8; a++ {
			c := board.Coord{Horizon: h, Axis: a}
			cell := b.At(c)
			if !cell.IsVoid() && cell.Side() == side && cell.Kind() == board.Anchor {
				return c, true
			}
		}
	}
	return board.Coord{}, false
}

// UnsafeSet returns every square the opposing side attacks, computed with
// the relaxed pseudo-move variant: rays x-ray through an anchor, and
// sliders/Pivots/Monotones include same-side-occupied squares they cover
// (spec §4.4, §4.5). The key is a Coord, not a hash: callers test
// membership with the map's comma-ok form.
func UnsafeSet(b board.Board, mover board.Side) map[board.Coord]bool {
	attacker := mover.Other()
	unsafe := make(map[board.Coord]bool)
	for h := 0; h < 8; h++ {
		for a := 0; a < 8; a++ {
			c := board.Coord{Horizon: h, Axis: a}
			cell := b.At(c)
			if cell.IsVoid() || cell.Side() != attacker {
				continue
			}
			for _, dst := range pseudoMoves(b, c, attacker, cell.Kind(), true) {
				unsafe[dst] = true
			}
		}
	}
	return unsafe
}

// PieceMoves returns the legal destinations for the piece at c, which
// must belong to mover. unsafe is mover's precomputed UnsafeSet; pass nil
// to have it computed on demand (AllPossibleMoves shares one computation
// across every piece instead).
func PieceMoves(b board.Board, c board.Coord, mover board.Side, unsafe map[board.Coord]bool) []board.Coord {
	cell := b.At(c)
	if cell.Kind() != board.Anchor {
		return pseudoMoves(b, c, mover, cell.Kind(), false)
	}

	if unsafe == nil {
		unsafe = UnsafeSet(b, mover)
	}
	dests := anchorNeighbors(b, c, mover)
	out := dests[:0]
	for _, d := range dests {
		if !unsafe[d] {
			out = append(out, d)
		}
	}
	return out
}

// Check reports whether mover's anchor sits on a square the opponent
// attacks. A board without an anchor for mover is never in check (spec
// §8 S2).
func Check(b board.Board, mover board.Side) bool {
	anchor, ok := findAnchor(b, mover)
	if !ok {
		return false
	}
	return UnsafeSet(b, mover)[anchor]
}

// AllPossibleMoves enumerates every legal move for mover (spec §4.5).
// This is a coarse legality filter, not full check-evasion search: when
// mover's anchor is attacked, only the anchor's own moves are offered,
// exactly as the relaxed unsafe-set computation reports them; moves by
// other pieces that would block or capture the attacker, or that would
// expose the anchor to a pin, are outside its scope (spec §9).
func AllPossibleMoves(b board.Board, mover board.Side) []Move {
	unsafe := UnsafeSet(b, mover)

	anchor, hasAnchor := findAnchor(b, mover)
	if hasAnchor && unsafe[anchor] {
		var out []Move
		for _, d := range anchorNeighbors(b, anchor, mover) {
			if !unsafe[d] {
				out = append(out, Move{From: anchor, To: d})
			}
		}
		return out
	}

	var out []Move
	for h := 0; h < 8; h++ {
		for a := 0; a < 8; a++ {
			c := board.Coord{Horizon: h, Axis: a}
			cell := b.At(c)
			if cell.IsVoid() || cell.Side() != mover {
				continue
			}
			for _, d := range PieceMoves(b, c, mover, unsafe) {
				out = append(out, Move{From: c, To: d})
			}
		}
	}
	return out
}
