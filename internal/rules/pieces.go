package rules

import "github.com/dbavisi/1.d4/internal/board"

// delta is a single-step (horizon, axis) direction vector.
type delta struct{ dh, da int }

var slopeDirs = []delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var strideDirs = []delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var radiusDirs = append(append([]delta{}, strideDirs...), slopeDirs...)
var pivotDeltas = []delta{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// apply steps c by d and reports whether the result is on the board.
func (d delta) apply(c board.Coord) (board.Coord, bool) {
	nc := board.Coord{Horizon: c.Horizon + d.dh, Axis: c.Axis + d.da}
	return nc, nc.InBounds()
}

// monotoneMoves generates the forward push, double push, and diagonal
// capture squares for a Monotone at c (spec §4.2). In relaxed mode the
// monotone's two diagonal capture squares count as unsafe regardless of
// occupancy, matching the piece's actual attack footprint.
func monotoneMoves(b board.Board, c board.Coord, side board.Side, relaxed bool) []board.Coord {
	orientation := 1
	startRow := 1
	if side == board.Dark {
		orientation = -1
		startRow = 6
	}
	forward := c.Horizon + orientation

	if relaxed {
		var out []board.Coord
		if left := (board.Coord{Horizon: forward, Axis: c.Axis - 1}); left.InBounds() {
			out = append(out, left)
		}
		if right := (board.Coord{Horizon: forward, Axis: c.Axis + 1}); right.InBounds() {
			out = append(out, right)
		}
		return out
	}

	var out []board.Coord
	if inbounds(forward) {
		single := board.Coord{Horizon: forward, Axis: c.Axis}
		if testMode(b, single, side) == ModeVoid {
			out = append(out, single)

			doubleHorizon := forward + orientation
			if c.Horizon == startRow && inbounds(doubleHorizon) {
				twice := board.Coord{Horizon: doubleHorizon, Axis: c.Axis}
				if testMode(b, twice, side) == ModeVoid {
					out = append(out, twice)
				}
			}
		}
		if left := (board.Coord{Horizon: forward, Axis: c.Axis - 1}); inbounds(left.Axis) && testMode(b, left, side) == ModeDifferent {
			out = append(out, left)
		}
		if right := (board.Coord{Horizon: forward, Axis: c.Axis + 1}); inbounds(right.Axis) && testMode(b, right, side) == ModeDifferent {
			out = append(out, right)
		}
	}
	return out
}

// pivotMoves generates the eight L-shaped destinations of a Pivot at c
// (spec §4.2). In relaxed mode squares held by the mover's own side are
// included too, since a Pivot still covers them.
func pivotMoves(b board.Board, c board.Coord, side board.Side, relaxed bool) []board.Coord {
	var out []board.Coord
	for _, d := range pivotDeltas {
		nc, ok := d.apply(c)
		if !ok {
			continue
		}
		if testMode(b, nc, side) != ModeSame || relaxed {
			out = append(out, nc)
		}
	}
	return out
}

// walkRays generates the sliding destinations along dirs from c, stopping
// at the board edge or the first occupied square, including a capture of
// the first opposing piece found (spec §4.2, §4.4). In relaxed mode a
// same-side occupant still contributes its square to the result, and a
// captured Anchor does not block the ray: the walk continues past it, as
// an anchor on a sliding piece's line still has to move out of the way.
func walkRays(b board.Board, c board.Coord, side board.Side, dirs []delta, relaxed bool) []board.Coord {
	var out []board.Coord
	for _, d := range dirs {
		cur := c
		for {
			nc, ok := d.apply(cur)
			if !ok {
				break
			}
			cur = nc
			switch testMode(b, cur, side) {
			case ModeSame:
				if relaxed {
					out = append(out, cur)
				}
			case ModeDifferent:
				out = append(out, cur)
				if relaxed && b.At(cur).Kind() == board.Anchor {
					continue
				}
			default:
				out = append(out, cur)
				continue
			}
			break
		}
	}
	return out
}

func slopeMoves(b board.Board, c board.Coord, side board.Side, relaxed bool) []board.Coord {
	return walkRays(b, c, side, slopeDirs, relaxed)
}

func strideMoves(b board.Board, c board.Coord, side board.Side, relaxed bool) []board.Coord {
	return walkRays(b, c, side, strideDirs, relaxed)
}

func radiusMoves(b board.Board, c board.Coord, side board.Side, relaxed bool) []board.Coord {
	return walkRays(b, c, side, radiusDirs, relaxed)
}

// anchorNeighbors generates the eight one-step destinations of an Anchor
// at c, with no safety filtering applied (spec §4.2); the legality filter
// in legality.go removes unsafe destinations separately.
func anchorNeighbors(b board.Board, c board.Coord, side board.Side) []board.Coord {
	var out []board.Coord
	for _, d := range radiusDirs {
		nc, ok := d.apply(c)
		if !ok {
			continue
		}
		if testMode(b, nc, side) != ModeSame {
			out = append(out, nc)
		}
	}
	return out
}

// pseudoMoves dispatches to the per-kind generator for the piece at c.
// Dispatch is a flat switch over the closed Kind enumeration, never method
// polymorphism (spec §9).
func pseudoMoves(b board.Board, c board.Coord, side board.Side, kind board.Kind, relaxed bool) []board.Coord {
	switch kind {
	case board.Monotone:
		return monotoneMoves(b, c, side, relaxed)
	case board.Pivot:
		return pivotMoves(b, c, side, relaxed)
	case board.Slope:
		return slopeMoves(b, c, side, relaxed)
	case board.Stride:
		return strideMoves(b, c, side, relaxed)
	case board.Radius:
		return radiusMoves(b, c, side, relaxed)
	case board.Anchor:
		return anchorNeighbors(b, c, side)
	default:
		return nil
	}
}
