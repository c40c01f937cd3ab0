package board

// backRank is the standard back-rank kind order, axis 0 to 7: Stride,
// Pivot, Slope, Radius, Anchor, Slope, Pivot, Stride. Both sides mirror this
// order so the anchor sits on axis 4 for light and dark alike (spec §8 S1).
var backRank = [8]Kind{Stride, Pivot, Slope, Radius, Anchor, Slope, Pivot, Stride}

// StandardOpening returns the fixed starting position: light's monotones on
// horizon 1, light's back rank on horizon 0, dark mirrored on horizons 6
// and 7, all other cells Void (spec §8 S1).
func StandardOpening() Board {
	var b Board
	for axis := 0; axis < 8; axis++ {
		b.Set(Coord{Horizon: 0, Axis: axis}, lightCell(backRank[axis]))
		b.Set(Coord{Horizon: 1, Axis: axis}, LightMonotone)
		b.Set(Coord{Horizon: 6, Axis: axis}, DarkMonotone)
		b.Set(Coord{Horizon: 7, Axis: axis}, darkCell(backRank[axis]))
	}
	return b
}

func lightCell(k Kind) Cell { return Cell(k) }

func darkCell(k Kind) Cell { return Cell(k) + 0x9 }
