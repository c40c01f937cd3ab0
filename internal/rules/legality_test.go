package rules

import (
	"testing"

	"github.com/dbavisi/1.d4/internal/board"
)

func TestStandardOpeningHasTwentyMoves(t *testing.T) {
	b := board.StandardOpening()
	moves := AllPossibleMoves(b, board.Light)
	if len(moves) != 20 {
		t.Fatalf("len(moves) = %d, want 20", len(moves))
	}

	var singlePush, doublePush, pivot int
	for _, m := range moves {
		cell := b.At(m.From)
		switch cell.Kind() {
		case board.Monotone:
			if m.To.Horizon-m.From.Horizon == 1 {
				singlePush++
			} else {
				doublePush++
			}
		case board.Pivot:
			pivot++
		}
	}
	if singlePush != 8 || doublePush != 8 || pivot != 4 {
		t.Fatalf("single=%d double=%d pivot=%d, want 8/8/4", singlePush, doublePush, pivot)
	}
}

func TestEmptyBoardAnchorHasEightMoves(t *testing.T) {
	var m [8][8]board.Cell
	b, err := board.FromMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(board.Coord{Horizon: 3, Axis: 3}, board.LightAnchor)
	b.Set(board.Coord{Horizon: 7, Axis: 7}, board.DarkAnchor)

	moves := AllPossibleMoves(b, board.Light)
	if len(moves) != 8 {
		t.Fatalf("len(moves) = %d, want 8", len(moves))
	}
	for _, mv := range moves {
		if mv.From != (board.Coord{Horizon: 3, Axis: 3}) {
			t.Fatalf("unexpected move source %+v", mv.From)
		}
	}
}

func TestPinnedMonotoneStillMoves(t *testing.T) {
	var m [8][8]board.Cell
	b, err := board.FromMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(board.Coord{Horizon: 0, Axis: 4}, board.LightAnchor)
	b.Set(board.Coord{Horizon: 1, Axis: 4}, board.LightMonotone)
	b.Set(board.Coord{Horizon: 7, Axis: 4}, board.DarkStride)

	if Check(b, board.Light) {
		t.Fatalf("anchor should not be in check: Stride's ray stops at the Monotone")
	}

	found := false
	for _, mv := range AllPossibleMoves(b, board.Light) {
		if mv.From == (board.Coord{Horizon: 1, Axis: 4}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("pinned Monotone's moves must still be emitted (spec S3)")
	}
}

func TestInCheckRestrictsToAnchorMoves(t *testing.T) {
	var m [8][8]board.Cell
	b, err := board.FromMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(board.Coord{Horizon: 0, Axis: 4}, board.LightAnchor)
	b.Set(board.Coord{Horizon: 4, Axis: 4}, board.DarkRadius)

	if !Check(b, board.Light) {
		t.Fatalf("anchor on the Radius's ray should be in check")
	}

	moves := AllPossibleMoves(b, board.Light)
	for _, mv := range moves {
		if mv.From != (board.Coord{Horizon: 0, Axis: 4}) {
			t.Fatalf("in check, only anchor moves should be offered, got source %+v", mv.From)
		}
		if mv.To == (board.Coord{Horizon: 1, Axis: 4}) {
			t.Fatalf("(1,4) is still on the Radius's ray through the anchor and must be excluded")
		}
	}
}
