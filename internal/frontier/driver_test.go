package frontier

import (
	"os"
	"testing"

	"github.com/dbavisi/1.d4/internal/board"
	"github.com/dbavisi/1.d4/internal/obslog"
)

// twoAnchorBoard is small enough that its full reachable-position graph
// is finite and quick to materialize, unlike the standard opening: it
// exercises Driver.Run to actual completion rather than a bounded slice
// of it.
func twoAnchorBoard() board.Board {
	var m [8][8]board.Cell
	b, err := board.FromMatrix(m)
	if err != nil {
		panic(err)
	}
	b.Set(board.Coord{Horizon: 0, Axis: 0}, board.LightAnchor)
	b.Set(board.Coord{Horizon: 7, Axis: 7}, board.DarkAnchor)
	return b
}

func TestDriverRunIsDeterministic(t *testing.T) {
	root := twoAnchorBoard()

	st1 := openTestStoreAt(t, t.TempDir())
	if err := NewDriver(st1, obslog.Default("test"), 64).Run(root); err != nil {
		t.Fatalf("first run: %v", err)
	}

	st2 := openTestStoreAt(t, t.TempDir())
	if err := NewDriver(st2, obslog.Default("test"), 64).Run(root); err != nil {
		t.Fatalf("second run: %v", err)
	}

	hexStr := root.ToHex()
	data1, err := os.ReadFile(st1.HandlerPath(board.Light, hexStr))
	if err != nil {
		t.Fatalf("reading first run's handler file: %v", err)
	}
	data2, err := os.ReadFile(st2.HandlerPath(board.Light, hexStr))
	if err != nil {
		t.Fatalf("reading second run's handler file: %v", err)
	}
	if string(data1) != string(data2) {
		t.Fatalf("two runs from the same root produced different handler files")
	}
}

func TestDriverRunPacksBothSides(t *testing.T) {
	root := twoAnchorBoard()
	st := openTestStoreAt(t, t.TempDir())

	if err := NewDriver(st, obslog.Default("test"), 16).Run(root); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(st.HandlerPath(board.Light, root.ToHex())); err != nil {
		t.Fatalf("root handler file missing: %v", err)
	}

	moved := root.Apply(board.Coord{Horizon: 0, Axis: 0}, board.Coord{Horizon: 1, Axis: 0})
	if _, err := os.Stat(st.HandlerPath(board.Dark, moved.ToHex())); err != nil {
		t.Fatalf("expected successor to have been packed on the dark side: %v", err)
	}
}
