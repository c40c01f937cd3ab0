package board

import (
	"encoding/hex"
	"fmt"

	"github.com/dbavisi/1.d4/internal/boarderr"
)

// FromMatrix builds a Board from an 8x8 matrix of cells, rejecting any
// forbidden cell code (spec §4.1).
func FromMatrix(m [8][8]Cell) (Board, error) {
	var b Board
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if !m[r][c].Valid() {
				return Board{}, fmt.Errorf("cell (row %d, col %d) = 0x%x: %w", r, c, byte(m[r][c]), boarderr.ErrMalformedBlob)
			}
		}
	}
	b.Cells = m
	return b, nil
}

// ToMatrix returns the board's 8x8 matrix.
func (b Board) ToMatrix() [8][8]Cell {
	return b.Cells
}

func (b Board) flatten() [64]Cell {
	var flat [64]Cell
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			flat[r*8+c] = b.Cells[r][c]
		}
	}
	return flat
}

// ToBlob packs the board into its 32-byte nibble-packed form: for byte
// index i, the high nibble is the cell at flat position 2i, the low nibble
// is the cell at flat position 2i+1 (spec §3).
func (b Board) ToBlob() [32]byte {
	flat := b.flatten()
	var blob [32]byte
	for i := 0; i < 32; i++ {
		blob[i] = byte(flat[2*i])<<4 | byte(flat[2*i+1])
	}
	return blob
}

// FromBlob decodes a 32-byte blob into a Board.
func FromBlob(blob []byte) (Board, error) {
	if len(blob) != 32 {
		return Board{}, fmt.Errorf("blob length %d, want 32: %w", len(blob), boarderr.ErrMalformedBlob)
	}
	var flat [64]Cell
	for i := 0; i < 32; i++ {
		hi := Cell(blob[i] >> 4)
		lo := Cell(blob[i] & 0x0F)
		if !hi.Valid() || !lo.Valid() {
			return Board{}, fmt.Errorf("byte %d = 0x%02x contains an invalid cell code: %w", i, blob[i], boarderr.ErrMalformedBlob)
		}
		flat[2*i] = hi
		flat[2*i+1] = lo
	}
	var b Board
	for i, cell := range flat {
		b.Cells[i/8][i%8] = cell
	}
	return b, nil
}

// ToHex returns the lowercase 64-character hex identifier of the board,
// used both as content hash and on-disk name (spec §3).
func (b Board) ToHex() string {
	blob := b.ToBlob()
	return hex.EncodeToString(blob[:])
}

// FromHex decodes a 64-character lowercase hex identifier into a Board.
// Decoding accepts only lowercase [0-9a-f] of length exactly 64.
func FromHex(s string) (Board, error) {
	if len(s) != 64 {
		return Board{}, fmt.Errorf("hex length %d, want 64: %w", len(s), boarderr.ErrMalformedHex)
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			return Board{}, fmt.Errorf("hex contains non-lowercase-hex character %q: %w", r, boarderr.ErrMalformedHex)
		}
	}
	blob, err := hex.DecodeString(s)
	if err != nil {
		return Board{}, fmt.Errorf("decoding hex: %v: %w", err, boarderr.ErrMalformedHex)
	}
	return FromBlob(blob)
}
