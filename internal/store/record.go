package store

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dbavisi/1.d4/internal/board"
	"github.com/dbavisi/1.d4/internal/boarderr"
)

// recordMagic tags the start of every handler-file record (spec §5).
const recordMagic = 0x78

// recordLen is the fixed size of a record: magic, source byte,
// destination byte, and a 32-byte successor blob.
const recordLen = 1 + 1 + 1 + 32

// Record is one successor entry in a handler file: the piece moved from
// Source to Destination, producing Blob (spec §5 Move).
type Record struct {
	Source      board.Coord
	Destination board.Coord
	Blob        [32]byte
}

// WriteRecord appends one move record to w (spec §5 Move entry).
func WriteRecord(w io.Writer, src, dst board.Coord, blob [32]byte) error {
	var buf [recordLen]byte
	buf[0] = recordMagic
	buf[1] = src.Byte()
	buf[2] = dst.Byte()
	copy(buf[3:], blob[:])
	_, err := w.Write(buf[:])
	return err
}

func decodeCoordByte(b byte) board.Coord {
	return board.Coord{Horizon: int(b >> 4), Axis: int(b & 0x0F)}
}

// ReadRecords decodes every record in a handler file in order.
func ReadRecords(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	var out []Record
	var header [3]byte
	for {
		_, err := io.ReadFull(br, header[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("truncated record header: %w", boarderr.ErrMalformedRecord)
		}
		if err != nil {
			return nil, fmt.Errorf("reading record header: %w", err)
		}
		if header[0] != recordMagic {
			return nil, fmt.Errorf("record magic 0x%02x: %w", header[0], boarderr.ErrMalformedRecord)
		}
		var blob [32]byte
		if _, err := io.ReadFull(br, blob[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("truncated record blob: %w", boarderr.ErrMalformedRecord)
			}
			return nil, fmt.Errorf("reading record blob: %w", err)
		}
		out = append(out, Record{
			Source:      decodeCoordByte(header[1]),
			Destination: decodeCoordByte(header[2]),
			Blob:        blob,
		})
	}
	return out, nil
}
