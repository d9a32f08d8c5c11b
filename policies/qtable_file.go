package policies

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/qlearn/qgrid/gridworld"
)

// On-disk layout, little-endian:
//
//	int32 width | int32 height | float32[width*height*4]
//
// flattened state-major, action-minor in the order up, right, down, left.

// Save writes the table to the given file.
func (q *QTable) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := q.Encode(w); err != nil {
		return fmt.Errorf("write table to %s: %w", path, err)
	}
	return w.Flush()
}

func (q *QTable) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, int32(q.width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(q.height)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, q.values)
}

// Load reads a table back from a file written by Save. A missing file,
// short payload or bad header is a load failure; the caller decides
// whether a fresh table is acceptable instead.
func Load(path string) (*QTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	q, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read table from %s: %w", path, err)
	}
	return q, nil
}

func Decode(r io.Reader) (*QTable, error) {
	var width, height int32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("read width: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("read height: %w", err)
	}
	// reject hostile headers before sizing the allocation
	if width <= 0 || width > gridworld.MaxSize || height <= 0 || height > gridworld.MaxSize {
		return nil, fmt.Errorf("invalid table size %dx%d, want at most %dx%d", width, height, gridworld.MaxSize, gridworld.MaxSize)
	}
	q := NewQTable(int(width), int(height))
	if err := binary.Read(r, binary.LittleEndian, q.values); err != nil {
		return nil, fmt.Errorf("read %d values: %w", len(q.values), err)
	}
	// the payload must match the header exactly
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return nil, fmt.Errorf("trailing bytes after %d values", len(q.values))
	}
	return q, nil
}
