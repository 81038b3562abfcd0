package multirow

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/joshuapare/celltable/internal/buf"
	"github.com/joshuapare/celltable/internal/djb"
	"github.com/joshuapare/celltable/internal/format"
	"github.com/joshuapare/celltable/internal/logger"
	"github.com/joshuapare/celltable/internal/prime"
	"github.com/joshuapare/celltable/pkg/types"
	"github.com/joshuapare/celltable/store"
)

// Table is a multi-row hash table over a single cell block.
type Table struct {
	cells  *store.Store
	primes []uint32
	rows   int
	cols   int
	upsert bool
	log    *slog.Logger
}

// New creates a table of rows*cols cells, each cellSize bytes wide.
func New(rows, cols, cellSize int, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if rows <= 0 || cols <= 0 || cellSize < format.MinCellSize {
		return nil, fmt.Errorf("multirow: rows=%d cols=%d cell size=%d: %w",
			rows, cols, cellSize, types.ErrInvalidDimensions)
	}
	if uint64(cols) >= math.MaxUint32 {
		return nil, fmt.Errorf("multirow: cols=%d exceeds 32-bit modulus: %w", cols, types.ErrInvalidDimensions)
	}
	capacity, ok := buf.MulOverflowSafe(rows, cols)
	if !ok {
		return nil, fmt.Errorf("multirow: rows=%d * cols=%d: %w", rows, cols, types.ErrAllocationFailed)
	}

	cells, err := store.New(capacity, cellSize, &store.Options{Backing: opts.Backing})
	if err != nil {
		return nil, fmt.Errorf("multirow: %w", err)
	}

	t := &Table{
		cells:  cells,
		primes: prime.Descending(uint32(cols)+1, rows),
		rows:   rows,
		cols:   cols,
		upsert: opts.Upsert,
		log:    logger.OrDiscard(opts.Logger),
	}
	t.log.Debug("multirow: created",
		"rows", rows, "cols", cols, "cell_size", cellSize,
		"first_prime", t.primes[0], "last_prime", t.primes[rows-1],
		"backing", opts.Backing.String())
	return t, nil
}

// Close releases the cell block.
func (t *Table) Close() error {
	return t.cells.Close()
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of cells per row.
func (t *Table) Cols() int { return t.cols }

// CellSize returns the width of each cell in bytes.
func (t *Table) CellSize() int { return t.cells.CellSize() }

// Capacity returns rows*cols.
func (t *Table) Capacity() int { return t.cells.Capacity() }

// Len returns the number of occupied cells.
func (t *Table) Len() int { return t.cells.Occupied() }

// Primes returns a copy of the per-row moduli.
func (t *Table) Primes() []uint32 {
	out := make([]uint32, len(t.primes))
	copy(out, t.primes)
	return out
}

// slot returns the cell index of key's candidate in row r.
func (t *Table) slot(hash uint32, r int) int {
	return r*t.cols + int(hash%t.primes[r])
}

// Lookup returns the value stored for key and the number of rows probed.
// When the key is absent the error matches types.ErrNotFound and probes
// still reports how many rows were examined.
func (t *Table) Lookup(key string) (string, int, error) {
	if key == "" || strings.IndexByte(key, format.Terminator) >= 0 {
		return "", 0, fmt.Errorf("multirow: lookup %q: %w", key, types.ErrNotFound)
	}
	hash := djb.Sum32(key)
	for r := 0; r < t.rows; r++ {
		idx := t.slot(hash, r)
		empty, err := t.cells.IsEmpty(idx)
		if err != nil {
			return "", r, err
		}
		if empty {
			return "", r + 1, fmt.Errorf("multirow: lookup %q: %w", key, types.ErrNotFound)
		}
		match, err := t.cells.KeyEquals(idx, key)
		if err != nil {
			return "", r + 1, err
		}
		if match {
			v, err := t.cells.Value(idx)
			return v, r + 1, err
		}
	}
	return "", t.rows, fmt.Errorf("multirow: lookup %q: %w", key, types.ErrNotFound)
}

// Insert stores value under key in the first row whose candidate cell is
// free (or holds key, when upserting). Nothing is written on failure.
func (t *Table) Insert(key, value string) error {
	if err := t.cells.Fits(key, value); err != nil {
		return fmt.Errorf("multirow: insert %q: %w", key, err)
	}
	hash := djb.Sum32(key)
	for r := 0; r < t.rows; r++ {
		idx := t.slot(hash, r)
		target, err := t.cells.IsEmpty(idx)
		if err != nil {
			return err
		}
		if !target && t.upsert {
			if target, err = t.cells.KeyEquals(idx, key); err != nil {
				return err
			}
		}
		if target {
			return t.cells.Write(idx, key, value)
		}
	}
	t.log.Debug("multirow: table full", "key", key, "rows", t.rows, "occupied", t.cells.Occupied())
	return fmt.Errorf("multirow: insert %q: %w", key, types.ErrTableFull)
}
