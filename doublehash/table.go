package doublehash

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/joshuapare/celltable/internal/djb"
	"github.com/joshuapare/celltable/internal/format"
	"github.com/joshuapare/celltable/internal/logger"
	"github.com/joshuapare/celltable/internal/prime"
	"github.com/joshuapare/celltable/pkg/types"
	"github.com/joshuapare/celltable/store"
)

// minCapacity keeps the step modulus m-2 positive.
const minCapacity = 3

// Table is a double-hashing table over a single cell block.
type Table struct {
	cells    *store.Store
	capacity uint64
	upsert   bool
	log      *slog.Logger
}

// New creates a table sized from requested, each cell cellSize bytes wide.
func New(requested, cellSize int, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if requested <= 0 || uint64(requested) >= math.MaxUint32 {
		return nil, fmt.Errorf("doublehash: capacity %d: %w", requested, types.ErrInvalidDimensions)
	}
	capacity := requested
	if opts.Reprime {
		capacity = int(prime.LargestBelow(uint32(requested) + 1))
	}
	if capacity < minCapacity || cellSize < format.MinCellSize {
		return nil, fmt.Errorf("doublehash: capacity=%d (requested %d) cell size=%d: %w",
			capacity, requested, cellSize, types.ErrInvalidDimensions)
	}

	cells, err := store.New(capacity, cellSize, &store.Options{Backing: opts.Backing})
	if err != nil {
		return nil, fmt.Errorf("doublehash: %w", err)
	}

	t := &Table{
		cells:    cells,
		capacity: uint64(capacity),
		upsert:   opts.Upsert,
		log:      logger.OrDiscard(opts.Logger),
	}
	t.log.Debug("doublehash: created",
		"requested", requested, "capacity", capacity, "cell_size", cellSize,
		"reprime", opts.Reprime, "backing", opts.Backing.String())
	return t, nil
}

// Close releases the cell block.
func (t *Table) Close() error {
	return t.cells.Close()
}

// Capacity returns the number of cells.
func (t *Table) Capacity() int { return int(t.capacity) }

// CellSize returns the width of each cell in bytes.
func (t *Table) CellSize() int { return t.cells.CellSize() }

// Len returns the number of occupied cells.
func (t *Table) Len() int { return t.cells.Occupied() }

// prober yields the slots of one key's probe sequence.
type prober struct {
	h1, h2, m uint64
}

func (t *Table) prober(key string) prober {
	h := uint64(djb.Sum32(key))
	return prober{
		h1: h % t.capacity,
		h2: h%(t.capacity-2) + 1,
		m:  t.capacity,
	}
}

// at returns slot s of the sequence. s < m <= 2^32, so the sum cannot wrap.
func (p prober) at(s uint64) int {
	return int((p.h1 + s*p.h2) % p.m)
}

// ProbeSequence returns the full slot order examined for key.
func (t *Table) ProbeSequence(key string) []int {
	p := t.prober(key)
	seq := make([]int, t.capacity)
	for s := range seq {
		seq[s] = p.at(uint64(s))
	}
	return seq
}

// Lookup returns the value stored for key and the 1-based number of probes
// used. When the key is absent the error matches types.ErrNotFound and
// probes reports how many cells were examined.
func (t *Table) Lookup(key string) (string, int, error) {
	if key == "" || strings.IndexByte(key, format.Terminator) >= 0 {
		return "", 0, fmt.Errorf("doublehash: lookup %q: %w", key, types.ErrNotFound)
	}
	p := t.prober(key)
	for s := uint64(0); s < t.capacity; s++ {
		idx := p.at(s)
		empty, err := t.cells.IsEmpty(idx)
		if err != nil {
			return "", int(s), err
		}
		if empty {
			return "", int(s) + 1, fmt.Errorf("doublehash: lookup %q: %w", key, types.ErrNotFound)
		}
		match, err := t.cells.KeyEquals(idx, key)
		if err != nil {
			return "", int(s) + 1, err
		}
		if match {
			v, err := t.cells.Value(idx)
			return v, int(s) + 1, err
		}
	}
	return "", int(t.capacity), fmt.Errorf("doublehash: lookup %q: %w", key, types.ErrNotFound)
}

// Insert stores value under key in the first empty cell of its probe
// sequence, or overwrites the cell already holding key when upserting.
// Nothing is written on failure.
func (t *Table) Insert(key, value string) error {
	if err := t.cells.Fits(key, value); err != nil {
		return fmt.Errorf("doublehash: insert %q: %w", key, err)
	}
	p := t.prober(key)
	for s := uint64(0); s < t.capacity; s++ {
		idx := p.at(s)
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
	t.log.Debug("doublehash: table full", "key", key, "capacity", t.capacity, "occupied", t.cells.Occupied())
	return fmt.Errorf("doublehash: insert %q: %w", key, types.ErrTableFull)
}
