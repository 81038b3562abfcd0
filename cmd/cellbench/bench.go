package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"golang.org/x/text/language"

	"github.com/joshuapare/celltable/internal/logger"
	"github.com/joshuapare/celltable/pkg/types"
	"github.com/joshuapare/celltable/probestat"
	"github.com/joshuapare/celltable/store"
)

// benchValue is stored under every generated key.
const benchValue = "v"

// table is the surface shared by multirow.Table and doublehash.Table.
type table interface {
	Insert(key, value string) error
	Lookup(key string) (string, int, error)
	Capacity() int
	Len() int
	Close() error
}

// Result summarizes one fill-and-lookup run.
type Result struct {
	Kind           string           `json:"kind"`
	Dimensions     map[string]int   `json:"dimensions"`
	Cells          int              `json:"cells"`
	Fill           int              `json:"fill_target"`
	Seed           int64            `json:"seed"`
	Inserted       int              `json:"inserted"`
	Occupied       int              `json:"occupied"`
	InsertFailures int              `json:"insert_failures"`
	Found          int              `json:"found"`
	Missing        int              `json:"missing"`
	Stats          probestat.Report `json:"stats"`
}

// keyGen yields the benchmark key sequence for a seed. The generator is
// local so a run never depends on process-wide random state.
type keyGen struct {
	rng *rand.Rand
}

func newKeyGen(seed int64) *keyGen {
	return &keyGen{rng: rand.New(rand.NewSource(seed))}
}

func (g *keyGen) next() string {
	return strconv.FormatInt(int64(g.rng.Int31()), 10)
}

// parseDims converts positional arguments to positive integers.
func parseDims(names []string, args []string) (map[string]int, error) {
	dims := make(map[string]int, len(names))
	for i, name := range names {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", name, args[i])
		}
		if n < 0 {
			return nil, fmt.Errorf("%s: must not be negative (got %d)", name, n)
		}
		dims[name] = n
	}
	return dims, nil
}

func parseFill(arg string) (int, error) {
	fill, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("fill_factor: %q is not an integer", arg)
	}
	if fill < 0 || fill > 100 {
		return 0, fmt.Errorf("fill_factor: must be between 0 and 100 (got %d)", fill)
	}
	return fill, nil
}

func backing() store.Backing {
	if useMmap {
		return store.BackingMmap
	}
	return store.BackingHeap
}

// runBench fills t with fill% of its cells and then looks every key up.
func runBench(kind string, dims map[string]int, t table, fill int) (*Result, error) {
	cells := t.Capacity()
	target := fill * cells / 100
	res := &Result{
		Kind:       kind,
		Dimensions: dims,
		Cells:      cells,
		Fill:       target,
		Seed:       seed,
	}
	printVerbose("prepare to fill table, cells = %d, cells fill = %d\n\n", cells, target)
	logger.Info("fill", "kind", kind, "cells", cells, "target", target, "seed", seed)

	gen := newKeyGen(seed)
	for i := 0; i < target; i++ {
		key := gen.next()
		if err := t.Insert(key, benchValue); err != nil {
			if errors.Is(err, types.ErrTableFull) {
				res.InsertFailures++
				logger.Debug("insert failed", "key", key, "error", err)
				continue
			}
			return nil, err
		}
		res.Inserted++
	}
	res.Occupied = t.Len()

	var hist probestat.Histogram
	gen = newKeyGen(seed)
	for i := 0; i < target; i++ {
		key := gen.next()
		v, probes, err := t.Lookup(key)
		switch {
		case errors.Is(err, types.ErrNotFound):
			res.Missing++
			continue
		case err != nil:
			return nil, err
		case v != benchValue:
			return nil, fmt.Errorf("lookup %q: got value %q, want %q", key, v, benchValue)
		}
		res.Found++
		hist.Record(probes)
	}
	res.Stats = hist.Report()
	logger.Info("lookup", "kind", kind, "found", res.Found, "missing", res.Missing, "mean_probes", hist.Mean())

	if jsonOut {
		return res, printJSON(res)
	}
	printInfo("%s: cells = %d, filled = %d, occupied = %d, insert failures = %d, missing = %d\n",
		kind, cells, res.Inserted, res.Occupied, res.InsertFailures, res.Missing)
	if !quiet {
		if err := hist.WriteText(stdout, language.English); err != nil {
			return nil, err
		}
	}
	return res, nil
}
