package multirow

import (
	"log/slog"

	"github.com/joshuapare/celltable/store"
)

// Options configures a Table.
type Options struct {
	// Upsert lets Insert overwrite the value of a key found among its
	// candidate cells instead of only taking empty cells.
	// Default: true
	Upsert bool

	// Backing selects where the cell block is allocated.
	// Default: store.BackingHeap
	Backing store.Backing

	// Logger receives debug records for construction and full-table events.
	// Default: discard
	Logger *slog.Logger
}

// DefaultOptions returns the options used when New is passed nil.
func DefaultOptions() *Options {
	return &Options{
		Upsert:  true,
		Backing: store.BackingHeap,
	}
}
