package doublehash

import (
	"log/slog"

	"github.com/joshuapare/celltable/store"
)

// Options configures a Table.
type Options struct {
	// Reprime rounds the requested capacity down to the largest prime
	// below requested+1.
	// Default: true
	Reprime bool

	// Upsert lets Insert overwrite the value of an existing key.
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
		Reprime: true,
		Upsert:  true,
		Backing: store.BackingHeap,
	}
}
