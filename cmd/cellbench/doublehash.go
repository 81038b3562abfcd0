package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/celltable/doublehash"
	"github.com/joshuapare/celltable/internal/logger"
)

var fixedCapacity bool

func init() {
	cmd := newDoublehashCmd()
	cmd.Flags().BoolVar(&fixedCapacity, "fixed", false, "Use the capacity as given instead of the largest prime below it")
	rootCmd.AddCommand(cmd)
}

func newDoublehashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doublehash <capacity> <cell_size> <fill_factor>",
		Short: "Benchmark the double-hashing open-addressing table",
		Long: `The doublehash command builds a table of (by default) the largest
prime number of cells not above capacity, fills fill_factor percent of them
and prints the lookup probe histogram. A probe is one cell examined.

Example:
  cellbench doublehash 100000 32 90
  cellbench doublehash 100000 32 90 --fixed --seed 7`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runDoublehash(args)
			return err
		},
	}
	return cmd
}

func runDoublehash(args []string) (*Result, error) {
	dims, err := parseDims([]string{"capacity", "cell_size"}, args[:2])
	if err != nil {
		return nil, err
	}
	fill, err := parseFill(args[2])
	if err != nil {
		return nil, err
	}

	t, err := doublehash.New(dims["capacity"], dims["cell_size"], &doublehash.Options{
		Reprime: !fixedCapacity,
		Upsert:  !noUpsert,
		Backing: backing(),
		Logger:  logger.L,
	})
	if err != nil {
		return nil, err
	}
	defer t.Close()

	printVerbose("capacity: %d\n", t.Capacity())
	return runBench("doublehash", dims, t, fill)
}
