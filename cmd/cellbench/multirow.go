package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/celltable/internal/logger"
	"github.com/joshuapare/celltable/multirow"
)

func init() {
	rootCmd.AddCommand(newMultirowCmd())
}

func newMultirowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multirow <rows> <cols> <cell_size> <fill_factor>",
		Short: "Benchmark the multi-row prime-modulus table",
		Long: `The multirow command builds a table of rows*cols cells, fills
fill_factor percent of them and prints the lookup probe histogram. A probe
is one row examined.

Example:
  cellbench multirow 8 10000 32 80
  cellbench multirow 8 10000 32 80 --json`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runMultirow(args)
			return err
		},
	}
	return cmd
}

func runMultirow(args []string) (*Result, error) {
	dims, err := parseDims([]string{"rows", "cols", "cell_size"}, args[:3])
	if err != nil {
		return nil, err
	}
	fill, err := parseFill(args[3])
	if err != nil {
		return nil, err
	}

	t, err := multirow.New(dims["rows"], dims["cols"], dims["cell_size"], &multirow.Options{
		Upsert:  !noUpsert,
		Backing: backing(),
		Logger:  logger.L,
	})
	if err != nil {
		return nil, err
	}
	defer t.Close()

	printVerbose("row primes: %v\n", t.Primes())
	return runBench("multirow", dims, t, fill)
}
