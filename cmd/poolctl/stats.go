package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/poolkit/alloc"
)

var (
	statsSizes     string
	statsChunk     int
	statsMaxObject int
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().StringVar(&statsSizes, "sizes", "8,16,24,32,48,64", "Comma-separated block sizes to touch")
	cmd.Flags().IntVar(&statsChunk, "chunk", alloc.DefaultChunkSize, "Target slab footprint in bytes")
	cmd.Flags().
		IntVar(&statsMaxObject, "max-object", alloc.MaxSmallObjectSize, "Small-object threshold in bytes")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the pool layout for a set of block sizes",
		Long: `The stats command builds a pool, touches each of the given block sizes
once, and dumps the per-size table: blocks per chunk, resident chunks, and
slab bytes held. Useful for previewing how a chunk-size choice plays out.

Example:
  poolctl stats --sizes 8,40,64
  poolctl stats --chunk 8192 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	a := alloc.New(statsChunk, statsMaxObject)
	defer a.Release()

	for _, field := range strings.Split(statsSizes, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("bad size %q: %w", field, err)
		}
		p, err := a.Alloc(size)
		if err != nil {
			return fmt.Errorf("alloc %d bytes: %w", size, err)
		}
		if err := a.Free(p, size); err != nil {
			return fmt.Errorf("free %d bytes: %w", size, err)
		}
		printVerbose("touched size %d\n", size)
	}

	st := a.Stats()
	if jsonOut {
		return printJSON(st)
	}
	printInfo("%s\n", st)
	return nil
}
