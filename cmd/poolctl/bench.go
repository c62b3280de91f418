package main

import (
	"fmt"
	"math/rand"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/poolkit/alloc"
)

var (
	benchCount     int
	benchSize      int
	benchChunk     int
	benchMaxObject int
	benchSeed      int64
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchCount, "count", 100000, "Number of blocks per round")
	cmd.Flags().IntVar(&benchSize, "size", 0, "Fixed block size; 0 mixes sizes 1..max-object")
	cmd.Flags().IntVar(&benchChunk, "chunk", alloc.DefaultChunkSize, "Target slab footprint in bytes")
	cmd.Flags().
		IntVar(&benchMaxObject, "max-object", alloc.MaxSmallObjectSize, "Small-object threshold in bytes")
	cmd.Flags().Int64Var(&benchSeed, "seed", 1, "Seed for the mixed-size workload")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run an alloc/free workload against the pool",
		Long: `The bench command drives a balanced allocate/free workload through the
small-object pool and through the plain runtime heap, then prints the timings
side by side together with the pool's occupancy statistics.

Example:
  poolctl bench --count 500000 --size 24
  poolctl bench --chunk 8192 --max-object 128`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

type benchResult struct {
	Count      int    `json:"count"`
	PoolTime   string `json:"pool_time"`
	HeapTime   string `json:"heap_time"`
	PoolChunks int    `json:"pool_chunks"`
	PoolBytes  int64  `json:"pool_bytes"`
}

func runBench() error {
	sizes := make([]int, benchCount)
	rng := rand.New(rand.NewSource(benchSeed))
	for i := range sizes {
		if benchSize > 0 {
			sizes[i] = benchSize
		} else {
			sizes[i] = 1 + rng.Intn(benchMaxObject)
		}
	}

	a := alloc.New(benchChunk, benchMaxObject)
	defer a.Release()

	printVerbose("warming pool (chunk=%d max-object=%d)\n", benchChunk, benchMaxObject)

	// Pool round: allocate everything, free everything.
	ptrs := make([]unsafe.Pointer, benchCount)
	start := time.Now()
	for i, size := range sizes {
		p, err := a.Alloc(size)
		if err != nil {
			return fmt.Errorf("pool alloc %d bytes: %w", size, err)
		}
		ptrs[i] = p
	}
	for i, size := range sizes {
		if err := a.Free(ptrs[i], size); err != nil {
			return fmt.Errorf("pool free %d bytes: %w", size, err)
		}
	}
	poolTime := time.Since(start)

	// Heap round: the same workload on plain slices.
	bufs := make([][]byte, benchCount)
	start = time.Now()
	for i, size := range sizes {
		bufs[i] = make([]byte, size)
	}
	for i := range bufs {
		bufs[i] = nil
	}
	heapTime := time.Since(start)

	st := a.Stats()
	res := benchResult{
		Count:      benchCount,
		PoolTime:   poolTime.String(),
		HeapTime:   heapTime.String(),
		PoolChunks: st.TotalChunks,
		PoolBytes:  st.TotalBytes,
	}
	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s blocks round-tripped\n", humanize.Comma(int64(benchCount)))
	printInfo("  pool: %v\n", poolTime)
	printInfo("  heap: %v\n", heapTime)
	printInfo("retained: %s\n", st)
	return nil
}
