package alloc

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// PoolStats describes one fixed-size pool at a point in time.
type PoolStats struct {
	BlockSize  int   // bytes per block
	NumBlocks  int   // blocks per chunk
	Chunks     int   // resident chunks
	FreeBlocks int   // free blocks across all chunks
	Bytes      int64 // slab bytes currently held
}

// Stats is a snapshot of a SmallObjAllocator. Collecting it walks every
// chunk; it is meant for diagnostics, not the hot path.
type Stats struct {
	Pools       []PoolStats
	TotalChunks int
	TotalBytes  int64
}

// Stats captures the allocator's current occupancy.
func (a *SmallObjAllocator) Stats() Stats {
	st := Stats{Pools: make([]PoolStats, 0, len(a.pool))}
	for _, fa := range a.pool {
		ps := PoolStats{
			BlockSize:  fa.BlockSize(),
			NumBlocks:  fa.NumBlocks(),
			Chunks:     fa.numChunks(),
			FreeBlocks: fa.freeBlocks(),
		}
		ps.Bytes = int64(ps.Chunks) * int64(ps.BlockSize) * int64(ps.NumBlocks)
		st.Pools = append(st.Pools, ps)
		st.TotalChunks += ps.Chunks
		st.TotalBytes += ps.Bytes
	}
	return st
}

func (st Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d pools, %d chunks, %s held",
		len(st.Pools), st.TotalChunks, humanize.IBytes(uint64(st.TotalBytes)))
	for _, p := range st.Pools {
		used := p.Chunks*p.NumBlocks - p.FreeBlocks
		fmt.Fprintf(&b, "\n  %4d B blocks: %d chunks x %d blocks, %d in use, %s held",
			p.BlockSize, p.Chunks, p.NumBlocks, used, humanize.IBytes(uint64(p.Bytes)))
	}
	return b.String()
}
