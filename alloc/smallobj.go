package alloc

import (
	"fmt"
	"sort"
	"unsafe"
)

const (
	// DefaultChunkSize is the target slab footprint in bytes.
	DefaultChunkSize = 4096

	// MaxSmallObjectSize is the default threshold above which requests go to
	// the runtime heap.
	MaxSmallObjectSize = 64
)

// SmallObjAllocator routes allocation requests by size: small sizes go to a
// pool of FixedAllocators sorted by block size, larger ones to the runtime
// heap. A FixedAllocator is created on first sight of a new size and never
// removed, even when all of its chunks drain; programs tend to re-request
// the same sizes, and keeping the entry preserves its retained empty chunk.
//
// Not safe for concurrent use; see LockedAllocator.
type SmallObjAllocator struct {
	pool []*FixedAllocator // sorted by block size, strictly ascending

	lastAlloc   *FixedAllocator // served the previous Alloc
	lastDealloc *FixedAllocator // served the previous Free

	chunkSize     int
	maxObjectSize int
}

// New creates a small-object allocator. chunkSize is the target slab
// footprint handed to each FixedAllocator and maxObjectSize the threshold
// above which requests bypass the pool; zero selects the package defaults.
func New(chunkSize, maxObjectSize int) *SmallObjAllocator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if maxObjectSize <= 0 {
		maxObjectSize = MaxSmallObjectSize
	}
	return &SmallObjAllocator{
		chunkSize:     chunkSize,
		maxObjectSize: maxObjectSize,
	}
}

// MaxObjectSize returns the small-object threshold in bytes.
func (a *SmallObjAllocator) MaxObjectSize() int { return a.maxObjectSize }

// ChunkSize returns the target slab footprint in bytes.
func (a *SmallObjAllocator) ChunkSize() int { return a.chunkSize }

// Alloc returns a size-byte block. Requests above the threshold are served
// by the runtime heap; the returned pointer pins that memory until Free.
func (a *SmallObjAllocator) Alloc(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, ErrZeroSize
	}
	if size > a.maxObjectSize {
		tracef("smallobj: large path alloc size=%d", size)
		return sysAlloc(size), nil
	}
	if a.lastAlloc != nil && a.lastAlloc.BlockSize() == size {
		return a.lastAlloc.Alloc()
	}

	i := a.lowerBound(size)
	if i == len(a.pool) || a.pool[i].BlockSize() != size {
		fa := NewFixed(size, a.chunkSize)
		a.pool = append(a.pool, nil)
		copy(a.pool[i+1:], a.pool[i:])
		a.pool[i] = fa
		a.lastDealloc = a.pool[0]
		tracef("smallobj: pool entry added size=%d (%d entries)", size, len(a.pool))
	}
	a.lastAlloc = a.pool[i]
	return a.lastAlloc.Alloc()
}

// Free returns a block previously obtained from Alloc with the same size.
func (a *SmallObjAllocator) Free(p unsafe.Pointer, size int) error {
	if size <= 0 {
		return ErrZeroSize
	}
	if size > a.maxObjectSize {
		sysFree(p, size)
		return nil
	}
	if a.lastDealloc != nil && a.lastDealloc.BlockSize() == size {
		return a.lastDealloc.Free(p)
	}

	i := a.lowerBound(size)
	if i == len(a.pool) || a.pool[i].BlockSize() != size {
		// A balanced caller must have allocated at this size before, which
		// would have created the pool entry.
		return fmt.Errorf("%w: no pool for size %d", ErrBadFree, size)
	}
	a.lastDealloc = a.pool[i]
	return a.lastDealloc.Free(p)
}

// Release tears the allocator down, releasing every pool entry. All blocks
// must already have been returned.
func (a *SmallObjAllocator) Release() {
	for _, fa := range a.pool {
		fa.Release()
	}
	a.pool = nil
	a.lastAlloc, a.lastDealloc = nil, nil
}

// lowerBound returns the position of the first pool entry whose block size
// is not below size.
func (a *SmallObjAllocator) lowerBound(size int) int {
	return sort.Search(len(a.pool), func(i int) bool {
		return a.pool[i].BlockSize() >= size
	})
}

// sysAlloc serves the large path straight from the runtime heap. The
// returned pointer keeps the buffer alive for as long as the caller holds it.
func sysAlloc(size int) unsafe.Pointer {
	buf := make([]byte, size)
	return unsafe.Pointer(&buf[0])
}

// sysFree releases a large-path block. The collector reclaims the buffer
// once the caller drops the pointer; nothing in the pool is touched.
func sysFree(p unsafe.Pointer, size int) {
	_, _ = p, size
}
