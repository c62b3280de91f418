package alloc

import (
	"sync"
	"unsafe"
)

// LockedAllocator serializes every public call on an underlying
// SmallObjAllocator with one mutex, making it safe to share across
// goroutines. The lock spans the whole call, so between a Free and any
// later Alloc of the same size the freed block is eligible for return.
type LockedAllocator struct {
	mu sync.Mutex
	a  *SmallObjAllocator
}

// NewLocked creates a mutex-guarded small-object allocator; the size
// parameters follow New.
func NewLocked(chunkSize, maxObjectSize int) *LockedAllocator {
	return &LockedAllocator{a: New(chunkSize, maxObjectSize)}
}

// Alloc returns a size-byte block.
func (l *LockedAllocator) Alloc(size int) (unsafe.Pointer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Alloc(size)
}

// Free returns a block previously obtained from Alloc with the same size.
func (l *LockedAllocator) Free(p unsafe.Pointer, size int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Free(p, size)
}

// Stats captures the allocator's current occupancy.
func (l *LockedAllocator) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Stats()
}

// Release tears the allocator down. All blocks must have been returned.
func (l *LockedAllocator) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Release()
}
