package alloc

import "unsafe"

// FixedAllocator hands out blocks of one fixed size, carved from a growable
// vector of equal-shape chunks. It is a handle: Clone returns a second
// handle over the same chunk vector, and the chunks are released only when
// the last handle is released.
//
// Not safe for concurrent use.
type FixedAllocator struct {
	shared *fixedShared
}

// fixedShared is the state all handles of one FixedAllocator share.
type fixedShared struct {
	blockSize int
	numBlocks uint8
	chunks    []chunk

	allocIdx   int // chunk preferred for allocation, -1 when none
	deallocIdx int // chunk preferred for deallocation, -1 when none

	refs int
}

// NewFixed creates an allocator for blockSize-byte blocks. chunkSize is the
// target slab footprint; 0 selects DefaultChunkSize. Chunks are sized to
// chunkSize/blockSize blocks, clamped to [1, 255]; when blockSize exceeds
// chunkSize the count is raised to 8*blockSize before clamping.
func NewFixed(blockSize, chunkSize int) *FixedAllocator {
	if blockSize <= 0 {
		panic("alloc: block size must be positive")
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &FixedAllocator{shared: &fixedShared{
		blockSize:  blockSize,
		numBlocks:  numBlocksFor(blockSize, chunkSize),
		allocIdx:   -1,
		deallocIdx: -1,
		refs:       1,
	}}
}

func numBlocksFor(blockSize, chunkSize int) uint8 {
	n := chunkSize / blockSize
	if n == 0 {
		n = 8 * blockSize
	}
	if n > maxBlocksPerChunk {
		n = maxBlocksPerChunk
	}
	return uint8(n)
}

// BlockSize returns the size of the blocks this allocator serves.
func (fa *FixedAllocator) BlockSize() int { return fa.shared.blockSize }

// NumBlocks returns the number of blocks each chunk holds.
func (fa *FixedAllocator) NumBlocks() int { return int(fa.shared.numBlocks) }

// Clone returns a new handle sharing this allocator's chunks. Blocks
// allocated through one handle may be freed through another; the chunks
// stay alive until the last handle is released.
func (fa *FixedAllocator) Clone() *FixedAllocator {
	fa.shared.refs++
	return &FixedAllocator{shared: fa.shared}
}

// Release drops this handle. When the last handle goes away every block
// must already have been returned; the chunk slabs are then released.
func (fa *FixedAllocator) Release() {
	s := fa.shared
	if s == nil {
		return
	}
	fa.shared = nil
	if s.refs--; s.refs > 0 {
		return
	}
	for i := range s.chunks {
		assertf(s.chunks[i].empty(s.numBlocks),
			"release: live blocks remain (blockSize=%d)", s.blockSize)
		s.chunks[i].release()
	}
	s.chunks = nil
	s.allocIdx, s.deallocIdx = -1, -1
}

// Alloc returns one block. Fast path: the chunk that served the previous
// allocation, if it has capacity. Slow path: the first chunk with a free
// block, or a freshly initialized chunk appended to the vector.
func (fa *FixedAllocator) Alloc() (unsafe.Pointer, error) {
	s := fa.shared
	if s.allocIdx < 0 || s.chunks[s.allocIdx].full() {
		found := -1
		for i := range s.chunks {
			if !s.chunks[i].full() {
				found = i
				break
			}
		}
		if found < 0 {
			var c chunk
			if err := c.init(s.blockSize, s.numBlocks); err != nil {
				return nil, ErrNoSpace
			}
			s.chunks = append(s.chunks, c)
			found = len(s.chunks) - 1
			s.deallocIdx = 0
			tracef("fixed(%d): chunk %d added (%d blocks)", s.blockSize, found, s.numBlocks)
		}
		s.allocIdx = found
	}
	p := s.chunks[s.allocIdx].alloc(s.blockSize)
	assertf(p != nil, "alloc: selected chunk had no free block")
	return p, nil
}

// Free returns a block. The owning chunk is discovered with a vicinity
// search seeded at the chunk that served the previous Free; afterwards the
// empty-chunk hysteresis policy may release a slab.
func (fa *FixedAllocator) Free(p unsafe.Pointer) error {
	s := fa.shared
	if len(s.chunks) == 0 {
		return ErrBadFree
	}
	idx := s.vicinityFind(p)
	if idx < 0 {
		return ErrBadFree
	}
	s.deallocIdx = idx
	s.freeAt(idx, p)
	return nil
}

// vicinityFind locates the chunk owning p by walking outward from the
// deallocation cache in both directions at once, checking the lower side
// first. Locality of reference makes this typically O(1); the worst case is
// a full linear scan. Returns -1 when no chunk owns p.
func (s *fixedShared) vicinityFind(p unsafe.Pointer) int {
	chunkLen := uintptr(s.blockSize) * uintptr(s.numBlocks)

	lo := s.deallocIdx
	if lo < 0 {
		lo = 0
	}
	if lo >= len(s.chunks) {
		lo = len(s.chunks) - 1
	}
	hi := lo + 1
	if hi >= len(s.chunks) {
		hi = -1
	}

	for lo >= 0 || hi >= 0 {
		if lo >= 0 {
			if s.chunks[lo].owns(p, chunkLen) {
				return lo
			}
			lo--
		}
		if hi >= 0 {
			if s.chunks[hi].owns(p, chunkLen) {
				return hi
			}
			if hi++; hi >= len(s.chunks) {
				hi = -1
			}
		}
	}
	return -1
}

// freeAt returns p to the chunk at idx, then applies the empty-chunk
// hysteresis: at most one empty chunk stays resident, parked at the tail of
// the vector; the second chunk to become empty is released.
func (s *fixedShared) freeAt(idx int, p unsafe.Pointer) {
	c := &s.chunks[idx]
	c.free(p, s.blockSize)

	if !c.empty(s.numBlocks) {
		return
	}

	last := len(s.chunks) - 1
	switch {
	case idx == last:
		// The emptied chunk already sits at the tail. Release it only if
		// its predecessor is empty too; a lone trailing empty is retained.
		if last > 0 && s.chunks[last-1].empty(s.numBlocks) {
			s.chunks[last].release()
			s.chunks = s.chunks[:last]
			s.allocIdx, s.deallocIdx = 0, 0
			tracef("fixed(%d): trailing chunk released", s.blockSize)
		}
	case s.chunks[last].empty(s.numBlocks):
		// An empty chunk already waits at the tail; release it and keep
		// the newly emptied one as the retained empty, parked at the new tail.
		s.chunks[last].release()
		s.chunks = s.chunks[:last]
		last--
		s.chunks[idx], s.chunks[last] = s.chunks[last], s.chunks[idx]
		s.allocIdx = last
		tracef("fixed(%d): tail chunk released", s.blockSize)
	default:
		// Park the emptied chunk at the tail so allocation scans stay short.
		s.chunks[idx], s.chunks[last] = s.chunks[last], s.chunks[idx]
		s.allocIdx = last
	}
}

// numChunks reports how many chunks are currently resident.
func (fa *FixedAllocator) numChunks() int { return len(fa.shared.chunks) }

// freeBlocks reports the total free blocks across all chunks.
func (fa *FixedAllocator) freeBlocks() int {
	n := 0
	for i := range fa.shared.chunks {
		n += int(fa.shared.chunks[i].nFree)
	}
	return n
}
