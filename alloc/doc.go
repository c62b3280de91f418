// Package alloc implements a pool-based heap for many short-lived small
// objects. Requests at or below a configurable threshold are served from
// fixed-size blocks carved out of larger contiguous slabs; larger requests
// fall through to the runtime heap.
//
// # Overview
//
// Three layers, leaves first:
//
//   - chunk: one contiguous slab divided into fixed-size blocks, with an
//     intrusive free list threaded through the blocks themselves. The first
//     byte of every free block holds the index of the next free block, so a
//     chunk carries no per-block metadata at all.
//   - FixedAllocator: a growable pool of chunks that all serve the same
//     block size. It hands out blocks, discovers which chunk owns a returned
//     pointer, and reclaims empty chunks on a hysteresis policy.
//   - SmallObjAllocator: a pool of FixedAllocators sorted by block size. It
//     routes a request of size s to the matching FixedAllocator, creating
//     one on first sight of a new size, or to the runtime heap when s
//     exceeds the small-object threshold.
//
// # Usage Example
//
//	a := alloc.New(alloc.DefaultChunkSize, alloc.MaxSmallObjectSize)
//
//	p, err := a.Alloc(24)
//	if err != nil {
//	    return err
//	}
//
//	// ... use the 24-byte block at p ...
//
//	// Return the block with the same size it was requested with.
//	err = a.Free(p, 24)
//
// # Free List Encoding
//
// Block indices are a single byte, which caps a chunk at 255 blocks. The
// narrow link is deliberate: it lets a chunk host blocks as small as one
// byte without losing space to metadata. Walking the list from firstFree
// visits exactly nFree distinct in-range indices.
//
// # Deallocation Lookup
//
// Free must discover which chunk owns the returned pointer. Lookup is
// tiered: the chunk that served the previous Free is checked first, then a
// vicinity search walks outward from it in both directions at once, which
// degrades to a linear scan only when locality is absent.
//
// # Empty-Chunk Hysteresis
//
// A FixedAllocator keeps at most one empty chunk resident instead of
// releasing slabs eagerly, so workloads that alternate between allocation
// and deallocation at a size boundary do not churn the system allocator.
// Empty chunks are pushed to the tail of the chunk vector; the second chunk
// to become empty is released.
//
// # Thread Safety
//
// SmallObjAllocator and FixedAllocator are not thread-safe. Callers either
// confine an allocator to one goroutine or wrap it in a LockedAllocator,
// which serializes every public call; the singleton package hosts a
// process-wide LockedAllocator behind its policy harness.
//
// # Related Packages
//
//   - github.com/joshuapare/poolkit/internal/slab: raw slab acquisition
//   - github.com/joshuapare/poolkit/singleton: process-wide policy harness
package alloc
