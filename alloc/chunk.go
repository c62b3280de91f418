package alloc

import (
	"unsafe"

	"github.com/joshuapare/poolkit/internal/slab"
)

// maxBlocksPerChunk caps the blocks a single chunk can manage. The free-list
// link is the first byte of each free block, so block indices must fit in
// eight bits.
const maxBlocksPerChunk = 255

// chunk is one contiguous slab divided into fixed-size blocks. The free list
// is intrusive: the first byte of every free block holds the index of the
// next free block. A chunk does not record its own block size; the owning
// FixedAllocator supplies it on every call.
type chunk struct {
	buf       *slab.Buffer
	base      uintptr // address of the first block
	firstFree uint8
	nFree     uint8
}

// init obtains the slab and seeds the free list so that block i links to
// block i+1.
func (c *chunk) init(blockSize int, numBlocks uint8) error {
	buf, err := slab.Alloc(blockSize * int(numBlocks))
	if err != nil {
		return err
	}
	data := buf.Bytes()
	c.buf = buf
	c.base = uintptr(unsafe.Pointer(&data[0]))
	c.firstFree = 0
	c.nFree = numBlocks
	for b := 0; b < int(numBlocks); b++ {
		data[b*blockSize] = uint8(b + 1)
	}
	return nil
}

// alloc hands out the first free block, or nil when the chunk is full.
func (c *chunk) alloc(blockSize int) unsafe.Pointer {
	if c.nFree == 0 {
		return nil
	}
	data := c.buf.Bytes()
	off := int(c.firstFree) * blockSize
	p := unsafe.Pointer(&data[off])
	c.firstFree = data[off]
	c.nFree--
	return p
}

// free threads the block back in at the head of the free list. The pointer
// must address the first byte of a block inside this chunk.
func (c *chunk) free(p unsafe.Pointer, blockSize int) {
	off := uintptr(p) - c.base
	assertf(off%uintptr(blockSize) == 0, "free: pointer not on a block boundary")
	idx := off / uintptr(blockSize)
	assertf(idx < uintptr(len(c.buf.Bytes())/blockSize), "free: pointer outside chunk")
	data := c.buf.Bytes()
	data[off] = c.firstFree
	c.firstFree = uint8(idx)
	c.nFree++
}

// owns reports whether p falls inside this chunk's slab. chunkLen is
// blockSize*numBlocks, precomputed by the caller.
func (c *chunk) owns(p unsafe.Pointer, chunkLen uintptr) bool {
	addr := uintptr(p)
	return c.base <= addr && addr < c.base+chunkLen
}

// release frees the slab and clears the chunk.
func (c *chunk) release() {
	if c.buf != nil {
		c.buf.Release()
	}
	c.buf = nil
	c.base = 0
	c.firstFree = 0
	c.nFree = 0
}

func (c *chunk) full() bool { return c.nFree == 0 }

func (c *chunk) empty(numBlocks uint8) bool { return c.nFree == numBlocks }
