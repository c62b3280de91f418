package alloc

// Helpers shared by the package tests. Nothing here is part of the public
// surface.

// freeListIndices walks a chunk's intrusive free list from firstFree and
// returns the visited block indices in list order. The walk takes exactly
// nFree steps, so a corrupt list shows up as an out-of-range or duplicated
// index rather than an infinite loop.
func freeListIndices(c *chunk, blockSize int) []int {
	out := make([]int, 0, int(c.nFree))
	data := c.buf.Bytes()
	idx := c.firstFree
	for i := 0; i < int(c.nFree); i++ {
		out = append(out, int(idx))
		idx = data[int(idx)*blockSize]
	}
	return out
}

// distinctInRange reports whether every index is unique and below n.
func distinctInRange(indices []int, n int) bool {
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
