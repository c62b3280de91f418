package alloc

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func Test_ChunkInitSeedsFreeList(t *testing.T) {
	var c chunk
	require.NoError(t, c.init(8, 16))
	defer c.release()

	require.Equal(t, uint8(0), c.firstFree)
	require.Equal(t, uint8(16), c.nFree)

	// Freshly seeded list visits 0..15 in order.
	indices := freeListIndices(&c, 8)
	require.Len(t, indices, 16)
	for i, idx := range indices {
		require.Equal(t, i, idx)
	}
}

func Test_ChunkAllocExhaustion(t *testing.T) {
	var c chunk
	require.NoError(t, c.init(4, 8))
	defer c.release()

	seen := map[unsafe.Pointer]bool{}
	for i := 0; i < 8; i++ {
		p := c.alloc(4)
		require.NotNil(t, p)
		require.False(t, seen[p], "block %d handed out twice", i)
		seen[p] = true
	}
	require.True(t, c.full())
	require.Nil(t, c.alloc(4), "exhausted chunk must return nil")
}

func Test_ChunkFreeReusesBlockLIFO(t *testing.T) {
	var c chunk
	require.NoError(t, c.init(16, 4))
	defer c.release()

	p0 := c.alloc(16)
	p1 := c.alloc(16)
	require.NotNil(t, p1)

	c.free(p0, 16)
	require.Equal(t, uint8(3), c.nFree)

	// The freed block sits at the head of the list and comes back first.
	require.Equal(t, p0, c.alloc(16))
}

func Test_ChunkBlockAddresses(t *testing.T) {
	var c chunk
	require.NoError(t, c.init(8, 4))
	defer c.release()

	for i := 0; i < 4; i++ {
		p := c.alloc(8)
		require.Equal(t, c.base+uintptr(i*8), uintptr(p))
	}
}

func Test_ChunkOwns(t *testing.T) {
	var c chunk
	require.NoError(t, c.init(8, 4))
	defer c.release()

	p := c.alloc(8)
	require.True(t, c.owns(p, 32))
	require.False(t, c.owns(unsafe.Add(p, 32), 32), "one past the end is outside")

	var other chunk
	require.NoError(t, other.init(8, 4))
	defer other.release()
	require.False(t, c.owns(other.alloc(8), 32))
}

// Test_ChunkFreeListIntegrity drives a random alloc/free mix and checks that
// the free list always visits exactly nFree distinct in-range indices, none
// of which is currently allocated.
func Test_ChunkFreeListIntegrity(t *testing.T) {
	const (
		blockSize = 8
		numBlocks = 32
	)
	var c chunk
	require.NoError(t, c.init(blockSize, numBlocks))
	defer c.release()

	rng := rand.New(rand.NewSource(7))
	live := map[unsafe.Pointer]bool{}
	for step := 0; step < 2000; step++ {
		if len(live) < numBlocks && (len(live) == 0 || rng.Intn(2) == 0) {
			p := c.alloc(blockSize)
			require.NotNil(t, p)
			live[p] = true
		} else {
			var victim unsafe.Pointer
			n := rng.Intn(len(live))
			for p := range live {
				if n == 0 {
					victim = p
					break
				}
				n--
			}
			delete(live, victim)
			c.free(victim, blockSize)
		}

		indices := freeListIndices(&c, blockSize)
		require.True(t, distinctInRange(indices, numBlocks),
			"free list corrupt at step %d: %v", step, indices)
		data := c.buf.Bytes()
		for _, idx := range indices {
			p := unsafe.Pointer(&data[idx*blockSize])
			require.False(t, live[p], "allocated block %d on free list", idx)
		}
	}
	for p := range live {
		c.free(p, blockSize)
	}
	require.True(t, c.empty(numBlocks))
}
