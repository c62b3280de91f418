package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func Test_StatsCounts(t *testing.T) {
	a := New(4096, 64)
	defer a.Release()

	var ptrs []unsafe.Pointer
	for i := 0; i < 10; i++ {
		p, err := a.Alloc(16)
		require.NoError(t, err)
		ptrs = append(ptrs, p)
	}
	p32, err := a.Alloc(32)
	require.NoError(t, err)

	st := a.Stats()
	require.Len(t, st.Pools, 2)
	require.Equal(t, 2, st.TotalChunks)

	require.Equal(t, 16, st.Pools[0].BlockSize)
	require.Equal(t, 255, st.Pools[0].NumBlocks)
	require.Equal(t, 1, st.Pools[0].Chunks)
	require.Equal(t, 255-10, st.Pools[0].FreeBlocks)
	require.Equal(t, int64(255*16), st.Pools[0].Bytes)

	require.Equal(t, 32, st.Pools[1].BlockSize)
	require.Equal(t, st.Pools[0].Bytes+st.Pools[1].Bytes, st.TotalBytes)

	for _, p := range ptrs {
		require.NoError(t, a.Free(p, 16))
	}
	require.NoError(t, a.Free(p32, 32))
}

func Test_StatsString(t *testing.T) {
	a := New(4096, 64)
	defer a.Release()

	p, err := a.Alloc(8)
	require.NoError(t, err)

	s := a.Stats().String()
	require.Contains(t, s, "1 pools")
	require.Contains(t, s, "8 B blocks")
	require.Contains(t, s, "1 in use")

	require.NoError(t, a.Free(p, 8))
}

func Test_StatsEmpty(t *testing.T) {
	a := New(4096, 64)
	defer a.Release()

	st := a.Stats()
	require.Empty(t, st.Pools)
	require.Zero(t, st.TotalBytes)
	require.Contains(t, st.String(), "0 pools")
}
