package slab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AllocReleaseRoundTrip(t *testing.T) {
	b, err := Alloc(4096)
	require.NoError(t, err)
	require.Equal(t, 4096, b.Len())

	// Slab must be writable end to end.
	data := b.Bytes()
	for i := range data {
		data[i] = byte(i)
	}
	require.Equal(t, byte(0), data[0])
	require.Equal(t, byte(255), data[255])

	require.NoError(t, b.Release())
	require.Nil(t, b.Bytes())
}

func Test_DoubleReleaseIsNoOp(t *testing.T) {
	b, err := Alloc(64)
	require.NoError(t, err)
	require.NoError(t, b.Release())
	require.NoError(t, b.Release())
}

func Test_BadSize(t *testing.T) {
	_, err := Alloc(0)
	require.ErrorIs(t, err, ErrBadSize)

	_, err = Alloc(-1)
	require.ErrorIs(t, err, ErrBadSize)
}

func Test_SubPageSlab(t *testing.T) {
	// Sizes far below a page still produce a slab of exactly the requested length.
	b, err := Alloc(24)
	require.NoError(t, err)
	require.Equal(t, 24, b.Len())
	require.NoError(t, b.Release())
}
