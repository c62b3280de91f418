// Package slab obtains and releases the raw backing buffers that allocator
// chunks are carved from. On unix the buffers come from anonymous private
// mappings so that releasing a slab returns the pages to the system
// immediately; elsewhere they are plain heap slices.
package slab

import "errors"

// ErrBadSize indicates a non-positive slab size.
var ErrBadSize = errors.New("slab: size must be positive")

// Buffer is one contiguous slab of raw memory.
type Buffer struct {
	data   []byte
	mapped bool
}

// Bytes returns the slab contents. The slice is invalid after Release.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the slab size in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Release returns the slab to the system. Releasing an already released
// buffer is a no-op.
func (b *Buffer) Release() error {
	if b.data == nil {
		return nil
	}
	data, mapped := b.data, b.mapped
	b.data, b.mapped = nil, false
	if !mapped {
		return nil
	}
	return unmap(data)
}
