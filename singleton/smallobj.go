package singleton

import "github.com/joshuapare/poolkit/alloc"

// defaultHolder hosts the process-wide small-object allocator: built with
// the package defaults, revived on post-destruction access, one shared lock
// across accessors. The allocator itself serializes its calls, so the
// holder lock only guards instance lifecycle.
var defaultHolder = NewHolder(
	FuncCreator[alloc.LockedAllocator]{
		New: func() *alloc.LockedAllocator {
			return alloc.NewLocked(alloc.DefaultChunkSize, alloc.MaxSmallObjectSize)
		},
		Free: func(l *alloc.LockedAllocator) { l.Release() },
	},
	Phoenix{},
	ClassLock{},
)

// Default returns the process-wide small-object allocator. Under the
// Phoenix lifetime an access after the exit chain has run rebuilds the
// allocator instead of failing.
func Default() (*alloc.LockedAllocator, error) {
	return defaultHolder.Instance()
}
