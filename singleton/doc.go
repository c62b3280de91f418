// Package singleton provides a process-wide holder for a single instance of
// a type, composed from three orthogonal policies bound at construction:
//
//   - Creation: how the instance is built and torn down (heap, a reusable
//     static slot, or an arbitrary constructor/destructor pair).
//   - Lifetime: when the instance is destroyed and what happens when it is
//     accessed afterwards (deny with ErrDeadReference, recreate it
//     transparently — Phoenix — order destruction by longevity, or never
//     destroy at all).
//   - Threading: the scoped lock wrapped around the accessor (none, one
//     mutex per holder, or one mutex shared by every holder).
//
// Policies are ordinary values implementing small interfaces; the holder
// binds them once, so there is no dynamic policy lookup on the access path.
//
// Go has no atexit, so the process-exit chain is explicit: hooks registered
// by lifetime policies run when the program calls RunExitHooks, typically at
// the end of main or from a test. Hooks run most-recent-first; longevity
// trackers are drained in their own order (see SetLongevity).
//
// The package also hosts the canonical consumer: Default returns the
// process-wide small-object allocator, built by a constructor function,
// Phoenix-revived and class-locked.
package singleton
