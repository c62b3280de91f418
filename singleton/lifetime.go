package singleton

import "errors"

// ErrDeadReference reports access to a singleton after its scheduled
// destruction under a lifetime policy that denies revival.
var ErrDeadReference = errors.New("singleton: dead reference: instance already destroyed")

// Lifetime schedules the instance's destruction and arbitrates access after
// it has been destroyed.
type Lifetime interface {
	// ScheduleDestruction registers destroy with the process-exit machinery.
	ScheduleDestruction(destroy func())

	// OnDeadReference runs when the holder is accessed after destruction. A
	// nil return consents to recreating the instance; an error denies it.
	OnDeadReference() error
}

// DefaultLifetime destroys the instance with the exit chain and denies any
// access afterwards.
type DefaultLifetime struct{}

func (DefaultLifetime) ScheduleDestruction(destroy func()) { OnExit(destroy) }

func (DefaultLifetime) OnDeadReference() error { return ErrDeadReference }

// Phoenix destroys the instance with the exit chain but consents to its
// recreation: an access after destruction transparently builds a fresh
// instance, which is scheduled for destruction again.
type Phoenix struct{}

func (Phoenix) ScheduleDestruction(destroy func()) { OnExit(destroy) }

func (Phoenix) OnDeadReference() error { return nil }

// NoDestroy never schedules destruction; the instance lives until the
// process ends. Resources the instance holds beyond memory are never
// released.
type NoDestroy struct{}

func (NoDestroy) ScheduleDestruction(func()) {}

func (NoDestroy) OnDeadReference() error { return nil }

// LongevityLifetime schedules destruction through the longevity queue and
// denies access after it. Construct with WithLongevity.
type LongevityLifetime struct {
	longevity uint
}

// WithLongevity returns a lifetime whose destruction is ordered by n
// relative to every other longevity-scheduled object.
func WithLongevity(n uint) LongevityLifetime { return LongevityLifetime{longevity: n} }

func (l LongevityLifetime) ScheduleDestruction(destroy func()) {
	SetLongevity(l.longevity, destroy)
}

func (LongevityLifetime) OnDeadReference() error { return ErrDeadReference }
