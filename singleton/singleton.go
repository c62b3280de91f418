package singleton

// Holder composes the three policies around one process-wide instance of T.
// Construct with NewHolder; the zero value is not usable.
type Holder[T any] struct {
	creator  Creator[T]
	lifetime Lifetime
	locker   Locker

	instance  *T
	destroyed bool
}

// NewHolder binds the three policies. The policies are consulted through
// their interfaces but bound once here; the accessor itself performs no
// policy selection.
func NewHolder[T any](creator Creator[T], lifetime Lifetime, locker Locker) *Holder[T] {
	return &Holder[T]{
		creator:  creator,
		lifetime: lifetime,
		locker:   locker,
	}
}

// Instance returns the singleton, creating it on first use and registering
// its destruction per the lifetime policy. After the exit machinery has
// destroyed the instance, access is arbitrated by the policy's
// dead-reference hook: an error denies it, consent recreates the instance.
func (h *Holder[T]) Instance() (*T, error) {
	unlock := h.locker.Lock()
	defer unlock()

	if h.instance == nil {
		if h.destroyed {
			if err := h.lifetime.OnDeadReference(); err != nil {
				return nil, err
			}
			h.destroyed = false
		}
		h.makeInstance()
	}
	return h.instance, nil
}

// Destroyed reports whether the instance has been torn down and not revived.
func (h *Holder[T]) Destroyed() bool {
	unlock := h.locker.Lock()
	defer unlock()
	return h.destroyed
}

func (h *Holder[T]) makeInstance() {
	h.instance = h.creator.Create()
	h.lifetime.ScheduleDestruction(h.destroy)
}

// destroy tears the instance down on behalf of the exit machinery.
func (h *Holder[T]) destroy() {
	unlock := h.locker.Lock()
	defer unlock()

	if h.instance == nil {
		return
	}
	h.creator.Destroy(h.instance)
	h.instance = nil
	h.destroyed = true
}
