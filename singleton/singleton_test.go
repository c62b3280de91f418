package singleton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// counter tracks constructor/destructor calls for a test instance.
type counter struct {
	created   int
	destroyed int
}

type widget struct {
	n int
}

func creatorFor(c *counter) FuncCreator[widget] {
	return FuncCreator[widget]{
		New:  func() *widget { c.created++; return &widget{n: c.created} },
		Free: func(*widget) { c.destroyed++ },
	}
}

func drain(t *testing.T) {
	t.Helper()
	RunExitHooks()
}

func Test_InstanceCreatedOnce(t *testing.T) {
	drain(t)
	var c counter
	h := NewHolder(creatorFor(&c), DefaultLifetime{}, SingleThreaded{})

	w1, err := h.Instance()
	require.NoError(t, err)
	w2, err := h.Instance()
	require.NoError(t, err)
	require.Same(t, w1, w2)
	require.Equal(t, 1, c.created)

	drain(t)
	require.Equal(t, 1, c.destroyed)
}

func Test_DefaultLifetimeDeadReference(t *testing.T) {
	drain(t)
	var c counter
	h := NewHolder(creatorFor(&c), DefaultLifetime{}, SingleThreaded{})

	_, err := h.Instance()
	require.NoError(t, err)

	RunExitHooks()
	require.True(t, h.Destroyed())

	_, err = h.Instance()
	require.ErrorIs(t, err, ErrDeadReference)
	require.Equal(t, 1, c.created, "denied revival must not reconstruct")
}

func Test_PhoenixRevival(t *testing.T) {
	drain(t)
	var c counter
	h := NewHolder(creatorFor(&c), Phoenix{}, SingleThreaded{})

	w1, err := h.Instance()
	require.NoError(t, err)
	require.Equal(t, 1, w1.n)

	// Scheduled destruction runs.
	RunExitHooks()
	require.True(t, h.Destroyed())
	require.Equal(t, 1, c.destroyed)

	// Post-destruction access silently rebuilds a fresh instance.
	w2, err := h.Instance()
	require.NoError(t, err)
	require.Equal(t, 2, w2.n)
	require.False(t, h.Destroyed())

	// The revived instance is scheduled for destruction again.
	RunExitHooks()
	require.Equal(t, 2, c.destroyed)
}

func Test_NoDestroySurvivesExit(t *testing.T) {
	drain(t)
	var c counter
	h := NewHolder(creatorFor(&c), NoDestroy{}, SingleThreaded{})

	w1, err := h.Instance()
	require.NoError(t, err)

	RunExitHooks()
	require.False(t, h.Destroyed())

	w2, err := h.Instance()
	require.NoError(t, err)
	require.Same(t, w1, w2)
	require.Equal(t, 0, c.destroyed)
}

func Test_LongevityOrder(t *testing.T) {
	drain(t)

	var order []uint
	for _, n := range []uint{10, 30, 20} {
		n := n
		h := NewHolder(
			FuncCreator[widget]{
				New:  func() *widget { return &widget{} },
				Free: func(*widget) { order = append(order, n) },
			},
			WithLongevity(n),
			SingleThreaded{},
		)
		_, err := h.Instance()
		require.NoError(t, err)
	}

	RunExitHooks()
	require.Equal(t, []uint{30, 20, 10}, order)
}

func Test_LongevityStableForEqualValues(t *testing.T) {
	drain(t)

	var order []string
	for _, name := range []string{"first", "second"} {
		name := name
		SetLongevity(5, func() { order = append(order, name) })
	}
	RunExitHooks()
	require.Equal(t, []string{"second", "first"}, order)
}

func Test_SlotCreatorReusesSlot(t *testing.T) {
	drain(t)
	h := NewHolder[widget](&SlotCreator[widget]{}, Phoenix{}, SingleThreaded{})

	w1, err := h.Instance()
	require.NoError(t, err)
	w1.n = 41

	RunExitHooks()

	w2, err := h.Instance()
	require.NoError(t, err)
	require.Same(t, w1, w2, "slot creator must reuse its storage")
	require.Equal(t, 0, w2.n, "revival must reconstruct, not resurrect state")
}

func Test_ExitHooksLIFO(t *testing.T) {
	drain(t)

	var order []int
	OnExit(func() { order = append(order, 1) })
	OnExit(func() { order = append(order, 2) })
	RunExitHooks()
	require.Equal(t, []int{2, 1}, order)

	// Chain is drained; running again is a no-op.
	RunExitHooks()
	require.Equal(t, []int{2, 1}, order)
}

func Test_ObjectLockScoped(t *testing.T) {
	var l ObjectLock
	unlock := l.Lock()
	unlock()
	unlock = l.Lock() // relockable after release
	unlock()
}

func Test_DefaultAllocator(t *testing.T) {
	drain(t)

	a, err := Default()
	require.NoError(t, err)

	p, err := a.Alloc(24)
	require.NoError(t, err)
	require.NoError(t, a.Free(p, 24))

	// Same instance on repeated access.
	b, err := Default()
	require.NoError(t, err)
	require.Same(t, a, b)

	// Phoenix: usable again after the exit chain tears it down.
	RunExitHooks()
	c, err := Default()
	require.NoError(t, err)
	p, err = c.Alloc(8)
	require.NoError(t, err)
	require.NoError(t, c.Free(p, 8))
	RunExitHooks()
}
