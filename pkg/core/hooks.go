package core

import (
	"sync/atomic"

	"github.com/go-drift/termdrift/pkg/reactive"
)

// boundEffect stops firing once its Context refreshes or retires.
type boundEffect struct {
	cx    *Context
	gen   uint64
	inner reactive.Effect
}

func (b boundEffect) Run() {
	if b.Inert() {
		return
	}
	b.inner.Run()
}

func (b boundEffect) Inert() bool {
	return b.cx.retired.Load() || b.cx.generation.Load() != b.gen
}

// bind ties e to the current run of cx.
func (cx *Context) bind(e reactive.Effect) reactive.Effect {
	return boundEffect{cx: cx, gen: cx.generation.Load(), inner: e}
}

// slot returns the hook slot at the cursor, creating it with create when
// it is missing or holds a different type.
func slot[T any](cx *Context, create func() T) (T, bool) {
	i := cx.cursor
	cx.cursor++
	if i < len(cx.slots) {
		if v, ok := cx.slots[i].(T); ok {
			return v, false
		}
		v := create()
		cx.slots[i] = v
		return v, true
	}
	v := create()
	cx.slots = append(cx.slots, v)
	return v, true
}

// UseState returns a state cell that survives refreshes of cx. Hooks are
// matched by call order, so call UseState unconditionally from the
// component body.
func UseState[T any](cx *Context, initial T) reactive.State[T] {
	st, created := slot(cx, func() reactive.State[T] {
		return reactive.NewState(initial)
	})
	if created {
		cx.mu.Lock()
		cx.owned = append(cx.owned, st)
		cx.mu.Unlock()
	}
	return st
}

// Ref is a mutable value that survives refreshes and never notifies.
type Ref[T any] struct {
	v atomic.Pointer[T]
}

// Load returns the current value.
func (r *Ref[T]) Load() T {
	if p := r.v.Load(); p != nil {
		return *p
	}
	var zero T
	return zero
}

// Store replaces the value.
func (r *Ref[T]) Store(v T) {
	r.v.Store(&v)
}

// UseRef returns a Ref that survives refreshes of cx.
func UseRef[T any](cx *Context, initial T) *Ref[T] {
	r, _ := slot(cx, func() *Ref[T] {
		r := &Ref[T]{}
		r.Store(initial)
		return r
	})
	return r
}

// UseEffect registers f against deps for the current run of cx. Each firing
// runs f on the scheduler. The registration lapses when cx refreshes or
// retires.
func UseEffect(cx *Context, f func(), deps ...reactive.Dependency) reactive.Effect {
	e := cx.bind(reactive.Async(reactive.NewHook(f)))
	for _, dep := range deps {
		if dep != nil {
			dep.OnUpdate(e)
		}
	}
	return e
}

// Watch refreshes cx whenever any of deps fires.
func (cx *Context) Watch(deps ...reactive.Dependency) {
	e := cx.bind(reactive.EffectFunc(cx.Refresh))
	for _, dep := range deps {
		if dep != nil {
			dep.OnUpdate(e)
		}
	}
}

// UseMount returns a gate that is mounted right after the View of the
// current run is published. Effects registered on it run once, after the
// first frame that can show their result.
func UseMount(cx *Context) *reactive.Mount {
	m := reactive.UseMount()
	cx.mounts = append(cx.mounts, m)
	return m
}

// UseMountManual returns a gate the component mounts itself.
func UseMountManual(cx *Context) *reactive.Mount {
	return reactive.UseMountManual()
}

// UseSyncState returns a state that is overwritten with decode(e) whenever
// an event of type E reaches cx.
func UseSyncState[T, E any](cx *Context, initial T, decode func(E) T) reactive.State[T] {
	st := UseState(cx, initial)
	On(cx, func(e E) {
		_ = st.Set(decode(e))
	})
	return st
}

// UseSyncEffect emits encode(state) as an event on cx every time one of
// deps fires. Passing state itself as a dependency mirrors every change.
func UseSyncEffect[T, E any](cx *Context, state reactive.State[T], encode func(T) E, deps ...reactive.Dependency) reactive.Effect {
	return UseEffect(cx, func() {
		Emit(cx, encode(state.GetDL()))
	}, deps...)
}
