// Package reactive provides the shared state cells and effect primitives
// that drive re-rendering.
//
// A [State] holds a value behind a mutex together with an ordered list of
// dependents. Mutating the value through a [Guard] notifies every dependent
// exactly once when the guard is released:
//
//	count := reactive.UseState(0)
//	count.OnUpdate(reactive.EffectFunc(func() {
//	    fmt.Println("count is now", count.GetDL())
//	}))
//
//	g, err := count.Get()
//	if err != nil {
//	    return err
//	}
//	*g.Mut()++
//	err = g.Release() // dependents run here, after the lock is dropped
//
// Dependents run after the cell's lock is released, so a dependent may read
// the cell with GetDL (or even take the guard again) without deadlocking.
//
// # Effects
//
// [UseEffect] registers a callback against any number of dependencies. Each
// firing is dispatched onto the current [Scheduler], never run inline in the
// writer's call path:
//
//	reactive.UseEffect(func() {
//	    save(count.GetDL(), name.GetDL())
//	}, count, name)
//
// # Mount gates
//
// A [Mount] defers effects until Mount is called, then flushes them once.
package reactive
