// Package core provides the component tree: Contexts, Scopes, events and the
// context-bound hooks.
//
// A Component is a function from a Context to a View. The Context runs the
// component on every refresh and publishes the View it returns; drawing
// reads the last published View and never waits for a refresh in flight.
//
//	func Counter(cx *core.Context) core.View {
//	    count := core.UseState(cx, 0)
//	    cx.Watch(count)
//	    core.On(cx, func(k input.Key) {
//	        if k.IsRune('+') {
//	            _ = count.Update(func(v *int) { *v++ })
//	        }
//	    })
//	    return func(dc *render.DrawContext) {
//	        dc.Text(0, 0, fmt.Sprintf("count: %d", count.GetDL()))
//	    }
//	}
//
// # Lifecycle
//
// A Context starts Uninitialized, moves to Refreshing while its component
// runs, to Ready once a View is published, and to Retired when its owner
// drops it. Every refresh clears the Context's event handlers, retires the
// children declared by the previous run, and clears the dependents of the
// states it owns; the component then declares everything again.
//
// # Children
//
// Children live in Scopes. Scope declares a static list; DynScope re-runs
// a drawer whenever one of its dependencies fires, replacing the list
// wholesale. DrawChildren draws every child's View in declaration order.
//
// # Events
//
// Handlers are keyed by the event's Go type. Emit delivers synchronously,
// depth first, parent before children; EmitThreaded runs every matching
// handler on its own goroutine.
package core
