package reactive_test

import (
	"fmt"

	"github.com/go-drift/termdrift/pkg/reactive"
)

// This example shows a state cell notifying a dependent. Dependents run
// after the guard is released, so they may read the cell without blocking.
func ExampleState() {
	counter := reactive.NewState(0)

	counter.OnUpdate(reactive.EffectFunc(func() {
		fmt.Printf("Counter changed to: %d\n", counter.GetDL())
	}))

	_ = counter.Set(5)
	fmt.Printf("Current value: %d\n", counter.GetDL())

	// Output:
	// Counter changed to: 5
	// Current value: 5
}

// This example shows a guard used for a read that must not notify.
func ExampleState_Get() {
	names := reactive.NewState([]string{"a"})
	names.OnUpdate(reactive.EffectFunc(func() { fmt.Println("changed") }))

	g, err := names.Get()
	if err != nil {
		panic(err)
	}
	fmt.Println(len(g.Value()))
	_ = g.Release()

	_ = names.Update(func(v *[]string) { *v = append(*v, "b") })
	fmt.Println(names.GetDL())

	// Output:
	// 1
	// changed
	// [a b]
}

// This example shows a mount firing its queued effects exactly once.
func ExampleMount() {
	m := reactive.NewMount()
	m.OnUpdate(reactive.EffectFunc(func() { fmt.Println("mounted") }))

	_ = m.Mount()
	_ = m.Mount()
	fmt.Println(m.Mounted())

	// Output:
	// mounted
	// true
}
