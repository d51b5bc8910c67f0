// Package engine runs a component tree against a terminal.
//
// An Engine owns the root Context, a cell buffer and a Terminal. Each frame
// it draws the root's published view into a DrawContext, rasterizes it and
// flushes the buffer. Run drives frames from a ticker, emitting an
// input.Tick to the tree on every tick, and dispatches terminal events to
// the tree as they arrive.
//
//	screen, err := terminal.NewScreen()
//	if err != nil {
//	    return err
//	}
//	defer screen.Close()
//
//	eng := engine.New(App, screen, engine.WithTickInterval(16*time.Millisecond))
//	defer eng.Close()
//	return eng.Run(ctx, screen.Events(ctx))
//
// Errors reported through pkg/errors while an engine is open are collected
// and returned with the next frame's FrameResult.
package engine
