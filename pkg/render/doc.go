// Package render holds the per-frame drawing model.
//
// A View is a function that records instructions into a DrawContext. A
// DrawContext carries the space available to the view and accumulates
// instructions in its own local coordinates: text runs, filled rectangles,
// nested child contexts placed at an offset, and sub-views drawn into an
// explicit area. Containers render each child into a fresh context from
// Sub to measure it, then place it with Child.
//
// A Buffer rasterizes a DrawContext into a grid of terminal cells:
//
//	dc := render.NewDrawContext(80, 24)
//	view(dc)
//	buf := render.NewBuffer(80, 24)
//	buf.Rasterize(dc)
//	fmt.Println(buf.String())
package render
