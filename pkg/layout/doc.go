// Package layout provides the container components that arrange children:
// Rows, Columns, Grid, Scroll, Pager and Velocity.
//
// Every container collects its children into its own Scope when it runs.
// When drawn, it renders each child's View into a fresh sub-context to
// measure it, places the child at an offset along its axis, and reports its
// own natural size to its parent through DrawContext.SetSize.
//
// Sizes follow one policy everywhere. Along the main axis a container is
// the sum of its children plus Gap between neighbours; across it, the
// largest child. Padding adds to both axes on each side. A container with
// no children measures (0, 0), and one given no space draws nothing.
//
// The arithmetic is exposed as pure helpers (Stack, GridLayout,
// ScrollState, PageState, StepFor) so it can be tested without a tree.
package layout
