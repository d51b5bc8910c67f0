// Package demos holds the components shown by the termdrift CLI.
package demos

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/input"
	"github.com/go-drift/termdrift/pkg/layout"
	"github.com/go-drift/termdrift/pkg/theme"
	"github.com/go-drift/termdrift/pkg/widgets"
)

// Demo is a runnable root component.
type Demo struct {
	Name        string
	Description string
	Root        core.Component
}

var registry = map[string]Demo{
	"counter":  {Name: "counter", Description: "a counter driven by key presses", Root: Counter},
	"pager":    {Name: "pager", Description: "pages switched with tab and shift+tab", Root: Pages},
	"scroll":   {Name: "scroll", Description: "a long list scrolled with the arrow keys", Root: List},
	"velocity": {Name: "velocity", Description: "text drifting at a constant velocity", Root: Drift},
}

// Names returns the demo names in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	d, ok := registry[strings.ToLower(name)]
	return d, ok
}

func help(text string) core.Component {
	return widgets.Text{Content: text, Style: theme.Current().TextTheme.Caption}.Build
}

// Counter shows a number that +, -, up and down change.
func Counter(cx *core.Context) core.View {
	count := core.UseState(cx, 0)
	cx.Watch(count)

	core.On(cx, func(k input.Key) {
		switch {
		case k.IsRune('+'), k.Is(input.KeyUp):
			_ = count.Update(func(n *int) { *n++ })
		case k.IsRune('-'), k.Is(input.KeyDown):
			_ = count.Update(func(n *int) { *n-- })
		}
	})

	th := theme.Current()
	label := widgets.Text{Content: fmt.Sprintf("count: %d", count.GetDL()), Style: th.TextTheme.Title}
	cx.Scope().Add(layout.Rows(layout.Options{Gap: 1, Padding: 1},
		widgets.RoundedOutline{Title: "count", Style: th.BorderStyle(), Child: label.Build}.Build,
		help("+/- or up/down to change, ctrl+c to quit"),
	))
	return cx.DrawChildren
}

// Pages cycles through three pages.
func Pages(cx *core.Context) core.View {
	border := theme.Current().BorderStyle()
	page := func(n int, body string) core.Component {
		return widgets.Outline{
			Title: fmt.Sprintf("page %d/3", n),
			Style: border,
			Child: widgets.Text{Content: body, Wrap: true}.Build,
		}.Build
	}
	cx.Scope().Add(layout.Rows(layout.Options{Padding: 1},
		layout.Pager(
			page(1, "Pages share one slot.\nOnly the selected one draws."),
			page(2, "Tab moves forward."),
			page(3, "Shift+Tab moves back and wraps."),
		),
		help("tab / shift+tab"),
	))
	return cx.DrawChildren
}

// List is a scrollable column of numbered rows.
func List(cx *core.Context) core.View {
	text := theme.Current().TextTheme
	rows := make([]core.Component, 50)
	for i := range rows {
		style := text.Body
		if i%2 == 1 {
			style = text.Caption
		}
		rows[i] = widgets.Text{Content: fmt.Sprintf("row %02d", i+1), Style: style}.Build
	}
	cx.Scope().Add(layout.Scroll(layout.Options{Padding: 1}, rows...))
	return cx.DrawChildren
}

// Drift moves a label across the screen, wrapping at the edges.
func Drift(cx *core.Context) core.View {
	cx.Scope().Add(layout.Velocity(40, 10, widgets.Text{Content: "~ termdrift ~", Style: theme.Current().TextTheme.Title}.Build))
	return cx.DrawChildren
}
