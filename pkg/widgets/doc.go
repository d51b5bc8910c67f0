// Package widgets provides the leaf components: text, fills, outlines and
// spacers.
//
// Widgets are struct literals. Their Build method is a core.Component, so a
// widget is placed in a tree by passing the method value:
//
//	layout.Rows(layout.Options{Gap: 1},
//	    widgets.Text{Content: "title", Style: render.DefaultStyle.Bold()}.Build,
//	    widgets.RoundedOutline{Child: body}.Build,
//	)
//
// Label reads its content at draw time, so it reflects state changes
// without a refresh:
//
//	widgets.Label{Content: func() string {
//	    return fmt.Sprintf("count: %d", count.GetDL())
//	}}.Build
package widgets
