package layout

import (
	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/input"
	"github.com/go-drift/termdrift/pkg/render"
)

// Pager shows one child at a time. Tab selects the next page and Shift+Tab
// the previous one, wrapping at both ends. Pages that are not selected
// produce no draw instructions.
func Pager(pages ...core.Component) core.Component {
	return func(cx *core.Context) core.View {
		s := collect(cx, pages)
		page := core.UseState(cx, PageState{Count: s.Len()})

		core.On(cx, func(k input.Key) {
			switch {
			case k.Is(input.KeyBacktab), k.Is(input.KeyTab) && k.Mod&input.ModShift != 0:
				_ = page.Update(func(p *PageState) { *p = p.Prev() })
			case k.Is(input.KeyTab):
				_ = page.Update(func(p *PageState) { *p = p.Next() })
			}
		})

		return func(dc *render.DrawContext) {
			kids := s.Children()
			if empty(dc, len(kids)) {
				return
			}
			idx := page.GetDL().Index
			if idx < 0 || idx >= len(kids) {
				dc.SetSize(0, 0)
				return
			}
			ms := measure(dc, kids[idx:idx+1], dc.Width(), dc.Height())
			dc.Child(0, 0, ms[0].dc)
			dc.SetSize(ms[0].size.W, ms[0].size.H)
		}
	}
}
