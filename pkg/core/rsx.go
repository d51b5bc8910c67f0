package core

import (
	"github.com/go-drift/termdrift/pkg/reactive"
	"github.com/go-drift/termdrift/pkg/render"
)

// Rsx assembles a component's children and returns the View that draws
// them. It is the target of declarative front ends:
//
//	return core.Build(cx).
//	    Static(header, body).
//	    Dynamic(func(s *core.Scope) {
//	        for range items.GetDL() {
//	            s.Add(row)
//	        }
//	    }, items).
//	    View()
type Rsx struct {
	cx   *Context
	wrap Wrapper
}

// Build starts an Rsx for the current run of cx.
func Build(cx *Context) *Rsx {
	return &Rsx{cx: cx}
}

// Wrap makes subsequent Static and Dynamic children draw through w.
func (r *Rsx) Wrap(w Wrapper) *Rsx {
	r.wrap = w
	return r
}

// Static declares a scope holding children.
func (r *Rsx) Static(children ...Component) *Rsx {
	s := r.cx.Scope()
	for _, c := range children {
		s.AddWrapped(c, r.wrap)
	}
	return r
}

// Dynamic declares a scope rebuilt by drawer whenever deps fire.
func (r *Rsx) Dynamic(drawer func(s *Scope), deps ...reactive.Dependency) *Rsx {
	r.cx.DynScope(drawer, deps...)
	return r
}

// Mount arranges for m to be mounted once the View is published.
func (r *Rsx) Mount(m *reactive.Mount) *Rsx {
	if m != nil {
		r.cx.mounts = append(r.cx.mounts, m)
	}
	return r
}

// View returns a View that draws every declared child.
func (r *Rsx) View() View {
	cx := r.cx
	return func(dc *render.DrawContext) {
		cx.DrawChildren(dc)
	}
}
