package core

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-drift/termdrift/pkg/errors"
	"github.com/go-drift/termdrift/pkg/render"
)

// ErrorViewBuilder creates the View published when a component panics.
// previous is the last View the Context published, or a View that draws
// nothing.
type ErrorViewBuilder func(err *errors.RefreshError, previous View) View

var (
	errorBuilder   ErrorViewBuilder = DefaultErrorView
	errorBuilderMu sync.RWMutex
)

// SetErrorViewBuilder configures the global error view builder.
// Pass nil to restore the default builder.
func SetErrorViewBuilder(builder ErrorViewBuilder) {
	errorBuilderMu.Lock()
	defer errorBuilderMu.Unlock()
	if builder == nil {
		errorBuilder = DefaultErrorView
	} else {
		errorBuilder = builder
	}
}

func errorViewBuilder() ErrorViewBuilder {
	errorBuilderMu.RLock()
	defer errorBuilderMu.RUnlock()
	return errorBuilder
}

// ErrorBannerStyle is the style of the default error banner.
var ErrorBannerStyle = render.DefaultStyle.Foreground(render.ColorWhite).Background(render.ColorRed).Bold()

// DefaultErrorView keeps drawing previous and overlays a one-line banner
// with the failure on the first row.
func DefaultErrorView(err *errors.RefreshError, previous View) View {
	msg := "render error"
	if err != nil {
		msg = fmt.Sprintf("render error: %v", err.Recovered)
		if err.Recovered == nil && err.Err != nil {
			msg = "render error: " + err.Err.Error()
		}
	}
	msg = strings.ReplaceAll(msg, "\n", " ")
	return func(dc *render.DrawContext) {
		dc.Draw(previous)
		if dc.ZeroSized() {
			return
		}
		line := []rune(msg)
		if len(line) > dc.Width() {
			line = line[:dc.Width()]
		}
		dc.Fill(render.Area{W: dc.Width(), H: 1}, ' ', ErrorBannerStyle)
		dc.Styled(0, 0, string(line), ErrorBannerStyle)
	}
}
