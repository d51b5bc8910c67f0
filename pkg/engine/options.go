package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTickInterval is the frame period used when none is configured.
const DefaultTickInterval = 16 * time.Millisecond

// DefaultMaxFPS caps frames requested outside the ticker.
const DefaultMaxFPS = 60

type options struct {
	tick      time.Duration
	maxFPS    int
	onError   func(error)
	registry  prometheus.Registerer
	debugAddr string
	quitKeys  bool
}

func defaultOptions() options {
	return options{
		tick:     DefaultTickInterval,
		maxFPS:   DefaultMaxFPS,
		quitKeys: true,
	}
}

// Option configures an Engine.
type Option func(*options)

// WithTickInterval sets the frame period of Run. Non-positive values keep
// the default.
func WithTickInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.tick = d
		}
	}
}

// WithMaxFPS limits how often RequestFrame may trigger an extra frame.
func WithMaxFPS(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFPS = n
		}
	}
}

// OnError registers a callback for every error collected during a frame.
func OnError(fn func(error)) Option {
	return func(o *options) { o.onError = fn }
}

// WithRegistry registers the engine's metrics with reg instead of a
// private registry.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(o *options) { o.registry = reg }
}

// WithDebugServer serves engine diagnostics over HTTP on addr while Run is
// active. Use ":0" for an ephemeral port.
func WithDebugServer(addr string) Option {
	return func(o *options) { o.debugAddr = addr }
}

// WithQuitKeys controls whether ctrl+c ends Run. Enabled by default.
func WithQuitKeys(enabled bool) Option {
	return func(o *options) { o.quitKeys = enabled }
}
