package engine

import (
	"sync"
	"time"

	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/errors"
)

// collector receives framework errors between frames. It is installed as
// part of the global error handler while the engine is open.
type collector struct {
	mu      sync.Mutex
	pending []error
}

func (c *collector) add(err error) {
	c.mu.Lock()
	c.pending = append(c.pending, err)
	c.mu.Unlock()
}

func (c *collector) drain() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	return out
}

func (c *collector) HandleError(err *errors.TermError)          { c.add(err) }
func (c *collector) HandlePanic(err *errors.PanicError)         { c.add(err) }
func (c *collector) HandleRefreshError(err *errors.RefreshError) { c.add(err) }

// observer feeds refresh activity into the metrics and wakes the frame
// loop when the tree's output changes.
type observer struct {
	e *Engine
}

func (o observer) RefreshStarted(*core.Context) {}

func (o observer) RefreshFinished(cx *core.Context, took time.Duration, err error) {
	o.e.stats.Refreshes.Inc()
	if err != nil {
		o.e.stats.RefreshFailed.Inc()
	}
	o.e.RequestFrame()
}

func (o observer) Invalidated(*core.Context) {
	o.e.stats.Invalidations.Inc()
	o.e.RequestFrame()
}
