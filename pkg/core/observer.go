package core

import (
	"sync/atomic"
	"time"
)

// Observer is notified about refresh activity across every Context. The
// engine installs one to request frames and record metrics.
type Observer interface {
	RefreshStarted(cx *Context)
	RefreshFinished(cx *Context, took time.Duration, err error)
	// Invalidated reports a change to cx's output that did not go through
	// a refresh, such as a dynamic scope re-running its drawer.
	Invalidated(cx *Context)
}

type observerBox struct{ o Observer }

var observer atomic.Pointer[observerBox]

// SetObserver installs o and returns the previous observer. Pass nil to
// remove it.
func SetObserver(o Observer) Observer {
	prev := observer.Swap(&observerBox{o: o})
	if prev == nil {
		return nil
	}
	return prev.o
}

func currentObserver() Observer {
	if b := observer.Load(); b != nil {
		return b.o
	}
	return nil
}

func notifyChanged(cx *Context) {
	if o := currentObserver(); o != nil {
		o.Invalidated(cx)
	}
}
