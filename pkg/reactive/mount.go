package reactive

import (
	goerrors "errors"
	"sync"
)

// Mount is a one-shot gate. Effects registered before Mount is called are
// queued and run exactly once when it is; effects registered afterwards run
// immediately. Mounting twice is a no-op.
type Mount struct {
	mu      sync.Mutex
	mounted bool
	pending []Effect
}

// NewMount returns an unmounted gate.
func NewMount() *Mount {
	return &Mount{}
}

// OnUpdate queues e until the gate is mounted, or runs it right away if it
// already is.
func (m *Mount) OnUpdate(e Effect) {
	if e == nil {
		return
	}
	m.mu.Lock()
	if !m.mounted {
		m.pending = append(m.pending, e)
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	if err := runIsolated(0, e); err != nil {
		reportDependents("reactive.Mount.OnUpdate", err)
	}
}

// Mount flips the gate and runs every queued effect in registration order.
// It returns the joined failures of panicking effects. Only the first call
// does anything.
func (m *Mount) Mount() error {
	m.mu.Lock()
	if m.mounted {
		m.mu.Unlock()
		return nil
	}
	m.mounted = true
	queued := m.pending
	m.pending = nil
	m.mu.Unlock()

	var errs []error
	for i, e := range queued {
		if isInert(e) {
			continue
		}
		if err := runIsolated(i, e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	err := goerrors.Join(errs...)
	reportDependents("reactive.Mount.Mount", err)
	return err
}

// Mounted reports whether Mount has been called.
func (m *Mount) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted
}

// UseMount returns a gate for effects that should wait until the owner has
// drawn once. Context-bound callers get it mounted automatically; see
// core.UseMount.
func UseMount() *Mount {
	return NewMount()
}

// UseMountManual returns a gate the caller mounts explicitly.
func UseMountManual() *Mount {
	return NewMount()
}
