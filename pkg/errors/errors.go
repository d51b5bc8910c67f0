// Package errors provides structured error handling for the termdrift framework.
package errors

import (
	goerrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindIO indicates a terminal I/O failure (raw mode, cursor, flush).
	KindIO
	// KindLock indicates a poisoned state cell whose guard cannot be acquired.
	KindLock
	// KindDependent indicates a dependent callback panicked during notification.
	KindDependent
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindRefresh indicates a component function failed while refreshing.
	KindRefresh
	// KindRender indicates a failure during the draw pass.
	KindRender
	// KindInput indicates an input event could not be decoded.
	KindInput
	// KindConfig indicates invalid configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindLock:
		return "lock"
	case KindDependent:
		return "dependent"
	case KindPanic:
		return "panic"
	case KindRefresh:
		return "refresh"
	case KindRender:
		return "render"
	case KindInput:
		return "input"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ErrPoisoned is returned when a state cell's guard is requested after a
// previous holder panicked while mutating it.
var ErrPoisoned = goerrors.New("state poisoned by a panicking holder")

// ErrClosed is returned when writing to a terminal that has been closed.
var ErrClosed = goerrors.New("terminal closed")

// TermError represents a structured error in the termdrift framework.
type TermError struct {
	// Op is the operation that failed (e.g., "reactive.State.Get").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TermError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TermError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "reactive.Scheduler.Go").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// DependentError reports a dependent callback that panicked while a state
// cell was notifying its dependents.
type DependentError struct {
	// Index is the dependent's position in registration order.
	Index int
	// Recovered is the panic value.
	Recovered any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
}

func (e *DependentError) Error() string {
	return fmt.Sprintf("dependent %d panicked: %v", e.Index, e.Recovered)
}

// RefreshError represents a failure while a component function ran.
type RefreshError struct {
	// Component is a descriptive name of the component function.
	Component string
	// Context is the identifier of the Context that failed to refresh.
	Context string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RefreshError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s refresh: %v", e.Component, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s refresh: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("unknown error in %s refresh", e.Component)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// KindOf reports the ErrorKind carried by err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var term *TermError
	if goerrors.As(err, &term) {
		return term.Kind
	}
	var dep *DependentError
	if goerrors.As(err, &dep) {
		return KindDependent
	}
	var refresh *RefreshError
	if goerrors.As(err, &refresh) {
		return KindRefresh
	}
	var p *PanicError
	if goerrors.As(err, &p) {
		return KindPanic
	}
	return KindUnknown
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TermError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleRefreshError is called when a component refresh fails.
	HandleRefreshError(err *RefreshError)
}
