// Package errors provides structured failure reporting for the Keel
// dispatch engine.
//
// Contract methods on widgets are infallible by signature, so most
// failures here are protocol misuse: a context method called in the wrong
// pass, a focus request for an unknown id, paint outside bounds. Misuse is
// reported through the installed handler and otherwise degrades to a
// no-op; when DebugMode is on it panics instead, to surface bugs during
// development.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// DebugMode controls whether protocol misuse panics instead of logging.
var DebugMode = false

// SetDebugMode enables or disables debug assertions for the framework.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Kind identifies the category of a failure.
type Kind int

const (
	// KindUnknown indicates a failure of unknown type.
	KindUnknown Kind = iota
	// KindMisuse indicates a widget called a context method invalidly.
	KindMisuse
	// KindRouting indicates an undeliverable command, timer, or focus
	// request.
	KindRouting
	// KindLayout indicates a layout contract violation (e.g. an infinite
	// size returned from a layout method).
	KindLayout
	// KindEnv indicates an environment key failure.
	KindEnv
	// KindProfile indicates an environment profile parsing failure.
	KindProfile
)

func (k Kind) String() string {
	switch k {
	case KindMisuse:
		return "misuse"
	case KindRouting:
		return "routing"
	case KindLayout:
		return "layout"
	case KindEnv:
		return "env"
	case KindProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// KeelError represents a structured failure in the dispatch engine.
type KeelError struct {
	// Op is the operation that failed (e.g. "core.EventCtx.RequestFocus").
	Op string
	// Kind categorizes the failure.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the failure occurred.
	Timestamp time.Time
}

func (e *KeelError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KeelError) Unwrap() error {
	return e.Err
}

// Handler receives failures reported by the framework.
type Handler interface {
	Handle(err *KeelError)
}

var (
	handlerMu sync.RWMutex
	handler   Handler = &LogHandler{}
)

// SetHandler installs the failure handler. Passing nil restores the
// default stderr logger.
func SetHandler(h Handler) {
	handlerMu.Lock()
	if h == nil {
		h = &LogHandler{}
	}
	handler = h
	handlerMu.Unlock()
}

// Report sends a failure to the installed handler. In debug mode it
// panics afterwards.
func Report(op string, kind Kind, err error) {
	e := &KeelError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	h.Handle(e)
	if DebugMode {
		panic(e)
	}
}

// Misuse reports a protocol misuse with a formatted message.
func Misuse(op, format string, args ...any) {
	Report(op, KindMisuse, fmt.Errorf(format, args...))
}

// Routing reports an undeliverable message with a formatted message.
func Routing(op, format string, args ...any) {
	Report(op, KindRouting, fmt.Errorf(format, args...))
}
