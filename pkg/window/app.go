package window

import (
	"sync"

	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/errors"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
)

// App owns the application data, the environment, the command queue, and
// the windows. All methods must be called from the UI thread; worker
// goroutines reach the app only through an ExternalSink.
type App[T data.Data[T]] struct {
	data T
	env  env.Env

	queue      core.CommandQueue
	processing bool

	windows map[core.WindowID]*Window[T]
	order   []core.WindowID

	sink *ExternalSink
}

// NewApp creates an app with the given initial data and environment.
func NewApp[T data.Data[T]](d T, e env.Env) *App[T] {
	return &App[T]{
		data:    d,
		env:     e,
		windows: map[core.WindowID]*Window[T]{},
		sink:    &ExternalSink{},
	}
}

// Data returns the current application data.
func (a *App[T]) Data() T {
	return a.data
}

// Env returns the current environment.
func (a *App[T]) Env() env.Env {
	return a.env
}

// SetEnv replaces the environment and runs an update pass so every widget
// can react to the values it reads.
func (a *App[T]) SetEnv(e env.Env) {
	a.env = e
	a.updateAll()
}

// Mutate changes the application data outside an event pass and runs the
// update pass. Use it for changes originating from the embedder rather
// than from input.
func (a *App[T]) Mutate(f func(*T)) {
	f(&a.data)
	a.ProcessCommands()
	a.updateAll()
}

// ExternalSink returns the goroutine-safe command submission handle.
// Submitted commands are delivered on the next ProcessCommands call.
func (a *App[T]) ExternalSink() *ExternalSink {
	return a.sink
}

// AddWindow creates a window controller around a platform handle and a
// root widget. The embedder must deliver a KindWindowConnected input event
// (with the initial KindWindowSize) before any other input.
func (a *App[T]) AddWindow(handle shell.Handle, root core.Widget[T]) *Window[T] {
	w := newWindow[T](handle, root)
	a.windows[w.id] = w
	a.order = append(a.order, w.id)
	return w
}

// RemoveWindow drops a window from the app. Live timers bound to its
// widgets are forgotten.
func (a *App[T]) RemoveWindow(id core.WindowID) {
	if _, ok := a.windows[id]; !ok {
		return
	}
	delete(a.windows, id)
	for i, entry := range a.order {
		if entry == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Window returns a window controller by id.
func (a *App[T]) Window(id core.WindowID) *Window[T] {
	return a.windows[id]
}

// DispatchInput feeds one raw platform event into a window. It runs the
// event pass, drains the command queue, and runs the update pass, in that
// order. Returns whether some widget handled the event.
func (a *App[T]) DispatchInput(id core.WindowID, ev shell.InputEvent) bool {
	w := a.windows[id]
	if w == nil {
		errors.Routing("window.App.DispatchInput", "input for unknown window %d", id)
		return false
	}
	if ev.Seq != 0 {
		if ev.Seq <= w.lastSeq {
			errors.Misuse("window.App.DispatchInput",
				"window %d input sequence went backwards (%d after %d)", id, ev.Seq, w.lastSeq)
		}
		w.lastSeq = ev.Seq
	}

	if ev.Kind == shell.KindWindowSize {
		w.size = graphics.Size{Width: ev.Width, Height: ev.Height}
	}
	if !w.connected {
		if ev.Kind != shell.KindWindowConnected {
			errors.Misuse("window.App.DispatchInput",
				"window %d received input before WindowConnected", id)
		}
		w.connected = true
		w.lifecycle(&a.queue, core.RouteWidgetAddedEvent{}, a.data, a.env)
	}

	event := w.convert(ev)
	if event == nil {
		return false
	}
	handled := w.event(&a.queue, event, &a.data, a.env)
	// a close request no widget claimed closes the window
	if ev.Kind == shell.KindWindowCloseRequested && !handled {
		w.handle.Close()
		a.RemoveWindow(id)
	}
	a.ProcessCommands()
	a.updateAll()
	return handled
}

// ProcessCommands drains the command queue in FIFO order, delivering each
// command as an event pass to its target. Commands queued while one is
// being handled are appended and handled in the same drain; the drain is
// not reentrant.
func (a *App[T]) ProcessCommands() {
	if a.processing {
		return
	}
	a.processing = true
	defer func() { a.processing = false }()

	for _, cmd := range a.sink.drain() {
		if cmd.Target().Kind == core.TargetAuto {
			cmd = cmd.To(core.Global())
		}
		a.queue.Push(cmd)
	}

	for {
		cmd, ok := a.queue.PopFront()
		if !ok {
			return
		}
		a.dispatchCommand(cmd)
	}
}

func (a *App[T]) dispatchCommand(cmd core.Command) {
	ev := core.RouteCommandEvent{Command: cmd}
	target := cmd.Target()
	switch target.Kind {
	case core.TargetGlobal, core.TargetAuto:
		for _, id := range a.order {
			a.windows[id].event(&a.queue, ev, &a.data, a.env)
		}
	case core.TargetWindow:
		w, ok := a.windows[target.Window]
		if !ok {
			errors.Routing("window.App.dispatchCommand",
				"command %q addressed to unknown window %d", cmd.Selector(), target.Window)
			return
		}
		w.event(&a.queue, ev, &a.data, a.env)
	case core.TargetWidget:
		delivered := false
		for _, id := range a.order {
			w := a.windows[id]
			if !w.root.MayContainWidget(target.Widget) {
				continue
			}
			delivered = true
			if w.event(&a.queue, ev, &a.data, a.env) {
				return
			}
		}
		if !delivered {
			errors.Routing("window.App.dispatchCommand",
				"command %q addressed to unknown widget %d", cmd.Selector(), target.Widget)
		}
	}
}

func (a *App[T]) updateAll() {
	for _, id := range a.order {
		a.windows[id].update(&a.queue, a.data, a.env)
	}
	// widgets may have submitted commands from update-adjacent passes
	if a.queue.Len() > 0 {
		a.ProcessCommands()
	}
}

// PrepareFrame runs the layout pass for a window if anything requires it.
// The embedder calls it after delivering KindAnimFrame and before Paint.
func (a *App[T]) PrepareFrame(id core.WindowID) {
	w := a.windows[id]
	if w == nil {
		return
	}
	w.layout(&a.queue, a.data, a.env)
	a.ProcessCommands()
	a.updateAll()
}

// Paint draws a window's invalid region onto the canvas and clears it.
// Layout runs first if needed, so Paint alone yields a consistent frame.
func (a *App[T]) Paint(id core.WindowID, canvas graphics.Canvas) {
	w := a.windows[id]
	if w == nil {
		return
	}
	w.layout(&a.queue, a.data, a.env)
	w.paint(&a.queue, canvas, a.data, a.env)
}

// ExternalSink queues commands submitted from outside the UI thread.
type ExternalSink struct {
	mu      sync.Mutex
	pending []core.Command
}

// Submit queues a command for the next ProcessCommands drain. Safe to
// call from any goroutine. An auto target resolves to a global broadcast,
// since no window context exists outside a pass.
func (s *ExternalSink) Submit(cmd core.Command) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

func (s *ExternalSink) drain() []core.Command {
	s.mu.Lock()
	out := s.pending
	s.pending = nil
	s.mu.Unlock()
	return out
}
