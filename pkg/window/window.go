// Package window drives the dispatch passes: it owns the root pod of
// each window, converts raw platform input into tree events, and runs the
// event, update, layout, and paint passes in order, with command delivery
// and focus resolution between them.
package window

import (
	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/errors"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
)

// Window is the controller for one native window: the root pod, keyboard
// focus, the live timers, and the accumulated repaint region.
type Window[T data.Data[T]] struct {
	id     core.WindowID
	handle shell.Handle
	root   *core.Pod[T]
	size   graphics.Size

	connected bool
	lastSeq   uint64

	focus      core.WidgetID
	focusChain []core.WidgetID

	timers map[shell.TimerToken]core.WidgetID

	invalid     graphics.Region
	needsLayout bool
	hasLayout   bool
	cursor      shell.Cursor
}

func newWindow[T data.Data[T]](handle shell.Handle, root core.Widget[T]) *Window[T] {
	return &Window[T]{
		id:          core.NextWindowID(),
		handle:      handle,
		root:        core.NewPod(root),
		timers:      map[shell.TimerToken]core.WidgetID{},
		needsLayout: true,
		cursor:      shell.CursorArrow,
	}
}

// ID returns the window's id.
func (w *Window[T]) ID() core.WindowID {
	return w.id
}

// Handle returns the platform handle the window was created with.
func (w *Window[T]) Handle() shell.Handle {
	return w.handle
}

// Size returns the window's logical size.
func (w *Window[T]) Size() graphics.Size {
	return w.size
}

// Focus returns the widget holding keyboard focus, or zero.
func (w *Window[T]) Focus() core.WidgetID {
	return w.focus
}

// FocusChain returns the ordered focusable widgets, as of the last chain
// rebuild.
func (w *Window[T]) FocusChain() []core.WidgetID {
	return w.focusChain
}

// Root returns the root pod.
func (w *Window[T]) Root() *core.Pod[T] {
	return w.root
}

// Invalid returns the repaint region accumulated since the last paint.
func (w *Window[T]) Invalid() graphics.Region {
	return w.invalid
}

// Cursor returns the pointer icon last requested by the tree.
func (w *Window[T]) Cursor() shell.Cursor {
	return w.cursor
}

// NeedsLayout reports whether a layout pass must run before painting.
func (w *Window[T]) NeedsLayout() bool {
	return w.needsLayout || !w.hasLayout
}

func (w *Window[T]) ctxState(queue *core.CommandQueue) *core.ContextState {
	return &core.ContextState{
		Queue:      queue,
		Handle:     w.handle,
		Window:     w.id,
		WindowSize: w.size,
		Focus:      w.focus,
	}
}

// absorb folds a pass result into the window's own dirty state and
// registers any timers the pass requested.
func (w *Window[T]) absorb(res core.PassResult) {
	for _, rect := range res.Invalid.Rects() {
		w.handle.InvalidateRect(rect.Left, rect.Top, rect.Right, rect.Bottom)
	}
	w.invalid.Merge(res.Invalid)
	w.needsLayout = w.needsLayout || res.NeedsLayout
	for _, binding := range res.Timers {
		w.timers[binding.Token] = binding.Widget
	}
	if res.RequestAnim {
		w.handle.RequestAnimFrame()
	}
	if res.Cursor != nil && *res.Cursor != w.cursor {
		w.cursor = *res.Cursor
		w.handle.SetCursor(w.cursor)
	}
}

// convert translates one raw platform event into a tree event. Timer
// events are resolved against the live timer table here; an unknown token
// (a timer whose widget has since been removed) yields nil and is logged.
func (w *Window[T]) convert(ev shell.InputEvent) core.Event {
	mouse := func() core.MouseEvent {
		return core.MouseEvent{
			Pos:    graphics.Offset{X: ev.X, Y: ev.Y},
			Button: ev.Button,
			Seq:    ev.Seq,
		}
	}
	switch ev.Kind {
	case shell.KindMouseDown:
		return core.MouseDownEvent{MouseEvent: mouse()}
	case shell.KindMouseUp:
		return core.MouseUpEvent{MouseEvent: mouse()}
	case shell.KindMouseMove:
		return core.MouseMoveEvent{MouseEvent: mouse()}
	case shell.KindWheel:
		m := mouse()
		m.Wheel = graphics.Offset{X: ev.WheelDX, Y: ev.WheelDY}
		return core.WheelEvent{MouseEvent: m}
	case shell.KindMouseLeave:
		return core.PointerLeaveEvent{}
	case shell.KindKeyDown:
		return core.KeyDownEvent{Key: ev.Key, Seq: ev.Seq}
	case shell.KindKeyUp:
		return core.KeyUpEvent{Key: ev.Key, Seq: ev.Seq}
	case shell.KindTextInput:
		return core.TextInputEvent{Text: ev.Text, Seq: ev.Seq}
	case shell.KindWindowConnected:
		return core.WindowConnectedEvent{}
	case shell.KindWindowCloseRequested:
		return core.WindowCloseRequestedEvent{}
	case shell.KindWindowSize:
		return core.WindowSizeEvent{Size: graphics.Size{Width: ev.Width, Height: ev.Height}}
	case shell.KindWindowFocus:
		return core.WindowFocusEvent{Focused: ev.Focused}
	case shell.KindTimer:
		target, ok := w.timers[ev.Timer]
		if !ok {
			errors.Routing("window.convert", "timer %d fired with no live widget binding", ev.Timer)
			return nil
		}
		delete(w.timers, ev.Timer)
		return core.RouteTimerEvent{Token: ev.Timer, Target: target}
	case shell.KindAnimFrame:
		return core.AnimFrameEvent{ElapsedNanos: ev.ElapsedNanos}
	default:
		errors.Routing("window.convert", "unknown input event kind %d", ev.Kind)
		return nil
	}
}

// event runs one event pass and the structural post-processing it may
// require: re-registering new children, rebuilding the focus chain, and
// resolving focus requests. Returns whether some widget handled the event.
func (w *Window[T]) event(queue *core.CommandQueue, ev core.Event, d *T, e env.Env) bool {
	cs := w.ctxState(queue)
	res := w.root.SendRootEvent(cs, ev, d, e)
	handled := res.Handled
	w.postPass(queue, res, *d, e)
	return handled
}

// lifecycle runs one lifecycle pass followed by the same post-processing
// as an event pass.
func (w *Window[T]) lifecycle(queue *core.CommandQueue, ev core.LifecycleEvent, d T, e env.Env) {
	cs := w.ctxState(queue)
	res := w.root.SendRootLifecycle(cs, ev, d, e)
	w.postPass(queue, res, d, e)
}

// update runs one update pass over the tree.
func (w *Window[T]) update(queue *core.CommandQueue, d T, e env.Env) {
	cs := w.ctxState(queue)
	res := w.root.SendRootUpdate(cs, d, e)
	w.postPass(queue, res, d, e)
}

func (w *Window[T]) postPass(queue *core.CommandQueue, res core.PassResult, d T, e env.Env) {
	w.absorb(res)
	focusRequest := res.FocusRequest
	updateChain := res.UpdateFocusChain

	if res.ChildrenChanged {
		cs := w.ctxState(queue)
		r := w.root.SendRootLifecycle(cs, core.RouteWidgetAddedEvent{}, d, e)
		w.absorb(r)
		updateChain = updateChain || r.UpdateFocusChain
		if focusRequest == nil {
			focusRequest = r.FocusRequest
		}
	}

	if updateChain {
		cs := w.ctxState(queue)
		r := w.root.SendRootLifecycle(cs, core.BuildFocusChainEvent{}, d, e)
		w.absorb(r)
		w.focusChain = append(w.focusChain[:0], w.root.FocusChain()...)
		// a focused widget that fell out of the chain resigns
		if w.focus != 0 && !w.inFocusChain(w.focus) && focusRequest == nil {
			focusRequest = &core.FocusChange{Kind: core.FocusResign}
		}
	}

	if focusRequest != nil {
		w.resolveFocus(queue, *focusRequest, d, e)
	}
}

func (w *Window[T]) inFocusChain(id core.WidgetID) bool {
	for _, entry := range w.focusChain {
		if entry == id {
			return true
		}
	}
	return false
}

// resolveFocus applies a focus request against the focus chain. Requests
// for widgets outside the chain are dropped. An applied transfer runs a
// RouteFocusChanged lifecycle pass so exactly the old and new widgets see
// paired FocusChanged events.
func (w *Window[T]) resolveFocus(queue *core.CommandQueue, change core.FocusChange, d T, e env.Env) {
	old := w.focus
	next := old

	switch change.Kind {
	case core.FocusResign:
		next = 0
	case core.FocusTo:
		if !w.inFocusChain(change.Target) {
			errors.Routing("window.resolveFocus",
				"focus requested for widget %d, which is not in the focus chain", change.Target)
			return
		}
		next = change.Target
	case core.FocusNext:
		next = w.chainNeighbor(old, 1)
	case core.FocusPrev:
		next = w.chainNeighbor(old, -1)
	}

	if next == old {
		return
	}
	w.focus = next
	cs := w.ctxState(queue)
	res := w.root.SendRootLifecycle(cs, core.RouteFocusChangedEvent{Old: old, New: next}, d, e)
	w.absorb(res)
}

// chainNeighbor returns the entry before or after the current focus,
// wrapping around. With no current focus it returns the first entry (or,
// going backwards, the last).
func (w *Window[T]) chainNeighbor(current core.WidgetID, dir int) core.WidgetID {
	n := len(w.focusChain)
	if n == 0 {
		return 0
	}
	idx := -1
	for i, entry := range w.focusChain {
		if entry == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if dir > 0 {
			return w.focusChain[0]
		}
		return w.focusChain[n-1]
	}
	return w.focusChain[((idx+dir)%n+n)%n]
}

// layout runs the layout pass if anything requires it. After layout the
// whole window repaints: origins may have shifted in ways the region
// tracking cannot see.
func (w *Window[T]) layout(queue *core.CommandQueue, d T, e env.Env) {
	if !w.NeedsLayout() {
		return
	}
	w.needsLayout = false
	cs := w.ctxState(queue)
	res := w.root.RootLayout(cs, d, e)
	w.hasLayout = true
	w.invalid.Clear()
	w.invalid.Add(w.size.ToRect())
	w.handle.Invalidate()
	w.postPass(queue, res, d, e)
}

// paint draws the invalid region onto the canvas and clears it.
func (w *Window[T]) paint(queue *core.CommandQueue, canvas graphics.Canvas, d T, e env.Env) {
	cs := w.ctxState(queue)
	region := w.invalid
	w.invalid = graphics.Region{}
	w.root.RootPaint(cs, canvas, region, d, e)
}
