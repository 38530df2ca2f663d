package core

import (
	"fmt"

	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/errors"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
)

type cursorChangeKind int

const (
	cursorUnchanged cursorChangeKind = iota
	cursorSet
	cursorOverride
)

// TimerBinding associates a platform timer token with the widget that
// requested it. Bindings merge up to the root during the pass that
// requested them; the window controller records them for routing.
type TimerBinding struct {
	Token  shell.TimerToken
	Widget WidgetID
}

// widgetState is the engine's bookkeeping for one widget: identity,
// geometry, dirty flags, interaction state, and the requests the widget
// made during the current pass. Per-pass requests are drained upward by
// mergeUp; the rest persists between passes.
type widgetState struct {
	id WidgetID

	// origin is the widget's position in its parent's coordinates.
	origin graphics.Offset
	// size is the widget's layout size.
	size graphics.Size
	// expectingSetOrigin is set by layout and cleared by SetOrigin, so a
	// parent forgetting to place a child it laid out is detectable.
	expectingSetOrigin bool

	// invalid is the accumulated repaint region, in local coordinates.
	invalid graphics.Region

	needsLayout      bool
	requestAnim      bool
	requestUpdate    bool
	childrenChanged  bool
	updateFocusChain bool

	isHot     bool
	isActive  bool
	hasActive bool
	hasFocus  bool

	requestFocus *FocusChange
	focusChain   []WidgetID
	timers       []TimerBinding

	// children is the Bloom filter over descendant ids, used to prune
	// targeted routing.
	children Bloom

	cursorChange cursorChangeKind
	cursor       shell.Cursor
}

// mergeUp folds a child's pass results into this state: the repaint
// region (clipped to the child's rect and translated into our
// coordinates), the dirty flags, and the pending requests. Requests are
// moved, not copied, so each reaches the root exactly once.
func (s *widgetState) mergeUp(child *widgetState) {
	if !child.invalid.IsEmpty() {
		inv := child.invalid
		inv.IntersectWith(child.size.ToRect())
		s.invalid.Merge(inv.Translate(child.origin))
	}
	child.invalid.Clear()

	s.needsLayout = s.needsLayout || child.needsLayout
	s.requestAnim = s.requestAnim || child.requestAnim
	s.childrenChanged = s.childrenChanged || child.childrenChanged
	s.updateFocusChain = s.updateFocusChain || child.updateFocusChain
	s.hasActive = s.hasActive || child.hasActive
	s.hasFocus = s.hasFocus || child.hasFocus

	if child.requestFocus != nil {
		s.requestFocus = child.requestFocus
		child.requestFocus = nil
	}
	if len(child.timers) > 0 {
		s.timers = append(s.timers, child.timers...)
		child.timers = nil
	}

	switch child.cursorChange {
	case cursorOverride:
		s.cursorChange = cursorOverride
		s.cursor = child.cursor
	case cursorSet:
		if s.cursorChange == cursorUnchanged {
			s.cursorChange = cursorSet
			s.cursor = child.cursor
		}
	}
	child.cursorChange = cursorUnchanged
}

// Pod wraps a widget and carries its dispatch state. All traffic between
// a parent widget and a child goes through the child's pod: the pod
// decides whether an event concerns the subtree at all, translates
// pointer coordinates, tracks hot and active state, diffs data for the
// update pass, and merges results upward.
//
// Every widget in the tree must be wrapped in exactly one pod.
type Pod[T data.Data[T]] struct {
	inner Widget[T]
	state widgetState
	init  bool

	// oldData is the data the widget saw on its last visit, used to gate
	// the update pass.
	oldData *T
	envSnap env.Env
	hasEnv  bool

	lastConstraints graphics.Constraints
	hasConstraints  bool
}

// NewPod wraps a widget. If the widget implements Identified its id is
// used; otherwise a fresh one is allocated.
func NewPod[T data.Data[T]](inner Widget[T]) *Pod[T] {
	id := NextWidgetID()
	if ident, ok := inner.(Identified); ok {
		if ident.WidgetID() != 0 {
			id = ident.WidgetID()
		}
	}
	p := &Pod[T]{inner: inner}
	p.state.id = id
	p.state.needsLayout = true
	p.state.childrenChanged = true
	return p
}

// ID returns the pod's widget id.
func (p *Pod[T]) ID() WidgetID {
	return p.state.id
}

// LayoutRect returns the widget's rectangle in its parent's coordinates.
func (p *Pod[T]) LayoutRect() graphics.Rect {
	return graphics.RectFromOriginSize(p.state.origin, p.state.size)
}

// Size returns the widget's layout size.
func (p *Pod[T]) Size() graphics.Size {
	return p.state.size
}

// IsHot reports whether the pointer is inside the widget.
func (p *Pod[T]) IsHot() bool {
	return p.state.isHot
}

// IsActive reports whether the widget has captured the pointer.
func (p *Pod[T]) IsActive() bool {
	return p.state.isActive
}

// HasActive reports whether this widget or a descendant has captured the
// pointer.
func (p *Pod[T]) HasActive() bool {
	return p.state.hasActive
}

// HasFocus reports whether this widget or a descendant holds keyboard
// focus.
func (p *Pod[T]) HasFocus() bool {
	return p.state.hasFocus
}

// IsInitialized reports whether the widget has received WidgetAdded.
func (p *Pod[T]) IsInitialized() bool {
	return p.init
}

// LayoutRequested reports whether the widget needs layout before the
// next paint.
func (p *Pod[T]) LayoutRequested() bool {
	return p.state.needsLayout
}

// MayContainWidget reports whether the given id may identify this widget
// or one of its descendants. False positives are possible; false means
// definitely not.
func (p *Pod[T]) MayContainWidget(id WidgetID) bool {
	return p.state.id == id || p.state.children.MayContain(id)
}

// FocusChain returns the ordered focusable widgets of this subtree, as of
// the last BuildFocusChain pass.
func (p *Pod[T]) FocusChain() []WidgetID {
	return p.state.focusChain
}

func (p *Pod[T]) ensureInitialized(cs *ContextState, parentWidget *widgetState, d T, e env.Env) {
	if p.init {
		return
	}
	ctx := &LifecycleCtx{baseCtx{state: cs, widget: parentWidget}}
	p.Lifecycle(ctx, WidgetAddedEvent{}, d, e)
}

// setHotState recomputes whether the pointer is inside rect (the widget's
// rect in parent coordinates) and tells the widget if that changed. A nil
// position means the pointer left the window.
func (p *Pod[T]) setHotState(cs *ContextState, rect graphics.Rect, pos *graphics.Offset, d T, e env.Env) {
	s := &p.state
	hadHot := s.isHot
	if pos != nil {
		s.isHot = rect.Contains(*pos)
	} else {
		s.isHot = false
	}
	if hadHot != s.isHot {
		ctx := &LifecycleCtx{baseCtx{state: cs, widget: s}}
		p.inner.Lifecycle(ctx, HotChangedEvent{Hot: s.isHot}, d, e)
	}
}

// Event delivers an event to this subtree. The pod decides whether the
// event concerns the subtree, translates pointer positions into the
// widget's coordinates, and merges the results into the parent context.
func (p *Pod[T]) Event(parent *EventCtx, event Event, d *T, e env.Env) {
	s := &p.state
	p.ensureInitialized(parent.state, parent.widget, *d, e)

	// Once handled, non-pointer events stop propagating. Pointer events
	// keep flowing so hot state stays current everywhere.
	if parent.IsHandled() && !IsPointerEvent(event) {
		return
	}

	hadActive := s.hasActive
	hadHot := s.isHot
	rect := graphics.RectFromOriginSize(s.origin, s.size)

	recurse := true
	inner := event

	switch ev := event.(type) {
	case MouseDownEvent:
		p.setHotState(parent.state, rect, &ev.Pos, *d, e)
		if hadActive || s.isHot {
			m := ev.MouseEvent
			m.Pos = m.Pos.Sub(s.origin)
			inner = MouseDownEvent{MouseEvent: m}
		} else {
			recurse = false
		}
	case MouseUpEvent:
		p.setHotState(parent.state, rect, &ev.Pos, *d, e)
		if hadActive || s.isHot {
			m := ev.MouseEvent
			m.Pos = m.Pos.Sub(s.origin)
			inner = MouseUpEvent{MouseEvent: m}
		} else {
			recurse = false
		}
	case MouseMoveEvent:
		p.setHotState(parent.state, rect, &ev.Pos, *d, e)
		if hadActive || s.isHot || hadHot {
			m := ev.MouseEvent
			m.Pos = m.Pos.Sub(s.origin)
			inner = MouseMoveEvent{MouseEvent: m}
		} else {
			recurse = false
		}
	case WheelEvent:
		p.setHotState(parent.state, rect, &ev.Pos, *d, e)
		if hadActive || s.isHot {
			m := ev.MouseEvent
			m.Pos = m.Pos.Sub(s.origin)
			inner = WheelEvent{MouseEvent: m}
		} else {
			recurse = false
		}
	case PointerLeaveEvent:
		p.setHotState(parent.state, rect, nil, *d, e)
		recurse = hadHot || hadActive
	case KeyDownEvent, KeyUpEvent, TextInputEvent:
		recurse = s.hasFocus
	case WindowSizeEvent:
		s.needsLayout = true
		recurse = parent.root
	case AnimFrameEvent:
		recurse = s.requestAnim
		s.requestAnim = false
	case TimerEvent:
		// A raw timer event can only be a container forwarding one it was
		// itself the target of; it goes no further.
		recurse = false
	case RouteTimerEvent:
		if ev.Target == s.id {
			inner = TimerEvent{Token: ev.Token}
		} else {
			recurse = s.children.MayContain(ev.Target)
		}
	case RouteCommandEvent:
		target := ev.Command.target
		if target.Kind == TargetWidget && target.Widget != s.id {
			recurse = s.children.MayContain(target.Widget)
		} else {
			inner = CommandEvent{Command: ev.Command}
		}
	case NotificationEvent:
		errors.Routing("core.Pod.Event",
			"notification %q forwarded into widget %d; notifications only flow up",
			ev.Notification.selector, s.id)
		recurse = false
	}

	if recurse {
		var notes []Notification
		s.hasActive = false
		innerCtx := &EventCtx{
			baseCtx:       baseCtx{state: parent.state, widget: s},
			notifications: &notes,
			handled:       parent.handled,
		}
		p.inner.Event(innerCtx, inner, d, e)
		s.hasActive = s.hasActive || s.isActive
		parent.handled = parent.handled || innerCtx.handled
		if len(notes) > 0 {
			p.sendNotifications(parent, notes, d, e)
		}
	}

	parent.widget.mergeUp(s)
}

// sendNotifications delivers notifications submitted in this subtree to
// this pod's widget (the submitter's nearest ancestor that hasn't seen
// them yet). Unhandled notifications are re-stamped and passed on to the
// next ancestor.
func (p *Pod[T]) sendNotifications(parent *EventCtx, notes []Notification, d *T, e env.Env) {
	s := &p.state
	for _, n := range notes {
		if n.route == s.id {
			// submitted by our own widget; only ancestors should see it
			*parent.notifications = append(*parent.notifications, n)
			continue
		}
		innerCtx := &EventCtx{
			baseCtx:       baseCtx{state: parent.state, widget: s},
			notifications: parent.notifications,
		}
		p.inner.Event(innerCtx, NotificationEvent{Notification: n}, d, e)
		if !innerCtx.handled {
			n.route = s.id
			*parent.notifications = append(*parent.notifications, n)
		}
	}
	parent.widget.mergeUp(s)
}

// Lifecycle delivers a structural notification to this subtree.
func (p *Pod[T]) Lifecycle(parent *LifecycleCtx, event LifecycleEvent, d T, e env.Env) {
	s := &p.state

	switch event.(type) {
	case WidgetAddedEvent, RouteWidgetAddedEvent:
	default:
		if !p.init {
			p.Lifecycle(parent, WidgetAddedEvent{}, d, e)
		}
	}

	recurse := true
	inner := event
	var extra LifecycleEvent

	switch ev := event.(type) {
	case WidgetAddedEvent:
		if p.init {
			errors.Misuse("core.Pod.Lifecycle", "widget %d received WidgetAdded twice", s.id)
			return
		}
		p.init = true
		s.updateFocusChain = true
		old := d.Clone()
		p.oldData = &old
		p.envSnap = e
		p.hasEnv = true
	case RouteWidgetAddedEvent:
		if !p.init {
			p.Lifecycle(parent, WidgetAddedEvent{}, d, e)
			return
		}
		recurse = s.childrenChanged
	case RouteFocusChangedEvent:
		switch {
		case ev.New == s.id:
			s.hasFocus = true
			extra = FocusChangedEvent{Focused: true}
		case ev.Old == s.id:
			s.hasFocus = false
			extra = FocusChangedEvent{Focused: false}
		default:
			// re-derived from the children as they merge up
			s.hasFocus = false
		}
		recurse = (ev.Old != 0 && s.children.MayContain(ev.Old)) ||
			(ev.New != 0 && s.children.MayContain(ev.New))
	case BuildFocusChainEvent:
		if s.updateFocusChain {
			s.focusChain = s.focusChain[:0]
		} else {
			recurse = false
		}
	case SizeChangedEvent, HotChangedEvent, FocusChangedEvent:
		// synthesized by pods for one widget; a forwarded copy stops here
		return
	}

	innerCtx := &LifecycleCtx{baseCtx{state: parent.state, widget: s}}
	if recurse {
		p.inner.Lifecycle(innerCtx, inner, d, e)
	}
	if extra != nil {
		p.inner.Lifecycle(innerCtx, extra, d, e)
	}

	switch event.(type) {
	case WidgetAddedEvent, RouteWidgetAddedEvent:
		s.childrenChanged = false
		parent.widget.children = parent.widget.children.Union(s.children)
		parent.widget.children.Add(s.id)
	case BuildFocusChainEvent:
		s.updateFocusChain = false
		parent.widget.focusChain = append(parent.widget.focusChain, s.focusChain...)
	}

	parent.widget.mergeUp(s)
}

// Update tells the widget its data or environment may have changed. The
// pod compares against the snapshot from the widget's previous visit and
// skips the whole subtree when nothing it can see changed.
func (p *Pod[T]) Update(parent *UpdateCtx, d T, e env.Env) {
	s := &p.state
	p.ensureInitialized(parent.state, parent.widget, d, e)

	envChanged := !p.hasEnv || !p.envSnap.Same(e)
	dataChanged := !(*p.oldData).Same(d)
	if !s.requestUpdate && !dataChanged && !envChanged {
		return
	}

	innerCtx := &UpdateCtx{
		baseCtx:    baseCtx{state: parent.state, widget: s},
		envChanged: envChanged,
	}
	p.inner.Update(innerCtx, *p.oldData, d, e)

	old := d.Clone()
	p.oldData = &old
	p.envSnap = e
	p.hasEnv = true
	s.requestUpdate = false

	parent.widget.mergeUp(s)
}

// Layout measures the widget under the given constraints. When neither
// the subtree nor the constraints changed since the last layout, the
// cached size is returned without visiting the widget. The parent must
// place the child with SetOrigin afterwards either way.
func (p *Pod[T]) Layout(parent *LayoutCtx, bc graphics.Constraints, d T, e env.Env) graphics.Size {
	s := &p.state
	p.ensureInitialized(parent.state, parent.widget, d, e)

	if !s.needsLayout && p.hasConstraints && p.lastConstraints == bc {
		s.expectingSetOrigin = true
		return s.size
	}
	s.needsLayout = false
	p.lastConstraints = bc
	p.hasConstraints = true

	prevSize := s.size
	innerCtx := &LayoutCtx{baseCtx{state: parent.state, widget: s}}
	size := p.inner.Layout(innerCtx, bc, d, e)

	if !size.IsFinite() {
		errors.Report("core.Pod.Layout", errors.KindLayout,
			fmt.Errorf("widget %d returned non-finite size %+v", s.id, size))
		size = graphics.Size{}
	}
	constrained := bc.Constrain(size)
	if !graphics.SizeEqual(size, constrained) {
		errors.Report("core.Pod.Layout", errors.KindLayout,
			fmt.Errorf("widget %d returned size %+v outside constraints %+v", s.id, size, bc))
		size = constrained
	}

	s.size = size
	if !graphics.SizeEqual(prevSize, size) {
		lctx := &LifecycleCtx{baseCtx{state: parent.state, widget: s}}
		p.inner.Lifecycle(lctx, SizeChangedEvent{Size: size}, d, e)
		s.invalid.Add(size.ToRect())
	}
	s.expectingSetOrigin = true

	parent.widget.mergeUp(s)
	return size
}

// SetOrigin places the widget in its parent's coordinate space. Parents
// call it after Layout; a moved widget invalidates both its old and new
// rects in the parent.
func (p *Pod[T]) SetOrigin(parent *LayoutCtx, origin graphics.Offset) {
	s := &p.state
	s.expectingSetOrigin = false
	if origin == s.origin {
		return
	}
	old := graphics.RectFromOriginSize(s.origin, s.size)
	s.origin = origin
	parent.widget.invalid.Add(old)
	parent.widget.invalid.Add(graphics.RectFromOriginSize(origin, s.size))
}

// Paint draws the subtree if it intersects the invalid region. The canvas
// is translated to the widget's origin and clipped to its size, so the
// widget paints in its own coordinates and cannot draw outside itself.
func (p *Pod[T]) Paint(parent *PaintCtx, d T, e env.Env) {
	s := &p.state
	if !p.init {
		errors.Misuse("core.Pod.Paint", "widget %d painted before being added", s.id)
		return
	}
	if s.expectingSetOrigin {
		errors.Misuse("core.Pod.Paint", "widget %d laid out but never placed with SetOrigin", s.id)
		s.expectingSetOrigin = false
	}

	rect := graphics.RectFromOriginSize(s.origin, s.size)
	if !parent.region.Intersects(rect) {
		return
	}

	region := parent.region.Translate(graphics.Offset{X: -s.origin.X, Y: -s.origin.Y})
	region.IntersectWith(s.size.ToRect())

	canvas := parent.Canvas
	canvas.Save()
	canvas.Translate(s.origin.X, s.origin.Y)
	canvas.ClipRect(s.size.ToRect())
	innerCtx := &PaintCtx{
		baseCtx: baseCtx{state: parent.state, widget: s},
		Canvas:  canvas,
		region:  region,
		depth:   parent.depth + 1,
	}
	p.inner.Paint(innerCtx, d, e)
	canvas.Restore()
}

// PassResult is what one root-level pass produced: the handled flag, the
// merged dirty state, and the requests that reached the root. The window
// controller consumes it to decide what happens next.
type PassResult struct {
	Handled          bool
	NeedsLayout      bool
	RequestAnim      bool
	ChildrenChanged  bool
	UpdateFocusChain bool
	FocusRequest     *FocusChange
	Invalid          graphics.Region
	Timers           []TimerBinding
	Cursor           *shell.Cursor
	Size             graphics.Size
}

func rootResult(root *widgetState, handled bool) PassResult {
	res := PassResult{
		Handled:          handled,
		NeedsLayout:      root.needsLayout,
		RequestAnim:      root.requestAnim,
		ChildrenChanged:  root.childrenChanged,
		UpdateFocusChain: root.updateFocusChain,
		FocusRequest:     root.requestFocus,
		Invalid:          root.invalid,
		Timers:           root.timers,
	}
	if root.cursorChange != cursorUnchanged {
		c := root.cursor
		res.Cursor = &c
	}
	return res
}

// SendRootEvent runs one event pass over the tree rooted at this pod.
// Notifications that bubble all the way out unhandled are logged and
// dropped.
func (p *Pod[T]) SendRootEvent(cs *ContextState, event Event, d *T, e env.Env) PassResult {
	root := &widgetState{size: cs.WindowSize}
	var notes []Notification
	ctx := &EventCtx{
		baseCtx:       baseCtx{state: cs, widget: root},
		notifications: &notes,
		root:          true,
	}
	p.Event(ctx, event, d, e)
	for _, n := range notes {
		errors.Routing("core.Pod.SendRootEvent",
			"unhandled notification %q from widget %d", n.selector, n.source)
	}
	return rootResult(root, ctx.handled)
}

// SendRootLifecycle runs one lifecycle pass over the tree.
func (p *Pod[T]) SendRootLifecycle(cs *ContextState, event LifecycleEvent, d T, e env.Env) PassResult {
	root := &widgetState{size: cs.WindowSize}
	ctx := &LifecycleCtx{baseCtx{state: cs, widget: root}}
	p.Lifecycle(ctx, event, d, e)
	return rootResult(root, false)
}

// SendRootUpdate runs one update pass over the tree.
func (p *Pod[T]) SendRootUpdate(cs *ContextState, d T, e env.Env) PassResult {
	root := &widgetState{size: cs.WindowSize}
	ctx := &UpdateCtx{baseCtx: baseCtx{state: cs, widget: root}}
	p.Update(ctx, d, e)
	return rootResult(root, false)
}

// RootLayout lays the tree out against the window size and places the
// root at the window origin.
func (p *Pod[T]) RootLayout(cs *ContextState, d T, e env.Env) PassResult {
	root := &widgetState{size: cs.WindowSize}
	ctx := &LayoutCtx{baseCtx{state: cs, widget: root}}
	size := p.Layout(ctx, graphics.Tight(cs.WindowSize), d, e)
	p.SetOrigin(ctx, graphics.Offset{})
	res := rootResult(root, false)
	res.Size = size
	return res
}

// RootPaint paints the parts of the tree intersecting the given region
// (in window coordinates).
func (p *Pod[T]) RootPaint(cs *ContextState, canvas graphics.Canvas, region graphics.Region, d T, e env.Env) {
	root := &widgetState{size: cs.WindowSize}
	ctx := &PaintCtx{
		baseCtx: baseCtx{state: cs, widget: root},
		Canvas:  canvas,
		region:  region,
	}
	p.Paint(ctx, d, e)
}
