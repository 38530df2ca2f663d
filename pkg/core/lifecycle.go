package core

import "github.com/go-keel/keel/pkg/graphics"

// LifecycleEvent is a structural notification: not ordinary input, but
// news about the widget's place in the tree. A widget must forward
// lifecycle events to its children constructively (by calling each child
// pod's Lifecycle method).
type LifecycleEvent interface {
	isLifecycle()
}

// WidgetAddedEvent is always the first thing a new pod delivers to its
// widget, before any other event of any kind.
type WidgetAddedEvent struct{}

// RouteWidgetAddedEvent is a routing envelope sent after the tree shape
// may have changed; pods that are still uninitialized turn it into
// WidgetAddedEvent, already-initialized pods re-register their children.
type RouteWidgetAddedEvent struct{}

// SizeChangedEvent informs a widget of its final size after layout. It is
// meant only for the widget whose size changed and never recurses.
type SizeChangedEvent struct {
	Size graphics.Size
}

// HotChangedEvent announces that the pointer entered or left the
// widget's layout rect. Synthesized by the pod during hot tracking.
type HotChangedEvent struct {
	Hot bool
}

// FocusChangedEvent announces the widget gained or lost keyboard focus.
// Descendants don't inherit focus, so it never recurses.
type FocusChangedEvent struct {
	Focused bool
}

// RouteFocusChangedEvent is a routing envelope carrying a focus transfer;
// the two pods involved receive the paired FocusChangedEvent.
type RouteFocusChangedEvent struct {
	// Old and New are the previously and newly focused widgets; zero
	// means none.
	Old WidgetID
	New WidgetID
}

// BuildFocusChainEvent asks the tree to rebuild the ordered list of
// focusable widgets. Widgets that accept focus call RegisterForFocus on
// the context while handling it.
type BuildFocusChainEvent struct{}

func (WidgetAddedEvent) isLifecycle()       {}
func (RouteWidgetAddedEvent) isLifecycle()  {}
func (SizeChangedEvent) isLifecycle()       {}
func (HotChangedEvent) isLifecycle()        {}
func (FocusChangedEvent) isLifecycle()      {}
func (RouteFocusChangedEvent) isLifecycle() {}
func (BuildFocusChainEvent) isLifecycle()   {}

// FocusChangeKind enumerates the ways a widget can ask to move focus.
type FocusChangeKind int

const (
	// FocusResign gives up focus.
	FocusResign FocusChangeKind = iota
	// FocusTo requests focus for a specific widget.
	FocusTo
	// FocusNext passes focus to the next widget in the focus chain.
	FocusNext
	// FocusPrev passes focus to the previous widget in the focus chain.
	FocusPrev
)

// FocusChange records a focus request made during an event pass. The
// window controller resolves it against the focus chain after the pass;
// requests naming widgets outside the chain are dropped.
type FocusChange struct {
	Kind   FocusChangeKind
	Target WidgetID
}
