// Package core implements the dispatch engine: the widget contract, the
// Pod wrapper that tracks per-widget state, the context types handed to
// widgets during each pass, and the command and notification plumbing.
package core

import (
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// Widget is the contract every UI element implements. The engine never
// calls a widget directly; every call arrives through a Pod, which
// maintains the widget's identity, geometry, and dirty state.
//
// The type parameter T is the slice of application data the widget sees.
// Container widgets hand each child the same T, or a projection of it via
// a lens (see LensWrap).
//
// Contract rules:
//
//   - Event may mutate data; the other four methods must not.
//   - Containers must forward Lifecycle and Update to every child pod
//     unconditionally; the pods decide whether to recurse further.
//   - Layout must call Layout on each child it keeps, then SetOrigin to
//     place it, and return a size within the given constraints.
//   - Paint must stay within the widget's own bounds; the pod clips.
type Widget[T any] interface {
	// Event handles an input, command, or notification event. It is the
	// only method through which application data may change.
	Event(ctx *EventCtx, event Event, data *T, e env.Env)

	// Lifecycle handles structural notifications (added to tree, focus and
	// hot changes, focus chain construction).
	Lifecycle(ctx *LifecycleCtx, event LifecycleEvent, data T, e env.Env)

	// Update reconciles the widget's view of the data after an event pass
	// changed it. oldData is the value the widget saw last; data is the
	// current value.
	Update(ctx *UpdateCtx, oldData, data T, e env.Env)

	// Layout measures the widget under the given constraints and places
	// its children. The returned size must satisfy the constraints.
	Layout(ctx *LayoutCtx, bc graphics.Constraints, data T, e env.Env) graphics.Size

	// Paint draws the widget. The canvas origin is the widget's top-left
	// corner and drawing is clipped to its layout size.
	Paint(ctx *PaintCtx, data T, e env.Env)
}
