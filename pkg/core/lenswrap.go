package core

import (
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// LensWrap exposes a widget operating on an inner data type A as a widget
// operating on the outer type S, projecting through a lens at every call.
//
// The inner widget sits in its own pod, so update gating happens against
// the projected slice: when an event changes some other part of S, the
// inner pod's comparison sees an unchanged A and the subtree is skipped.
type LensWrap[S any, A data.Data[A]] struct {
	lens data.Lens[S, A]
	pod  *Pod[A]
}

// Lensed wraps a widget of the inner type behind a lens.
func Lensed[S any, A data.Data[A]](lens data.Lens[S, A], inner Widget[A]) *LensWrap[S, A] {
	return &LensWrap[S, A]{lens: lens, pod: NewPod(inner)}
}

// Child returns the pod holding the inner widget.
func (w *LensWrap[S, A]) Child() *Pod[A] {
	return w.pod
}

func (w *LensWrap[S, A]) Event(ctx *EventCtx, event Event, d *S, e env.Env) {
	w.lens.WithMut(d, func(a *A) {
		w.pod.Event(ctx, event, a, e)
	})
}

func (w *LensWrap[S, A]) Lifecycle(ctx *LifecycleCtx, event LifecycleEvent, d S, e env.Env) {
	w.lens.With(d, func(a A) {
		w.pod.Lifecycle(ctx, event, a, e)
	})
}

func (w *LensWrap[S, A]) Update(ctx *UpdateCtx, oldData, d S, e env.Env) {
	// the pod diffs against its own snapshot of the projected value
	w.lens.With(d, func(a A) {
		w.pod.Update(ctx, a, e)
	})
}

func (w *LensWrap[S, A]) Layout(ctx *LayoutCtx, bc graphics.Constraints, d S, e env.Env) graphics.Size {
	var size graphics.Size
	w.lens.With(d, func(a A) {
		size = w.pod.Layout(ctx, bc, a, e)
		w.pod.SetOrigin(ctx, graphics.Offset{})
	})
	return size
}

func (w *LensWrap[S, A]) Paint(ctx *PaintCtx, d S, e env.Env) {
	w.lens.With(d, func(a A) {
		w.pod.Paint(ctx, a, e)
	})
}
