package uitest

import (
	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// CallCounts tallies how often each contract method ran.
type CallCounts struct {
	Event     int
	Lifecycle int
	Update    int
	Layout    int
	Paint     int
}

// Recorder wraps a widget and counts the contract calls it receives,
// for asserting that passes visit (or skip) a subtree.
type Recorder[T any] struct {
	inner core.Widget[T]

	Counts     CallCounts
	Events     []core.Event
	Lifecycles []core.LifecycleEvent
}

// Record wraps a widget in a Recorder.
func Record[T any](inner core.Widget[T]) *Recorder[T] {
	return &Recorder[T]{inner: inner}
}

// ResetCounts zeroes the tallies and recorded events.
func (r *Recorder[T]) ResetCounts() {
	r.Counts = CallCounts{}
	r.Events = nil
	r.Lifecycles = nil
}

func (r *Recorder[T]) Event(ctx *core.EventCtx, event core.Event, d *T, e env.Env) {
	r.Counts.Event++
	r.Events = append(r.Events, event)
	r.inner.Event(ctx, event, d, e)
}

func (r *Recorder[T]) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d T, e env.Env) {
	r.Counts.Lifecycle++
	r.Lifecycles = append(r.Lifecycles, event)
	r.inner.Lifecycle(ctx, event, d, e)
}

func (r *Recorder[T]) Update(ctx *core.UpdateCtx, oldData, d T, e env.Env) {
	r.Counts.Update++
	r.inner.Update(ctx, oldData, d, e)
}

func (r *Recorder[T]) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d T, e env.Env) graphics.Size {
	r.Counts.Layout++
	return r.inner.Layout(ctx, bc, d, e)
}

func (r *Recorder[T]) Paint(ctx *core.PaintCtx, d T, e env.Env) {
	r.Counts.Paint++
	r.inner.Paint(ctx, d, e)
}
