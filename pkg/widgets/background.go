package widgets

import (
	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// Background fills its own rect with the themed window background before
// painting its child. Typically used as the root widget.
type Background[T data.Data[T]] struct {
	child *core.Pod[T]
}

// NewBackground wraps a child widget.
func NewBackground[T data.Data[T]](child core.Widget[T]) *Background[T] {
	return &Background[T]{child: core.NewPod(child)}
}

// ChildPod returns the pod holding the child.
func (b *Background[T]) ChildPod() *core.Pod[T] {
	return b.child
}

func (b *Background[T]) Event(ctx *core.EventCtx, event core.Event, d *T, e env.Env) {
	b.child.Event(ctx, event, d, e)
}

func (b *Background[T]) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d T, e env.Env) {
	b.child.Lifecycle(ctx, event, d, e)
}

func (b *Background[T]) Update(ctx *core.UpdateCtx, oldData, d T, e env.Env) {
	b.child.Update(ctx, d, e)
}

func (b *Background[T]) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d T, e env.Env) graphics.Size {
	size := b.child.Layout(ctx, bc.Loosen(), d, e)
	b.child.SetOrigin(ctx, graphics.Offset{})
	if bc.IsBoundedWidth() && bc.IsBoundedHeight() {
		return bc.Max
	}
	return bc.Constrain(size)
}

func (b *Background[T]) Paint(ctx *core.PaintCtx, d T, e env.Env) {
	ctx.Canvas.DrawRect(ctx.Size().ToRect(), graphics.Fill(env.Get(e, WindowBackground)))
	b.child.Paint(ctx, d, e)
}
