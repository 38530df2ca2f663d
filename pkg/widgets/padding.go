package widgets

import (
	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// Padding surrounds its child with empty space.
type Padding[T data.Data[T]] struct {
	insets graphics.Insets
	child  *core.Pod[T]
}

// NewPadding wraps a child with the given insets.
func NewPadding[T data.Data[T]](insets graphics.Insets, child core.Widget[T]) *Padding[T] {
	return &Padding[T]{insets: insets, child: core.NewPod(child)}
}

// ChildPod returns the pod holding the child.
func (p *Padding[T]) ChildPod() *core.Pod[T] {
	return p.child
}

func (p *Padding[T]) Event(ctx *core.EventCtx, event core.Event, d *T, e env.Env) {
	p.child.Event(ctx, event, d, e)
}

func (p *Padding[T]) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d T, e env.Env) {
	p.child.Lifecycle(ctx, event, d, e)
}

func (p *Padding[T]) Update(ctx *core.UpdateCtx, oldData, d T, e env.Env) {
	p.child.Update(ctx, d, e)
}

func (p *Padding[T]) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d T, e env.Env) graphics.Size {
	reserved := graphics.Size{Width: p.insets.Horizontal(), Height: p.insets.Vertical()}
	childSize := p.child.Layout(ctx, bc.Shrink(reserved), d, e)
	p.child.SetOrigin(ctx, graphics.Offset{X: p.insets.Left, Y: p.insets.Top})
	return bc.Constrain(graphics.Size{
		Width:  childSize.Width + reserved.Width,
		Height: childSize.Height + reserved.Height,
	})
}

func (p *Padding[T]) Paint(ctx *core.PaintCtx, d T, e env.Env) {
	p.child.Paint(ctx, d, e)
}
