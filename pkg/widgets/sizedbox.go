package widgets

import (
	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// SizedBox forces a fixed size on its child, or occupies fixed empty
// space when it has none.
type SizedBox[T data.Data[T]] struct {
	child *core.Pod[T]
	size  graphics.Size
}

// NewSizedBox wraps a child at a fixed size.
func NewSizedBox[T data.Data[T]](child core.Widget[T], size graphics.Size) *SizedBox[T] {
	return &SizedBox[T]{child: core.NewPod(child), size: size}
}

// NewSpacer returns an empty box of the given size.
func NewSpacer[T data.Data[T]](size graphics.Size) *SizedBox[T] {
	return &SizedBox[T]{size: size}
}

func (s *SizedBox[T]) Event(ctx *core.EventCtx, event core.Event, d *T, e env.Env) {
	if s.child != nil {
		s.child.Event(ctx, event, d, e)
	}
}

func (s *SizedBox[T]) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d T, e env.Env) {
	if s.child != nil {
		s.child.Lifecycle(ctx, event, d, e)
	}
}

func (s *SizedBox[T]) Update(ctx *core.UpdateCtx, oldData, d T, e env.Env) {
	if s.child != nil {
		s.child.Update(ctx, d, e)
	}
}

func (s *SizedBox[T]) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d T, e env.Env) graphics.Size {
	size := bc.Constrain(s.size)
	if s.child != nil {
		s.child.Layout(ctx, graphics.Tight(size), d, e)
		s.child.SetOrigin(ctx, graphics.Offset{})
	}
	return size
}

func (s *SizedBox[T]) Paint(ctx *core.PaintCtx, d T, e env.Env) {
	if s.child != nil {
		s.child.Paint(ctx, d, e)
	}
}
