package widgets

import (
	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
)

// Button is a clickable push button with a label.
//
// A press captures the pointer; the click fires on release only if the
// pointer is still over the button, so dragging off before releasing
// cancels the click.
type Button[T data.Data[T]] struct {
	label   *core.Pod[T]
	onClick func(ctx *core.EventCtx, d *T)
}

// NewButton returns a button with fixed label text. onClick runs during
// the event pass and may mutate the data.
func NewButton[T data.Data[T]](text string, onClick func(*core.EventCtx, *T)) *Button[T] {
	return &Button[T]{
		label:   core.NewPod[T](NewLabel[T](text)),
		onClick: onClick,
	}
}

// NewDynamicButton returns a button whose label is derived from the data.
func NewDynamicButton[T data.Data[T]](text func(T) string, onClick func(*core.EventCtx, *T)) *Button[T] {
	return &Button[T]{
		label:   core.NewPod[T](NewDynamicLabel[T](text)),
		onClick: onClick,
	}
}

func (b *Button[T]) Event(ctx *core.EventCtx, event core.Event, d *T, e env.Env) {
	b.label.Event(ctx, event, d, e)

	switch event.(type) {
	case core.MouseDownEvent:
		ctx.SetActive(true)
		ctx.RequestPaint()
		ctx.SetHandled()
	case core.MouseUpEvent:
		if ctx.IsActive() {
			ctx.SetActive(false)
			ctx.RequestPaint()
			ctx.SetHandled()
			if ctx.IsHot() && b.onClick != nil {
				b.onClick(ctx, d)
			}
		}
	case core.MouseMoveEvent:
		ctx.SetCursor(shell.CursorPointer)
	}
}

func (b *Button[T]) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d T, e env.Env) {
	b.label.Lifecycle(ctx, event, d, e)
	if _, ok := event.(core.HotChangedEvent); ok {
		ctx.RequestPaint()
	}
}

func (b *Button[T]) Update(ctx *core.UpdateCtx, oldData, d T, e env.Env) {
	b.label.Update(ctx, d, e)
}

func (b *Button[T]) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d T, e env.Env) graphics.Size {
	insets := env.Get(e, ButtonPadding)
	padding := graphics.Size{Width: insets.Horizontal(), Height: insets.Vertical()}
	labelSize := b.label.Layout(ctx, bc.Loosen().Shrink(padding), d, e)
	b.label.SetOrigin(ctx, graphics.Offset{X: insets.Left, Y: insets.Top})
	return bc.Constrain(graphics.Size{
		Width:  labelSize.Width + padding.Width,
		Height: labelSize.Height + padding.Height,
	})
}

func (b *Button[T]) Paint(ctx *core.PaintCtx, d T, e env.Env) {
	background := env.Get(e, ButtonBackground)
	switch {
	case ctx.IsActive() && ctx.IsHot():
		background = env.Get(e, ButtonActive)
	case ctx.IsHot():
		background = env.Get(e, ButtonHot)
	}
	bounds := ctx.Size().ToRect()
	ctx.Canvas.DrawRect(bounds, graphics.Fill(background))
	ctx.Canvas.DrawRect(bounds, graphics.Stroke(env.Get(e, BorderColor), 1))
	b.label.Paint(ctx, d, e)
}
