package widgets

import (
	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// Label displays a single run of text. The text can be fixed or derived
// from the application data on every update.
type Label[T any] struct {
	text    func(T) string
	current string
	layout  *graphics.TextLayout
}

// NewLabel returns a label with fixed text.
func NewLabel[T any](text string) *Label[T] {
	return &Label[T]{text: func(T) string { return text }}
}

// NewDynamicLabel returns a label whose text is derived from the data.
func NewDynamicLabel[T any](text func(T) string) *Label[T] {
	return &Label[T]{text: text}
}

func (l *Label[T]) Event(ctx *core.EventCtx, event core.Event, d *T, e env.Env) {}

func (l *Label[T]) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d T, e env.Env) {
	if _, ok := event.(core.WidgetAddedEvent); ok {
		l.current = l.text(d)
	}
}

func (l *Label[T]) Update(ctx *core.UpdateCtx, oldData, d T, e env.Env) {
	next := l.text(d)
	if next != l.current || ctx.EnvChanged() {
		l.current = next
		l.layout = nil
		ctx.RequestLayout()
	}
}

func (l *Label[T]) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d T, e env.Env) graphics.Size {
	l.layout = graphics.NewTextLayout(l.current, graphics.TextStyle{
		Color:    env.Get(e, TextColor),
		FontSize: env.Get(e, FontSize),
	})
	return bc.Constrain(l.layout.Size())
}

func (l *Label[T]) Paint(ctx *core.PaintCtx, d T, e env.Env) {
	if l.layout == nil {
		return
	}
	ctx.Canvas.DrawText(l.layout, graphics.Offset{})
}
