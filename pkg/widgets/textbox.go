package widgets

import (
	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
)

// TextCommitted is the notification a TextBox sends when the user presses
// Enter. The payload is the committed text as a string.
const TextCommitted core.Selector = "keel.textbox.commit"

// Key names the textbox reacts to, as delivered by the platform shell.
const (
	keyBackspace = "Backspace"
	keyDelete    = "Delete"
	keyLeft      = "ArrowLeft"
	keyRight     = "ArrowRight"
	keyHome      = "Home"
	keyEnd       = "End"
	keyEnter     = "Enter"
	keyTab       = "Tab"
)

// TextBox is a single-line editable text field operating on a projected
// string. It takes keyboard focus on click and registers in the focus
// chain, so Tab reaches it.
type TextBox struct {
	// cursor is a rune index into the text.
	cursor int
	layout *graphics.TextLayout
	// preferred width; the box fills bounded constraints instead
	width float64
}

// NewTextBox returns a textbox with a default preferred width.
func NewTextBox() *TextBox {
	return &TextBox{width: 180}
}

// WithWidth sets the preferred width used under unbounded constraints.
func (t *TextBox) WithWidth(w float64) *TextBox {
	t.width = w
	return t
}

func (t *TextBox) clampCursor(d data.Str) {
	n := len([]rune(string(d)))
	if t.cursor > n {
		t.cursor = n
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *TextBox) Event(ctx *core.EventCtx, event core.Event, d *data.Str, e env.Env) {
	switch ev := event.(type) {
	case core.MouseDownEvent:
		ctx.RequestFocus()
		ctx.SetActive(true)
		ctx.RequestPaint()
		ctx.SetHandled()
	case core.MouseUpEvent:
		if ctx.IsActive() {
			ctx.SetActive(false)
			ctx.SetHandled()
		}
	case core.MouseMoveEvent:
		ctx.SetCursor(shell.CursorIBeam)
	case core.TextInputEvent:
		if !ctx.IsFocused() {
			return
		}
		runes := []rune(string(*d))
		t.clampCursor(*d)
		inserted := []rune(ev.Text)
		next := make([]rune, 0, len(runes)+len(inserted))
		next = append(next, runes[:t.cursor]...)
		next = append(next, inserted...)
		next = append(next, runes[t.cursor:]...)
		*d = data.Str(next)
		t.cursor += len(inserted)
		ctx.RequestLayout()
		ctx.SetHandled()
	case core.KeyDownEvent:
		if !ctx.IsFocused() {
			return
		}
		t.handleKey(ctx, ev.Key, d)
	}
}

func (t *TextBox) handleKey(ctx *core.EventCtx, key string, d *data.Str) {
	runes := []rune(string(*d))
	t.clampCursor(*d)
	switch key {
	case keyBackspace:
		if t.cursor > 0 {
			*d = data.Str(append(runes[:t.cursor-1:t.cursor-1], runes[t.cursor:]...))
			t.cursor--
			ctx.RequestLayout()
		}
		ctx.SetHandled()
	case keyDelete:
		if t.cursor < len(runes) {
			*d = data.Str(append(runes[:t.cursor:t.cursor], runes[t.cursor+1:]...))
			ctx.RequestLayout()
		}
		ctx.SetHandled()
	case keyLeft:
		if t.cursor > 0 {
			t.cursor--
			ctx.RequestPaint()
		}
		ctx.SetHandled()
	case keyRight:
		if t.cursor < len(runes) {
			t.cursor++
			ctx.RequestPaint()
		}
		ctx.SetHandled()
	case keyHome:
		t.cursor = 0
		ctx.RequestPaint()
		ctx.SetHandled()
	case keyEnd:
		t.cursor = len(runes)
		ctx.RequestPaint()
		ctx.SetHandled()
	case keyEnter:
		ctx.SubmitNotification(TextCommitted, string(*d))
		ctx.SetHandled()
	case keyTab:
		ctx.FocusNext()
		ctx.SetHandled()
	}
}

func (t *TextBox) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d data.Str, e env.Env) {
	switch event.(type) {
	case core.BuildFocusChainEvent:
		ctx.RegisterForFocus()
	case core.FocusChangedEvent, core.HotChangedEvent:
		ctx.RequestPaint()
	}
}

func (t *TextBox) Update(ctx *core.UpdateCtx, oldData, d data.Str, e env.Env) {
	if oldData != d || ctx.EnvChanged() {
		t.clampCursor(d)
		ctx.RequestLayout()
	}
}

func (t *TextBox) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d data.Str, e env.Env) graphics.Size {
	t.layout = graphics.NewTextLayout(string(d), graphics.TextStyle{
		Color:    env.Get(e, TextColor),
		FontSize: env.Get(e, FontSize),
	})
	width := t.width
	if bc.IsBoundedWidth() {
		width = bc.Max.Width
	}
	height := t.layout.Size().Height + 8
	return bc.Constrain(graphics.Size{Width: width, Height: height})
}

func (t *TextBox) Paint(ctx *core.PaintCtx, d data.Str, e env.Env) {
	bounds := ctx.Size().ToRect()
	ctx.Canvas.DrawRect(bounds, graphics.Fill(env.Get(e, TextboxBackground)))

	borderColor := env.Get(e, BorderColor)
	if ctx.IsFocused() {
		borderColor = env.Get(e, FocusColor)
	}
	ctx.Canvas.DrawRect(bounds, graphics.Stroke(borderColor, 1))

	textOrigin := graphics.Offset{X: 4, Y: 4}
	if t.layout != nil {
		ctx.Canvas.DrawText(t.layout, textOrigin)
	}

	if ctx.IsFocused() && t.layout != nil {
		runes := []rune(string(d))
		cursor := t.cursor
		if cursor > len(runes) {
			cursor = len(runes)
		}
		prefix := graphics.NewTextLayout(string(runes[:cursor]), t.layout.Style)
		x := textOrigin.X + prefix.Size().Width
		ctx.Canvas.DrawLine(
			graphics.Offset{X: x, Y: 2},
			graphics.Offset{X: x, Y: ctx.Size().Height - 2},
			graphics.Stroke(env.Get(e, CursorColor), 1),
		)
	}
}
