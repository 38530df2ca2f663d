package window_test

import (
	"fmt"
	"testing"

	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
	"github.com/go-keel/keel/pkg/uitest"
	"github.com/go-keel/keel/pkg/widgets"
)

type appState struct {
	Count int
	Name  data.Str
	Title data.Str
}

func (s appState) Same(other appState) bool { return s == other }
func (s appState) Clone() appState          { return s }

var (
	nameLens  = data.Field(func(s *appState) *data.Str { return &s.Name })
	titleLens = data.Field(func(s *appState) *data.Str { return &s.Title })
)

func center(r graphics.Rect) (float64, float64) {
	c := r.Center()
	return c.X, c.Y
}

func hasEvent[E core.Event](events []core.Event) bool {
	for _, ev := range events {
		if _, ok := ev.(E); ok {
			return true
		}
	}
	return false
}

func hotChanges(events []core.LifecycleEvent) []bool {
	var out []bool
	for _, ev := range events {
		if hc, ok := ev.(core.HotChangedEvent); ok {
			out = append(out, hc.Hot)
		}
	}
	return out
}

func focusChanges(events []core.LifecycleEvent) []bool {
	var out []bool
	for _, ev := range events {
		if fc, ok := ev.(core.FocusChangedEvent); ok {
			out = append(out, fc.Focused)
		}
	}
	return out
}

func TestButtonClickMutatesDataAndRepaints(t *testing.T) {
	flex := widgets.NewColumn[appState]().
		AddChild(widgets.NewDynamicLabel[appState](func(s appState) string {
			return fmt.Sprintf("count: %d", s.Count)
		})).
		AddChild(widgets.NewButton[appState]("add", func(ctx *core.EventCtx, s *appState) {
			s.Count++
		}))

	h := uitest.NewHarness[appState](flex, appState{})
	canvas := h.RenderFrame()
	if !canvas.TextDrawn("count: 0") {
		t.Fatalf("initial frame missing label, ops: %v", canvas.OpNames())
	}

	x, y := center(flex.ChildPod(1).LayoutRect())
	if !h.Click(x, y) {
		t.Fatal("button click not handled")
	}
	if h.Data().Count != 1 {
		t.Fatalf("Count = %d, want 1", h.Data().Count)
	}
	if len(h.Shell.InvalidRects) == 0 {
		t.Error("click repainted nothing: no invalidation reached the platform")
	}

	canvas = h.RenderFrame()
	if !canvas.TextDrawn("count: 1") {
		t.Errorf("frame after click missing updated label, ops: %v", canvas.OpNames())
	}
}

func TestDragOffButtonCancelsClick(t *testing.T) {
	flex := widgets.NewColumn[appState]().
		AddChild(widgets.NewButton[appState]("add", func(ctx *core.EventCtx, s *appState) {
			s.Count++
		}))

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()

	x, y := center(flex.ChildPod(0).LayoutRect())
	h.MouseDownAt(x, y)
	h.MouseUpAt(390, 290)
	if h.Data().Count != 0 {
		t.Errorf("click fired despite release outside: Count = %d", h.Data().Count)
	}

	// a full press-and-release still works afterwards
	h.Click(x, y)
	if h.Data().Count != 1 {
		t.Errorf("Count = %d after proper click, want 1", h.Data().Count)
	}
}

func TestHotStateFollowsPointer(t *testing.T) {
	recA := uitest.Record[appState](widgets.NewButton[appState]("a", nil))
	recB := uitest.Record[appState](widgets.NewButton[appState]("b", nil))
	flex := widgets.NewColumn[appState]().AddChild(recA).AddChild(recB)

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()

	h.MouseMoveTo(center(flex.ChildPod(0).LayoutRect()))
	if !flex.ChildPod(0).IsHot() {
		t.Error("first button not hot under pointer")
	}
	if flex.ChildPod(1).IsHot() {
		t.Error("second button hot without pointer")
	}
	if got := hotChanges(recA.Lifecycles); len(got) != 1 || !got[0] {
		t.Errorf("first button hot changes = %v, want [true]", got)
	}
	if got := hotChanges(recB.Lifecycles); len(got) != 0 {
		t.Errorf("second button hot changes = %v, want none", got)
	}

	h.MouseMoveTo(center(flex.ChildPod(1).LayoutRect()))
	if flex.ChildPod(0).IsHot() || !flex.ChildPod(1).IsHot() {
		t.Error("hot did not move with the pointer")
	}
	if got := hotChanges(recA.Lifecycles); len(got) != 2 || got[1] {
		t.Errorf("first button hot changes = %v, want [true false]", got)
	}

	h.MouseLeave()
	if flex.ChildPod(1).IsHot() {
		t.Error("widget still hot after pointer left the window")
	}
}

func TestPointerEventsPrunedOutsideRect(t *testing.T) {
	rec := uitest.Record[appState](widgets.NewButton[appState]("a", nil))
	flex := widgets.NewColumn[appState]().AddChild(rec)

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()
	rec.ResetCounts()

	h.Click(390, 290) // inside the window, far from the button
	if hasEvent[core.MouseDownEvent](rec.Events) {
		t.Error("mouse down delivered to widget outside its rect")
	}
}

func TestUpdateSkippedWhenDataUnchanged(t *testing.T) {
	rec := uitest.Record[appState](widgets.NewLabel[appState]("static"))
	flex := widgets.NewColumn[appState]().
		AddChild(rec).
		AddChild(widgets.NewButton[appState]("add", func(ctx *core.EventCtx, s *appState) {
			s.Count++
		}))

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()
	rec.ResetCounts()

	// handled or not, an event that leaves the data untouched must not
	// produce update calls
	h.Click(390, 290)
	h.MouseMoveTo(5, 290)
	if rec.Counts.Update != 0 {
		t.Errorf("Update ran %d times with unchanged data", rec.Counts.Update)
	}

	x, y := center(flex.ChildPod(1).LayoutRect())
	h.Click(x, y)
	if rec.Counts.Update == 0 {
		t.Error("Update never ran after the data changed")
	}
}

func TestLensGatesProjectedUpdates(t *testing.T) {
	rec := uitest.Record[data.Str](widgets.NewTextBox())
	flex := widgets.NewColumn[appState]().
		AddChild(core.Lensed[appState, data.Str](nameLens, rec)).
		AddChild(widgets.NewButton[appState]("add", func(ctx *core.EventCtx, s *appState) {
			s.Count++
		}))

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()
	rec.ResetCounts()

	// the button changes Count; the textbox only sees Name
	x, y := center(flex.ChildPod(1).LayoutRect())
	h.Click(x, y)
	if rec.Counts.Update != 0 {
		t.Errorf("projected widget updated %d times for an unrelated change", rec.Counts.Update)
	}

	h.App.Mutate(func(s *appState) { s.Name = "x" })
	if rec.Counts.Update != 1 {
		t.Errorf("projected widget updated %d times for its own change, want 1", rec.Counts.Update)
	}
}

func TestLayoutCachedWhenClean(t *testing.T) {
	rec := uitest.Record[appState](widgets.NewLabel[appState]("hello"))
	flex := widgets.NewColumn[appState]().AddChild(rec)

	h := uitest.NewHarness[appState](flex, appState{})
	first := h.RenderFrame()
	if len(first.Ops()) == 0 {
		t.Fatal("first frame painted nothing")
	}
	layouts := rec.Counts.Layout
	if layouts == 0 {
		t.Fatal("first frame ran no layout")
	}

	second := h.RenderFrame()
	if rec.Counts.Layout != layouts {
		t.Errorf("clean frame ran layout again (%d -> %d)", layouts, rec.Counts.Layout)
	}
	if len(second.Ops()) != 0 {
		t.Errorf("clean frame painted %d ops: %v", len(second.Ops()), second.OpNames())
	}
}

func TestWindowResizeRelayouts(t *testing.T) {
	rec := uitest.Record[appState](widgets.NewLabel[appState]("hello"))
	flex := widgets.NewColumn[appState]().AddChild(rec)

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()
	layouts := rec.Counts.Layout

	h.SetWindowSize(500, 400)
	canvas := h.RenderFrame()
	if rec.Counts.Layout <= layouts {
		t.Error("resize did not rerun layout")
	}
	if len(canvas.Ops()) == 0 {
		t.Error("resize frame painted nothing")
	}
	if canvas.Size() != (graphics.Size{Width: 500, Height: 400}) {
		t.Errorf("canvas size = %+v", canvas.Size())
	}
}

func TestCursorRequestedWhileHot(t *testing.T) {
	flex := widgets.NewColumn[appState]().
		AddChild(core.Lensed[appState, data.Str](nameLens, widgets.NewTextBox()))

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()

	h.MouseMoveTo(center(flex.ChildPod(0).LayoutRect()))
	if !h.Shell.CursorSet || h.Shell.Cursor != shell.CursorIBeam {
		t.Errorf("cursor = %v (set=%v), want IBeam", h.Shell.Cursor, h.Shell.CursorSet)
	}
}

func TestKeyEventsRequireFocus(t *testing.T) {
	flex := widgets.NewColumn[appState]().
		AddChild(core.Lensed[appState, data.Str](nameLens, widgets.NewTextBox()))

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()

	if h.TypeText("hi") {
		t.Error("text input handled with nothing focused")
	}
	if h.Data().Name != "" {
		t.Errorf("unfocused textbox received text: %q", h.Data().Name)
	}
}

func TestEnvChangePropagates(t *testing.T) {
	rec := uitest.Record[appState](widgets.NewLabel[appState]("hello"))
	flex := widgets.NewColumn[appState]().AddChild(rec)

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()
	rec.ResetCounts()

	h.App.SetEnv(env.Adding(h.App.Env(), widgets.FontSize, 22.0))
	if rec.Counts.Update != 1 {
		t.Errorf("env change produced %d updates, want 1", rec.Counts.Update)
	}
	canvas := h.RenderFrame()
	if len(canvas.Ops()) == 0 {
		t.Error("env change did not repaint")
	}
}
