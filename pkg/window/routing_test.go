package window_test

import (
	"testing"
	"time"

	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
	"github.com/go-keel/keel/pkg/uitest"
	"github.com/go-keel/keel/pkg/widgets"
	"github.com/go-keel/keel/pkg/window"
)

const (
	selPing core.Selector = "windowtest.ping"
	selMark core.Selector = "windowtest.mark"
	selPong core.Selector = "windowtest.pong"
)

// echoWidget records the commands it receives and answers every ping
// with a pong to itself.
type echoWidget struct {
	seen []core.Selector
}

func (w *echoWidget) Event(ctx *core.EventCtx, event core.Event, d *appState, e env.Env) {
	ce, ok := event.(core.CommandEvent)
	if !ok {
		return
	}
	w.seen = append(w.seen, ce.Command.Selector())
	if ce.Command.Is(selPing) {
		ctx.SubmitCommand(core.NewCommand(selPong, nil).To(core.ToWidget(ctx.WidgetID())))
	}
	ctx.SetHandled()
}

func (w *echoWidget) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d appState, e env.Env) {
}

func (w *echoWidget) Update(ctx *core.UpdateCtx, oldData, d appState, e env.Env) {}

func (w *echoWidget) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d appState, e env.Env) graphics.Size {
	return bc.Constrain(graphics.Size{Width: 10, Height: 10})
}

func (w *echoWidget) Paint(ctx *core.PaintCtx, d appState, e env.Env) {}

// timerWidget schedules a timer on click and counts its expiries.
type timerWidget struct {
	token shell.TimerToken
	fired int
}

func (w *timerWidget) Event(ctx *core.EventCtx, event core.Event, d *appState, e env.Env) {
	switch ev := event.(type) {
	case core.MouseDownEvent:
		w.token = ctx.RequestTimer(100 * time.Millisecond)
		ctx.SetHandled()
	case core.TimerEvent:
		if ev.Token == w.token {
			w.fired++
			d.Count++
		}
		ctx.SetHandled()
	}
}

func (w *timerWidget) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d appState, e env.Env) {
}

func (w *timerWidget) Update(ctx *core.UpdateCtx, oldData, d appState, e env.Env) {}

func (w *timerWidget) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d appState, e env.Env) graphics.Size {
	return bc.Constrain(graphics.Size{Width: 60, Height: 20})
}

func (w *timerWidget) Paint(ctx *core.PaintCtx, d appState, e env.Env) {}

// animWidget asks for one animation frame on click.
type animWidget struct {
	frames int
}

func (w *animWidget) Event(ctx *core.EventCtx, event core.Event, d *appState, e env.Env) {
	switch event.(type) {
	case core.MouseDownEvent:
		ctx.RequestAnimFrame()
		ctx.SetHandled()
	case core.AnimFrameEvent:
		w.frames++
	}
}

func (w *animWidget) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d appState, e env.Env) {
}

func (w *animWidget) Update(ctx *core.UpdateCtx, oldData, d appState, e env.Env) {}

func (w *animWidget) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d appState, e env.Env) graphics.Size {
	return bc.Constrain(graphics.Size{Width: 60, Height: 20})
}

func (w *animWidget) Paint(ctx *core.PaintCtx, d appState, e env.Env) {}

// commitCatcher handles the textbox commit notifications of its subtree.
type commitCatcher struct {
	child *core.Pod[appState]
	got   []string
}

func newCommitCatcher(child core.Widget[appState]) *commitCatcher {
	return &commitCatcher{child: core.NewPod(child)}
}

func (c *commitCatcher) Event(ctx *core.EventCtx, event core.Event, d *appState, e env.Env) {
	if ne, ok := event.(core.NotificationEvent); ok {
		if ne.Notification.Is(widgets.TextCommitted) {
			text, _ := core.NotificationPayload[string](ne.Notification)
			c.got = append(c.got, text)
			ctx.SetHandled()
		}
		return
	}
	c.child.Event(ctx, event, d, e)
}

func (c *commitCatcher) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d appState, e env.Env) {
	c.child.Lifecycle(ctx, event, d, e)
}

func (c *commitCatcher) Update(ctx *core.UpdateCtx, oldData, d appState, e env.Env) {
	c.child.Update(ctx, d, e)
}

func (c *commitCatcher) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d appState, e env.Env) graphics.Size {
	size := c.child.Layout(ctx, bc, d, e)
	c.child.SetOrigin(ctx, graphics.Offset{})
	return size
}

func (c *commitCatcher) Paint(ctx *core.PaintCtx, d appState, e env.Env) {
	c.child.Paint(ctx, d, e)
}

// closeVeto claims window-close requests, keeping the window open.
type closeVeto struct{}

func (closeVeto) Event(ctx *core.EventCtx, event core.Event, d *appState, e env.Env) {
	if _, ok := event.(core.WindowCloseRequestedEvent); ok {
		ctx.SetHandled()
	}
}

func (closeVeto) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d appState, e env.Env) {
}

func (closeVeto) Update(ctx *core.UpdateCtx, oldData, d appState, e env.Env) {}

func (closeVeto) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d appState, e env.Env) graphics.Size {
	return bc.Constrain(graphics.Size{Width: 10, Height: 10})
}

func (closeVeto) Paint(ctx *core.PaintCtx, d appState, e env.Env) {}

func TestUnhandledCloseRequestClosesWindow(t *testing.T) {
	h := uitest.NewHarness[appState](widgets.NewLabel[appState]("bye"), appState{})
	h.RenderFrame()

	if h.RequestClose() {
		t.Error("nothing in the tree should have claimed the close request")
	}
	if h.Shell.CloseRequests != 1 {
		t.Errorf("platform close calls = %d, want 1", h.Shell.CloseRequests)
	}
	if h.App.Window(h.Win.ID()) != nil {
		t.Error("window still registered after close")
	}
}

func TestHandledCloseRequestKeepsWindow(t *testing.T) {
	h := uitest.NewHarness[appState](closeVeto{}, appState{})
	h.RenderFrame()

	if !h.RequestClose() {
		t.Error("veto widget did not claim the close request")
	}
	if h.Shell.CloseRequests != 0 {
		t.Errorf("platform close calls = %d, want 0", h.Shell.CloseRequests)
	}
	if h.App.Window(h.Win.ID()) == nil {
		t.Error("window removed despite the handled close request")
	}
}

func TestCommandRoutedToTargetOnly(t *testing.T) {
	recA := uitest.Record[appState](widgets.NewLabel[appState]("a"))
	recB := uitest.Record[appState](widgets.NewLabel[appState]("b"))
	flex := widgets.NewColumn[appState]().AddChild(recA).AddChild(recB)

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()
	recA.ResetCounts()
	recB.ResetCounts()

	h.App.ExternalSink().Submit(
		core.NewCommand(selMark, 7).To(core.ToWidget(flex.ChildPod(0).ID())))
	h.App.ProcessCommands()

	found := false
	for _, ev := range recA.Events {
		ce, ok := ev.(core.CommandEvent)
		if !ok {
			continue
		}
		if !ce.Command.Is(selMark) {
			t.Errorf("unexpected command %q", ce.Command.Selector())
		}
		if v, ok := core.Payload[int](ce.Command); !ok || v != 7 {
			t.Errorf("payload = %v, ok=%v", v, ok)
		}
		found = true
	}
	if !found {
		t.Error("target never received the command")
	}
	if recB.Counts.Event != 0 {
		t.Errorf("sibling received %d events for a command addressed elsewhere", recB.Counts.Event)
	}
}

func TestCommandQueueDrainsInOrder(t *testing.T) {
	echo := &echoWidget{}
	h := uitest.NewHarness[appState](echo, appState{})
	h.RenderFrame()

	id := h.Win.Root().ID()
	h.App.ExternalSink().Submit(core.NewCommand(selPing, nil).To(core.ToWidget(id)))
	h.App.ExternalSink().Submit(core.NewCommand(selMark, nil).To(core.ToWidget(id)))
	h.App.ProcessCommands()

	// the pong submitted while handling ping lands after the already
	// queued mark, never interleaved
	want := []core.Selector{selPing, selMark, selPong}
	if len(echo.seen) != len(want) {
		t.Fatalf("seen = %v, want %v", echo.seen, want)
	}
	for i := range want {
		if echo.seen[i] != want[i] {
			t.Fatalf("seen = %v, want %v", echo.seen, want)
		}
	}
}

func TestGlobalCommandReachesAllWindows(t *testing.T) {
	clock := uitest.NewFakeClock()
	app := window.NewApp[appState](appState{}, widgets.DefaultEnv())

	echo1 := &echoWidget{}
	echo2 := &echoWidget{}
	w1 := app.AddWindow(uitest.NewHeadlessShell(clock), echo1)
	w2 := app.AddWindow(uitest.NewHeadlessShell(clock), echo2)
	app.DispatchInput(w1.ID(), shell.InputEvent{Seq: 1, Kind: shell.KindWindowConnected})
	app.DispatchInput(w2.ID(), shell.InputEvent{Seq: 1, Kind: shell.KindWindowConnected})

	app.ExternalSink().Submit(core.NewCommand(selMark, nil))
	app.ProcessCommands()

	if len(echo1.seen) == 0 || echo1.seen[0] != selMark {
		t.Errorf("first window saw %v", echo1.seen)
	}
	if len(echo2.seen) == 0 || echo2.seen[0] != selMark {
		t.Errorf("second window saw %v", echo2.seen)
	}
}

func TestTimerDeliveredToRequesterOnly(t *testing.T) {
	timer := &timerWidget{}
	rec := uitest.Record[appState](widgets.NewLabel[appState]("bystander"))
	flex := widgets.NewColumn[appState]().AddChild(timer).AddChild(rec)

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()

	x, y := center(flex.ChildPod(0).LayoutRect())
	h.MouseDownAt(x, y)
	h.MouseUpAt(x, y)
	if h.Clock.PendingTimers() != 1 {
		t.Fatalf("pending timers = %d, want 1", h.Clock.PendingTimers())
	}
	rec.ResetCounts()

	h.AdvanceTime(50 * time.Millisecond)
	if timer.fired != 0 {
		t.Error("timer fired early")
	}
	h.AdvanceTime(60 * time.Millisecond)
	if timer.fired != 1 {
		t.Errorf("fired = %d, want 1", timer.fired)
	}
	if h.Data().Count != 1 {
		t.Errorf("Count = %d, want 1", h.Data().Count)
	}
	if hasEvent[core.TimerEvent](rec.Events) {
		t.Error("timer event leaked to a sibling")
	}

	// one-shot: nothing left to fire
	h.AdvanceTime(time.Second)
	if timer.fired != 1 {
		t.Errorf("fired = %d after extra time, want 1", timer.fired)
	}
}

func TestAnimFrameDeliveredToRequesterOnce(t *testing.T) {
	anim := &animWidget{}
	rec := uitest.Record[appState](widgets.NewLabel[appState]("bystander"))
	flex := widgets.NewColumn[appState]().AddChild(anim).AddChild(rec)

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()

	x, y := center(flex.ChildPod(0).LayoutRect())
	h.MouseDownAt(x, y)
	h.MouseUpAt(x, y)
	if h.Shell.AnimFrameRequests == 0 {
		t.Fatal("engine never asked the platform for a frame")
	}
	rec.ResetCounts()

	h.AnimFrame(16 * time.Millisecond)
	if anim.frames != 1 {
		t.Errorf("frames = %d, want 1", anim.frames)
	}
	// the request is consumed; the next frame passes the widget by
	h.AnimFrame(16 * time.Millisecond)
	if anim.frames != 1 {
		t.Errorf("frames = %d after unrequested frame, want 1", anim.frames)
	}
	if hasEvent[core.AnimFrameEvent](rec.Events) {
		t.Error("anim frame leaked to a widget that never asked")
	}
}

func TestFocusClickTabAndWraparound(t *testing.T) {
	rec1 := uitest.Record[data.Str](widgets.NewTextBox())
	rec2 := uitest.Record[data.Str](widgets.NewTextBox())
	lens1 := core.Lensed[appState, data.Str](nameLens, rec1)
	lens2 := core.Lensed[appState, data.Str](titleLens, rec2)
	flex := widgets.NewColumn[appState]().AddChild(lens1).AddChild(lens2)

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()
	id1, id2 := lens1.Child().ID(), lens2.Child().ID()

	if h.Focus() != 0 {
		t.Fatalf("focus = %d before any click", h.Focus())
	}

	h.Click(center(flex.ChildPod(0).LayoutRect()))
	if h.Focus() != id1 {
		t.Fatalf("focus = %d after click, want %d", h.Focus(), id1)
	}
	if got := focusChanges(rec1.Lifecycles); len(got) != 1 || !got[0] {
		t.Errorf("first textbox focus changes = %v, want [true]", got)
	}

	h.KeyDown("Tab")
	if h.Focus() != id2 {
		t.Fatalf("focus = %d after Tab, want %d", h.Focus(), id2)
	}
	// the transfer produces exactly one lost/gained pair
	if got := focusChanges(rec1.Lifecycles); len(got) != 2 || got[1] {
		t.Errorf("first textbox focus changes = %v, want [true false]", got)
	}
	if got := focusChanges(rec2.Lifecycles); len(got) != 1 || !got[0] {
		t.Errorf("second textbox focus changes = %v, want [true]", got)
	}

	h.KeyDown("Tab")
	if h.Focus() != id1 {
		t.Errorf("focus = %d after wraparound, want %d", h.Focus(), id1)
	}

	// typed text goes to the focused widget only
	h.TypeText("hi")
	if h.Data().Name != "hi" || h.Data().Title != "" {
		t.Errorf("Name=%q Title=%q after typing", h.Data().Name, h.Data().Title)
	}
}

func TestFocusRequestOutsideChainDropped(t *testing.T) {
	flex := widgets.NewColumn[appState]().
		AddChild(widgets.NewButton[appState]("grab", func(ctx *core.EventCtx, s *appState) {
			ctx.RequestFocus()
		}))

	h := uitest.NewHarness[appState](flex, appState{})
	h.RenderFrame()

	h.Click(center(flex.ChildPod(0).LayoutRect()))
	if h.Focus() != 0 {
		t.Errorf("focus = %d for a widget outside the focus chain", h.Focus())
	}
}

func TestNotificationBubblesToNearestHandler(t *testing.T) {
	catcher := newCommitCatcher(
		widgets.NewColumn[appState]().
			AddChild(core.Lensed[appState, data.Str](nameLens, widgets.NewTextBox())))

	h := uitest.NewHarness[appState](catcher, appState{})
	h.RenderFrame()

	h.Click(50, 10)
	if h.Focus() == 0 {
		t.Fatal("textbox did not take focus")
	}
	h.TypeText("hi")
	h.KeyDown("Enter")

	if len(catcher.got) != 1 || catcher.got[0] != "hi" {
		t.Errorf("caught commits = %v, want [hi]", catcher.got)
	}
}
