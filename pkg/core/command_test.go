package core

import "testing"

const (
	selPing Selector = "test.ping"
	selPong Selector = "test.pong"
)

func TestCommandQueueFIFO(t *testing.T) {
	var q CommandQueue
	q.Push(NewCommand(selPing, 1))
	q.Push(NewCommand(selPong, 2))
	q.Push(NewCommand(selPing, 3))

	var order []int
	for {
		cmd, ok := q.PopFront()
		if !ok {
			break
		}
		v, ok := Payload[int](cmd)
		if !ok {
			t.Fatal("payload lost its type")
		}
		order = append(order, v)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("drain order = %v", order)
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after drain: %d", q.Len())
	}
}

func TestCommandPayloadTypeMismatch(t *testing.T) {
	cmd := NewCommand(selPing, "text")
	if _, ok := Payload[int](cmd); ok {
		t.Error("string payload extracted as int")
	}
	if v, ok := Payload[string](cmd); !ok || v != "text" {
		t.Errorf("payload = %q, ok=%v", v, ok)
	}
}

func TestCommandTargeting(t *testing.T) {
	cmd := NewCommand(selPing, nil)
	if cmd.Target().Kind != TargetAuto {
		t.Error("fresh command is not auto-targeted")
	}

	to := cmd.To(ToWidget(7))
	if to.Target().Kind != TargetWidget || to.Target().Widget != 7 {
		t.Errorf("To(widget) = %+v", to.Target())
	}
	// To returns a copy
	if cmd.Target().Kind != TargetAuto {
		t.Error("To mutated the original command")
	}

	if !to.Is(selPing) || to.Is(selPong) {
		t.Error("selector match broken")
	}
}

func TestWidgetIDsAreUnique(t *testing.T) {
	seen := map[WidgetID]bool{}
	for i := 0; i < 1000; i++ {
		id := NextWidgetID()
		if id == 0 {
			t.Fatal("allocated the reserved zero id")
		}
		if seen[id] {
			t.Fatalf("id %d allocated twice", id)
		}
		seen[id] = true
	}
}
