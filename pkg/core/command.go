package core

import "fmt"

// Selector identifies the meaning of a command or notification. Each
// selector should be declared as a package-level constant with a
// reverse-DNS-ish unique name.
type Selector string

// TargetKind discriminates command addressing modes.
type TargetKind int

const (
	// TargetAuto is resolved to the submitting window when the command is
	// queued.
	TargetAuto TargetKind = iota
	// TargetGlobal broadcasts to every window.
	TargetGlobal
	// TargetWindow broadcasts to one window's whole tree.
	TargetWindow
	// TargetWidget addresses a single widget by id.
	TargetWidget
)

// Target is a command's addressing mode.
type Target struct {
	Kind   TargetKind
	Window WindowID
	Widget WidgetID
}

// Global returns the broadcast-to-all-windows target.
func Global() Target {
	return Target{Kind: TargetGlobal}
}

// ToWindow returns a target addressing one window's tree.
func ToWindow(id WindowID) Target {
	return Target{Kind: TargetWindow, Window: id}
}

// ToWidget returns a target addressing a single widget.
func ToWidget(id WidgetID) Target {
	return Target{Kind: TargetWidget, Widget: id}
}

func (t Target) String() string {
	switch t.Kind {
	case TargetGlobal:
		return "Global"
	case TargetWindow:
		return fmt.Sprintf("Window(%d)", t.Window)
	case TargetWidget:
		return fmt.Sprintf("Widget(%d)", t.Widget)
	default:
		return "Auto"
	}
}

// Command is an addressed message with an arbitrary typed payload,
// queued during a pass and delivered strictly after it.
type Command struct {
	selector Selector
	payload  any
	target   Target
}

// NewCommand creates a command with an auto target; use To to address it.
func NewCommand(selector Selector, payload any) Command {
	return Command{selector: selector, payload: payload}
}

// To returns the command re-addressed to the given target.
func (c Command) To(target Target) Command {
	c.target = target
	return c
}

// Is reports whether the command carries the given selector.
func (c Command) Is(selector Selector) bool {
	return c.selector == selector
}

// Selector returns the command's selector.
func (c Command) Selector() Selector {
	return c.selector
}

// Target returns the command's addressing mode.
func (c Command) Target() Target {
	return c.target
}

// Payload extracts the command's payload as type T. The second return is
// false if the payload has another type.
func Payload[T any](c Command) (T, bool) {
	v, ok := c.payload.(T)
	return v, ok
}

// Notification is a message submitted by a widget during an event pass
// and bubbled to its ancestors within the same pass. Notifications that
// no ancestor handles are dropped at the window with a log line.
type Notification struct {
	selector Selector
	payload  any
	source   WidgetID
	route    WidgetID
}

// Is reports whether the notification carries the given selector.
func (n Notification) Is(selector Selector) bool {
	return n.selector == selector
}

// Selector returns the notification's selector.
func (n Notification) Selector() Selector {
	return n.selector
}

// Source returns the id of the widget that submitted the notification.
func (n Notification) Source() WidgetID {
	return n.source
}

// Route returns the id of the last widget the notification passed
// through on its way up.
func (n Notification) Route() WidgetID {
	return n.route
}

// NotificationPayload extracts the notification's payload as type T.
func NotificationPayload[T any](n Notification) (T, bool) {
	v, ok := n.payload.(T)
	return v, ok
}

// CommandQueue is the FIFO of commands awaiting delivery. Messages queued
// while another message is being handled are appended, never interleaved.
type CommandQueue struct {
	items []Command
}

// Push appends a command to the queue.
func (q *CommandQueue) Push(cmd Command) {
	q.items = append(q.items, cmd)
}

// PopFront removes and returns the oldest command.
func (q *CommandQueue) PopFront() (Command, bool) {
	if len(q.items) == 0 {
		return Command{}, false
	}
	cmd := q.items[0]
	q.items = q.items[1:]
	return cmd, true
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return len(q.items)
}
