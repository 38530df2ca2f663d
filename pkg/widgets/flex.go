package widgets

import (
	"math"

	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// Axis selects the main direction of a Flex container.
type Axis int

const (
	// Horizontal lays children out left to right.
	Horizontal Axis = iota
	// Vertical lays children out top to bottom.
	Vertical
)

func (a Axis) major(s graphics.Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

func (a Axis) minor(s graphics.Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

func (a Axis) pack(major, minor float64) graphics.Size {
	if a == Horizontal {
		return graphics.Size{Width: major, Height: minor}
	}
	return graphics.Size{Width: minor, Height: major}
}

type flexChild[T data.Data[T]] struct {
	pod  *core.Pod[T]
	flex float64
}

// Flex lays out children along one axis. Fixed children take the size
// they ask for; flex children split the remaining space by their flex
// factors. Children are separated by the themed spacing.
//
// Later children are painted over earlier ones, and pointer events visit
// them in the opposite order so the topmost widget gets first claim.
type Flex[T data.Data[T]] struct {
	axis     Axis
	children []flexChild[T]
}

// NewRow returns an empty horizontal Flex.
func NewRow[T data.Data[T]]() *Flex[T] {
	return &Flex[T]{axis: Horizontal}
}

// NewColumn returns an empty vertical Flex.
func NewColumn[T data.Data[T]]() *Flex[T] {
	return &Flex[T]{axis: Vertical}
}

// AddChild appends a fixed child. Returns the Flex for chaining.
func (f *Flex[T]) AddChild(w core.Widget[T]) *Flex[T] {
	f.children = append(f.children, flexChild[T]{pod: core.NewPod(w)})
	return f
}

// AddFlexChild appends a child that takes a share of the remaining main
// axis space proportional to flex.
func (f *Flex[T]) AddFlexChild(w core.Widget[T], flex float64) *Flex[T] {
	f.children = append(f.children, flexChild[T]{pod: core.NewPod(w), flex: flex})
	return f
}

// ChildPod returns the pod of the i-th child.
func (f *Flex[T]) ChildPod(i int) *core.Pod[T] {
	return f.children[i].pod
}

func (f *Flex[T]) Event(ctx *core.EventCtx, event core.Event, d *T, e env.Env) {
	if core.IsPointerEvent(event) {
		// topmost (last painted) child claims pointer events first
		for i := len(f.children) - 1; i >= 0; i-- {
			f.children[i].pod.Event(ctx, event, d, e)
		}
		return
	}
	for _, child := range f.children {
		child.pod.Event(ctx, event, d, e)
	}
}

func (f *Flex[T]) Lifecycle(ctx *core.LifecycleCtx, event core.LifecycleEvent, d T, e env.Env) {
	for _, child := range f.children {
		child.pod.Lifecycle(ctx, event, d, e)
	}
}

func (f *Flex[T]) Update(ctx *core.UpdateCtx, oldData, d T, e env.Env) {
	for _, child := range f.children {
		child.pod.Update(ctx, d, e)
	}
}

func (f *Flex[T]) Layout(ctx *core.LayoutCtx, bc graphics.Constraints, d T, e env.Env) graphics.Size {
	spacing := env.Get(e, WidgetSpacing)
	axis := f.axis

	majorMax := axis.major(bc.Max)
	minorMax := axis.minor(bc.Max)

	totalSpacing := 0.0
	if len(f.children) > 1 {
		totalSpacing = spacing * float64(len(f.children)-1)
	}

	// fixed children first, unbounded along the main axis
	majorUsed := totalSpacing
	minorUsed := 0.0
	totalFlex := 0.0
	for _, child := range f.children {
		if child.flex > 0 {
			totalFlex += child.flex
			continue
		}
		childBC := graphics.Constraints{Max: axis.pack(math.Inf(1), minorMax)}
		size := child.pod.Layout(ctx, childBC, d, e)
		majorUsed += axis.major(size)
		minorUsed = math.Max(minorUsed, axis.minor(size))
	}

	// flex children split what remains
	if totalFlex > 0 {
		remaining := math.Max(0, majorMax-majorUsed)
		for _, child := range f.children {
			if child.flex == 0 {
				continue
			}
			share := remaining * child.flex / totalFlex
			childBC := graphics.Constraints{Max: axis.pack(share, minorMax)}
			size := child.pod.Layout(ctx, childBC, d, e)
			majorUsed += axis.major(size)
			minorUsed = math.Max(minorUsed, axis.minor(size))
		}
	}

	// place children in declaration order
	offset := 0.0
	for _, child := range f.children {
		var origin graphics.Offset
		if axis == Horizontal {
			origin = graphics.Offset{X: offset}
		} else {
			origin = graphics.Offset{Y: offset}
		}
		child.pod.SetOrigin(ctx, origin)
		offset += axis.major(child.pod.Size()) + spacing
	}

	return bc.Constrain(axis.pack(majorUsed, minorUsed))
}

func (f *Flex[T]) Paint(ctx *core.PaintCtx, d T, e env.Env) {
	for _, child := range f.children {
		child.pod.Paint(ctx, d, e)
	}
}
