// Package data defines the value-type contracts the dispatch engine uses
// to detect state changes without deep comparison.
package data

// Data is the equality oracle implemented by every application state type
// (and every projected slice of one).
//
// Same must be cheap. It may report false ("changed") for values that are
// in fact equal, but must never report true for values that differ: a
// false positive costs one redundant update call, a false negative would
// silently skip a repaint.
//
// Clone must return a value that is independent for the purposes of
// mutation through the engine. Plain value structs can return themselves;
// types embedding shared containers should rely on structural sharing
// (copy-on-write) rather than deep copying.
type Data[T any] interface {
	Same(other T) bool
	Clone() T
}
