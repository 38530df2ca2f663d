// Package env provides the keyed, overlay-chained environment passed to
// every widget on every pass.
//
// An Env is immutable once handed down: Adding returns a fresh copy with
// one value replaced, so a subtree can see a locally-overridden
// environment while its siblings keep sharing the parent's. Because envs
// never mutate in place they are freely shareable without locks.
package env

import (
	"fmt"
	"sync"

	"github.com/go-keel/keel/pkg/errors"
)

// Env is a read-only keyed value store (fonts, colors, spacing, locale
// strings). The zero value is not usable; start from Empty.
type Env struct {
	store *store
}

type store struct {
	values map[string]any
}

// Key is a typed handle for an environment value.
//
// Keys are declared once, at package init time, with NewKey; declaring a
// key registers its name for profile loading.
type Key[T any] struct {
	name string
}

// Name returns the string identity of the key.
func (k Key[T]) Name() string {
	return k.name
}

var (
	registryMu sync.Mutex
	registry   = map[string]func(raw any) (any, error){}
)

// NewKey declares a typed environment key. Key names must be unique
// process-wide; redeclaring a name reports misuse and returns the key
// anyway so init order bugs stay visible but non-fatal.
func NewKey[T any](name string) Key[T] {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		errors.Misuse("env.NewKey", "duplicate env key %q", name)
	}
	registry[name] = func(raw any) (any, error) {
		return convert[T](raw)
	}
	return Key[T]{name: name}
}

// Empty returns an environment with no values.
func Empty() Env {
	return Env{store: &store{values: map[string]any{}}}
}

// Same reports whether two environments are the same overlay. Envs are
// copy-on-write, so pointer identity is exact: true means no value can
// differ.
func (e Env) Same(other Env) bool {
	return e.store == other.store
}

// Get returns the value for the key. A missing key or a value of the
// wrong type is reported and yields the zero value; widgets degrade
// rather than abort.
func Get[T any](e Env, key Key[T]) T {
	v, err := TryGet(e, key)
	if err != nil {
		errors.Report("env.Get", errors.KindEnv, err)
	}
	return v
}

// TryGet returns the value for the key, or an error if the key is absent
// or holds a value of another type.
func TryGet[T any](e Env, key Key[T]) (T, error) {
	var zero T
	if e.store == nil {
		return zero, fmt.Errorf("env key %q read from zero Env", key.name)
	}
	raw, ok := e.store.values[key.name]
	if !ok {
		return zero, fmt.Errorf("env key %q not found", key.name)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("env key %q holds %T, not %T", key.name, raw, zero)
	}
	return v, nil
}

// Adding returns a new environment with the key set. The receiving env is
// untouched; existing values are shared structurally.
func Adding[T any](e Env, key Key[T], value T) Env {
	next := cloneStore(e.store)
	next.values[key.name] = value
	return Env{store: next}
}

func cloneStore(s *store) *store {
	next := &store{values: make(map[string]any, len(sValues(s))+1)}
	for k, v := range sValues(s) {
		next.values[k] = v
	}
	return next
}

func sValues(s *store) map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}
