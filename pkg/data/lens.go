package data

// Lens is a reversible mapping from an outer state value to an inner one.
//
// Access is scoped through callbacks rather than returned references so
// that a lens backed by a computed projection can write changes back into
// the outer value when the callback returns. With must not mutate; WithMut
// receives a mutable inner value and writes it back.
type Lens[S, A any] interface {
	With(data S, f func(A))
	WithMut(data *S, f func(*A))
}

// Field returns a lens addressing a struct field (or any other stable
// interior location) through an accessor that maps an outer pointer to an
// inner pointer.
func Field[S, A any](access func(*S) *A) Lens[S, A] {
	return fieldLens[S, A]{access: access}
}

type fieldLens[S, A any] struct {
	access func(*S) *A
}

func (l fieldLens[S, A]) With(data S, f func(A)) {
	f(*l.access(&data))
}

func (l fieldLens[S, A]) WithMut(data *S, f func(*A)) {
	f(l.access(data))
}

// Map returns a lens built from a getter and a putter, for projections
// that compute the inner value rather than referencing it in place.
func Map[S, A any](get func(S) A, put func(*S, A)) Lens[S, A] {
	return mapLens[S, A]{get: get, put: put}
}

type mapLens[S, A any] struct {
	get func(S) A
	put func(*S, A)
}

func (l mapLens[S, A]) With(data S, f func(A)) {
	f(l.get(data))
}

func (l mapLens[S, A]) WithMut(data *S, f func(*A)) {
	inner := l.get(*data)
	f(&inner)
	l.put(data, inner)
}

// ID returns the identity lens.
func ID[T any]() Lens[T, T] {
	return idLens[T]{}
}

type idLens[T any] struct{}

func (idLens[T]) With(data T, f func(T)) {
	f(data)
}

func (idLens[T]) WithMut(data *T, f func(*T)) {
	f(data)
}

// Then composes two lenses: the result reads and writes the innermost
// value through both mappings.
func Then[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return thenLens[S, A, B]{outer: outer, inner: inner}
}

type thenLens[S, A, B any] struct {
	outer Lens[S, A]
	inner Lens[A, B]
}

func (l thenLens[S, A, B]) With(data S, f func(B)) {
	l.outer.With(data, func(a A) {
		l.inner.With(a, f)
	})
}

func (l thenLens[S, A, B]) WithMut(data *S, f func(*B)) {
	l.outer.WithMut(data, func(a *A) {
		l.inner.WithMut(a, f)
	})
}
