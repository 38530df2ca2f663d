package data

// Wrapper types implementing Data for common scalars, so leaf widgets can
// operate on a projected scalar slice of the application state.

// Str is a string implementing Data.
type Str string

func (s Str) Same(other Str) bool { return s == other }
func (s Str) Clone() Str          { return s }

// Int is an int64 implementing Data.
type Int int64

func (i Int) Same(other Int) bool { return i == other }
func (i Int) Clone() Int          { return i }

// Float is a float64 implementing Data. Same is exact comparison; treat
// derived floats accordingly.
type Float float64

func (f Float) Same(other Float) bool { return f == other }
func (f Float) Clone() Float          { return f }

// Bool is a bool implementing Data.
type Bool bool

func (b Bool) Same(other Bool) bool { return b == other }
func (b Bool) Clone() Bool          { return b }
