package data

import "testing"

type person struct {
	Name    Str
	Age     Int
	Address address
}

type address struct {
	City Str
}

func (p person) Same(other person) bool { return p == other }
func (p person) Clone() person          { return p }

func TestFieldLens(t *testing.T) {
	lens := Field(func(p *person) *Str { return &p.Name })
	p := person{Name: "ada"}

	var seen Str
	lens.With(p, func(s Str) { seen = s })
	if seen != "ada" {
		t.Errorf("With saw %q, want %q", seen, "ada")
	}

	lens.WithMut(&p, func(s *Str) { *s = "grace" })
	if p.Name != "grace" {
		t.Errorf("WithMut wrote %q, want %q", p.Name, "grace")
	}
}

func TestMapLens(t *testing.T) {
	// a computed projection: age in months
	lens := Map(
		func(p person) Int { return p.Age * 12 },
		func(p *person, months Int) { p.Age = months / 12 },
	)
	p := person{Age: 3}

	var months Int
	lens.With(p, func(m Int) { months = m })
	if months != 36 {
		t.Errorf("got %d months, want 36", months)
	}

	lens.WithMut(&p, func(m *Int) { *m = 60 })
	if p.Age != 5 {
		t.Errorf("write-back gave age %d, want 5", p.Age)
	}
}

func TestThenLens(t *testing.T) {
	outer := Field(func(p *person) *address { return &p.Address })
	inner := Field(func(a *address) *Str { return &a.City })
	lens := Then[person, address, Str](outer, inner)

	p := person{Address: address{City: "london"}}
	lens.WithMut(&p, func(c *Str) { *c = "paris" })
	if p.Address.City != "paris" {
		t.Errorf("composed write gave %q", p.Address.City)
	}
}

func TestIDLens(t *testing.T) {
	lens := ID[Int]()
	v := Int(7)
	lens.WithMut(&v, func(i *Int) { *i += 1 })
	if v != 8 {
		t.Errorf("identity write gave %d", v)
	}
}

func TestScalarWrappers(t *testing.T) {
	if !Str("a").Same("a") || Str("a").Same("b") {
		t.Error("Str.Same broken")
	}
	if !Int(1).Same(1) || Int(1).Same(2) {
		t.Error("Int.Same broken")
	}
	if c := Str("x").Clone(); c != "x" {
		t.Errorf("Str.Clone = %q", c)
	}
}
