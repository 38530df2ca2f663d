package core

import "testing"

func TestBloomNeverFalseNegative(t *testing.T) {
	var b Bloom
	for id := WidgetID(1); id <= 100; id++ {
		b.Add(id)
		if !b.MayContain(id) {
			t.Fatalf("id %d missing immediately after Add", id)
		}
	}
	// everything previously added must still be reported
	for id := WidgetID(1); id <= 100; id++ {
		if !b.MayContain(id) {
			t.Errorf("id %d lost after later adds", id)
		}
	}
	if b.EntryCount() != 100 {
		t.Errorf("EntryCount = %d, want 100", b.EntryCount())
	}
}

func TestBloomEmptyContainsNothing(t *testing.T) {
	var b Bloom
	for id := WidgetID(1); id <= 64; id++ {
		if b.MayContain(id) {
			t.Errorf("empty filter claims to contain %d", id)
		}
	}
}

func TestBloomUnion(t *testing.T) {
	var a, b Bloom
	a.Add(1)
	a.Add(2)
	b.Add(100)
	b.Add(200)

	u := a.Union(b)
	for _, id := range []WidgetID{1, 2, 100, 200} {
		if !u.MayContain(id) {
			t.Errorf("union missing %d", id)
		}
	}
	if u.EntryCount() != 4 {
		t.Errorf("union EntryCount = %d, want 4", u.EntryCount())
	}
	// operands untouched
	if a.MayContain(100) && a.MayContain(200) {
		t.Error("union mutated operand")
	}
}

func TestBloomClear(t *testing.T) {
	var b Bloom
	b.Add(42)
	b.Clear()
	if b.MayContain(42) {
		t.Error("cleared filter still contains 42")
	}
	if b.EntryCount() != 0 {
		t.Errorf("cleared EntryCount = %d", b.EntryCount())
	}
}

func TestBloomFalsePositiveRateIsSane(t *testing.T) {
	// With a handful of entries the 64-bit double-hash filter should stay
	// far from saturated.
	var b Bloom
	for id := WidgetID(1); id <= 8; id++ {
		b.Add(id)
	}
	hits := 0
	for id := WidgetID(1000); id < 2000; id++ {
		if b.MayContain(id) {
			hits++
		}
	}
	if hits > 200 {
		t.Errorf("false positive rate too high: %d/1000", hits)
	}
}
