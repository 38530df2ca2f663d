package core

import "fmt"

const bloomBits = 64

// FNV-1a offset bases for the two hash functions. The first is the
// standard 64-bit offset basis, the second is random.
const (
	bloomOffsetOne = 0xcbf29ce484222325
	bloomOffsetTwo = 0x0e103ad82dad8028
)

const fnvPrime = 0x100000001b3

// Bloom is a very simple Bloom filter over widget ids, optimized for the
// small descendant sets found under a typical container.
//
// It can return false positives, but never false negatives: MayContain
// returning false means the id was definitely never added. Entries are
// only removed by clearing the whole filter and re-registering the
// subtree.
type Bloom struct {
	bits    uint64
	entries int
}

// Add inserts an id into the filter.
func (b *Bloom) Add(id WidgetID) {
	b.bits |= bloomMask(id)
	b.entries++
}

// MayContain reports whether the id may have been added to the filter.
// True means "maybe"; false means "definitely not".
func (b Bloom) MayContain(id WidgetID) bool {
	mask := bloomMask(id)
	return b.bits&mask == mask
}

// Union returns a filter containing the entries of both filters.
func (b Bloom) Union(other Bloom) Bloom {
	return Bloom{
		bits:    b.bits | other.bits,
		entries: b.entries + other.entries,
	}
}

// Clear removes all entries from the filter.
func (b *Bloom) Clear() {
	b.bits = 0
	b.entries = 0
}

// EntryCount returns the number of times Add was called since the filter
// was created or last cleared. Duplicate adds are counted twice.
func (b Bloom) EntryCount() int {
	return b.entries
}

func (b Bloom) String() string {
	return fmt.Sprintf("Bloom: %064b (%d)", b.bits, b.entries)
}

// bloomMask combines two hashes, which performs better than a single
// hash for small entry counts; with 64 bits the crossover is around 30
// items, and filters near the leaves are far smaller than that.
func bloomMask(id WidgetID) uint64 {
	h1 := fnv1a(bloomOffsetOne, uint64(id))
	h2 := fnv1a(bloomOffsetTwo, uint64(id))
	return (1 << (h1 % bloomBits)) | (1 << (h2 % bloomBits))
}

func fnv1a(basis, v uint64) uint64 {
	h := uint64(basis)
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= fnvPrime
		v >>= 8
	}
	return h
}
