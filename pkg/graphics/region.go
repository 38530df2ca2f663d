package graphics

// Region is a collection of rectangles describing an invalidated area.
//
// The rectangles may overlap; correctness only requires that the union
// covers every invalid pixel. Adding a rect that is already covered is
// coalesced where cheap, but the region makes no effort to stay minimal.
type Region struct {
	rects []Rect
}

// RegionFromRect returns a region covering a single rectangle.
func RegionFromRect(rect Rect) Region {
	var r Region
	r.Add(rect)
	return r
}

// Add includes a rectangle in the region.
func (r *Region) Add(rect Rect) {
	if rect.IsEmpty() {
		return
	}
	for _, existing := range r.rects {
		if existing.Union(rect) == existing {
			return
		}
	}
	r.rects = append(r.rects, rect)
}

// Merge includes every rectangle of another region.
func (r *Region) Merge(other Region) {
	for _, rect := range other.rects {
		r.Add(rect)
	}
}

// Clear removes all rectangles from the region.
func (r *Region) Clear() {
	r.rects = r.rects[:0]
}

// IsEmpty reports whether the region covers no area.
func (r Region) IsEmpty() bool {
	for _, rect := range r.rects {
		if !rect.IsEmpty() {
			return false
		}
	}
	return true
}

// Rects returns the rectangles making up the region.
func (r Region) Rects() []Rect {
	return r.rects
}

// Intersects reports whether any rectangle of the region overlaps rect.
func (r Region) Intersects(rect Rect) bool {
	for _, existing := range r.rects {
		if existing.Intersects(rect) {
			return true
		}
	}
	return false
}

// BoundingBox returns the smallest rectangle covering the whole region.
func (r Region) BoundingBox() Rect {
	var out Rect
	for _, rect := range r.rects {
		out = out.Union(rect)
	}
	return out
}

// Translate returns the region moved by the given offset.
func (r Region) Translate(o Offset) Region {
	out := Region{rects: make([]Rect, 0, len(r.rects))}
	for _, rect := range r.rects {
		out.rects = append(out.rects, rect.Translate(o))
	}
	return out
}

// IntersectWith clips every rectangle of the region to the given bounds,
// dropping rectangles that fall entirely outside.
func (r *Region) IntersectWith(bounds Rect) {
	kept := r.rects[:0]
	for _, rect := range r.rects {
		clipped := rect.Intersect(bounds)
		if !clipped.IsEmpty() {
			kept = append(kept, clipped)
		}
	}
	r.rects = kept
}
