package spritecut

import "image"

// LabelMap maps every pixel of the source sheet to the canonical label of
// the sprite it belongs to, or 0 for background. The buffer is row-major
// with len = W*H, and is read-only once built.
type LabelMap struct {
	W, H   int
	Labels []int
}

// NewLabelMap returns an all-background label map of the given dimensions.
func NewLabelMap(w, h int) *LabelMap {
	return &LabelMap{W: w, H: h, Labels: make([]int, w*h)}
}

// At returns the label at (x, y).
func (m *LabelMap) At(x, y int) int {
	return m.Labels[y*m.W+x]
}

func (m *LabelMap) set(x, y, label int) {
	m.Labels[y*m.W+x] = label
}

func (m *LabelMap) valid() bool {
	return m != nil && m.W > 0 && m.H > 0 && len(m.Labels) == m.W*m.H
}

// buildLabelMap projects resolved components onto a dense grid. Components
// are disjoint by construction, so each cell receives at most one label.
func buildLabelMap(comps map[int][]image.Point, w, h int) *LabelMap {
	m := NewLabelMap(w, h)
	for label, pts := range comps {
		for _, p := range pts {
			m.set(p.X, p.Y, label)
		}
	}
	return m
}
