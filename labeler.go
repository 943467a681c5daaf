package spritecut

import (
	"image"
	"slices"
)

// Connectivity selects which pixels count as neighbors during labeling.
type Connectivity int

const (
	// Conn8 connects pixels sharing an edge or a corner.
	Conn8 Connectivity = iota
	// Conn4 connects pixels sharing an edge only.
	Conn4
)

var (
	conn8Offsets = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	conn4Offsets = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
)

func (c Connectivity) offsets() [][2]int {
	if c == Conn4 {
		return conn4Offsets
	}
	return conn8Offsets
}

// labeler holds the state of one two-pass connected-component run.
// Provisional labels are 1-based; slice index = label-1. The grid stores a
// provisional label per pixel with 0 meaning background.
type labeler struct {
	w, h   int
	grid   []int
	arena  [][]image.Point // pixels collected per provisional label
	parent []int           // union-find over provisional labels
	eqs    [][]int         // distinct-label sets recorded during the scan
}

func newLabeler(w, h int) *labeler {
	return &labeler{w: w, h: h, grid: make([]int, w*h)}
}

func (l *labeler) newLabel() int {
	label := len(l.parent) + 1
	l.parent = append(l.parent, label)
	l.arena = append(l.arena, nil)
	return label
}

// scan is the first pass: visit pixels in row-major order, skip background,
// and label each foreground pixel from its already-labeled neighbors. A
// neighborhood carrying two or more distinct labels takes the minimum and
// records the full set as an equivalence to resolve later.
func (l *labeler) scan(img image.Image, bg pixel, conn Connectivity) {
	b := img.Bounds()
	offsets := conn.offsets()
	seen := make([]int, 0, len(offsets))
	for y := range l.h {
		for x := range l.w {
			if pixelAt(img, b.Min.X+x, b.Min.Y+y) == bg {
				continue
			}
			seen = seen[:0]
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= l.w || ny < 0 || ny >= l.h {
					continue
				}
				if lab := l.grid[ny*l.w+nx]; lab != 0 && !slices.Contains(seen, lab) {
					seen = append(seen, lab)
				}
			}
			var label int
			switch len(seen) {
			case 0:
				label = l.newLabel()
			case 1:
				label = seen[0]
			default:
				label = slices.Min(seen)
				l.eqs = append(l.eqs, slices.Clone(seen))
			}
			l.grid[y*l.w+x] = label
			l.arena[label-1] = append(l.arena[label-1], image.Pt(x, y))
		}
	}
}

// find walks to the class root with path compression.
func (l *labeler) find(a int) int {
	for l.parent[a-1] != a {
		l.parent[a-1] = l.parent[l.parent[a-1]-1]
		a = l.parent[a-1]
	}
	return a
}

// union links the classes of a and b so that the smaller label stays the
// root, and returns that root. Keeping the minimum at the root makes
// find(label) the canonical id directly.
func (l *labeler) union(a, b int) int {
	ra, rb := l.find(a), l.find(b)
	if ra == rb {
		return ra
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	l.parent[rb-1] = ra
	return ra
}

// resolve is the second pass: union every recorded equivalence set, then
// fold each provisional arena into its canonical (minimum-of-closure) label.
// The result maps canonical labels to their component's pixels.
func (l *labeler) resolve() map[int][]image.Point {
	for _, eq := range l.eqs {
		root := eq[0]
		for _, lab := range eq[1:] {
			root = l.union(root, lab)
		}
	}
	comps := make(map[int][]image.Point, len(l.arena))
	for i, pts := range l.arena {
		canon := l.find(i + 1)
		comps[canon] = append(comps[canon], pts...)
	}
	return comps
}
