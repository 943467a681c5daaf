package spritecut

import (
	"fmt"
	"image"
)

// Sprite is the tightest axis-aligned bounding box around one connected
// foreground component, identified by its canonical label. A Sprite is
// immutable after construction; its box may cover background pixels when
// the component's shape is non-convex.
type Sprite struct {
	label       int
	topLeft     image.Point
	bottomRight image.Point
}

// NewSprite validates the corner coordinates and builds a Sprite.
// Returns ErrInvalidGeometry when label or any coordinate is negative,
// x1 > x2, or y1 > y2.
func NewSprite(label, x1, y1, x2, y2 int) (*Sprite, error) {
	if label < 0 || x1 < 0 || y1 < 0 || x2 < x1 || y2 < y1 {
		return nil, fmt.Errorf("%w: label=%d box=(%d,%d)-(%d,%d)",
			ErrInvalidGeometry, label, x1, y1, x2, y2)
	}
	return &Sprite{
		label:       label,
		topLeft:     image.Pt(x1, y1),
		bottomRight: image.Pt(x2, y2),
	}, nil
}

// Label returns the canonical component label of the sprite.
func (s *Sprite) Label() int { return s.label }

// TopLeft returns the top-left corner of the bounding box.
func (s *Sprite) TopLeft() image.Point { return s.topLeft }

// BottomRight returns the bottom-right corner of the bounding box.
// Both corners are inclusive.
func (s *Sprite) BottomRight() image.Point { return s.bottomRight }

// Width returns the horizontal pixel extent of the sprite.
func (s *Sprite) Width() int { return s.bottomRight.X - s.topLeft.X + 1 }

// Height returns the vertical pixel extent of the sprite.
func (s *Sprite) Height() int { return s.bottomRight.Y - s.topLeft.Y + 1 }

// Area returns Width*Height, the pixel area of the bounding box.
func (s *Sprite) Area() int { return s.Width() * s.Height() }

// Bounds returns the box as a half-open image.Rectangle, convenient for
// cropping the sprite out of the source sheet with SubImage.
func (s *Sprite) Bounds() image.Rectangle {
	return image.Rect(s.topLeft.X, s.topLeft.Y, s.bottomRight.X+1, s.bottomRight.Y+1)
}

func (s *Sprite) String() string {
	return fmt.Sprintf("Sprite(%d): [%v, %v] %dx%d",
		s.label, s.topLeft, s.bottomRight, s.Width(), s.Height())
}

// boundingSprite computes the tightest box around a component's pixels.
func boundingSprite(label int, pts []image.Point) (*Sprite, error) {
	x1, y1 := pts[0].X, pts[0].Y
	x2, y2 := x1, y1
	for _, p := range pts[1:] {
		if p.X < x1 {
			x1 = p.X
		}
		if p.X > x2 {
			x2 = p.X
		}
		if p.Y < y1 {
			y1 = p.Y
		}
		if p.Y > y2 {
			y2 = p.Y
		}
	}
	return NewSprite(label, x1, y1, x2, y2)
}
