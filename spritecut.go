// Package spritecut extracts individual sprites from a flattened sprite
// sheet image. Foreground pixels (everything not matching the background
// color) are partitioned into connected components by a two-pass labeling
// scan with union-find equivalence resolution; each component yields one
// Sprite bounding box plus a dense per-pixel LabelMap. An optional debug
// renderer color-codes the result for visual verification.
package spritecut

import (
	"image"
	"image/color"
)

// Options control a single extraction run.
type Options struct {
	// Background is the exact pixel value treated as "not part of any
	// sprite". Nil means detect it with FindMostCommonColor.
	Background color.Color
	// Connectivity selects 8-way (default) or 4-way neighborhoods.
	Connectivity Connectivity
	// MinArea drops components with fewer pixels than this after
	// resolution. Sprite sheets often carry stray specks; 0 keeps
	// everything.
	MinArea int
}

// DefaultOptions returns the baseline configuration: auto-detected
// background, 8-connectivity, no speck filtering.
func DefaultOptions() Options {
	return Options{Connectivity: Conn8}
}

// FindSprites partitions the foreground of img into connected components
// and returns one Sprite per component, keyed by canonical label, together
// with the label map. A nil background is detected via FindMostCommonColor.
func FindSprites(img image.Image, background color.Color) (map[int]*Sprite, *LabelMap, error) {
	opt := DefaultOptions()
	opt.Background = background
	return Extract(img, opt)
}

// Extract runs the full pipeline with explicit options. Canonical labels
// are defined by the row-major scan order, so repeated runs over the same
// input produce identical sprites and label maps.
func Extract(img image.Image, opt Options) (map[int]*Sprite, *LabelMap, error) {
	if img == nil {
		return nil, nil, ErrNilImage
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, nil, ErrEmptyImage
	}

	background := opt.Background
	if background == nil {
		detected, err := FindMostCommonColor(img)
		if err != nil {
			return nil, nil, err
		}
		background = detected
	}

	l := newLabeler(w, h)
	l.scan(img, pixelOf(background), opt.Connectivity)
	comps := l.resolve()

	if opt.MinArea > 0 {
		for label, pts := range comps {
			if len(pts) < opt.MinArea {
				delete(comps, label)
			}
		}
	}

	sprites := make(map[int]*Sprite, len(comps))
	for label, pts := range comps {
		s, err := boundingSprite(label, pts)
		if err != nil {
			return nil, nil, err
		}
		sprites[label] = s
	}
	return sprites, buildLabelMap(comps, w, h), nil
}
