package spritecut

import (
	"image"
	"image/color"
	"math/rand/v2"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// RenderOptions control debug rendering only; they have no effect on
// labeling correctness.
type RenderOptions struct {
	// Background fills label-0 cells. Nil means opaque white. Any
	// color.Color is accepted, including fully transparent ones; alpha is
	// carried through to the output as-is.
	Background color.Color
	// Rand supplies per-label fill colors. Nil draws from a freshly seeded
	// generator; inject a fixed-seed source for reproducible output.
	Rand *rand.Rand
	// Palette, when non-empty, supplies fill colors in ascending label
	// order (cycling) instead of random ones.
	Palette []colorful.Color
}

// BuildDebugImage renders the label map with one opaque fill color per
// label and draws each sprite's bounding box edges in that label's color.
// Background cells take background, defaulting to opaque white when nil.
// Inputs are never mutated; the result is a brand-new image.
func BuildDebugImage(sprites map[int]*Sprite, labelMap *LabelMap, background color.Color) (*image.NRGBA, error) {
	return RenderDebugImage(sprites, labelMap, RenderOptions{Background: background})
}

// RenderDebugImage is BuildDebugImage with explicit rendering options.
func RenderDebugImage(sprites map[int]*Sprite, labelMap *LabelMap, opt RenderOptions) (*image.NRGBA, error) {
	if !labelMap.valid() {
		return nil, ErrInvalidLabelMap
	}
	for _, s := range sprites {
		if s.bottomRight.X >= labelMap.W || s.bottomRight.Y >= labelMap.H {
			return nil, ErrDimensionMismatch
		}
	}

	bg := opt.Background
	if bg == nil {
		bg = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	rng := opt.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	// Fill colors are assigned in ascending label order so a seeded source
	// always yields the same image.
	labels := make([]int, 0, len(sprites))
	for label := range sprites {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	fill := make(map[int]color.NRGBA, len(labels))
	for i, label := range labels {
		if len(opt.Palette) > 0 {
			r, g, b := opt.Palette[i%len(opt.Palette)].RGB255()
			fill[label] = color.NRGBA{R: r, G: g, B: b, A: 255}
		} else {
			fill[label] = randomFill(rng)
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, labelMap.W, labelMap.H))
	bgN := color.NRGBAModel.Convert(bg).(color.NRGBA)
	for y := range labelMap.H {
		for x := range labelMap.W {
			c, ok := fill[labelMap.At(x, y)]
			if !ok {
				// Background, or a label filtered out of the sprite set.
				c = bgN
			}
			out.SetNRGBA(x, y, c)
		}
	}
	for label, s := range sprites {
		drawBox(out, s, fill[label])
	}
	return out, nil
}

// randomFill draws three distinct channel values in [0,255) for an opaque
// fill color.
func randomFill(rng *rand.Rand) color.NRGBA {
	ch := make([]int, 0, 3)
	for len(ch) < 3 {
		v := rng.IntN(255)
		if !slices.Contains(ch, v) {
			ch = append(ch, v)
		}
	}
	return color.NRGBA{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: 255}
}

// drawBox paints the four edges of the sprite's bounding box. Corners are
// inclusive, matching Sprite's coordinate convention.
func drawBox(img *image.NRGBA, s *Sprite, c color.NRGBA) {
	tl, br := s.TopLeft(), s.BottomRight()
	for x := tl.X; x <= br.X; x++ {
		img.SetNRGBA(x, tl.Y, c)
		img.SetNRGBA(x, br.Y, c)
	}
	for y := tl.Y; y <= br.Y; y++ {
		img.SetNRGBA(tl.X, y, c)
		img.SetNRGBA(br.X, y, c)
	}
}
