package spritecut

import (
	"image"
	"image/color"
)

// pixel is the exact 16-bit RGBA quadruple of one image pixel. The labeler
// never interprets channel semantics; pixels are compared for equality only.
type pixel [4]uint32

func pixelAt(img image.Image, x, y int) pixel {
	r, g, b, a := img.At(x, y).RGBA()
	return pixel{r, g, b, a}
}

func pixelOf(c color.Color) pixel {
	r, g, b, a := c.RGBA()
	return pixel{r, g, b, a}
}

func nrgbaOf(p pixel) color.NRGBA {
	c := color.RGBA64{R: uint16(p[0]), G: uint16(p[1]), B: uint16(p[2]), A: uint16(p[3])}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FindMostCommonColor returns the pixel value occurring most often in img,
// counting every distinct value across all width×height pixels. Ties are
// broken deterministically: among values sharing the highest count, the one
// encountered first in row-major scan order wins. Returns ErrNilImage or
// ErrEmptyImage when img has no pixels to count.
func FindMostCommonColor(img image.Image) (color.NRGBA, error) {
	if img == nil {
		return color.NRGBA{}, ErrNilImage
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return color.NRGBA{}, ErrEmptyImage
	}

	counts := make(map[pixel]int)
	first := make(map[pixel]int) // row-major index of first occurrence
	for y := range h {
		for x := range w {
			p := pixelAt(img, b.Min.X+x, b.Min.Y+y)
			if _, seen := counts[p]; !seen {
				first[p] = y*w + x
			}
			counts[p]++
		}
	}

	var best pixel
	bestCount, bestFirst := 0, w*h
	for p, n := range counts {
		if n > bestCount || (n == bestCount && first[p] < bestFirst) {
			best, bestCount, bestFirst = p, n, first[p]
		}
	}
	return nrgbaOf(best), nil
}
