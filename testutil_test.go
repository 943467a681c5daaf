package spritecut

import (
	"image"
	"image/color"
)

var (
	testWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// sheetFromRows builds a test sheet from rune rows: '.' is white (the
// background in most tests), any other rune becomes a distinct opaque
// color derived from the rune value.
func sheetFromRows(rows ...string) *image.NRGBA {
	h := len(rows)
	w := len(rows[0])
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, r := range row {
			c := testWhite
			if r != '.' {
				c = color.NRGBA{R: uint8(r), G: uint8(r * 3), B: uint8(r * 7), A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
