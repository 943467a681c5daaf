// Package utils provides image I/O and palette helpers for the spritecut
// examples and debug tooling.
package utils

import (
	"cmp"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"slices"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"golang.org/x/image/draw"
)

// PaletteMethod selects how ExtractPalette derives colors from a sheet.
type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// SuggestBackground returns a clustered estimate of the sheet's dominant
// color. Faster than spritecut.FindMostCommonColor on large sheets but
// approximate: use it for previews, not for exact background matching.
func SuggestBackground(img image.Image) color.NRGBA {
	c := dominantcolor.Find(img)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ExtractPalette derives k visually distinct colors from the sheet, handy
// as debug fill colors that relate to the artwork. The kmeans method falls
// back to dominantcolor when clustering yields nothing.
func ExtractPalette(img image.Image, k int, method PaletteMethod) []colorful.Color {
	switch method {
	case PaletteMethodKMeans:
		if p := kmeansPalette(img, k); len(p) != 0 {
			return p
		}
		log.Println("palette: kmeans produced no clusters, falling back to dominantcolor")
		return dominantPalette(img, k)
	default:
		return dominantPalette(img, k)
	}
}

func dominantPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	cands := dominantcolor.FindWeight(img, max(16, k*4))
	cols := make([]colorful.Color, 0, len(cands))
	for _, c := range cands {
		col, _ := colorful.MakeColor(c.RGBA)
		cols = append(cols, col.Clamped())
	}
	if len(cols) == 0 {
		return nil
	}
	return pickDistinct(cols, k)
}

func kmeansPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large sheets.
	const maxSamples = 12000
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/maxSamples)) + 1
	}
	dataset := make(clusters.Observations, 0, min(w*h, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*2, k+2), len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}
	// Largest clusters first so dominant tones survive the distinct pick.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return cmp.Compare(len(b.Observations), len(a.Observations))
	})
	cols := make([]colorful.Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		cols = append(cols, colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped())
	}
	if len(cols) == 0 {
		return nil
	}
	return pickDistinct(cols, k)
}

// pickDistinct greedily selects k colors, starting from the strongest
// candidate and always taking the one farthest (in Lab space) from the
// colors chosen so far.
func pickDistinct(cols []colorful.Color, k int) []colorful.Color {
	if k > len(cols) {
		k = len(cols)
	}
	out := make([]colorful.Color, 0, k)
	out = append(out, cols[0])
	used := make([]bool, len(cols))
	used[0] = true
	for len(out) < k {
		bestIdx, bestDist := -1, -1.0
		for i, c := range cols {
			if used[i] {
				continue
			}
			minD := math.MaxFloat64
			for _, s := range out {
				if d := c.DistanceLab(s); d < minD {
					minD = d
				}
			}
			if minD > bestDist {
				bestDist, bestIdx = minD, i
			}
		}
		if bestIdx < 0 {
			break
		}
		used[bestIdx] = true
		out = append(out, cols[bestIdx])
	}
	return out
}

// SortPaletteByLightness orders colors darkest first, so palette-driven
// debug fills keep their relative brightness stable across runs.
func SortPaletteByLightness(p []colorful.Color) {
	slices.SortFunc(p, func(a, b colorful.Color) int {
		la, _, _ := a.Lab()
		lb, _, _ := b.Lab()
		return cmp.Compare(la, lb)
	})
}

// ReadImage decodes a sheet from disk. PNG, JPEG and GIF are registered.
func ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// SaveImage writes img to filename as PNG.
func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveImageScaled writes img scaled up by an integer factor using nearest
// neighbor sampling, keeping pixel-art edges crisp in debug output.
func SaveImageScaled(img image.Image, factor int, filename string) error {
	if factor <= 1 {
		return SaveImage(img, filename)
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return SaveImage(dst, filename)
}
