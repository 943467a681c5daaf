package spritecut

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SheetStats summarizes the sprites extracted from one sheet. The area
// figures help pick a MinArea threshold when a sheet carries stray pixels.
type SheetStats struct {
	Count      int
	MeanArea   float64
	StdDevArea float64
	MedianArea float64
	MaxWidth   int
	MaxHeight  int
}

// Summarize computes bounding-box statistics over a sprite set. An empty
// set yields the zero value.
func Summarize(sprites map[int]*Sprite) SheetStats {
	if len(sprites) == 0 {
		return SheetStats{}
	}
	st := SheetStats{Count: len(sprites)}
	areas := make([]float64, 0, len(sprites))
	for _, s := range sprites {
		areas = append(areas, float64(s.Area()))
		if s.Width() > st.MaxWidth {
			st.MaxWidth = s.Width()
		}
		if s.Height() > st.MaxHeight {
			st.MaxHeight = s.Height()
		}
	}
	sort.Float64s(areas) // Quantile requires sorted input
	st.MeanArea = stat.Mean(areas, nil)
	st.MedianArea = stat.Quantile(0.5, stat.Empirical, areas, nil)
	if len(areas) > 1 {
		st.StdDevArea = stat.StdDev(areas, nil)
	}
	return st
}
