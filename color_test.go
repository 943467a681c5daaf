package spritecut

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMostCommonColor_NilImage(t *testing.T) {
	_, err := FindMostCommonColor(nil)
	require.ErrorIs(t, err, ErrNilImage)
}

func TestFindMostCommonColor_EmptyImage(t *testing.T) {
	_, err := FindMostCommonColor(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	require.ErrorIs(t, err, ErrEmptyImage)
}

func TestFindMostCommonColor_Uniform(t *testing.T) {
	img := sheetFromRows(
		"...",
		"...",
	)
	got, err := FindMostCommonColor(img)
	require.NoError(t, err)
	assert.Equal(t, testWhite, got)
}

func TestFindMostCommonColor_Majority(t *testing.T) {
	img := sheetFromRows(
		".#.",
		"...",
		".#.",
	)
	got, err := FindMostCommonColor(img)
	require.NoError(t, err)
	assert.Equal(t, testWhite, got)
}

// Two values covering exactly half the pixels each: the one appearing
// first in row-major order must win.
func TestFindMostCommonColor_TieBreakRowMajor(t *testing.T) {
	img := sheetFromRows(
		"ab",
		"ba",
	)
	got, err := FindMostCommonColor(img)
	require.NoError(t, err)
	assert.Equal(t, sheetFromRows("a").NRGBAAt(0, 0), got)

	// Same pixels with the scan order reversed flips the winner.
	img2 := sheetFromRows(
		"ba",
		"ab",
	)
	got2, err := FindMostCommonColor(img2)
	require.NoError(t, err)
	assert.Equal(t, sheetFromRows("b").NRGBAAt(0, 0), got2)
}
