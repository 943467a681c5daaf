package spritecut

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_NilImage(t *testing.T) {
	_, _, err := Extract(nil, DefaultOptions())
	require.ErrorIs(t, err, ErrNilImage)
}

func TestExtract_EmptyImage(t *testing.T) {
	_, _, err := Extract(image.NewNRGBA(image.Rect(0, 0, 0, 0)), DefaultOptions())
	require.ErrorIs(t, err, ErrEmptyImage)
}

func TestFindSprites_UniformSheet(t *testing.T) {
	img := sheetFromRows(
		"...",
		"...",
	)
	sprites, lm, err := FindSprites(img, nil)
	require.NoError(t, err)
	assert.Empty(t, sprites)
	require.Equal(t, 3, lm.W)
	require.Equal(t, 2, lm.H)
	for _, label := range lm.Labels {
		assert.Zero(t, label)
	}
}

// TestExtract_Partitioning checks component grouping and bounding boxes
// for the canonical connectivity shapes. The expected map is keyed by
// canonical label; boxes are half-open rectangles as Sprite.Bounds returns.
func TestExtract_Partitioning(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		conn Connectivity
		want map[int]image.Rectangle
	}{
		{
			name: "single blob",
			rows: []string{
				".....",
				".###.",
				".###.",
				".....",
			},
			want: map[int]image.Rectangle{1: image.Rect(1, 1, 4, 3)},
		},
		{
			name: "diagonal pixels merge under 8-connectivity",
			rows: []string{
				"#..",
				".#.",
				"...",
			},
			want: map[int]image.Rectangle{1: image.Rect(0, 0, 2, 2)},
		},
		{
			name: "diagonal pixels split under 4-connectivity",
			rows: []string{
				"#..",
				".#.",
				"...",
			},
			conn: Conn4,
			want: map[int]image.Rectangle{
				1: image.Rect(0, 0, 1, 1),
				2: image.Rect(1, 1, 2, 2),
			},
		},
		{
			name: "gap breaks connectivity",
			rows: []string{
				"#..",
				"...",
				"..#",
			},
			want: map[int]image.Rectangle{
				1: image.Rect(0, 0, 1, 1),
				2: image.Rect(2, 2, 3, 3),
			},
		},
		{
			name: "comb resolves chained equivalences",
			rows: []string{
				"#.#.#",
				"#####",
			},
			want: map[int]image.Rectangle{1: image.Rect(0, 0, 5, 2)},
		},
		{
			name: "u-shape joins indirect neighbors",
			rows: []string{
				"#.#",
				"#.#",
				"###",
			},
			want: map[int]image.Rectangle{1: image.Rect(0, 0, 3, 3)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := sheetFromRows(tc.rows...)
			sprites, lm, err := Extract(img, Options{Background: testWhite, Connectivity: tc.conn})
			require.NoError(t, err)
			require.Len(t, sprites, len(tc.want))
			for label, bounds := range tc.want {
				s := sprites[label]
				require.NotNilf(t, s, "missing sprite for label %d", label)
				assert.Equal(t, label, s.Label())
				assert.Equal(t, bounds, s.Bounds())
			}
			assertLabelMapConsistent(t, sprites, lm, tc.rows)
		})
	}
}

// assertLabelMapConsistent verifies label-map disjointness against the
// foreground mask and bounding-box containment for every labeled cell.
func assertLabelMapConsistent(t *testing.T, sprites map[int]*Sprite, lm *LabelMap, rows []string) {
	t.Helper()
	for y, row := range rows {
		for x, r := range row {
			label := lm.At(x, y)
			if r == '.' {
				assert.Zerof(t, label, "background cell (%d,%d) carries label %d", x, y, label)
				continue
			}
			require.NotZerof(t, label, "foreground cell (%d,%d) unlabeled", x, y)
			s := sprites[label]
			require.NotNilf(t, s, "cell (%d,%d) labeled %d without a sprite", x, y, label)
			assert.True(t, image.Pt(x, y).In(s.Bounds()),
				"cell (%d,%d) outside bounding box of label %d", x, y, label)
		}
	}
}

func TestExtract_ExplicitBackgroundOverridesDetection(t *testing.T) {
	// '#' dominates the sheet; treating it as background leaves the dots
	// as the sprites.
	img := sheetFromRows(
		"###",
		"#.#",
		"###",
	)
	sprites, _, err := FindSprites(img, sheetFromRows("#").NRGBAAt(0, 0))
	require.NoError(t, err)
	require.Len(t, sprites, 1)
	assert.Equal(t, image.Rect(1, 1, 2, 2), sprites[1].Bounds())

	// Auto-detection picks '#' as background and finds the same dot.
	auto, _, err := FindSprites(img, nil)
	require.NoError(t, err)
	require.Len(t, auto, 1)
	assert.Equal(t, image.Rect(1, 1, 2, 2), auto[1].Bounds())
}

func TestExtract_MinAreaDropsSpecks(t *testing.T) {
	img := sheetFromRows(
		"##...",
		"##..#",
		".....",
	)
	sprites, lm, err := Extract(img, Options{Background: testWhite, MinArea: 2})
	require.NoError(t, err)
	require.Len(t, sprites, 1)
	assert.Equal(t, image.Rect(0, 0, 2, 2), sprites[1].Bounds())
	// The dropped speck must not leak into the label map either.
	assert.Zero(t, lm.At(4, 1))
}

func TestExtract_Deterministic(t *testing.T) {
	img := sheetFromRows(
		"#.#.#..#",
		"#####..#",
		"........",
		"..##..##",
		"..##..##",
	)
	opt := Options{Background: testWhite}
	sprites1, lm1, err := Extract(img, opt)
	require.NoError(t, err)
	sprites2, lm2, err := Extract(img, opt)
	require.NoError(t, err)
	assert.Equal(t, sprites1, sprites2)
	assert.Equal(t, lm1, lm2)
}

// Canonical labels are the minimum of each equivalence closure, so label
// ids depend only on row-major discovery order.
func TestExtract_CanonicalLabelNumbering(t *testing.T) {
	img := sheetFromRows(
		"#..#",
		"#..#",
	)
	sprites, _, err := Extract(img, Options{Background: testWhite})
	require.NoError(t, err)
	require.Len(t, sprites, 2)
	assert.Contains(t, sprites, 1)
	assert.Contains(t, sprites, 2)
	assert.Equal(t, image.Rect(0, 0, 1, 2), sprites[1].Bounds())
	assert.Equal(t, image.Rect(3, 0, 4, 2), sprites[2].Bounds())
}
