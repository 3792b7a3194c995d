package imgx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buffer2x2() *Buffer {
	b := New(2, 2)
	b.Set(0, 0, RGB{255, 0, 0})
	b.Set(1, 0, RGB{0, 255, 0})
	b.Set(0, 1, RGB{0, 0, 255})
	b.Set(1, 1, RGB{255, 255, 255})
	return b
}

func TestFlipVertical(t *testing.T) {
	dst := buffer2x2().FlipVertical()
	assert.Equal(t, RGB{0, 0, 255}, dst.At(0, 0))
	assert.Equal(t, RGB{255, 255, 255}, dst.At(1, 0))
	assert.Equal(t, RGB{255, 0, 0}, dst.At(0, 1))
	assert.Equal(t, RGB{0, 255, 0}, dst.At(1, 1))
}

func TestFlipHorizontal_Involution(t *testing.T) {
	src := buffer2x2()
	dst := src.FlipHorizontal()
	assert.Equal(t, RGB{0, 255, 0}, dst.At(0, 0))
	assert.Equal(t, src.Pix, dst.FlipHorizontal().Pix)
}

func TestFlip_PreservesEncoding(t *testing.T) {
	src := buffer2x2()
	src.Encoding = EncHSL8
	assert.Equal(t, EncHSL8, src.FlipVertical().Encoding)
}

func TestRotate90(t *testing.T) {
	// 2×3 source:
	//   a b
	//   c d
	//   e f
	a, b, c := RGB{10, 0, 0}, RGB{20, 0, 0}, RGB{30, 0, 0}
	d, e, f := RGB{40, 0, 0}, RGB{50, 0, 0}, RGB{60, 0, 0}
	src := New(2, 3)
	src.Set(0, 0, a)
	src.Set(1, 0, b)
	src.Set(0, 1, c)
	src.Set(1, 1, d)
	src.Set(0, 2, e)
	src.Set(1, 2, f)

	tests := []struct {
		name string
		step int
		w, h int
		rows [][]RGB
	}{
		{"Quarter", 0, 3, 2, [][]RGB{{b, d, f}, {a, c, e}}},
		{"Half", 1, 2, 3, [][]RGB{{f, e}, {d, c}, {b, a}}},
		{"ThreeQuarter", 2, 3, 2, [][]RGB{{e, c, a}, {f, d, b}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := src.Rotate90(tt.step)
			require.NoError(t, err)
			require.Equal(t, tt.w, dst.Width)
			require.Equal(t, tt.h, dst.Height)
			for y, row := range tt.rows {
				for x, want := range row {
					assert.Equal(t, want, dst.At(x, y), "pixel (%d,%d)", x, y)
				}
			}
		})
	}

	t.Run("InvalidStep", func(t *testing.T) {
		_, err := src.Rotate90(3)
		assert.Error(t, err)
		_, err = src.Rotate90(-1)
		assert.Error(t, err)
	})
}

func TestRotate90_RoundTrip(t *testing.T) {
	src := testImage()

	quarter, err := src.Rotate90(0)
	require.NoError(t, err)
	back, err := quarter.Rotate90(2)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, back.Pix, "90° then 270° is exact")

	// Four quarter turns are the identity.
	cur := src
	for i := 0; i < 4; i++ {
		cur, err = cur.Rotate90(0)
		require.NoError(t, err)
	}
	assert.Equal(t, src.Pix, cur.Pix)
}

func TestRotateAround(t *testing.T) {
	t.Run("FullTurnIsIdentity", func(t *testing.T) {
		src := buffer2x2()
		dst, err := src.RotateAround(360, 1, 1, RotateOptions{})
		require.NoError(t, err)
		require.Equal(t, src.Width, dst.Width)
		require.Equal(t, src.Height, dst.Height)
		assert.Equal(t, src.Pix, dst.Pix)
	})

	t.Run("ExpandSizesToBoundingBox", func(t *testing.T) {
		// A 2×2 at 45° about its far corner spans 2·√2 on both axes.
		src := buffer2x2()
		dst, err := src.RotateAround(45, 1, 1, RotateOptions{ExpandCanvas: true})
		require.NoError(t, err)
		assert.Equal(t, int(math.Ceil(2*math.Sqrt2)), dst.Width)
		assert.Equal(t, int(math.Ceil(2*math.Sqrt2)), dst.Height)
	})

	t.Run("FixedCanvasFills", func(t *testing.T) {
		src := New(2, 2)
		for i := range src.Pix {
			src.Pix[i] = 255
		}
		green := RGB{0, 255, 0}
		dst, err := src.RotateAround(45, 0, 0, RotateOptions{Fill: green})
		require.NoError(t, err)
		require.Equal(t, 2, dst.Width)
		// (1,0) inverse-rotates to (1,-1), outside the source.
		assert.Equal(t, green, dst.At(1, 0))
		// (0,0) is the pivot and maps to itself.
		assert.Equal(t, White, dst.At(0, 0))
	})

	t.Run("NonFinite", func(t *testing.T) {
		src := buffer2x2()
		_, err := src.RotateAround(math.NaN(), 0, 0, RotateOptions{})
		assert.Error(t, err)
		_, err = src.RotateAround(45, math.Inf(1), 0, RotateOptions{})
		assert.Error(t, err)
	})
}

func TestScaledCoords(t *testing.T) {
	x, y := ScaledCoords(40, 20, 0.75, 0.75)
	assert.Equal(t, 30, x)
	assert.Equal(t, 15, y)

	x, y = UnscaledCoords(30, 15, 0.75, 0.75)
	assert.Equal(t, 40, x)
	assert.Equal(t, 20, y)
}

func TestScaleNearest(t *testing.T) {
	t.Run("Downscale", func(t *testing.T) {
		src := testImage() // 4×4
		dst, err := src.ScaleNearest(0.5, 0.5)
		require.NoError(t, err)
		require.Equal(t, 2, dst.Width)
		require.Equal(t, 2, dst.Height)
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				assert.Equal(t, src.At(2*x, 2*y), dst.At(x, y))
			}
		}
	})

	t.Run("UpscaleEdgesFillBlack", func(t *testing.T) {
		// round(3/2) = 2 is past the last source column, so the
		// rightmost destination column takes the black fill.
		src := buffer2x2()
		dst, err := src.ScaleNearest(2, 2)
		require.NoError(t, err)
		require.Equal(t, 4, dst.Width)
		assert.Equal(t, src.At(0, 0), dst.At(0, 0))
		assert.Equal(t, src.At(1, 0), dst.At(1, 0))
		assert.Equal(t, src.At(1, 0), dst.At(2, 0))
		assert.Equal(t, Black, dst.At(3, 0))
		assert.Equal(t, Black, dst.At(0, 3))
	})

	t.Run("RoundTripDimensions", func(t *testing.T) {
		src := New(10, 10)
		small, err := src.ScaleNearest(0.3, 0.3)
		require.NoError(t, err)
		back, err := small.ScaleNearest(1/0.3, 1/0.3)
		require.NoError(t, err)
		assert.InDelta(t, src.Width, back.Width, 1)
		assert.InDelta(t, src.Height, back.Height, 1)
	})

	t.Run("InvalidFactors", func(t *testing.T) {
		src := buffer2x2()
		for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := src.ScaleNearest(f, f)
			assert.Error(t, err, "factor %v", f)
		}
		_, err := src.ScaleBilinear(0, 1)
		assert.Error(t, err)
	})
}

func TestScaleBilinear(t *testing.T) {
	t.Run("ConstantStaysConstant", func(t *testing.T) {
		src := New(3, 3)
		for i := range src.Pix {
			src.Pix[i] = 77
		}
		dst, err := src.ScaleBilinear(1.7, 0.6)
		require.NoError(t, err)
		for i, v := range dst.Pix {
			require.Equal(t, uint8(77), v, "channel %d", i)
		}
	})

	t.Run("BlendsNeighbors", func(t *testing.T) {
		gray := func(v uint8) RGB { return RGB{v, v, v} }
		src := New(2, 2)
		src.Set(0, 0, gray(0))
		src.Set(1, 0, gray(100))
		src.Set(0, 1, gray(50))
		src.Set(1, 1, gray(150))

		dst, err := src.ScaleBilinear(2, 2)
		require.NoError(t, err)
		require.Equal(t, 4, dst.Width)

		assert.Equal(t, gray(0), dst.At(0, 0), "exact source position")
		assert.Equal(t, gray(50), dst.At(1, 0), "halfway between 0 and 100")
		assert.Equal(t, gray(75), dst.At(1, 1), "center of all four")
		assert.Equal(t, gray(150), dst.At(3, 3), "past the edge clamps, not fills")
	})
}
