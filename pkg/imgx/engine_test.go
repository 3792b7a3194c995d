package imgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Dimensions(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"Square", 4, 4, 4, 4},
		{"Wide", 7, 2, 7, 2},
		{"ZeroWidth", 0, 5, 0, 5},
		{"ZeroBoth", 0, 0, 0, 0},
		{"NegativeClamped", -3, 2, 0, 2},
	}

	black := MapperFunc(func(x, y int) RGB { return Black })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := Map(tt.w, tt.h, black)
			assert.Equal(t, tt.wantW, dst.Width)
			assert.Equal(t, tt.wantH, dst.Height)
			assert.Len(t, dst.Pix, 3*tt.wantW*tt.wantH)
		})
	}
}

func TestMap_EvaluatesEveryCoordinate(t *testing.T) {
	dst := Map(5, 3, MapperFunc(func(x, y int) RGB {
		return RGB{R: uint8(x), G: uint8(y), B: uint8(x + y)}
	}))
	require.Equal(t, 5, dst.Width)
	require.Equal(t, 3, dst.Height)
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			assert.Equal(t, RGB{uint8(x), uint8(y), uint8(x + y)}, dst.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}
