package imgx

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_SetAt(t *testing.T) {
	b := New(3, 2)
	require.Len(t, b.Pix, 18)

	// Fresh buffers start black.
	assert.Equal(t, Black, b.At(2, 1))

	b.Set(2, 1, RGB{10, 20, 30})
	assert.Equal(t, RGB{10, 20, 30}, b.At(2, 1))
	assert.Equal(t, Black, b.At(1, 1), "neighbors untouched")
}

func TestBuffer_Clone(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, RGB{1, 2, 3})
	b.Encoding = EncHSL8

	c := b.Clone()
	assert.Equal(t, b.Pix, c.Pix)
	assert.Equal(t, EncHSL8, c.Encoding)

	c.Set(0, 0, RGB{9, 9, 9})
	assert.Equal(t, RGB{1, 2, 3}, b.At(0, 0), "clone must not share storage")
}

func TestBuffer_ImageRoundTrip(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, RGB{255, 0, 0})
	b.Set(1, 0, RGB{0, 255, 0})
	b.Set(0, 1, RGB{0, 0, 255})
	b.Set(1, 1, RGB{255, 255, 255})

	got := FromImage(b.Image())
	assert.Equal(t, b.Pix, got.Pix)
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// Buffers are origin-anchored even when the source image is not.
	img := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	img.SetNRGBA(10, 20, color.NRGBA{R: 7, G: 8, B: 9, A: 255})
	img.SetNRGBA(11, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	b := FromImage(img)
	require.Equal(t, 2, b.Width)
	require.Equal(t, 1, b.Height)
	assert.Equal(t, RGB{7, 8, 9}, b.At(0, 0))
	assert.Equal(t, RGB{1, 2, 3}, b.At(1, 0))
}
