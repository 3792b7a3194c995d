package imgx

import (
	"image"
	"image/color"
)

// Encoding identifies what the three channels of a Buffer hold.
//
// Geometry operations are encoding-agnostic and carry the tag through;
// color operations check it so that an RGB formula is never applied to
// HSL-packed channels by accident.
type Encoding int

const (
	// EncRGB is plain 8-bit-per-channel RGB.
	EncRGB Encoding = iota
	// EncHSL8 marks channels holding quantized hue/saturation/lightness:
	// H scaled from [0,360) and S, L from [0,1] into a byte each.
	EncHSL8
)

func (e Encoding) String() string {
	switch e {
	case EncRGB:
		return "rgb"
	case EncHSL8:
		return "hsl8"
	default:
		return "unknown"
	}
}

// RGB is a single pixel value. For EncHSL8 buffers the fields carry
// quantized H, S, L in the same order.
type RGB struct {
	R, G, B uint8
}

var (
	// Black is the default fill for out-of-bounds samples.
	Black = RGB{0, 0, 0}
	// White is used by the binary threshold op.
	White = RGB{255, 255, 255}
)

// Buffer is a fixed-size raster of 8-bit three-channel pixels.
// Pix holds the channels packed row-major, 3 bytes per pixel; the pixel
// at (x, y) starts at Pix[y*Stride + x*3].
//
// Transforms never mutate their source: every operation allocates and
// returns a fresh Buffer, so buffers returned from a transform can be
// treated as immutable and composed freely.
type Buffer struct {
	Width, Height int
	Stride        int
	Encoding      Encoding
	Pix           []uint8
}

// New allocates a zeroed (all-black) RGB buffer. Negative dimensions
// are treated as zero.
func New(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{
		Width:  w,
		Height: h,
		Stride: 3 * w,
		Pix:    make([]uint8, 3*w*h),
	}
}

// PixOffset returns the index of the first channel of the pixel at (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*3
}

// At returns the pixel at (x, y). The caller is responsible for bounds;
// out-of-range coordinates panic as with any slice access.
func (b *Buffer) At(x, y int) RGB {
	i := b.PixOffset(x, y)
	return RGB{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// Set writes the pixel at (x, y).
func (b *Buffer) Set(x, y int, c RGB) {
	i := b.PixOffset(x, y)
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
}

// Bounds returns the buffer's extent as an image.Rectangle anchored at
// the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Clone returns a deep copy, including the encoding tag.
func (b *Buffer) Clone() *Buffer {
	c := New(b.Width, b.Height)
	c.Encoding = b.Encoding
	copy(c.Pix, b.Pix)
	return c
}

// FromImage converts any image.Image into an RGB Buffer anchored at the
// origin. Alpha, if present, is discarded.
func FromImage(img image.Image) *Buffer {
	r := img.Bounds()
	b := New(r.Dx(), r.Dy())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			cr, cg, cb, _ := img.At(r.Min.X+x, r.Min.Y+y).RGBA()
			b.Set(x, y, RGB{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)})
		}
	}
	return b
}

// Image copies the buffer into an *image.NRGBA for the codec layer.
// The channels are copied as-is; an EncHSL8 buffer round-trips through
// a file byte for byte.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := b.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
