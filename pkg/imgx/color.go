package imgx

import (
	"fmt"
	"math"
)

// Color operations are pixel-local: destination size equals source size
// and no coordinate remapping happens. Each operation is a small value
// holding its parameters and implementing Mapper.

func (b *Buffer) requireEncoding(op string, want Encoding) error {
	if b.Encoding != want {
		return fmt.Errorf("imgx: %s requires an %s buffer, got %s", op, want, b.Encoding)
	}
	return nil
}

type grayscaleOp struct {
	src *Buffer
}

func (o grayscaleOp) MapPixel(x, y int) RGB {
	p := o.src.At(x, y)
	gray := uint8((int(p.R) + int(p.G) + int(p.B)) / 3)
	return RGB{gray, gray, gray}
}

// Grayscale averages the three channels into one gray level.
func (b *Buffer) Grayscale() (*Buffer, error) {
	if err := b.requireEncoding("grayscale", EncRGB); err != nil {
		return nil, err
	}
	return Map(b.Width, b.Height, grayscaleOp{src: b}), nil
}

type binaryOp struct {
	src       *Buffer
	threshold int
}

func (o binaryOp) MapPixel(x, y int) RGB {
	p := o.src.At(x, y)
	if (int(p.R)+int(p.G)+int(p.B))/3 >= o.threshold {
		return White
	}
	return Black
}

// Binary maps every pixel to pure white when its gray average is at
// least threshold, else pure black. The threshold is not clamped: values
// below 0 or above 255 degenerate to an all-white or all-black result.
func (b *Buffer) Binary(threshold int) (*Buffer, error) {
	if err := b.requireEncoding("binary", EncRGB); err != nil {
		return nil, err
	}
	return Map(b.Width, b.Height, binaryOp{src: b, threshold: threshold}), nil
}

type negativeOp struct {
	src *Buffer
}

func (o negativeOp) MapPixel(x, y int) RGB {
	p := o.src.At(x, y)
	return RGB{255 - p.R, 255 - p.G, 255 - p.B}
}

// Negative inverts each channel. Applying it twice restores the
// original exactly.
func (b *Buffer) Negative() (*Buffer, error) {
	if err := b.requireEncoding("negative", EncRGB); err != nil {
		return nil, err
	}
	return Map(b.Width, b.Height, negativeOp{src: b}), nil
}

type reduceBitDepthOp struct {
	src  *Buffer
	mask uint8
}

func (o reduceBitDepthOp) MapPixel(x, y int) RGB {
	p := o.src.At(x, y)
	return RGB{p.R & o.mask, p.G & o.mask, p.B & o.mask}
}

// ReduceBitDepth keeps only the top bitsPerChannel bits of each channel,
// truncating the rest. This is lossy quantization, not rounding: with
// one bit per channel (200,100,50) becomes (128,0,0).
func (b *Buffer) ReduceBitDepth(bitsPerChannel int) (*Buffer, error) {
	if err := b.requireEncoding("reduce-bit-depth", EncRGB); err != nil {
		return nil, err
	}
	if bitsPerChannel < 0 || bitsPerChannel > 8 {
		return nil, fmt.Errorf("imgx: bits per channel must be in [0,8], got %d", bitsPerChannel)
	}
	mask := uint8(((1 << bitsPerChannel) - 1) << (8 - bitsPerChannel))
	return Map(b.Width, b.Height, reduceBitDepthOp{src: b, mask: mask}), nil
}

type rgbToHSLOp struct {
	src *Buffer
}

func (o rgbToHSLOp) MapPixel(x, y int) RGB {
	p := o.src.At(x, y)
	r := float64(p.R) / 255
	g := float64(p.G) / 255
	bl := float64(p.B) / 255

	cMax := math.Max(r, math.Max(g, bl))
	cMin := math.Min(r, math.Min(g, bl))
	delta := cMax - cMin

	l := (cMax + cMin) / 2

	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cMax == r:
		h = math.Mod((g-bl)/delta, 6)
		if h < 0 {
			h += 6
		}
	case cMax == g:
		h = (bl-r)/delta + 2
	default: // cMax == bl
		h = (r-g)/delta + 4
	}
	h *= 60

	return RGB{
		R: uint8(math.Round(h / 360 * 255)),
		G: uint8(math.Round(s * 255)),
		B: uint8(math.Round(l * 255)),
	}
}

// RGBToHSL converts every pixel to HSL and packs the result into the
// same three byte channels: H scaled from degrees, S and L from [0,1],
// each quantized to 256 buckets. The quantization is lossy, so a
// round trip through HSLToRGB is close but not exact. The returned
// buffer is tagged EncHSL8.
func (b *Buffer) RGBToHSL() (*Buffer, error) {
	if err := b.requireEncoding("rgb-to-hsl", EncRGB); err != nil {
		return nil, err
	}
	dst := Map(b.Width, b.Height, rgbToHSLOp{src: b})
	dst.Encoding = EncHSL8
	return dst, nil
}

type hslToRGBOp struct {
	src *Buffer
}

func (o hslToRGBOp) MapPixel(x, y int) RGB {
	p := o.src.At(x, y)
	h := float64(p.R) / 255 * 360
	s := float64(p.G) / 255
	l := float64(p.B) / 255

	c := (1 - math.Abs(2*l-1)) * s
	xm := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rp, gp, bp float64
	switch {
	case h < 60:
		rp, gp, bp = c, xm, 0
	case h < 120:
		rp, gp, bp = xm, c, 0
	case h < 180:
		rp, gp, bp = 0, c, xm
	case h < 240:
		rp, gp, bp = 0, xm, c
	case h < 300:
		rp, gp, bp = xm, 0, c
	default: // [300,360)
		rp, gp, bp = c, 0, xm
	}

	return RGB{
		R: uint8(math.Round((rp + m) * 255)),
		G: uint8(math.Round((gp + m) * 255)),
		B: uint8(math.Round((bp + m) * 255)),
	}
}

// HSLToRGB undoes the quantized packing produced by RGBToHSL and
// converts back to RGB. It only accepts EncHSL8 buffers.
func (b *Buffer) HSLToRGB() (*Buffer, error) {
	if err := b.requireEncoding("hsl-to-rgb", EncHSL8); err != nil {
		return nil, err
	}
	dst := Map(b.Width, b.Height, hslToRGBOp{src: b})
	dst.Encoding = EncRGB
	return dst, nil
}
