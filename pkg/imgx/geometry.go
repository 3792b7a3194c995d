package imgx

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry operations remap coordinates rather than colors: each one
// routes through Map with an inverse mapping that finds, for every
// destination pixel, the source pixel (or neighborhood) it came from.
// They are encoding-agnostic and carry the source's encoding tag through.

type flipVerticalOp struct {
	src *Buffer
}

func (o flipVerticalOp) MapPixel(x, y int) RGB {
	return o.src.At(x, o.src.Height-1-y)
}

// FlipVertical mirrors the image top to bottom.
func (b *Buffer) FlipVertical() *Buffer {
	dst := Map(b.Width, b.Height, flipVerticalOp{src: b})
	dst.Encoding = b.Encoding
	return dst
}

type flipHorizontalOp struct {
	src *Buffer
}

func (o flipHorizontalOp) MapPixel(x, y int) RGB {
	return o.src.At(o.src.Width-1-x, y)
}

// FlipHorizontal mirrors the image left to right.
func (b *Buffer) FlipHorizontal() *Buffer {
	dst := Map(b.Width, b.Height, flipHorizontalOp{src: b})
	dst.Encoding = b.Encoding
	return dst
}

type rotate90Op struct {
	src  *Buffer
	step int
}

func (o rotate90Op) MapPixel(x, y int) RGB {
	w, h := o.src.Width, o.src.Height
	switch o.step {
	case 0: // 90°
		return o.src.At(w-1-y, x)
	case 1: // 180°
		return o.src.At(w-1-x, h-1-y)
	default: // 270°
		return o.src.At(y, h-1-x)
	}
}

// Rotate90 rotates by a quarter-turn step: 0 = 90°, 1 = 180°, 2 = 270°.
// Steps 0 and 2 swap width and height. Quarter turns are exact; no
// interpolation happens.
func (b *Buffer) Rotate90(step int) (*Buffer, error) {
	if step < 0 || step > 2 {
		return nil, fmt.Errorf("imgx: rotate step must be 0 (90°), 1 (180°) or 2 (270°), got %d", step)
	}
	dw, dh := b.Width, b.Height
	if step != 1 {
		dw, dh = b.Height, b.Width
	}
	dst := Map(dw, dh, rotate90Op{src: b, step: step})
	dst.Encoding = b.Encoding
	return dst, nil
}

// RotateOptions controls arbitrary-angle rotation.
type RotateOptions struct {
	// ExpandCanvas grows the destination to the bounding box of the
	// rotated content so nothing is clipped. When false the canvas
	// keeps the source dimensions and content rotating outside them
	// is lost.
	ExpandCanvas bool
	// Fill is the color for destination pixels whose inverse mapping
	// lands outside the source. The zero value is black.
	Fill RGB
}

type rotateAroundOp struct {
	src        *Buffer
	inv        mgl64.Mat2
	px, py     float64
	xOff, yOff float64
	fill       RGB
}

func (o rotateAroundOp) MapPixel(x, y int) RGB {
	// Destination pixel in rotated, pivot-relative space.
	rot := mgl64.Vec2{float64(x) - o.xOff, float64(y) - o.yOff}
	// Inverse-rotate back to the source's pivot-relative space.
	rel := o.inv.Mul2x1(rot)
	sx := int(math.Round(rel.X() + o.px))
	sy := int(math.Round(rel.Y() + o.py))
	if sx < 0 || sx >= o.src.Width || sy < 0 || sy >= o.src.Height {
		return o.fill
	}
	return o.src.At(sx, sy)
}

// RotateAround rotates the image by angleDeg degrees about the pivot
// (px, py) with nearest-neighbor sampling. Destination pixels with no
// source counterpart take opts.Fill.
func (b *Buffer) RotateAround(angleDeg, px, py float64, opts RotateOptions) (*Buffer, error) {
	if badCoord(angleDeg) || badCoord(px) || badCoord(py) {
		return nil, fmt.Errorf("imgx: rotate angle/pivot must be finite, got angle=%v pivot=(%v,%v)", angleDeg, px, py)
	}

	theta := mgl64.DegToRad(angleDeg)
	rot := mgl64.Rotate2D(theta)

	dw, dh := b.Width, b.Height
	xOff, yOff := px, py
	if opts.ExpandCanvas {
		// Rotate the four corners, pivot-relative, and size the canvas
		// to their bounding box.
		w, h := float64(b.Width), float64(b.Height)
		corners := []mgl64.Vec2{
			{-px, -py},
			{w - px, -py},
			{-px, h - py},
			{w - px, h - py},
		}
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, c := range corners {
			r := rot.Mul2x1(c)
			minX = math.Min(minX, r.X())
			maxX = math.Max(maxX, r.X())
			minY = math.Min(minY, r.Y())
			maxY = math.Max(maxY, r.Y())
		}
		dw = int(math.Ceil(maxX - minX))
		dh = int(math.Ceil(maxY - minY))
		xOff, yOff = -minX, -minY
	}

	op := rotateAroundOp{
		src:  b,
		inv:  rot.Transpose(), // rotation inverse
		px:   px,
		py:   py,
		xOff: xOff,
		yOff: yOff,
		fill: opts.Fill,
	}
	dst := Map(dw, dh, op)
	dst.Encoding = b.Encoding
	return dst, nil
}

// ScaledCoords maps a source coordinate forward through the scale
// factors: (40, 20) at 0.75 becomes (30, 15).
func ScaledCoords(x, y int, xFactor, yFactor float64) (int, int) {
	return int(math.Round(float64(x) * xFactor)), int(math.Round(float64(y) * yFactor))
}

// UnscaledCoords maps a scaled coordinate back to the source:
// (30, 15) at 0.75 becomes (40, 20).
func UnscaledCoords(xs, ys int, xFactor, yFactor float64) (int, int) {
	return int(math.Round(float64(xs) / xFactor)), int(math.Round(float64(ys) / yFactor))
}

type scaleNearestOp struct {
	src    *Buffer
	xf, yf float64
}

func (o scaleNearestOp) MapPixel(x, y int) RGB {
	sx, sy := UnscaledCoords(x, y, o.xf, o.yf)
	if sx < 0 || sx >= o.src.Width || sy < 0 || sy >= o.src.Height {
		return Black
	}
	return o.src.At(sx, sy)
}

// ScaleNearest resizes by the given factors using nearest-neighbor
// sampling. The destination is round(W*xFactor) by round(H*yFactor).
func (b *Buffer) ScaleNearest(xFactor, yFactor float64) (*Buffer, error) {
	if err := checkScaleFactors(xFactor, yFactor); err != nil {
		return nil, err
	}
	dw, dh := ScaledCoords(b.Width, b.Height, xFactor, yFactor)
	dst := Map(dw, dh, scaleNearestOp{src: b, xf: xFactor, yf: yFactor})
	dst.Encoding = b.Encoding
	return dst, nil
}

type scaleBilinearOp struct {
	src    *Buffer
	xf, yf float64
}

func (o scaleBilinearOp) MapPixel(x, y int) RGB {
	srcX := float64(x) / o.xf
	srcY := float64(y) / o.yf

	x0 := int(math.Floor(srcX))
	y0 := int(math.Floor(srcY))
	wx := srcX - float64(x0)
	wy := srcY - float64(y0)

	// Edge-clamp each neighbor independently rather than filling.
	x0c := clampInt(x0, 0, o.src.Width-1)
	x1c := clampInt(x0+1, 0, o.src.Width-1)
	y0c := clampInt(y0, 0, o.src.Height-1)
	y1c := clampInt(y0+1, 0, o.src.Height-1)

	p00 := o.src.At(x0c, y0c)
	p10 := o.src.At(x1c, y0c)
	p01 := o.src.At(x0c, y1c)
	p11 := o.src.At(x1c, y1c)

	w00 := (1 - wx) * (1 - wy)
	w10 := wx * (1 - wy)
	w01 := (1 - wx) * wy
	w11 := wx * wy

	blend := func(c00, c10, c01, c11 uint8) uint8 {
		v := float64(c00)*w00 + float64(c10)*w10 + float64(c01)*w01 + float64(c11)*w11
		return uint8(clampInt(int(math.Round(v)), 0, 255))
	}
	return RGB{
		R: blend(p00.R, p10.R, p01.R, p11.R),
		G: blend(p00.G, p10.G, p01.G, p11.G),
		B: blend(p00.B, p10.B, p01.B, p11.B),
	}
}

// ScaleBilinear resizes by the given factors, blending the four source
// pixels around each fractional source position by their distance
// weights along each axis.
func (b *Buffer) ScaleBilinear(xFactor, yFactor float64) (*Buffer, error) {
	if err := checkScaleFactors(xFactor, yFactor); err != nil {
		return nil, err
	}
	dw, dh := ScaledCoords(b.Width, b.Height, xFactor, yFactor)
	dst := Map(dw, dh, scaleBilinearOp{src: b, xf: xFactor, yf: yFactor})
	dst.Encoding = b.Encoding
	return dst, nil
}

func checkScaleFactors(xf, yf float64) error {
	if badCoord(xf) || badCoord(yf) || xf <= 0 || yf <= 0 {
		return fmt.Errorf("imgx: scale factors must be finite and positive, got (%v,%v)", xf, yf)
	}
	return nil
}

func badCoord(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
