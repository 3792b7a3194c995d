package imgx

// Mapper computes the color of a single destination pixel. Implementations
// must be pure with respect to the destination coordinate: no evaluation
// may depend on another, and callers must not rely on evaluation order.
type Mapper interface {
	MapPixel(x, y int) RGB
}

// MapperFunc adapts a plain function to the Mapper interface.
type MapperFunc func(x, y int) RGB

func (f MapperFunc) MapPixel(x, y int) RGB { return f(x, y) }

// Map builds a w×h RGB buffer by evaluating m at every destination
// coordinate. The engine does no bounds-checking or clamping of the
// mapper's results; an operation whose mapper is undefined for some
// coordinate is broken, not the engine.
func Map(w, h int, m Mapper) *Buffer {
	dst := New(w, h)
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			dst.Set(x, y, m.MapPixel(x, y))
		}
	}
	return dst
}
