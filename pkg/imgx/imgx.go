// Package imgx is a pixel-level image transformation engine.
//
// Every operation is destination-driven: given the target dimensions, a
// per-pixel strategy computes the color of each destination coordinate,
// either from the matching source pixel (color ops) or by inverse-mapping
// the coordinate back into the source (geometry ops). Operations never
// mutate their input and always return a fresh Buffer, so they compose.
//
// Basic usage:
//
//	src, err := imgx.Decode("picture.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gray, _ := src.Grayscale()
//	rotated, err := src.RotateAround(20, 1500, 600, imgx.RotateOptions{ExpandCanvas: true})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_ = imgx.Encode(gray, "output/grayscale.png")
//	_ = imgx.Encode(rotated, "output/rotated.png")
//
// Buffers carry an Encoding tag: RGBToHSL returns a buffer whose three
// channels hold quantized HSL rather than RGB, and color operations
// refuse a buffer tagged with the wrong encoding.
package imgx
