package imgx

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "image/gif" // register decoders
)

// Decode reads a raster file (PNG, JPEG, GIF, BMP or TIFF) into an RGB
// Buffer. Alpha, if the file has it, is discarded. I/O and format errors
// propagate unchanged.
func Decode(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgx: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgx: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// Encode writes the buffer to path, picking the format from the file
// extension (.png, .jpg/.jpeg, .bmp, .tif/.tiff). The channels are
// written as-is, so an EncHSL8 buffer survives a lossless format
// round trip byte for byte.
func Encode(b *Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgx: create %s: %w", path, err)
	}
	defer f.Close()

	img := b.Image()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = fmt.Errorf("imgx: unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return f.Close()
}
