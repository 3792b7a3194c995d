package imgx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	// Lossless formats must reproduce the buffer byte for byte.
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			src := testImage()
			path := filepath.Join(t.TempDir(), "img"+ext)

			require.NoError(t, Encode(src, path))
			got, err := Decode(path)
			require.NoError(t, err)

			assert.Equal(t, src.Width, got.Width)
			assert.Equal(t, src.Height, got.Height)
			assert.Equal(t, src.Pix, got.Pix)
		})
	}
}

func TestCodec_JPEGDecodes(t *testing.T) {
	src := testImage()
	path := filepath.Join(t.TempDir(), "img.jpg")

	require.NoError(t, Encode(src, path))
	got, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, src.Width, got.Width)
	assert.Equal(t, src.Height, got.Height)
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	err := Encode(testImage(), filepath.Join(t.TempDir(), "img.webp"))
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestDecode_Errors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := Decode(filepath.Join(t.TempDir(), "nope.png"))
		assert.Error(t, err)
	})

	t.Run("Corrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "junk.png")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
		_, err := Decode(path)
		assert.Error(t, err)
	})
}
