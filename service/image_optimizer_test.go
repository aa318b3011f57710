package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: 124, G: 58, B: 237, A: 128})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizeLogo(t *testing.T) {
	t.Run("large logo is fitted", func(t *testing.T) {
		out, err := OptimizeLogo(encodePNG(t, 1024, 256))
		require.NoError(t, err)

		img, err := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		require.Equal(t, 512, img.Bounds().Dx())
		require.Equal(t, 128, img.Bounds().Dy())
	})

	t.Run("small logo keeps its size", func(t *testing.T) {
		out, err := OptimizeLogo(encodePNG(t, 64, 32))
		require.NoError(t, err)

		img, err := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		require.Equal(t, 64, img.Bounds().Dx())
		require.Equal(t, 32, img.Bounds().Dy())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := OptimizeLogo(nil)
		require.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := OptimizeLogo([]byte("definitely not a png"))
		require.ErrorIs(t, err, ErrInvalidImage)
	})
}
