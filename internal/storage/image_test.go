package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 16 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessImageReencodesAsWebp(t *testing.T) {
	out, err := ProcessImage(pngBytes(t, 320, 240))
	require.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 320, decoded.Bounds().Dx())
	assert.Equal(t, 240, decoded.Bounds().Dy())
}

func TestProcessImageDownscalesLargeUploads(t *testing.T) {
	out, err := ProcessImage(pngBytes(t, 3200, 1600))
	require.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1600, decoded.Bounds().Dx())
	assert.Equal(t, 800, decoded.Bounds().Dy())
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	_, err := ProcessImage([]byte("definitely not an image"))
	assert.True(t, httperr.IsBusiness(err, "unsupported_image"))
}

func TestUploaderDisabledIsNoop(t *testing.T) {
	var u *Uploader
	assert.False(t, u.Enabled())
	assert.NoError(t, u.Put(context.Background(), "k", "image/webp", []byte("x")))
}
