package storage

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
)

const (
	// Uploaded documents and photos are capped to this edge length.
	maxImageDim = 1600

	webpQuality = 85
)

// ProcessImage decodes an uploaded JPEG/PNG/GIF, scales it down to fit
// maxImageDim, and re-encodes it as WebP. Everything stored server-side
// goes through this so originals (with whatever metadata they carry)
// never reach the bucket.
func ProcessImage(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, httperr.ErrBusiness("unsupported_image")
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageDim || h > maxImageDim {
		if w >= h {
			h = h * maxImageDim / w
			w = maxImageDim
		} else {
			w = w * maxImageDim / h
			h = maxImageDim
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
