// Package barcode turns raster images into barcode strings. Decoding is
// delegated to gozxing; this package only normalizes the image and maps the
// library's outcomes onto the one contract callers need: zero or one decoded
// code, where "no barcode in the image" is a normal result, not an error.
package barcode

import (
	"fmt"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	"golang.org/x/image/draw"
)

// maxDimension caps the width and height fed to the reader; phone photos are
// downscaled first, which is both faster and more reliable for 1D codes.
const maxDimension = 1600

// DecodeResult holds at most one decoded barcode. Found is false when the
// image contained no recognizable code.
type DecodeResult struct {
	Code   string
	Format string
	Found  bool
}

type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads an image (JPEG or PNG) and scans it for a barcode. An
// unreadable image is an error; a readable image without a barcode is a
// DecodeResult with Found unset.
func (d *Decoder) Decode(r io.Reader) (DecodeResult, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return DecodeResult{}, fmt.Errorf("decoding image: %w", err)
	}
	img = downscale(img, maxDimension)

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return DecodeResult{}, fmt.Errorf("preparing bitmap: %w", err)
	}

	// The multi-format reader keeps per-decode state, so each call gets its
	// own instance.
	reader := gozxing.NewMultiFormatReader()
	result, err := reader.DecodeWithoutHints(bmp)
	if err != nil {
		// gozxing reports "nothing recognizable" as an error; for callers
		// that outcome is an empty result.
		return DecodeResult{}, nil
	}
	return DecodeResult{
		Code:   result.GetText(),
		Format: result.GetBarcodeFormat().String(),
		Found:  true,
	}, nil
}

// downscale resizes img so neither dimension exceeds maxDim, preserving
// aspect ratio. Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	var newW, newH int
	if w > h {
		newW = maxDim
		newH = h * maxDim / w
	} else {
		newH = maxDim
		newW = w * maxDim / h
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
