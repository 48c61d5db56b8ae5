// Package imaging normalises uploaded salon photos.
package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxWidth       = 1920
	ResizedQuality = 85
	DefaultQuality = 90
)

var ErrUnsupported = errors.New("imaging: unsupported image")

type Result struct {
	Data     []byte
	MimeType string
	Width    int
	Height   int
	// Processed is false when the original bytes were returned unchanged.
	Processed bool
}

// Process re-encodes an image as JPEG, scaling it down to MaxWidth when it is
// wider. Anything that fails to decode or encode is returned as-is.
func Process(data []byte, mimeType string) Result {
	orig := Result{Data: data, MimeType: mimeType}

	img, err := decode(data, mimeType)
	if err != nil {
		return orig
	}

	b := img.Bounds()
	orig.Width, orig.Height = b.Dx(), b.Dy()

	quality := DefaultQuality
	if b.Dx() > MaxWidth {
		img = Resize(img, MaxWidth)
		quality = ResizedQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return orig
	}

	out := img.Bounds()
	return Result{
		Data:      buf.Bytes(),
		MimeType:  "image/jpeg",
		Width:     out.Dx(),
		Height:    out.Dy(),
		Processed: true,
	}
}

func decode(data []byte, mimeType string) (image.Image, error) {
	if mimeType == "image/webp" {
		return webp.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupported
	}
	return img, nil
}

// Resize scales img to the given width keeping the aspect ratio. Images
// already narrower are returned untouched.
func Resize(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() <= width {
		return img
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
