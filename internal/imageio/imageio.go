// Package imageio decodes image files into tightly packed 8-bit pixel
// buffers ready for texture upload.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmpty is returned for images with no pixels.
var ErrEmpty = errors.New("image has no pixels")

// Options controls how Decode lays out pixels.
type Options struct {
	// FlipVertical puts the first row of the file at the bottom, matching
	// OpenGL's texture origin.
	FlipVertical bool
	// ForceRGB always yields three channels.
	ForceRGB bool
}

// Image is row-major pixel data with Channels bytes per pixel and no row
// padding. Alpha is straight, not premultiplied.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// Decode reads and decodes the image at path. Grayscale sources yield one
// channel, opaque colour three, anything with alpha four.
func Decode(path string, opts Options) (*Image, error) {
	src, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	img, err := FromImage(src, opts)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", path, err)
	}
	return img, nil
}

// FromImage packs an already decoded image.
func FromImage(src image.Image, opts Options) (*Image, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmpty
	}

	channels := 3
	if !opts.ForceRGB {
		channels = Channels(src)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	pix := pack(nrgba, channels)
	if opts.FlipVertical {
		flipRows(pix, b.Dx()*channels)
	}

	return &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Pix:      pix,
	}, nil
}

// Channels reports how many channels src needs.
func Channels(src image.Image) int {
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

func pack(nrgba *image.NRGBA, channels int) []byte {
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	if channels == 4 && nrgba.Stride == 4*w {
		return nrgba.Pix
	}

	out := make([]byte, 0, w*h*channels)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*w]
		for x := 0; x < w; x++ {
			px := row[4*x : 4*x+4]
			out = append(out, px[:channels]...)
		}
	}
	return out
}

// flipRows reverses the row order of pix in place.
func flipRows(pix []byte, rowLen int) {
	tmp := make([]byte, rowLen)
	for top, bottom := 0, len(pix)-rowLen; top < bottom; top, bottom = top+rowLen, bottom-rowLen {
		copy(tmp, pix[top:top+rowLen])
		copy(pix[top:top+rowLen], pix[bottom:bottom+rowLen])
		copy(pix[bottom:bottom+rowLen], tmp)
	}
}
