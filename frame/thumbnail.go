package frame

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/opd-ai/videoengine/limits"
)

// Image wraps an RGBA frame as an image.RGBA sharing the same pixel
// buffer. Mutating the returned image mutates the frame.
func (f *Frame) Image() (*image.RGBA, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if f.Format != FormatRGBA {
		return nil, fmt.Errorf("%w: %s, want RGBA", ErrUnsupportedFormat, f.Format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &image.RGBA{
		Pix:    f.Data,
		Stride: f.Stride,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}, nil
}

// Thumbnail produces a preview image whose longest side is maxDim
// pixels, preserving aspect ratio. Timeline scrubbers consume these;
// the approximate scaler trades exactness for speed, unlike Resize,
// which the processing paths use.
func Thumbnail(src *Frame, maxDim int) (*image.RGBA, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("%w: max dimension %d", limits.ErrDimensionInvalid, maxDim)
	}

	img, err := src.Image()
	if err != nil {
		return nil, err
	}

	w, h := src.Width, src.Height
	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, img.Rect, draw.Src, nil)
	return dst, nil
}
