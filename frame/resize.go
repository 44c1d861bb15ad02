package frame

import (
	"fmt"
	"math"

	"github.com/opd-ai/videoengine/limits"
)

func clampIndex(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}

// interpolateRGBA performs bilinear sampling at a fractional coordinate
// of a packed RGBA buffer. Neighbor coordinates are clamped to the
// image, so sampling at or past the border degrades to edge pixels.
func interpolateRGBA(data []byte, width, height int, x, y float64) (r, g, b, a uint8) {
	x1 := int(math.Floor(x))
	y1 := int(math.Floor(y))
	x2 := x1 + 1
	y2 := y1 + 1

	fx := x - float64(x1)
	fy := y - float64(y1)

	x1, x2 = clampIndex(x1, width), clampIndex(x2, width)
	y1, y2 = clampIndex(y1, height), clampIndex(y2, height)

	p11 := (y1*width + x1) * 4
	p12 := (y1*width + x2) * 4
	p21 := (y2*width + x1) * 4
	p22 := (y2*width + x2) * 4

	w11 := (1 - fx) * (1 - fy)
	w12 := fx * (1 - fy)
	w21 := (1 - fx) * fy
	w22 := fx * fy

	r = uint8(float64(data[p11])*w11 + float64(data[p12])*w12 + float64(data[p21])*w21 + float64(data[p22])*w22)
	g = uint8(float64(data[p11+1])*w11 + float64(data[p12+1])*w12 + float64(data[p21+1])*w21 + float64(data[p22+1])*w22)
	b = uint8(float64(data[p11+2])*w11 + float64(data[p12+2])*w12 + float64(data[p21+2])*w21 + float64(data[p22+2])*w22)
	a = uint8(float64(data[p11+3])*w11 + float64(data[p12+3])*w12 + float64(data[p21+3])*w21 + float64(data[p22+3])*w22)
	return r, g, b, a
}

// Resize scales an RGBA frame to new dimensions with bilinear
// interpolation, returning a new frame. Timing metadata carries over.
func Resize(src *Frame, newWidth, newHeight int) (*Frame, error) {
	if src == nil {
		return nil, ErrNilFrame
	}
	if src.Format != FormatRGBA {
		return nil, fmt.Errorf("%w: %s, want RGBA", ErrUnsupportedFormat, src.Format)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := limits.ValidateDimensions(newWidth, newHeight); err != nil {
		return nil, err
	}

	dst, err := NewRGBA(newWidth, newHeight)
	if err != nil {
		return nil, err
	}
	dst.Timestamp = src.Timestamp
	dst.Index = src.Index

	xScale := float64(src.Width) / float64(newWidth)
	yScale := float64(src.Height) / float64(newHeight)

	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			r, g, b, a := interpolateRGBA(src.Data, src.Width, src.Height, float64(x)*xScale, float64(y)*yScale)
			idx := (y*newWidth + x) * 4
			dst.Data[idx] = r
			dst.Data[idx+1] = g
			dst.Data[idx+2] = b
			dst.Data[idx+3] = a
		}
	}
	return dst, nil
}

// Crop copies a rectangular region of an RGBA frame into a new frame.
// The rectangle must lie fully inside the source.
func Crop(src *Frame, x, y, width, height int) (*Frame, error) {
	if src == nil {
		return nil, ErrNilFrame
	}
	if src.Format != FormatRGBA {
		return nil, fmt.Errorf("%w: %s, want RGBA", ErrUnsupportedFormat, src.Format)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := limits.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if x < 0 || y < 0 || x+width > src.Width || y+height > src.Height {
		return nil, fmt.Errorf("%w: crop %dx%d at (%d,%d) outside %dx%d source",
			limits.ErrDimensionInvalid, width, height, x, y, src.Width, src.Height)
	}

	dst, err := NewRGBA(width, height)
	if err != nil {
		return nil, err
	}
	dst.Timestamp = src.Timestamp
	dst.Index = src.Index

	for row := 0; row < height; row++ {
		srcOff := ((y+row)*src.Width + x) * 4
		dstOff := row * width * 4
		copy(dst.Data[dstOff:dstOff+width*4], src.Data[srcOff:srcOff+width*4])
	}
	return dst, nil
}
