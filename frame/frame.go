// Package frame defines the pixel buffer type shared across the video
// engine, together with the stateless color-space and geometry
// primitives every filter and transition builds on: format conversion,
// bilinear resampling, cropping, and preview scaling.
package frame

import (
	"errors"
	"fmt"

	"github.com/opd-ai/videoengine/limits"
)

// Format identifies the pixel layout of a frame buffer.
type Format int

const (
	// FormatRGB is packed 24-bit RGB
	FormatRGB Format = iota
	// FormatRGBA is packed 32-bit RGBA, the pipeline's working format
	FormatRGBA
	// FormatYUV420 is planar Y'CbCr with 4:2:0 chroma subsampling
	FormatYUV420
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatYUV420:
		return "YUV420"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// BytesPerPixel returns the packed pixel size for interleaved formats.
// YUV420 is planar and returns 0; use YUV420Size for its buffer length.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGB:
		return limits.BytesPerPixelRGB
	case FormatRGBA:
		return limits.BytesPerPixelRGBA
	default:
		return 0
	}
}

// YUV420Size returns the byte length of a planar YUV420 buffer for the
// given dimensions: a full-resolution luma plane plus two quarter-size
// chroma planes.
func YUV420Size(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width*height + 2*((width/2)*(height/2))
}

var (
	// ErrNilFrame indicates a nil frame was passed where one is required
	ErrNilFrame = errors.New("nil frame")

	// ErrUnsupportedFormat indicates an operation does not support the
	// frame's pixel format
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrInvalidStride indicates a stride shorter than one packed row
	ErrInvalidStride = errors.New("invalid stride")
)

// Frame is a rectangular pixel buffer with timing metadata.
//
// Data may be owned by the frame or borrowed from a caller or pool;
// the engine never assumes ownership beyond the duration of a call.
type Frame struct {
	Width     int
	Height    int
	Stride    int // bytes per row
	Format    Format
	Timestamp float64 // seconds
	Index     int     // frame number within its source
	Data      []byte
}

// New allocates a frame with a tightly packed buffer.
func New(width, height int, format Format) (*Frame, error) {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	var size, stride int
	switch format {
	case FormatRGB, FormatRGBA:
		stride = width * format.BytesPerPixel()
		size = stride * height
	case FormatYUV420:
		stride = width
		size = YUV420Size(width, height)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return &Frame{
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
		Data:   make([]byte, size),
	}, nil
}

// NewRGBA allocates a packed RGBA frame at the given dimensions.
func NewRGBA(width, height int) (*Frame, error) {
	return New(width, height, FormatRGBA)
}

// FromBuffer wraps a borrowed pixel buffer as a packed frame without
// copying. The buffer must satisfy Validate for the given geometry.
func FromBuffer(data []byte, width, height int, format Format) (*Frame, error) {
	f := &Frame{
		Width:  width,
		Height: height,
		Format: format,
		Data:   data,
	}
	switch format {
	case FormatRGB, FormatRGBA:
		f.Stride = width * format.BytesPerPixel()
	case FormatYUV420:
		f.Stride = width
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the frame's structural invariants: positive bounded
// dimensions, a stride covering at least one packed row, and a buffer
// long enough for the full image. Call sites constructing ad hoc
// frames around borrowed memory rely on this before touching pixels.
func (f *Frame) Validate() error {
	if f == nil {
		return ErrNilFrame
	}
	if err := limits.ValidateDimensions(f.Width, f.Height); err != nil {
		return err
	}

	switch f.Format {
	case FormatRGB, FormatRGBA:
		rowBytes := f.Width * f.Format.BytesPerPixel()
		if f.Stride < rowBytes {
			return fmt.Errorf("%w: stride %d below row size %d", ErrInvalidStride, f.Stride, rowBytes)
		}
		return limits.ValidateBufferSize(f.Data, f.Stride*f.Height)
	case FormatYUV420:
		return limits.ValidateBufferSize(f.Data, YUV420Size(f.Width, f.Height))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.Format)
	}
}

// Clone returns a deep copy of the frame with its own buffer.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	dup := *f
	dup.Data = make([]byte, len(f.Data))
	copy(dup.Data, f.Data)
	return &dup
}

// Size returns the byte length the frame's geometry requires.
func (f *Frame) Size() int {
	if f == nil {
		return 0
	}
	if f.Format == FormatYUV420 {
		return YUV420Size(f.Width, f.Height)
	}
	return f.Stride * f.Height
}
