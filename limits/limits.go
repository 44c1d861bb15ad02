// Package limits provides centralized capacity limits for the video engine.
// This ensures consistent validation across different components of the system.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxChainEffects is the capacity of a single effect chain (32 entries)
	// Chains are dense fixed-capacity arrays; insertion beyond this fails
	MaxChainEffects = 32

	// MaxKeyframes is the number of intensity keyframes one effect may carry
	// The curve is stored for animation tooling and not evaluated per frame
	MaxKeyframes = 8

	// DefaultFrameWidth is the working horizontal resolution (full HD)
	DefaultFrameWidth = 1920

	// DefaultFrameHeight is the working vertical resolution (full HD)
	DefaultFrameHeight = 1080

	// DefaultFPS is the frame rate assumed for synthesized streams
	DefaultFPS = 30.0

	// DefaultStreamSeconds is the length of a synthesized stream
	DefaultStreamSeconds = 10.0

	// DefaultPoolBlocks is the number of frame-sized blocks in the engine pool
	// Two back processing scratch, the rest staging for decode/encode paths
	DefaultPoolBlocks = 8

	// EncoderPoolBlocks is the number of staging blocks an encoder owns
	EncoderPoolBlocks = 4

	// MaxFrameDimension caps a single frame axis (8K with headroom)
	// This prevents pathological allocations from untrusted dimensions
	MaxFrameDimension = 16384

	// BytesPerPixelRGBA is the packed size of one RGBA pixel
	BytesPerPixelRGBA = 4

	// BytesPerPixelRGB is the packed size of one RGB pixel
	BytesPerPixelRGB = 3

	// MinQuality and MaxQuality bound the encoder quality setting
	MinQuality = 1
	MaxQuality = 100

	// DefaultQuality is the encoder quality used when none is set
	DefaultQuality = 80

	// MinBitrate is the encoder bitrate floor in bits per second (1 kbps)
	MinBitrate = 1000
)

var (
	// ErrDimensionInvalid indicates a zero or negative frame dimension
	ErrDimensionInvalid = errors.New("invalid dimension")

	// ErrDimensionTooLarge indicates a frame dimension above MaxFrameDimension
	ErrDimensionTooLarge = errors.New("dimension too large")

	// ErrBufferTooSmall indicates a pixel buffer shorter than its frame requires
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrTooManyKeyframes indicates an intensity curve beyond MaxKeyframes points
	ErrTooManyKeyframes = errors.New("too many keyframes")
)

// ValidateDimensions validates a width/height pair against the engine bounds.
// Returns an error with context including the offending axis and value.
func ValidateDimensions(width, height int) error {
	if width <= 0 {
		return fmt.Errorf("%w: width %d", ErrDimensionInvalid, width)
	}
	if height <= 0 {
		return fmt.Errorf("%w: height %d", ErrDimensionInvalid, height)
	}
	if width > MaxFrameDimension {
		return fmt.Errorf("%w: width %d exceeds limit %d", ErrDimensionTooLarge, width, MaxFrameDimension)
	}
	if height > MaxFrameDimension {
		return fmt.Errorf("%w: height %d exceeds limit %d", ErrDimensionTooLarge, height, MaxFrameDimension)
	}
	return nil
}

// ValidateBufferSize validates that a pixel buffer holds at least required bytes.
// Returns an error with context including the actual and required sizes.
func ValidateBufferSize(data []byte, required int) error {
	if len(data) < required {
		return fmt.Errorf("%w: size %d below required %d", ErrBufferTooSmall, len(data), required)
	}
	return nil
}

// ValidateKeyframeCount validates a keyframe count against MaxKeyframes.
func ValidateKeyframeCount(count int) error {
	if count > MaxKeyframes {
		return fmt.Errorf("%w: %d exceeds limit %d", ErrTooManyKeyframes, count, MaxKeyframes)
	}
	return nil
}

// FrameBytes returns the packed RGBA byte size of a width/height pair.
// Callers must validate dimensions first; negative inputs yield zero.
func FrameBytes(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * BytesPerPixelRGBA
}
