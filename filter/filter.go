// Package filter implements the single-frame pixel operations applied
// by the effect pipeline: color correction, separable box blur,
// sharpen and edge-detection convolutions, geometric transforms, and
// the stylized looks (sepia, vintage, vignette, black-and-white,
// noise reduction).
//
// Every function is pure and allocation-free. Kernel filters read
// neighbor pixels from a caller-supplied source buffer and write to a
// distinct destination, so the caller controls all working memory.
// Unsupported pixel formats and out-of-range parameters are silent
// no-ops rather than errors, which lets mixed-format chains degrade
// gracefully instead of aborting a whole pass.
package filter

import (
	"math"

	"github.com/opd-ai/videoengine/frame"
)

// Kind identifies one filter algorithm.
type Kind int

const (
	KindBrightness Kind = iota
	KindContrast
	KindSaturation
	KindHue
	KindBlur
	KindSharpen
	KindNoiseReduction
	KindEdgeDetection
	KindSepia
	KindVintage
	KindVignette
	KindBlackWhite
)

// String returns a short lowercase name for the filter kind.
func (k Kind) String() string {
	switch k {
	case KindBrightness:
		return "brightness"
	case KindContrast:
		return "contrast"
	case KindSaturation:
		return "saturation"
	case KindHue:
		return "hue"
	case KindBlur:
		return "blur"
	case KindSharpen:
		return "sharpen"
	case KindNoiseReduction:
		return "noise-reduction"
	case KindEdgeDetection:
		return "edge-detection"
	case KindSepia:
		return "sepia"
	case KindVintage:
		return "vintage"
	case KindVignette:
		return "vignette"
	case KindBlackWhite:
		return "black-white"
	default:
		return "unknown"
	}
}

// Pixelwise reports whether kind derives every output pixel from that
// pixel alone. Pixelwise filters may run in place; the remaining kinds
// read a 3x3 neighborhood (or, for blur, a full row and column window)
// and need a pristine source buffer separate from their destination.
func Pixelwise(k Kind) bool {
	switch k {
	case KindBlur, KindSharpen, KindNoiseReduction, KindEdgeDetection:
		return false
	default:
		return true
	}
}

// Params selects a filter kind with a single driving intensity. The
// auxiliary parameters are kind-specific extras; most kinds ignore
// them. A disabled Params is a no-op everywhere it is dispatched.
type Params struct {
	Kind      Kind
	Intensity float64
	Param1    float64
	Param2    float64
	Param3    float64
	Enabled   bool
}

// ColorCorrectionParams carries the full grading controls.
type ColorCorrectionParams struct {
	Brightness float64 // -1.0 to 1.0
	Contrast   float64 // -1.0 to 1.0
	Saturation float64 // -1.0 to 1.0
	Hue        float64 // -180.0 to 180.0 degrees
	Gamma      float64 // 0.1 to 3.0, 1.0 is neutral
	Exposure   float64 // -5.0 to 5.0 stops
}

// BlurParams configures the separable box blur. Gaussian and
// Iterations are stored for callers that track them; the blur itself
// always runs a single box pass per axis.
type BlurParams struct {
	Radius     float64 // 0.0 to 100.0 pixels
	Iterations int
	Gaussian   bool
}

// TransformParams configures the geometric transform. Scale and the
// crop fields are percentages (100 means identity / full frame).
type TransformParams struct {
	Scale      float64
	Rotation   float64 // degrees
	FlipH      bool
	FlipV      bool
	CropX      float64
	CropY      float64
	CropWidth  float64
	CropHeight float64
}

// Apply dispatches a generic filter selection onto dst. dst must hold
// a packed image of the given dimensions and, for the neighborhood
// kinds, must start as a byte copy of src. temp is scratch used by the
// blur passes and must be at least as large as dst. Pixelwise kinds
// touch only dst; src and temp may then be nil.
//
// Brightness, contrast, saturation, and hue reuse the color-correction
// transform with the matching single parameter driven by Intensity
// (hue maps onto degrees as Intensity*180). Blur derives its radius as
// Intensity*20.
func Apply(src, dst, temp []byte, width, height int, format frame.Format, p Params) {
	if !p.Enabled {
		return
	}

	switch p.Kind {
	case KindBrightness:
		ColorCorrection(dst, width, height, format, ColorCorrectionParams{
			Brightness: p.Intensity,
			Gamma:      1,
		})
	case KindContrast:
		ColorCorrection(dst, width, height, format, ColorCorrectionParams{
			Contrast: p.Intensity,
			Gamma:    1,
		})
	case KindSaturation:
		ColorCorrection(dst, width, height, format, ColorCorrectionParams{
			Saturation: p.Intensity,
			Gamma:      1,
		})
	case KindHue:
		ColorCorrection(dst, width, height, format, ColorCorrectionParams{
			Hue:   p.Intensity * 180,
			Gamma: 1,
		})
	case KindBlur:
		BoxBlur(dst, temp, width, height, format, BlurParams{
			Radius:     p.Intensity * 20,
			Gaussian:   true,
			Iterations: 1,
		})
	case KindSharpen:
		Sharpen(src, dst, width, height, format, p.Intensity)
	case KindEdgeDetection:
		EdgeDetect(src, dst, width, height, format, p.Intensity)
	case KindNoiseReduction:
		NoiseReduce(src, dst, width, height, format, p.Intensity)
	case KindSepia:
		Sepia(dst, width, height, format, p.Intensity)
	case KindVintage:
		Vintage(dst, width, height, format, p.Intensity)
	case KindVignette:
		Vignette(dst, width, height, format, p.Intensity)
	case KindBlackWhite:
		BlackWhite(dst, width, height, format, p.Intensity)
	}
}

// rgbaBounds reports whether data can hold a packed RGBA image of the
// given dimensions.
func rgbaBounds(data []byte, width, height int) bool {
	return width > 0 && height > 0 && len(data) >= width*height*4
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// clampByte converts a [0,255] float to a byte, truncating the
// fraction and saturating out-of-range values.
func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
