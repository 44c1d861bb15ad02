package capi

import (
	"bytes"

	"github.com/opd-ai/videoengine/filter"
	"github.com/opd-ai/videoengine/frame"
	"github.com/opd-ai/videoengine/transition"
)

// validRGBA reports whether data can hold a packed RGBA image of the
// given dimensions.
func validRGBA(data []byte, width, height int) bool {
	return width > 0 && height > 0 && len(data) >= width*height*4
}

func validKind(kind int) bool {
	return kind >= int(filter.KindBrightness) && kind <= int(filter.KindBlackWhite)
}

// ApplyColorCorrection grades the caller's RGBA pixels in place,
// bypassing any engine. Hosts use this for single-frame previews.
func ApplyColorCorrection(data []byte, width, height int, brightness, contrast, saturation, hue float64) bool {
	if !validRGBA(data, width, height) {
		return false
	}
	filter.ColorCorrection(data, width, height, frame.FormatRGBA, filter.ColorCorrectionParams{
		Brightness: brightness,
		Contrast:   contrast,
		Saturation: saturation,
		Hue:        hue,
		Gamma:      1,
	})
	return true
}

// ApplyFilter runs one full-quality filter pass over the caller's RGBA
// pixels in place. The neighborhood kinds allocate their own source
// copy and scratch, so this path trades pool discipline for a flat
// one-call interface.
func ApplyFilter(data []byte, width, height int, kind int, intensity float64) bool {
	if !validRGBA(data, width, height) || !validKind(kind) {
		return false
	}

	k := filter.Kind(kind)
	var src, temp []byte
	if !filter.Pixelwise(k) {
		src = bytes.Clone(data)
		temp = make([]byte, len(data))
	}

	filter.Apply(src, data, temp, width, height, frame.FormatRGBA, filter.Params{
		Kind:      k,
		Intensity: intensity,
		Enabled:   true,
	})
	return true
}

// ApplyRealTimeFilter runs the reduced-precision preview adjustment
// over the caller's RGBA pixels in place. Kinds without a preview path
// are accepted and leave the pixels unchanged.
func ApplyRealTimeFilter(data []byte, width, height int, kind int, intensity float64) bool {
	if !validRGBA(data, width, height) || !validKind(kind) {
		return false
	}
	filter.ApplyRealTime(data, width, height, filter.Kind(kind), intensity)
	return true
}

// ApplyTransition blends two equally sized RGBA frames into out by
// progress, selecting the operator by its wire kind code. Hosts call
// this at clip boundaries while compositing the timeline.
func ApplyTransition(kind int, a, b, out []byte, width, height int, progress float64) bool {
	fa, err := frame.FromBuffer(a, width, height, frame.FormatRGBA)
	if err != nil {
		return false
	}
	fb, err := frame.FromBuffer(b, width, height, frame.FormatRGBA)
	if err != nil {
		return false
	}
	fout, err := frame.FromBuffer(out, width, height, frame.FormatRGBA)
	if err != nil {
		return false
	}
	return transition.Apply(transition.Kind(kind), fa, fb, fout, progress) == nil
}
