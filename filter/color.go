package filter

import (
	"math"

	"github.com/opd-ai/videoengine/frame"
)

// ColorCorrection grades a packed RGBA buffer in place: brightness as
// an additive offset, contrast as a linear scale pivoted at mid-gray,
// gamma as a power curve, exposure in stops, then hue rotation and
// saturation scaling through HSV when either is non-zero. All math is
// per-channel in normalized [0,1] floats. Alpha is preserved. Neutral
// parameters leave the buffer byte-identical: every stage is skipped
// at its identity value so no float round-trip can perturb pixels.
func ColorCorrection(data []byte, width, height int, format frame.Format, p ColorCorrectionParams) {
	if format != frame.FormatRGBA || !rgbaBounds(data, width, height) {
		return
	}

	contrastScale := 1 + p.Contrast
	invGamma := 1 / p.Gamma
	exposureScale := math.Pow(2, p.Exposure)

	pixels := width * height
	for i := 0; i < pixels; i++ {
		idx := i * 4
		rf := float64(data[idx]) / 255
		gf := float64(data[idx+1]) / 255
		bf := float64(data[idx+2]) / 255

		rf += p.Brightness
		gf += p.Brightness
		bf += p.Brightness

		if p.Contrast != 0 {
			rf = (rf-0.5)*contrastScale + 0.5
			gf = (gf-0.5)*contrastScale + 0.5
			bf = (bf-0.5)*contrastScale + 0.5
		}

		if p.Gamma != 1 {
			rf = math.Pow(math.Max(rf, 0), invGamma)
			gf = math.Pow(math.Max(gf, 0), invGamma)
			bf = math.Pow(math.Max(bf, 0), invGamma)
		}

		rf *= exposureScale
		gf *= exposureScale
		bf *= exposureScale

		if p.Saturation != 0 || p.Hue != 0 {
			h, s, v := rgbToHSV(clampByte(rf*255), clampByte(gf*255), clampByte(bf*255))
			h += p.Hue
			s *= 1 + p.Saturation
			s = clamp01(s)
			data[idx], data[idx+1], data[idx+2] = hsvToRGB(h, s, v)
		} else {
			data[idx] = clampByte(rf * 255)
			data[idx+1] = clampByte(gf * 255)
			data[idx+2] = clampByte(bf * 255)
		}
	}
}

// rgbToHSV converts byte RGB to hue in degrees [0,360), saturation and
// value in [0,1].
func rgbToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	delta := maxVal - minVal

	v = maxVal
	if maxVal != 0 {
		s = delta / maxVal
	}

	switch {
	case delta == 0:
		h = 0
	case maxVal == rf:
		h = 60 * ((gf - bf) / delta)
		if h < 0 {
			h += 360
		}
	case maxVal == gf:
		h = 60*((bf-rf)/delta) + 120
	default:
		h = 60*((rf-gf)/delta) + 240
	}
	return h, s, v
}

// hsvToRGB converts HSV back to byte RGB. Hue outside [0,360) wraps.
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	if s == 0 {
		gray := clampByte(v * 255)
		return gray, gray, gray
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	hi := int(h / 60)
	f := h/60 - float64(hi)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch hi {
	case 0:
		return clampByte(v * 255), clampByte(t * 255), clampByte(p * 255)
	case 1:
		return clampByte(q * 255), clampByte(v * 255), clampByte(p * 255)
	case 2:
		return clampByte(p * 255), clampByte(v * 255), clampByte(t * 255)
	case 3:
		return clampByte(p * 255), clampByte(q * 255), clampByte(v * 255)
	case 4:
		return clampByte(t * 255), clampByte(p * 255), clampByte(v * 255)
	default:
		return clampByte(v * 255), clampByte(p * 255), clampByte(q * 255)
	}
}
