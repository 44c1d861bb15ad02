package filter

import (
	"math"

	"github.com/opd-ai/videoengine/frame"
)

// Sepia blends each pixel toward the classic sepia tone matrix by
// intensity, in place. Zero intensity leaves the buffer byte-identical.
// Negative intensity is a no-op. Alpha is preserved. RGBA only.
func Sepia(data []byte, width, height int, format frame.Format, intensity float64) {
	if format != frame.FormatRGBA || !rgbaBounds(data, width, height) || intensity < 0 {
		return
	}

	pixels := width * height
	for i := 0; i < pixels; i++ {
		idx := i * 4

		rf := float64(data[idx]) / 255
		gf := float64(data[idx+1]) / 255
		bf := float64(data[idx+2]) / 255

		sepiaR := rf*0.393 + gf*0.769 + bf*0.189
		sepiaG := rf*0.349 + gf*0.686 + bf*0.168
		sepiaB := rf*0.272 + gf*0.534 + bf*0.131

		if sepiaR > 1 {
			sepiaR = 1
		}
		if sepiaG > 1 {
			sepiaG = 1
		}
		if sepiaB > 1 {
			sepiaB = 1
		}

		finalR := rf + (sepiaR-rf)*intensity
		finalG := gf + (sepiaG-gf)*intensity
		finalB := bf + (sepiaB-bf)*intensity

		data[idx] = clampByte(finalR*255 + 0.5)
		data[idx+1] = clampByte(finalG*255 + 0.5)
		data[idx+2] = clampByte(finalB*255 + 0.5)
	}
}

// Vintage blends each pixel toward a washed warm look, in place: a
// soft sepia-like matrix followed by a contrast lift toward mid-gray.
// Negative intensity is a no-op, values above one are clamped. Alpha
// is preserved. RGBA only.
func Vintage(data []byte, width, height int, format frame.Format, intensity float64) {
	if format != frame.FormatRGBA || !rgbaBounds(data, width, height) || intensity < 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	pixels := width * height
	for i := 0; i < pixels; i++ {
		idx := i * 4

		rf := float64(data[idx]) / 255
		gf := float64(data[idx+1]) / 255
		bf := float64(data[idx+2]) / 255

		vintageR := rf*0.9 + gf*0.5 + bf*0.3
		vintageG := rf*0.3 + gf*0.8 + bf*0.3
		vintageB := rf*0.2 + gf*0.3 + bf*0.7

		vintageR = clamp01(0.3 + vintageR*0.7)
		vintageG = clamp01(0.3 + vintageG*0.7)
		vintageB = clamp01(0.3 + vintageB*0.7)

		finalR := clamp01(rf + (vintageR-rf)*intensity)
		finalG := clamp01(gf + (vintageG-gf)*intensity)
		finalB := clamp01(bf + (vintageB-bf)*intensity)

		data[idx] = uint8(finalR * 255)
		data[idx+1] = uint8(finalG * 255)
		data[idx+2] = uint8(finalB * 255)
	}
}

// Vignette darkens pixels by their distance from the frame center
// using the falloff 1-(d/dmax)^1.5, scaled by intensity, in place.
// The exact center is untouched and the corners go fully dark at
// intensity one. Negative intensity is a no-op, values above one are
// clamped. Alpha is preserved. RGBA only.
func Vignette(data []byte, width, height int, format frame.Format, intensity float64) {
	if format != frame.FormatRGBA || !rgbaBounds(data, width, height) || intensity < 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	centerX := float64(width) * 0.5
	centerY := float64(height) * 0.5
	maxDistance := math.Sqrt(centerX*centerX + centerY*centerY)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4

			dx := float64(x) - centerX
			dy := float64(y) - centerY
			distance := math.Sqrt(dx*dx + dy*dy)

			falloff := clamp01(1 - math.Pow(distance/maxDistance, 1.5))
			finalFalloff := 1 - (1-falloff)*intensity

			rf := clamp01(float64(data[idx]) / 255 * finalFalloff)
			gf := clamp01(float64(data[idx+1]) / 255 * finalFalloff)
			bf := clamp01(float64(data[idx+2]) / 255 * finalFalloff)

			data[idx] = uint8(rf * 255)
			data[idx+1] = uint8(gf * 255)
			data[idx+2] = uint8(bf * 255)
		}
	}
}

// BlackWhite blends each pixel toward its BT.709 luminance by
// intensity, in place. Negative intensity is a no-op, values above one
// are clamped. Alpha is preserved. RGBA only.
func BlackWhite(data []byte, width, height int, format frame.Format, intensity float64) {
	if format != frame.FormatRGBA || !rgbaBounds(data, width, height) || intensity < 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	pixels := width * height
	for i := 0; i < pixels; i++ {
		idx := i * 4

		rf := float64(data[idx]) / 255
		gf := float64(data[idx+1]) / 255
		bf := float64(data[idx+2]) / 255

		luminance := 0.2126*rf + 0.7152*gf + 0.0722*bf

		finalR := clamp01(rf + (luminance-rf)*intensity)
		finalG := clamp01(gf + (luminance-gf)*intensity)
		finalB := clamp01(bf + (luminance-bf)*intensity)

		data[idx] = uint8(finalR * 255)
		data[idx+1] = uint8(finalG * 255)
		data[idx+2] = uint8(finalB * 255)
	}
}
