package filter

import "github.com/opd-ai/videoengine/frame"

// NoiseReduce applies a 3x3 weighted spatial average to the interior
// of the image: the center pixel keeps weight 1-0.3*strength and each
// of the eight neighbors contributes 0.05*strength. It reads src and
// writes dst, which must start as a byte copy of src; borders carry
// through. Operates on packed RGB or RGBA data, skipping the alpha
// channel for RGBA. Strength at or below zero is a no-op.
func NoiseReduce(src, dst []byte, width, height int, format frame.Format, strength float64) {
	var channels int
	switch format {
	case frame.FormatRGBA:
		channels = 4
	case frame.FormatRGB:
		channels = 3
	default:
		return
	}
	if strength <= 0 || width <= 0 || height <= 0 {
		return
	}
	need := width * height * channels
	if len(src) < need || len(dst) < need {
		return
	}

	centerWeight := 1 - strength*0.3
	neighborWeight := strength * 0.05

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			for c := 0; c < channels; c++ {
				if channels == 4 && c == 3 {
					continue
				}
				idx := (y*width+x)*channels + c

				sum := float64(src[idx]) * centerWeight

				sum += float64(src[((y-1)*width+(x-1))*channels+c]) * neighborWeight
				sum += float64(src[((y-1)*width+x)*channels+c]) * neighborWeight
				sum += float64(src[((y-1)*width+(x+1))*channels+c]) * neighborWeight
				sum += float64(src[(y*width+(x-1))*channels+c]) * neighborWeight
				sum += float64(src[(y*width+(x+1))*channels+c]) * neighborWeight
				sum += float64(src[((y+1)*width+(x-1))*channels+c]) * neighborWeight
				sum += float64(src[((y+1)*width+x)*channels+c]) * neighborWeight
				sum += float64(src[((y+1)*width+(x+1))*channels+c]) * neighborWeight

				dst[idx] = clampByte(sum + 0.5)
			}
		}
	}
}
