package filter

import (
	"math"

	"github.com/opd-ai/videoengine/frame"
)

// Sharpen convolves the interior of the image with an unsharp cross
// kernel: center weight 1+4*intensity, four-connected neighbors
// -intensity, diagonals zero. It reads src and writes dst, which must
// start as a byte copy of src so that the untouched border rows,
// border columns, and alpha bytes carry through. RGBA only.
func Sharpen(src, dst []byte, width, height int, format frame.Format, intensity float64) {
	if format != frame.FormatRGBA || !rgbaBounds(src, width, height) {
		return
	}
	if len(dst) < width*height*4 {
		return
	}

	kernel := [9]float64{
		0, -intensity, 0,
		-intensity, 1 + 4*intensity, -intensity,
		0, -intensity, 0,
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var sumR, sumG, sumB float64

			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					idx := ((y+ky)*width + (x + kx)) * 4
					weight := kernel[(ky+1)*3+(kx+1)]

					sumR += float64(src[idx]) * weight
					sumG += float64(src[idx+1]) * weight
					sumB += float64(src[idx+2]) * weight
				}
			}

			idx := (y*width + x) * 4
			dst[idx] = uint8(math.Max(0, math.Min(255, sumR)))
			dst[idx+1] = uint8(math.Max(0, math.Min(255, sumG)))
			dst[idx+2] = uint8(math.Max(0, math.Min(255, sumB)))
		}
	}
}
