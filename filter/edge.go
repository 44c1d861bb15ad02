package filter

import (
	"math"

	"github.com/opd-ai/videoengine/frame"
)

var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// EdgeDetect computes per-channel Sobel gradient magnitudes over the
// interior of src, averages them into a single edge strength, and
// blends that strength with the original pixel by intensity. The
// result replaces the interior of dst, which must start as a byte
// copy of src; borders and alpha carry through. Negative intensity is
// a no-op, values above one are clamped. RGBA only.
func EdgeDetect(src, dst []byte, width, height int, format frame.Format, intensity float64) {
	if format != frame.FormatRGBA || !rgbaBounds(src, width, height) || intensity < 0 {
		return
	}
	if len(dst) < width*height*4 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			offset := (y*width + x) * 4

			var gxR, gxG, gxB float64
			var gyR, gyG, gyB float64

			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sampleOffset := ((y+ky)*width + (x + kx)) * 4

					r := float64(src[sampleOffset]) / 255
					g := float64(src[sampleOffset+1]) / 255
					b := float64(src[sampleOffset+2]) / 255

					wx := float64(sobelX[ky+1][kx+1])
					wy := float64(sobelY[ky+1][kx+1])

					gxR += r * wx
					gxG += g * wx
					gxB += b * wx

					gyR += r * wy
					gyG += g * wy
					gyB += b * wy
				}
			}

			magR := math.Sqrt(gxR*gxR + gyR*gyR)
			magG := math.Sqrt(gxG*gxG + gyG*gyG)
			magB := math.Sqrt(gxB*gxB + gyB*gyB)

			// Average magnitude, amplified before the clamp so faint
			// gradients still register as edges.
			edgeStrength := clamp01((magR + magG + magB) / 3 * 3)

			origR := float64(src[offset]) / 255
			origG := float64(src[offset+1]) / 255
			origB := float64(src[offset+2]) / 255

			finalR := clamp01(origR + (edgeStrength-origR)*intensity)
			finalG := clamp01(origG + (edgeStrength-origG)*intensity)
			finalB := clamp01(origB + (edgeStrength-origB)*intensity)

			dst[offset] = uint8(finalR * 255)
			dst[offset+1] = uint8(finalG * 255)
			dst[offset+2] = uint8(finalB * 255)
		}
	}
}
