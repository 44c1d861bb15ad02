package filter

import "github.com/opd-ai/videoengine/frame"

// BoxBlur applies a two-pass separable box blur to data in place,
// using temp to hold the horizontal pass result between passes. temp
// must be at least as large as the image. The averaging window shrinks
// at the borders: the divisor is the count of in-bounds taps, never a
// fixed window size. Sums are integer, so uniform regions pass through
// bit-exact. Radius below one pixel is a no-op. RGBA only; the alpha
// channel is averaged along with color.
func BoxBlur(data, temp []byte, width, height int, format frame.Format, p BlurParams) {
	if format != frame.FormatRGBA || !rgbaBounds(data, width, height) {
		return
	}
	radius := int(p.Radius)
	if radius <= 0 || len(temp) < width*height*4 {
		return
	}

	// Horizontal pass: data -> temp.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB, sumA, count int
			for dx := -radius; dx <= radius; dx++ {
				nx := x + dx
				if nx < 0 || nx >= width {
					continue
				}
				idx := (y*width + nx) * 4
				sumR += int(data[idx])
				sumG += int(data[idx+1])
				sumB += int(data[idx+2])
				sumA += int(data[idx+3])
				count++
			}
			idx := (y*width + x) * 4
			temp[idx] = uint8(sumR / count)
			temp[idx+1] = uint8(sumG / count)
			temp[idx+2] = uint8(sumB / count)
			temp[idx+3] = uint8(sumA / count)
		}
	}

	// Vertical pass: temp -> data.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB, sumA, count int
			for dy := -radius; dy <= radius; dy++ {
				ny := y + dy
				if ny < 0 || ny >= height {
					continue
				}
				idx := (ny*width + x) * 4
				sumR += int(temp[idx])
				sumG += int(temp[idx+1])
				sumB += int(temp[idx+2])
				sumA += int(temp[idx+3])
				count++
			}
			idx := (y*width + x) * 4
			data[idx] = uint8(sumR / count)
			data[idx+1] = uint8(sumG / count)
			data[idx+2] = uint8(sumB / count)
			data[idx+3] = uint8(sumA / count)
		}
	}
}
