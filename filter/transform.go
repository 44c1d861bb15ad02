package filter

import (
	"math"

	"github.com/opd-ai/videoengine/frame"
)

// Transform remaps src into dst through output-driven inverse mapping:
// each destination pixel outside the percentage crop window becomes
// transparent black; pixels inside are translated to the frame center,
// unscaled, rotated, translated back, mirrored for flips, and then
// bilinearly sampled from src. Source coordinates that land outside
// the frame also yield transparent black. Every pixel of dst is
// written. RGBA only.
func Transform(src, dst []byte, width, height int, format frame.Format, p TransformParams) {
	if format != frame.FormatRGBA || !rgbaBounds(src, width, height) {
		return
	}
	if len(dst) < width*height*4 {
		return
	}

	scale := p.Scale / 100
	theta := p.Rotation * math.Pi / 180

	cropLeft := int(p.CropX * float64(width) / 100)
	cropTop := int(p.CropY * float64(height) / 100)
	cropRight := cropLeft + int(p.CropWidth*float64(width)/100)
	cropBottom := cropTop + int(p.CropHeight*float64(height)/100)

	if cropLeft < 0 {
		cropLeft = 0
	}
	if cropTop < 0 {
		cropTop = 0
	}
	if cropRight > width {
		cropRight = width
	}
	if cropBottom > height {
		cropBottom = height
	}

	cosTheta := math.Cos(theta)
	sinTheta := math.Sin(theta)
	centerX := float64(width) * 0.5
	centerY := float64(height) * 0.5

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4

			if x < cropLeft || x >= cropRight || y < cropTop || y >= cropBottom {
				dst[idx], dst[idx+1], dst[idx+2], dst[idx+3] = 0, 0, 0, 0
				continue
			}

			tx := (float64(x) - centerX) / scale
			ty := (float64(y) - centerY) / scale

			rx := tx*cosTheta - ty*sinTheta
			ry := tx*sinTheta + ty*cosTheta

			sourceX := rx + centerX
			sourceY := ry + centerY

			if p.FlipH {
				sourceX = float64(width-1) - sourceX
			}
			if p.FlipV {
				sourceY = float64(height-1) - sourceY
			}

			// A zero scale divides to Inf or NaN above; both fail this
			// bounds check and come out transparent.
			if sourceX >= 0 && sourceX < float64(width) && sourceY >= 0 && sourceY < float64(height) {
				r, g, b, a := samplePixel(src, width, height, sourceX, sourceY)
				dst[idx], dst[idx+1], dst[idx+2], dst[idx+3] = r, g, b, a
			} else {
				dst[idx], dst[idx+1], dst[idx+2], dst[idx+3] = 0, 0, 0, 0
			}
		}
	}
}

// samplePixel bilinearly samples a packed RGBA buffer at a fractional
// coordinate, clamping against the image bounds and rounding each
// channel to the nearest byte.
func samplePixel(data []byte, width, height int, x, y float64) (r, g, b, a uint8) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= float64(width-1) {
		x = float64(width - 1)
	}
	if y >= float64(height-1) {
		y = float64(height - 1)
	}

	x1 := int(x)
	y1 := int(y)
	x2 := x1 + 1
	y2 := y1 + 1
	if x2 >= width {
		x2 = width - 1
	}
	if y2 >= height {
		y2 = height - 1
	}

	fx := x - float64(x1)
	fy := y - float64(y1)

	i11 := (y1*width + x1) * 4
	i12 := (y1*width + x2) * 4
	i21 := (y2*width + x1) * 4
	i22 := (y2*width + x2) * 4

	w11 := (1 - fx) * (1 - fy)
	w12 := fx * (1 - fy)
	w21 := (1 - fx) * fy
	w22 := fx * fy

	r = uint8(float64(data[i11])*w11 + float64(data[i12])*w12 + float64(data[i21])*w21 + float64(data[i22])*w22 + 0.5)
	g = uint8(float64(data[i11+1])*w11 + float64(data[i12+1])*w12 + float64(data[i21+1])*w21 + float64(data[i22+1])*w22 + 0.5)
	b = uint8(float64(data[i11+2])*w11 + float64(data[i12+2])*w12 + float64(data[i21+2])*w21 + float64(data[i22+2])*w22 + 0.5)
	a = uint8(float64(data[i11+3])*w11 + float64(data[i12+3])*w12 + float64(data[i21+3])*w21 + float64(data[i22+3])*w22 + 0.5)
	return r, g, b, a
}
