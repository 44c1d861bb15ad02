package frame

import (
	"fmt"

	"github.com/opd-ai/videoengine/limits"
)

// ITU-R BT.709 coefficients for the YUV/RGB conversions. The chroma
// planes carry an offset of 128 so unsigned bytes can represent the
// signed components.
var yuvToRGB = [9]float64{
	1.0, 0.0, 1.5748,
	1.0, -0.1873, -0.4681,
	1.0, 1.8556, 0.0,
}

var rgbToYUV = [9]float64{
	0.2126, 0.7152, 0.0722,
	-0.1146, -0.3854, 0.5,
	0.5, -0.4542, -0.0458,
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RGBToYUV420 converts a packed RGB buffer into planar YUV420. Chroma
// is subsampled by taking the top-left pixel of each 2x2 block.
func RGBToYUV420(rgb, yuv []byte, width, height int) error {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return err
	}
	if err := limits.ValidateBufferSize(rgb, width*height*limits.BytesPerPixelRGB); err != nil {
		return fmt.Errorf("rgb: %w", err)
	}
	if err := limits.ValidateBufferSize(yuv, YUV420Size(width, height)); err != nil {
		return fmt.Errorf("yuv: %w", err)
	}

	ySize := width * height
	uvSize := (width / 2) * (height / 2)
	yPlane := yuv[:ySize]
	uPlane := yuv[ySize : ySize+uvSize]
	vPlane := yuv[ySize+uvSize : ySize+2*uvSize]

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 3
			r := float64(rgb[idx])
			g := float64(rgb[idx+1])
			b := float64(rgb[idx+2])

			yPlane[y*width+x] = clampByte(rgbToYUV[0]*r + rgbToYUV[1]*g + rgbToYUV[2]*b)

			if y%2 == 0 && x%2 == 0 {
				uvIdx := (y/2)*(width/2) + x/2
				uPlane[uvIdx] = clampByte(rgbToYUV[3]*r + rgbToYUV[4]*g + rgbToYUV[5]*b + 128)
				vPlane[uvIdx] = clampByte(rgbToYUV[6]*r + rgbToYUV[7]*g + rgbToYUV[8]*b + 128)
			}
		}
	}
	return nil
}

// YUV420ToRGB converts a planar YUV420 buffer into packed RGB.
func YUV420ToRGB(yuv, rgb []byte, width, height int) error {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return err
	}
	if err := limits.ValidateBufferSize(yuv, YUV420Size(width, height)); err != nil {
		return fmt.Errorf("yuv: %w", err)
	}
	if err := limits.ValidateBufferSize(rgb, width*height*limits.BytesPerPixelRGB); err != nil {
		return fmt.Errorf("rgb: %w", err)
	}

	ySize := width * height
	uvSize := (width / 2) * (height / 2)
	yPlane := yuv[:ySize]
	uPlane := yuv[ySize : ySize+uvSize]
	vPlane := yuv[ySize+uvSize : ySize+2*uvSize]

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			uvIdx := (y/2)*(width/2) + x/2
			yv := float64(yPlane[y*width+x])
			uv := float64(uPlane[uvIdx]) - 128
			vv := float64(vPlane[uvIdx]) - 128

			idx := (y*width + x) * 3
			rgb[idx] = clampByte(yuvToRGB[0]*yv + yuvToRGB[1]*uv + yuvToRGB[2]*vv)
			rgb[idx+1] = clampByte(yuvToRGB[3]*yv + yuvToRGB[4]*uv + yuvToRGB[5]*vv)
			rgb[idx+2] = clampByte(yuvToRGB[6]*yv + yuvToRGB[7]*uv + yuvToRGB[8]*vv)
		}
	}
	return nil
}

// RGBAToRGB drops the alpha channel from a packed RGBA buffer.
func RGBAToRGB(rgba, rgb []byte, width, height int) error {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return err
	}
	pixels := width * height
	if err := limits.ValidateBufferSize(rgba, pixels*limits.BytesPerPixelRGBA); err != nil {
		return fmt.Errorf("rgba: %w", err)
	}
	if err := limits.ValidateBufferSize(rgb, pixels*limits.BytesPerPixelRGB); err != nil {
		return fmt.Errorf("rgb: %w", err)
	}

	for i := 0; i < pixels; i++ {
		rgb[i*3] = rgba[i*4]
		rgb[i*3+1] = rgba[i*4+1]
		rgb[i*3+2] = rgba[i*4+2]
	}
	return nil
}

// RGBToRGBA expands a packed RGB buffer to RGBA with the given alpha.
func RGBToRGBA(rgb, rgba []byte, width, height int, alpha uint8) error {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return err
	}
	pixels := width * height
	if err := limits.ValidateBufferSize(rgb, pixels*limits.BytesPerPixelRGB); err != nil {
		return fmt.Errorf("rgb: %w", err)
	}
	if err := limits.ValidateBufferSize(rgba, pixels*limits.BytesPerPixelRGBA); err != nil {
		return fmt.Errorf("rgba: %w", err)
	}

	for i := 0; i < pixels; i++ {
		rgba[i*4] = rgb[i*3]
		rgba[i*4+1] = rgb[i*3+1]
		rgba[i*4+2] = rgb[i*3+2]
		rgba[i*4+3] = alpha
	}
	return nil
}

// ToRGBA converts an RGB frame into a new fully opaque RGBA frame,
// carrying over timing metadata.
func ToRGBA(src *Frame) (*Frame, error) {
	if src == nil {
		return nil, ErrNilFrame
	}
	if src.Format != FormatRGB {
		return nil, fmt.Errorf("%w: %s, want RGB", ErrUnsupportedFormat, src.Format)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	dst, err := NewRGBA(src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	dst.Timestamp = src.Timestamp
	dst.Index = src.Index

	if err := RGBToRGBA(src.Data, dst.Data, src.Width, src.Height, 255); err != nil {
		return nil, err
	}
	return dst, nil
}
