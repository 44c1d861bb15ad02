package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opd-ai/videoengine/frame"
)

func identityTransform() TransformParams {
	return TransformParams{
		Scale:      100,
		CropWidth:  100,
		CropHeight: 100,
	}
}

func TestTransformIdentityIsExact(t *testing.T) {
	src := patternRGBA(5, 3)
	dst := make([]byte, len(src))

	Transform(src, dst, 5, 3, frame.FormatRGBA, identityTransform())
	assert.Equal(t, src, dst)
}

func TestTransformFlipHorizontal(t *testing.T) {
	width, height := 4, 3
	src := patternRGBA(width, height)
	dst := make([]byte, len(src))

	p := identityTransform()
	p.FlipH = true
	Transform(src, dst, width, height, frame.FormatRGBA, p)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			srcIdx := (y*width + (width - 1 - x)) * 4
			dstIdx := (y*width + x) * 4
			assert.Equal(t, src[srcIdx:srcIdx+4], dst[dstIdx:dstIdx+4], "(%d,%d)", x, y)
		}
	}
}

func TestTransformFlipVertical(t *testing.T) {
	width, height := 4, 3
	src := patternRGBA(width, height)
	dst := make([]byte, len(src))

	p := identityTransform()
	p.FlipV = true
	Transform(src, dst, width, height, frame.FormatRGBA, p)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			srcIdx := ((height-1-y)*width + x) * 4
			dstIdx := (y*width + x) * 4
			assert.Equal(t, src[srcIdx:srcIdx+4], dst[dstIdx:dstIdx+4], "(%d,%d)", x, y)
		}
	}
}

func TestTransformCropBlanksOutside(t *testing.T) {
	width, height := 4, 4
	src := patternRGBA(width, height)
	dst := make([]byte, len(src))

	p := identityTransform()
	p.CropWidth = 50
	Transform(src, dst, width, height, frame.FormatRGBA, p)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4
			if x < 2 {
				assert.Equal(t, src[idx:idx+4], dst[idx:idx+4], "(%d,%d) inside crop", x, y)
			} else {
				assert.Equal(t, []byte{0, 0, 0, 0}, dst[idx:idx+4], "(%d,%d) outside crop", x, y)
			}
		}
	}
}

func TestTransformZeroScaleGoesTransparent(t *testing.T) {
	src := uniformRGBA(4, 4, 200, 10, 30, 255)
	dst := make([]byte, len(src))

	p := identityTransform()
	p.Scale = 0
	Transform(src, dst, 4, 4, frame.FormatRGBA, p)

	for i := range dst {
		assert.Equal(t, byte(0), dst[i], "byte %d", i)
	}
}

func TestTransformDoubleScaleSamplesHalfway(t *testing.T) {
	// Scaling up by two maps destination (0,0) back to source (1,1)
	// and leaves the center pixel in place.
	width, height := 4, 4
	src := patternRGBA(width, height)
	dst := make([]byte, len(src))

	p := identityTransform()
	p.Scale = 200
	Transform(src, dst, width, height, frame.FormatRGBA, p)

	srcIdx := (1*width + 1) * 4
	assert.Equal(t, src[srcIdx:srcIdx+4], dst[0:4])

	center := (2*width + 2) * 4
	assert.Equal(t, src[center:center+4], dst[center:center+4])
}

func TestTransformRotationKeepsCenterCutsCorners(t *testing.T) {
	src := uniformRGBA(4, 4, 130, 70, 220, 255)
	dst := make([]byte, len(src))

	p := identityTransform()
	p.Rotation = 45
	Transform(src, dst, 4, 4, frame.FormatRGBA, p)

	center := (2*4 + 2) * 4
	assert.Equal(t, src[center:center+4], dst[center:center+4], "pivot pixel survives")
	assert.Equal(t, []byte{0, 0, 0, 0}, dst[0:4], "corner rotates out of frame")

	// Every output pixel either sampled the uniform source or fell
	// outside it; rotation introduces no third value.
	for i := 0; i < 16; i++ {
		px := dst[i*4 : i*4+4]
		if px[3] == 0 {
			assert.Equal(t, []byte{0, 0, 0, 0}, px, "pixel %d", i)
		} else {
			assert.Equal(t, src[0:4], px, "pixel %d", i)
		}
	}
}

func TestTransformRejectsNonRGBA(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6}
	dst := make([]byte, len(src))

	Transform(src, dst, 2, 1, frame.FormatRGB, identityTransform())
	assert.Equal(t, make([]byte, len(src)), dst)
}

func BenchmarkTransform(b *testing.B) {
	src := patternRGBA(640, 360)
	dst := make([]byte, len(src))
	p := TransformParams{Scale: 150, Rotation: 30, CropWidth: 100, CropHeight: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Transform(src, dst, 640, 360, frame.FormatRGBA, p)
	}
}
