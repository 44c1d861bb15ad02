package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/videoengine/limits"
)

func TestRGBToYUV420Gray(t *testing.T) {
	const w, h = 4, 4
	rgb := make([]byte, w*h*3)
	for i := range rgb {
		rgb[i] = 128
	}

	yuv := make([]byte, YUV420Size(w, h))
	require.NoError(t, RGBToYUV420(rgb, yuv, w, h))

	// Neutral gray: Y equals the input level, chroma sits at the 128 offset.
	for i := 0; i < w*h; i++ {
		assert.InDelta(t, 128, yuv[i], 1, "luma at %d", i)
	}
	for i := w * h; i < len(yuv); i++ {
		assert.InDelta(t, 128, yuv[i], 1, "chroma at %d", i)
	}
}

func TestYUV420RoundTripApproximate(t *testing.T) {
	const w, h = 8, 8
	rgb := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := (y*w + x) * 3
			rgb[idx] = byte(x * 30)
			rgb[idx+1] = byte(y * 30)
			rgb[idx+2] = byte((x + y) * 15)
		}
	}

	yuv := make([]byte, YUV420Size(w, h))
	require.NoError(t, RGBToYUV420(rgb, yuv, w, h))

	back := make([]byte, w*h*3)
	require.NoError(t, YUV420ToRGB(yuv, back, w, h))

	// Chroma subsampling loses detail; the round trip stays close.
	for i := range rgb {
		assert.InDelta(t, rgb[i], back[i], 40, "channel byte %d", i)
	}
}

func TestRGBAToRGBDropsAlpha(t *testing.T) {
	rgba := []byte{10, 20, 30, 99, 40, 50, 60, 99}
	rgb := make([]byte, 6)
	require.NoError(t, RGBAToRGB(rgba, rgb, 2, 1))
	assert.Equal(t, []byte{10, 20, 30, 40, 50, 60}, rgb)
}

func TestRGBToRGBASetsAlpha(t *testing.T) {
	rgb := []byte{10, 20, 30, 40, 50, 60}
	rgba := make([]byte, 8)
	require.NoError(t, RGBToRGBA(rgb, rgba, 2, 1, 200))
	assert.Equal(t, []byte{10, 20, 30, 200, 40, 50, 60, 200}, rgba)
}

func TestConversionBufferValidation(t *testing.T) {
	short := make([]byte, 3)
	ok := make([]byte, YUV420Size(4, 4))
	assert.ErrorIs(t, RGBToYUV420(short, ok, 4, 4), limits.ErrBufferTooSmall)
	assert.ErrorIs(t, YUV420ToRGB(short, make([]byte, 4*4*3), 4, 4), limits.ErrBufferTooSmall)
	assert.ErrorIs(t, RGBAToRGB(short, make([]byte, 4*4*3), 4, 4), limits.ErrBufferTooSmall)
	assert.ErrorIs(t, RGBToRGBA(short, make([]byte, 4*4*4), 4, 4, 255), limits.ErrBufferTooSmall)
	assert.ErrorIs(t, RGBToYUV420(make([]byte, 4*4*3), ok, 0, 4), limits.ErrDimensionInvalid)
}

func TestToRGBAFrame(t *testing.T) {
	src, err := New(2, 2, FormatRGB)
	require.NoError(t, err)
	src.Timestamp = 2.5
	src.Index = 7
	for i := range src.Data {
		src.Data[i] = byte(i)
	}

	dst, err := ToRGBA(src)
	require.NoError(t, err)
	assert.Equal(t, FormatRGBA, dst.Format)
	assert.Equal(t, 2.5, dst.Timestamp)
	assert.Equal(t, 7, dst.Index)
	assert.Equal(t, byte(255), dst.Data[3])
	assert.Equal(t, src.Data[0], dst.Data[0])

	rgba, err := NewRGBA(2, 2)
	require.NoError(t, err)
	_, err = ToRGBA(rgba)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ToRGBA(nil)
	assert.ErrorIs(t, err, ErrNilFrame)
}
