package capi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderLifecycle(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)

	assert.True(t, DecoderOpen(h, []byte("container bytes")))
	assert.Equal(t, 1920, DecoderWidth(h))
	assert.Equal(t, 1080, DecoderHeight(h))
	assert.InDelta(t, 30.0, DecoderFPS(h), 1e-9)
	assert.InDelta(t, 10.0, DecoderDuration(h), 1e-9)
	assert.Equal(t, 300, DecoderTotalFrames(h))

	assert.True(t, DecoderDestroy(h))
	assert.False(t, DecoderDestroy(h))
	assert.Equal(t, 0, DecoderWidth(h), "destroyed handle must read as zero")
}

func TestDecoderOpenEmptyInput(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)
	defer DecoderDestroy(h)

	assert.False(t, DecoderOpen(h, nil))
	assert.False(t, DecoderOpen(h, []byte{}))
	assert.False(t, DecoderOpen(0, []byte("data")), "unknown handle")
}

func TestDecoderGetFrame(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)
	defer DecoderDestroy(h)

	assert.Zero(t, DecoderGetFrame(h, 0), "decode before open must fail")

	require.True(t, DecoderOpen(h, []byte("container bytes")))

	fh := DecoderGetFrame(h, 9)
	require.NotZero(t, fh)
	defer FrameDestroy(fh)

	assert.Equal(t, 1920, FrameWidth(fh))
	assert.Equal(t, 1080, FrameHeight(fh))
	assert.InDelta(t, 9.0/30.0, FrameTimestamp(fh), 1e-9)

	data := FrameData(fh)
	require.NotNil(t, data)
	assert.Len(t, data, 1920*1080*4)
}

func TestDecoderGetFrameOutOfRange(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)
	defer DecoderDestroy(h)

	require.True(t, DecoderOpen(h, []byte("container bytes")))

	assert.Zero(t, DecoderGetFrame(h, -1))
	assert.Zero(t, DecoderGetFrame(h, 300))
	assert.Zero(t, DecoderGetFrame(0, 0), "unknown handle")
}

func TestFrameHandleLifecycle(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)
	defer DecoderDestroy(h)
	require.True(t, DecoderOpen(h, []byte("container bytes")))

	fh := DecoderGetFrame(h, 0)
	require.NotZero(t, fh)

	assert.True(t, FrameDestroy(fh))
	assert.False(t, FrameDestroy(fh))
	assert.Nil(t, FrameData(fh))
	assert.Equal(t, 0, FrameWidth(fh))
	assert.Equal(t, 0, FrameHeight(fh))
	assert.Equal(t, 0.0, FrameTimestamp(fh))
}

func TestFrameDataIsBackedByTheFrame(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)
	defer DecoderDestroy(h)
	require.True(t, DecoderOpen(h, []byte("container bytes")))

	fh := DecoderGetFrame(h, 0)
	require.NotZero(t, fh)
	defer FrameDestroy(fh)

	// Two reads must see the same storage, not copies.
	first := FrameData(fh)
	first[0] = 0xEE
	second := FrameData(fh)
	assert.Equal(t, uint8(0xEE), second[0])
}

func TestFrameResizeProducesNewHandle(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)
	defer DecoderDestroy(h)
	require.True(t, DecoderOpen(h, []byte("container bytes")))

	fh := DecoderGetFrame(h, 0)
	require.NotZero(t, fh)
	defer FrameDestroy(fh)

	small := FrameResize(fh, 8, 8)
	require.NotZero(t, small)
	defer FrameDestroy(small)

	assert.NotEqual(t, fh, small)
	assert.Equal(t, 8, FrameWidth(small))
	assert.Equal(t, 8, FrameHeight(small))
	assert.Len(t, FrameData(small), 8*8*4)

	// The source frame keeps its geometry.
	assert.Equal(t, 1920, FrameWidth(fh))
}

func TestFrameResizeValidation(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)
	defer DecoderDestroy(h)
	require.True(t, DecoderOpen(h, []byte("container bytes")))

	fh := DecoderGetFrame(h, 0)
	require.NotZero(t, fh)
	defer FrameDestroy(fh)

	assert.Zero(t, FrameResize(fh, 0, 8))
	assert.Zero(t, FrameResize(fh, 8, -1))
	assert.Zero(t, FrameResize(0, 8, 8), "unknown handle")
}

func TestFrameThumbnail(t *testing.T) {
	h := DecoderCreate()
	require.NotZero(t, h)
	defer DecoderDestroy(h)
	require.True(t, DecoderOpen(h, []byte("container bytes")))

	fh := DecoderGetFrame(h, 0)
	require.NotZero(t, fh)
	defer FrameDestroy(fh)

	pix, w, hgt := FrameThumbnail(fh, 64)
	require.NotNil(t, pix)
	assert.Equal(t, 64, w, "landscape thumbnails pin the width")
	assert.Equal(t, 36, hgt)
	assert.Len(t, pix, 64*36*4)

	pix, w, hgt = FrameThumbnail(fh, 0)
	assert.Nil(t, pix)
	assert.Zero(t, w)
	assert.Zero(t, hgt)

	pix, _, _ = FrameThumbnail(0, 64)
	assert.Nil(t, pix)
}
