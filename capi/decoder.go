package capi

import (
	"github.com/opd-ai/videoengine/export"
	"github.com/opd-ai/videoengine/frame"
)

// DecoderCreate builds an idle decoder and returns its handle.
func DecoderCreate() Handle {
	return decoders.put(export.NewDecoder())
}

// DecoderDestroy closes the decoder and releases its handle.
func DecoderDestroy(h Handle) bool {
	d, ok := decoders.remove(h)
	if !ok {
		return false
	}
	d.Close()
	return true
}

// DecoderOpen binds the decoder to an input buffer and loads the
// stream metadata.
func DecoderOpen(h Handle, source []byte) bool {
	d, ok := decoders.get(h)
	if !ok {
		return false
	}
	return d.Open(source) == nil
}

// DecoderGetFrame decodes frame n and returns a handle to it, or 0.
// The frame is independently owned; destroy it when done.
func DecoderGetFrame(h Handle, n int) Handle {
	d, ok := decoders.get(h)
	if !ok {
		return 0
	}
	f, err := d.Frame(n)
	if err != nil {
		return 0
	}
	return frames.put(f)
}

// DecoderWidth returns the stream width, or 0.
func DecoderWidth(h Handle) int {
	d, ok := decoders.get(h)
	if !ok {
		return 0
	}
	return d.Width()
}

// DecoderHeight returns the stream height, or 0.
func DecoderHeight(h Handle) int {
	d, ok := decoders.get(h)
	if !ok {
		return 0
	}
	return d.Height()
}

// DecoderFPS returns the stream frame rate, or 0.
func DecoderFPS(h Handle) float64 {
	d, ok := decoders.get(h)
	if !ok {
		return 0
	}
	return d.FPS()
}

// DecoderDuration returns the stream duration in seconds, or 0.
func DecoderDuration(h Handle) float64 {
	d, ok := decoders.get(h)
	if !ok {
		return 0
	}
	return d.Duration()
}

// DecoderTotalFrames returns the stream frame count, or 0.
func DecoderTotalFrames(h Handle) int {
	d, ok := decoders.get(h)
	if !ok {
		return 0
	}
	return d.TotalFrames()
}

// FrameDestroy releases a decoded frame handle.
func FrameDestroy(h Handle) bool {
	_, ok := frames.remove(h)
	return ok
}

// FrameWidth returns the frame width in pixels, or 0.
func FrameWidth(h Handle) int {
	f, ok := frames.get(h)
	if !ok {
		return 0
	}
	return f.Width
}

// FrameHeight returns the frame height in pixels, or 0.
func FrameHeight(h Handle) int {
	f, ok := frames.get(h)
	if !ok {
		return 0
	}
	return f.Height
}

// FrameTimestamp returns the frame's presentation time in seconds,
// or 0.
func FrameTimestamp(h Handle) float64 {
	f, ok := frames.get(h)
	if !ok {
		return 0
	}
	return f.Timestamp
}

// FrameData returns the frame's pixel storage by reference, or nil.
// The slice stays valid until the frame handle is destroyed.
func FrameData(h Handle) []byte {
	f, ok := frames.get(h)
	if !ok {
		return nil
	}
	return f.Data
}

// FrameResize produces a bilinearly resampled copy of the frame as a
// new handle, or 0. Hosts use this to bring decoded frames down to the
// engine's working resolution.
func FrameResize(h Handle, width, height int) Handle {
	f, ok := frames.get(h)
	if !ok {
		return 0
	}
	resized, err := frame.Resize(f, width, height)
	if err != nil {
		return 0
	}
	return frames.put(resized)
}

// FrameThumbnail scales the frame down so its longest side is maxDim
// pixels and returns the packed RGBA preview with its dimensions, or
// nil and zeros. The returned buffer is freshly allocated and owned by
// the caller.
func FrameThumbnail(h Handle, maxDim int) ([]byte, int, int) {
	f, ok := frames.get(h)
	if !ok {
		return nil, 0, 0
	}
	img, err := frame.Thumbnail(f, maxDim)
	if err != nil {
		return nil, 0, 0
	}
	return img.Pix, img.Rect.Dx(), img.Rect.Dy()
}
