package capi

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videoengine"
	"github.com/opd-ai/videoengine/effects"
	"github.com/opd-ai/videoengine/filter"
	"github.com/opd-ai/videoengine/frame"
	"github.com/opd-ai/videoengine/limits"
)

// Pixel format codes as they appear on the wire. They match the
// frame.Format values one to one.
const (
	PixelFormatRGB    = int(frame.FormatRGB)
	PixelFormatRGBA   = int(frame.FormatRGBA)
	PixelFormatYUV420 = int(frame.FormatYUV420)
)

// Version returns the engine identification string.
func Version() string {
	return videoengine.VersionString
}

// pixelFormat validates a wire-format code.
func pixelFormat(format int) (frame.Format, bool) {
	switch format {
	case PixelFormatRGB, PixelFormatRGBA, PixelFormatYUV420:
		return frame.Format(format), true
	default:
		return 0, false
	}
}

// EngineCreate builds an engine with the given working resolution and
// the default pool size. It returns 0 when the dimensions are invalid.
func EngineCreate(width, height int) Handle {
	e, err := videoengine.New(&videoengine.Options{
		Width:      width,
		Height:     height,
		PoolBlocks: limits.DefaultPoolBlocks,
	})
	if err != nil {
		return 0
	}
	return engines.put(e)
}

// EngineDestroy closes the engine and releases its handle.
func EngineDestroy(h Handle) bool {
	e, ok := engines.remove(h)
	if !ok {
		return false
	}
	e.Close()
	return true
}

// EngineAddColorCorrection appends a color correction effect and
// returns its chain index, or -1.
func EngineAddColorCorrection(h Handle, brightness, contrast, saturation, hue float64) int {
	e, ok := engines.get(h)
	if !ok {
		return -1
	}
	index, err := e.AddEffect(effects.NewColorCorrection(brightness, contrast, saturation, hue))
	if err != nil {
		return -1
	}
	return index
}

// EngineAddBlur appends a blur effect and returns its chain index,
// or -1.
func EngineAddBlur(h Handle, radius float64, gaussian bool) int {
	e, ok := engines.get(h)
	if !ok {
		return -1
	}
	index, err := e.AddEffect(effects.NewBlur(radius, gaussian))
	if err != nil {
		return -1
	}
	return index
}

// EngineAddTransform appends a geometric transform effect and returns
// its chain index, or -1.
func EngineAddTransform(h Handle, scale, rotation float64, flipH, flipV bool) int {
	e, ok := engines.get(h)
	if !ok {
		return -1
	}
	index, err := e.AddEffect(effects.NewTransform(scale, rotation, flipH, flipV))
	if err != nil {
		return -1
	}
	return index
}

// EngineAddFilter appends a generic filter effect selected by its wire
// kind code and returns its chain index, or -1.
func EngineAddFilter(h Handle, kind int, intensity float64) int {
	e, ok := engines.get(h)
	if !ok {
		return -1
	}
	if kind < int(filter.KindBrightness) || kind > int(filter.KindBlackWhite) {
		return -1
	}
	index, err := e.AddEffect(effects.NewFilter(filter.Kind(kind), intensity))
	if err != nil {
		return -1
	}
	return index
}

// EngineRemoveEffect removes the effect at index.
func EngineRemoveEffect(h Handle, index int) bool {
	e, ok := engines.get(h)
	if !ok {
		return false
	}
	return e.RemoveEffect(index) == nil
}

// EngineClearEffects removes every effect from the engine's chain.
func EngineClearEffects(h Handle) bool {
	e, ok := engines.get(h)
	if !ok {
		return false
	}
	e.ClearEffects()
	return true
}

// EngineEffectCount returns the number of effects in the chain, or 0
// for an unknown handle.
func EngineEffectCount(h Handle) int {
	e, ok := engines.get(h)
	if !ok {
		return 0
	}
	return e.EffectCount()
}

// EngineProcessFrame wraps the caller's pixel buffer in a frame and
// runs the effect chain over it in place. The frame number is the
// engine's running processed count.
func EngineProcessFrame(h Handle, data []byte, width, height, format int, timestamp float64) bool {
	e, ok := engines.get(h)
	if !ok {
		return false
	}
	ff, ok := pixelFormat(format)
	if !ok {
		return false
	}

	f, err := frame.FromBuffer(data, width, height, ff)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "EngineProcessFrame",
			"width":    width,
			"height":   height,
			"format":   format,
			"error":    err.Error(),
		}).Debug("Frame rejected at boundary")
		return false
	}
	f.Index = int(e.FramesProcessed())

	return e.ProcessFrame(f, timestamp) == nil
}

// EngineLastProcessTime returns the duration of the engine's most
// recent frame pass in milliseconds.
func EngineLastProcessTime(h Handle) float64 {
	e, ok := engines.get(h)
	if !ok {
		return 0
	}
	return e.LastProcessTimeMs()
}

// EngineFramesProcessed returns the engine's processed frame count.
func EngineFramesProcessed(h Handle) uint64 {
	e, ok := engines.get(h)
	if !ok {
		return 0
	}
	return e.FramesProcessed()
}
