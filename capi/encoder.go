package capi

import (
	"github.com/opd-ai/videoengine/export"
)

// EncoderCreate builds an encoder for the given output geometry and
// returns its handle, or 0 when the parameters are invalid.
func EncoderCreate(width, height int, fps float64) Handle {
	e, err := export.NewEncoder(width, height, fps)
	if err != nil {
		return 0
	}
	return encoders.put(e)
}

// EncoderDestroy closes the encoder and releases its handle.
func EncoderDestroy(h Handle) bool {
	e, ok := encoders.remove(h)
	if !ok {
		return false
	}
	e.Close()
	return true
}

// EncoderSetQuality sets the quality setting, clamped to its range.
func EncoderSetQuality(h Handle, quality int) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	e.SetQuality(quality)
	return true
}

// EncoderSetBitrate sets the target bitrate, floored at the minimum.
func EncoderSetBitrate(h Handle, bitrate int) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	e.SetBitrate(bitrate)
	return true
}

// EncoderSetFormat sets the container format name.
func EncoderSetFormat(h Handle, format string) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	e.SetFormat(format)
	return true
}

// EncoderAttachEngine routes the encoder's frames through an engine's
// effect chain before they are staged.
func EncoderAttachEngine(h, engineHandle Handle) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	eng, ok := engines.get(engineHandle)
	if !ok {
		return false
	}
	e.Attach(eng)
	return true
}

// EncoderStartExport begins a recording session writing to path.
func EncoderStartExport(h Handle, path string) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	return e.StartExport(path) == nil
}

// EncoderAddFrame stages one raw frame without an effect pass.
func EncoderAddFrame(h Handle, data []byte, timestamp float64) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	return e.AddFrame(data, timestamp) == nil
}

// EncoderProcessAndExport runs the attached engine's chain over the
// caller's pixels and stages the result.
func EncoderProcessAndExport(h Handle, data []byte, width, height int, timestamp float64) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	return e.ProcessAndExportFrame(data, width, height, timestamp) == nil
}

// EncoderFinishExport ends the session and writes the artifact.
func EncoderFinishExport(h Handle) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	return e.FinishExport() == nil
}

// EncoderCancelExport abandons the session without writing anything.
func EncoderCancelExport(h Handle) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	e.CancelExport()
	return true
}

// EncoderProgress returns the session progress in [0,1], or 0.
func EncoderProgress(h Handle) float64 {
	e, ok := encoders.get(h)
	if !ok {
		return 0
	}
	return e.Progress()
}

// EncoderFramesExported returns the session's staged frame count,
// or 0.
func EncoderFramesExported(h Handle) int {
	e, ok := encoders.get(h)
	if !ok {
		return 0
	}
	return e.FramesExported()
}

// EncoderIsExporting reports whether a recording session is active.
func EncoderIsExporting(h Handle) bool {
	e, ok := encoders.get(h)
	if !ok {
		return false
	}
	return e.IsExporting()
}
