package capi

import (
	"github.com/opd-ai/videoengine/export"
)

// JobCreate builds an export job for a source of the given geometry
// and duration, returning its handle or 0.
func JobCreate(sourceWidth, sourceHeight int, sourceFPS, duration float64) Handle {
	j, err := export.NewJob(sourceWidth, sourceHeight, sourceFPS, duration)
	if err != nil {
		return 0
	}
	return jobs.put(j)
}

// JobDestroy cancels any active session and releases the job handle.
func JobDestroy(h Handle) bool {
	j, ok := jobs.remove(h)
	if !ok {
		return false
	}
	if j.Running() {
		j.Cancel()
	}
	if enc := j.Encoder(); enc != nil {
		enc.Close()
	}
	return true
}

// JobConfigure sets the job's output geometry and path, rebuilding its
// encoder.
func JobConfigure(h Handle, outputWidth, outputHeight int, outputFPS float64, outputPath string) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	return j.Configure(outputWidth, outputHeight, outputFPS, outputPath) == nil
}

// JobAttachEngine routes the job's frames through an engine's effect
// chain during export.
func JobAttachEngine(h, engineHandle Handle) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	eng, ok := engines.get(engineHandle)
	if !ok {
		return false
	}
	j.Attach(eng)
	return true
}

// JobSetWindow restricts the export to source timestamps inside
// [start, end].
func JobSetWindow(h Handle, start, end float64) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	return j.SetWindow(start, end) == nil
}

// JobStart begins the export session.
func JobStart(h Handle) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	return j.Start() == nil
}

// JobProcessFrame feeds one source frame to the job. Frames outside
// the window are skipped and still count as success.
func JobProcessFrame(h Handle, data []byte, timestamp float64) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	return j.ProcessFrame(data, timestamp) == nil
}

// JobFinish finalizes the session and writes the artifact.
func JobFinish(h Handle) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	return j.Finish() == nil
}

// JobCancel abandons the session without writing anything.
func JobCancel(h Handle) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	j.Cancel()
	return true
}

// JobProgress returns the fraction of the window already covered,
// or 0.
func JobProgress(h Handle) float64 {
	j, ok := jobs.get(h)
	if !ok {
		return 0
	}
	return j.Progress()
}

// JobProcessedFrames returns the number of frames the job exported,
// or 0.
func JobProcessedFrames(h Handle) int {
	j, ok := jobs.get(h)
	if !ok {
		return 0
	}
	return j.ProcessedFrames()
}

// JobRunning reports whether the job has an active session.
func JobRunning(h Handle) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	return j.Running()
}

// JobComplete reports whether the job finished without error.
func JobComplete(h Handle) bool {
	j, ok := jobs.get(h)
	if !ok {
		return false
	}
	return j.Complete()
}
