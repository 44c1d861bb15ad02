package export

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videoengine/limits"
)

// TimeProvider abstracts time operations for deterministic testing.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// DefaultTimeProvider uses the standard library time functions.
type DefaultTimeProvider struct{}

// Now returns the current time.
func (DefaultTimeProvider) Now() time.Time { return time.Now() }

// Since returns the duration since t.
func (DefaultTimeProvider) Since(t time.Time) time.Duration { return time.Since(t) }

// Job drives one export pass: it tracks the source geometry, the time
// window to render, and the output encoder, and routes each source
// frame through the attached effect pass into the encoder. A failed
// step is recorded on the job and also returned to the caller.
type Job struct {
	sourceWidth    int
	sourceHeight   int
	sourceFPS      float64
	sourceDuration float64

	outputWidth  int
	outputHeight int
	outputFPS    float64
	outputPath   string

	totalFrames     int
	startTime       float64
	endTime         float64
	currentTime     float64
	processedFrames int

	running  bool
	complete bool
	err      error

	encoder   *Encoder
	processor FrameProcessor

	clock      TimeProvider
	startedAt  time.Time
	finishedAt time.Time
}

// NewJob creates an export job for a source stream. Output geometry
// defaults to the source; the export window defaults to the full
// duration.
func NewJob(sourceWidth, sourceHeight int, sourceFPS, duration float64) (*Job, error) {
	if err := limits.ValidateDimensions(sourceWidth, sourceHeight); err != nil {
		return nil, err
	}
	if sourceFPS <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidFPS, sourceFPS)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %g", ErrInvalidWindow, duration)
	}

	j := &Job{
		sourceWidth:    sourceWidth,
		sourceHeight:   sourceHeight,
		sourceFPS:      sourceFPS,
		sourceDuration: duration,
		outputWidth:    sourceWidth,
		outputHeight:   sourceHeight,
		outputFPS:      sourceFPS,
		totalFrames:    int(duration * sourceFPS),
		startTime:      0,
		endTime:        duration,
		clock:          DefaultTimeProvider{},
	}

	logrus.WithFields(logrus.Fields{
		"function":     "NewJob",
		"width":        sourceWidth,
		"height":       sourceHeight,
		"fps":          sourceFPS,
		"duration":     duration,
		"total_frames": j.totalFrames,
	}).Info("Export job created")

	return j, nil
}

// SetTimeProvider sets a custom time provider for deterministic testing.
func (j *Job) SetTimeProvider(tp TimeProvider) {
	if tp == nil {
		return
	}
	j.clock = tp
}

// Configure builds the output encoder for the given geometry and
// destination, replacing any previous one. An attached processor
// carries over to the new encoder.
func (j *Job) Configure(outputWidth, outputHeight int, outputFPS float64, outputPath string) error {
	if outputPath == "" {
		return ErrNoOutputPath
	}

	encoder, err := NewEncoder(outputWidth, outputHeight, outputFPS)
	if err != nil {
		return err
	}

	if j.encoder != nil {
		j.encoder.Close()
	}
	j.encoder = encoder
	j.outputWidth = outputWidth
	j.outputHeight = outputHeight
	j.outputFPS = outputFPS
	j.outputPath = outputPath
	if j.processor != nil {
		j.encoder.Attach(j.processor)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Configure",
		"width":       outputWidth,
		"height":      outputHeight,
		"fps":         outputFPS,
		"output_path": outputPath,
	}).Info("Export job configured")

	return nil
}

// Attach routes the job's frames through the given effect processor.
func (j *Job) Attach(p FrameProcessor) {
	j.processor = p
	if j.encoder != nil {
		j.encoder.Attach(p)
	}
}

// SetWindow narrows the export to source timestamps in [start, end].
// The window must lie inside the source duration.
func (j *Job) SetWindow(start, end float64) error {
	if start < 0 || end <= start || end > j.sourceDuration {
		return fmt.Errorf("%w: [%g, %g] within duration %g",
			ErrInvalidWindow, start, end, j.sourceDuration)
	}
	j.startTime = start
	j.endTime = end
	return nil
}

// Start begins the export session. The job must be configured first.
func (j *Job) Start() error {
	if j.encoder == nil || j.outputPath == "" {
		return ErrNotConfigured
	}

	if err := j.encoder.StartExport(j.outputPath); err != nil {
		j.err = err
		return err
	}

	j.running = true
	j.complete = false
	j.err = nil
	j.processedFrames = 0
	j.currentTime = j.startTime
	j.startedAt = j.clock.Now()
	j.finishedAt = time.Time{}

	logrus.WithFields(logrus.Fields{
		"function":    "Start",
		"output_path": j.outputPath,
		"window":      fmt.Sprintf("[%g, %g]", j.startTime, j.endTime),
	}).Info("Export job started")

	return nil
}

// ProcessFrame routes one source frame into the export. Frames
// timestamped outside the export window are skipped successfully.
// On success the job's progress advances with the timestamp.
func (j *Job) ProcessFrame(data []byte, timestamp float64) error {
	if !j.running {
		return ErrJobNotRunning
	}
	if timestamp < j.startTime || timestamp > j.endTime {
		return nil
	}

	if err := j.encoder.ProcessAndExportFrame(data, j.sourceWidth, j.sourceHeight, timestamp); err != nil {
		j.err = err
		logrus.WithFields(logrus.Fields{
			"function":  "ProcessFrame",
			"timestamp": timestamp,
			"error":     err.Error(),
		}).Error("Export frame failed")
		return err
	}

	j.processedFrames++
	j.currentTime = timestamp
	if j.endTime > j.startTime {
		j.encoder.setProgress((timestamp - j.startTime) / (j.endTime - j.startTime))
	}

	return nil
}

// Finish finalizes the export and writes the artifact.
func (j *Job) Finish() error {
	if j.encoder == nil {
		return ErrNotConfigured
	}

	err := j.encoder.FinishExport()
	j.running = false
	j.complete = err == nil
	j.finishedAt = j.clock.Now()
	if err != nil {
		j.err = err
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function":         "Finish",
		"processed_frames": j.processedFrames,
		"elapsed":          j.Elapsed().String(),
		"output_path":      j.outputPath,
	}).Info("Export job finished")

	return nil
}

// Cancel abandons the export session. Nothing is written.
func (j *Job) Cancel() {
	if j.encoder != nil {
		j.encoder.CancelExport()
	}
	j.running = false
	j.finishedAt = j.clock.Now()

	logrus.WithFields(logrus.Fields{
		"function":         "Cancel",
		"processed_frames": j.processedFrames,
	}).Info("Export job cancelled")
}

// Progress returns export progress in [0, 1].
func (j *Job) Progress() float64 {
	if j.encoder == nil {
		return 0
	}
	return j.encoder.Progress()
}

// Elapsed returns how long the session has been running, or its final
// duration once finished or cancelled.
func (j *Job) Elapsed() time.Duration {
	if j.startedAt.IsZero() {
		return 0
	}
	if !j.finishedAt.IsZero() {
		return j.finishedAt.Sub(j.startedAt)
	}
	return j.clock.Since(j.startedAt)
}

// ProcessedFrames returns how many frames the session has exported.
func (j *Job) ProcessedFrames() int { return j.processedFrames }

// TotalFrames returns the frame count of the full source stream.
func (j *Job) TotalFrames() int { return j.totalFrames }

// CurrentTime returns the timestamp of the last exported frame.
func (j *Job) CurrentTime() float64 { return j.currentTime }

// Window returns the export time window.
func (j *Job) Window() (start, end float64) { return j.startTime, j.endTime }

// Running reports whether the session is active.
func (j *Job) Running() bool { return j.running }

// Complete reports whether the session finished successfully.
func (j *Job) Complete() bool { return j.complete }

// Err returns the first error recorded on the job, if any.
func (j *Job) Err() error { return j.err }

// Encoder returns the configured output encoder, or nil.
func (j *Job) Encoder() *Encoder { return j.encoder }

// OutputPath returns the configured artifact destination.
func (j *Job) OutputPath() string { return j.outputPath }
