package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"

	"github.com/opd-ai/videoengine/frame"
	"github.com/opd-ai/videoengine/limits"
	"github.com/opd-ai/videoengine/mempool"
)

// FrameProcessor applies an effect pass to one frame in place. The
// engine facade satisfies it; the encoder only needs this one method.
type FrameProcessor interface {
	ProcessFrame(f *frame.Frame, timestamp float64) error
}

// Encoder is the output stand-in: it stages incoming RGBA frames in a
// pooled buffer, fingerprints each with BLAKE2b-256, and finalizes an
// export by writing the digest manifest as a binary artifact. No codec
// runs; the lifecycle, gating, and accounting match what a real encoder
// integration will need.
type Encoder struct {
	width   int
	height  int
	fps     float64
	quality int
	bitrate int
	format  string

	pool    *mempool.Pool
	staging []byte

	processor FrameProcessor

	outputPath     string
	recording      bool
	exportStarted  bool
	frameCount     int
	framesExported int
	progress       float64
	digests        [][DigestSize]byte
}

// NewEncoder creates an encoder for the given output geometry. The
// staging buffer is drawn from the encoder's own fixed-block pool.
func NewEncoder(width, height int, fps float64) (*Encoder, error) {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if fps <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidFPS, fps)
	}

	blockSize := limits.FrameBytes(width, height)
	pool, err := mempool.New(blockSize, limits.EncoderPoolBlocks)
	if err != nil {
		return nil, err
	}
	staging, err := pool.Alloc()
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		width:   width,
		height:  height,
		fps:     fps,
		quality: limits.DefaultQuality,
		bitrate: int(float64(width*height) * fps / 10),
		format:  "webm",
		pool:    pool,
		staging: staging,
	}

	logrus.WithFields(logrus.Fields{
		"function": "NewEncoder",
		"width":    width,
		"height":   height,
		"fps":      fps,
		"bitrate":  e.bitrate,
		"format":   e.format,
	}).Info("Encoder created")

	return e, nil
}

// Close returns the staging buffer to the pool. The encoder must not
// be used afterward.
func (e *Encoder) Close() {
	if e == nil || e.pool == nil {
		return
	}
	if e.staging != nil {
		e.pool.Free(e.staging)
		e.staging = nil
	}
	e.recording = false
}

// Attach routes subsequent ProcessAndExportFrame calls through the
// given processor before staging. A nil processor detaches.
func (e *Encoder) Attach(p FrameProcessor) {
	e.processor = p
}

// SetQuality sets the encoder quality, clamped to the valid range.
func (e *Encoder) SetQuality(quality int) {
	if quality < limits.MinQuality {
		quality = limits.MinQuality
	}
	if quality > limits.MaxQuality {
		quality = limits.MaxQuality
	}
	e.quality = quality
}

// SetBitrate sets the target bitrate, floored at the engine minimum.
func (e *Encoder) SetBitrate(bitrate int) {
	if bitrate < limits.MinBitrate {
		bitrate = limits.MinBitrate
	}
	e.bitrate = bitrate
}

// SetFormat stores the container label. Empty labels are ignored.
func (e *Encoder) SetFormat(format string) {
	if format == "" {
		return
	}
	e.format = format
}

// StartExport begins a recording session writing to path, resetting
// the frame accounting from any previous session.
func (e *Encoder) StartExport(path string) error {
	if path == "" {
		return ErrNoOutputPath
	}

	e.outputPath = path
	e.frameCount = 0
	e.framesExported = 0
	e.progress = 0
	e.digests = e.digests[:0]
	e.exportStarted = true
	e.recording = true

	logrus.WithFields(logrus.Fields{
		"function":    "StartExport",
		"output_path": path,
		"width":       e.width,
		"height":      e.height,
		"fps":         e.fps,
	}).Info("Export started")

	return nil
}

// AddFrame stages one RGBA frame and records its digest. The data must
// cover the encoder's full frame size; frames arriving outside a
// recording session are rejected.
func (e *Encoder) AddFrame(data []byte, timestamp float64) error {
	if !e.recording {
		return ErrNotRecording
	}
	size := len(e.staging)
	if err := limits.ValidateBufferSize(data, size); err != nil {
		return err
	}

	copy(e.staging, data[:size])
	e.digests = append(e.digests, blake2b.Sum256(e.staging))
	e.framesExported++
	e.frameCount++

	return nil
}

// ProcessAndExportFrame wraps raw pixel data in a frame, runs the
// attached processor's effect pass over it if one is attached, and
// stages the result. The frame number is the running exported count.
func (e *Encoder) ProcessAndExportFrame(data []byte, width, height int, timestamp float64) error {
	if !e.recording {
		return ErrNotRecording
	}

	f := &frame.Frame{
		Width:     width,
		Height:    height,
		Stride:    width * limits.BytesPerPixelRGBA,
		Format:    frame.FormatRGBA,
		Timestamp: timestamp,
		Index:     e.framesExported,
		Data:      data,
	}

	if e.processor != nil {
		if err := e.processor.ProcessFrame(f, timestamp); err != nil {
			logrus.WithFields(logrus.Fields{
				"function":  "ProcessAndExportFrame",
				"timestamp": timestamp,
				"error":     err.Error(),
			}).Error("Effect pass failed during export")
			return err
		}
	}

	return e.AddFrame(data, timestamp)
}

// FinishExport ends the recording session and writes the artifact,
// one header plus one digest per exported frame, to the output path.
func (e *Encoder) FinishExport() error {
	if !e.exportStarted {
		return ErrExportNotStarted
	}

	e.recording = false
	e.progress = 1.0

	var buf bytes.Buffer
	header := ArtifactHeader{
		Width:      e.width,
		Height:     e.height,
		FPS:        e.fps,
		FrameCount: len(e.digests),
	}
	if err := WriteArtifact(&buf, header, e.digests); err != nil {
		return err
	}
	if err := os.WriteFile(e.outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":        "FinishExport",
		"output_path":     e.outputPath,
		"frames_exported": e.framesExported,
		"artifact_bytes":  buf.Len(),
	}).Info("Export finished")

	return nil
}

// CancelExport abandons the recording session. Nothing is written;
// the frame accounting stays readable until the next StartExport.
func (e *Encoder) CancelExport() {
	e.recording = false
	e.exportStarted = false
	e.progress = 0

	logrus.WithFields(logrus.Fields{
		"function":    "CancelExport",
		"output_path": e.outputPath,
	}).Info("Export cancelled")
}

// setProgress records job-driven progress in [0, 1].
func (e *Encoder) setProgress(p float64) {
	e.progress = p
}

// Progress returns export progress in [0, 1].
func (e *Encoder) Progress() float64 { return e.progress }

// FramesExported returns the number of frames staged this session.
func (e *Encoder) FramesExported() int { return e.framesExported }

// IsExporting reports whether a recording session is active.
func (e *Encoder) IsExporting() bool { return e.recording }

// Width returns the output width in pixels.
func (e *Encoder) Width() int { return e.width }

// Height returns the output height in pixels.
func (e *Encoder) Height() int { return e.height }

// FPS returns the output frame rate.
func (e *Encoder) FPS() float64 { return e.fps }

// Quality returns the current quality setting.
func (e *Encoder) Quality() int { return e.quality }

// Bitrate returns the current bitrate target.
func (e *Encoder) Bitrate() int { return e.bitrate }

// Format returns the container label.
func (e *Encoder) Format() string { return e.format }
