package videoengine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videoengine/effects"
	"github.com/opd-ai/videoengine/export"
	"github.com/opd-ai/videoengine/frame"
	"github.com/opd-ai/videoengine/limits"
	"github.com/opd-ai/videoengine/mempool"
)

// Version is the engine version.
const Version = "1.0.0"

// VersionString is the full engine identification string.
const VersionString = "Video Engine v" + Version

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

// Engine is the per-stream processing facade: it owns the frame buffer
// pool and the effect chain, runs the per-frame pass, keeps processing
// counters, and optionally drives an attached export encoder.
//
// One engine serves one logical stream and is not safe for concurrent
// use; independent engines are. Engine satisfies export.FrameProcessor,
// so an attached encoder routes its frames back through the chain.
type Engine struct {
	options *Options
	chain   *effects.Chain
	pool    *mempool.Pool

	framesProcessed   uint64
	lastProcessTimeMs float64

	exportMode bool
	encoder    *export.Encoder

	clock  TimeProvider
	closed bool
}

// Stats is a point-in-time snapshot of engine state and counters.
type Stats struct {
	FramesProcessed   uint64
	LastProcessTimeMs float64
	ChainLength       int
	PoolBlocksInUse   int
	PoolBlocks        int
	ExportMode        bool
}

// New creates an engine with the given options. A nil options pointer
// uses the defaults: full HD working resolution with an eight-block
// frame pool.
func New(options *Options) (*Engine, error) {
	if options == nil {
		options = NewOptions()
	}
	if err := options.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "New",
			"error":    err.Error(),
		}).Error("Engine options rejected")
		return nil, err
	}

	blockSize := limits.FrameBytes(options.Width, options.Height)
	pool, err := mempool.New(blockSize, options.PoolBlocks)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		options: options,
		chain:   effects.NewChain(pool),
		pool:    pool,
		clock:   DefaultTimeProvider{},
	}

	logrus.WithFields(logrus.Fields{
		"function":    "New",
		"width":       options.Width,
		"height":      options.Height,
		"pool_blocks": options.PoolBlocks,
		"block_bytes": blockSize,
		"version":     Version,
	}).Info("Engine created")

	return e, nil
}

// SetTimeProvider sets a custom time provider for deterministic testing.
func (e *Engine) SetTimeProvider(tp TimeProvider) {
	if tp == nil {
		return
	}
	e.clock = tp
}

// ProcessFrame stamps the frame with the given timestamp and runs the
// effect chain over it. The wall-clock counters update whether or not
// the pass succeeds; a failed pass leaves the frame pixels untouched.
func (e *Engine) ProcessFrame(f *frame.Frame, timestamp float64) error {
	if e == nil {
		return ErrNilEngine
	}
	if e.closed {
		return ErrEngineClosed
	}
	if f == nil {
		return frame.ErrNilFrame
	}

	start := e.clock.Now()
	f.Timestamp = timestamp

	err := e.chain.Process(f, timestamp)

	e.lastProcessTimeMs = float64(e.clock.Since(start).Microseconds()) / 1000
	e.framesProcessed++

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":  "ProcessFrame",
			"timestamp": timestamp,
			"frame":     f.Index,
			"error":     err.Error(),
		}).Error("Frame pass failed")
		return err
	}
	return nil
}

// AddEffect appends an effect to the chain and returns its index.
func (e *Engine) AddEffect(eff effects.Effect) (int, error) {
	if e.closed {
		return -1, ErrEngineClosed
	}
	return e.chain.Add(eff)
}

// RemoveEffect removes the effect at index.
func (e *Engine) RemoveEffect(index int) error {
	if e.closed {
		return ErrEngineClosed
	}
	return e.chain.RemoveAt(index)
}

// ClearEffects removes every effect from the chain.
func (e *Engine) ClearEffects() {
	if e.closed {
		return
	}
	e.chain.Clear()
}

// EffectCount returns the number of effects in the chain.
func (e *Engine) EffectCount() int {
	return e.chain.Len()
}

// Chain exposes the effect chain for direct inspection and mutation.
func (e *Engine) Chain() *effects.Chain {
	return e.chain
}

// Width returns the working frame width in pixels.
func (e *Engine) Width() int { return e.options.Width }

// Height returns the working frame height in pixels.
func (e *Engine) Height() int { return e.options.Height }

// FramesProcessed returns the number of frames handed to ProcessFrame
// since the engine was created, counting failed passes.
func (e *Engine) FramesProcessed() uint64 { return e.framesProcessed }

// LastProcessTimeMs returns the wall-clock duration of the most recent
// frame pass in milliseconds.
func (e *Engine) LastProcessTimeMs() float64 { return e.lastProcessTimeMs }

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		FramesProcessed:   e.framesProcessed,
		LastProcessTimeMs: e.lastProcessTimeMs,
		ChainLength:       e.chain.Len(),
		PoolBlocksInUse:   e.pool.Used(),
		PoolBlocks:        e.pool.Blocks(),
		ExportMode:        e.exportMode,
	}
}

// AttachEncoder wires an export encoder to this engine. The encoder's
// frames route back through the engine's chain, and the engine takes
// ownership: Close closes the encoder too.
func (e *Engine) AttachEncoder(enc *export.Encoder) {
	if e.encoder != nil && e.encoder != enc {
		e.encoder.Close()
	}
	e.encoder = enc
	if enc != nil {
		enc.Attach(e)
	}

	logrus.WithFields(logrus.Fields{
		"function": "AttachEncoder",
		"attached": enc != nil,
	}).Debug("Encoder attachment changed")
}

// Encoder returns the attached export encoder, or nil.
func (e *Engine) Encoder() *export.Encoder {
	return e.encoder
}

// StartExport begins an export session on the attached encoder and
// puts the engine in export mode.
func (e *Engine) StartExport(path string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if e.encoder == nil {
		return ErrNoEncoder
	}
	if err := e.encoder.StartExport(path); err != nil {
		return err
	}
	e.exportMode = true

	logrus.WithFields(logrus.Fields{
		"function":    "StartExport",
		"output_path": path,
	}).Info("Engine entered export mode")

	return nil
}

// ExportFrame runs the chain over raw working-resolution pixels and
// stages the result with the attached encoder.
func (e *Engine) ExportFrame(data []byte, timestamp float64) error {
	if e.closed {
		return ErrEngineClosed
	}
	if e.encoder == nil {
		return ErrNoEncoder
	}
	if !e.exportMode {
		return ErrNotExporting
	}
	return e.encoder.ProcessAndExportFrame(data, e.options.Width, e.options.Height, timestamp)
}

// FinishExport finalizes the export session, writes the artifact, and
// leaves export mode.
func (e *Engine) FinishExport() error {
	if e.closed {
		return ErrEngineClosed
	}
	if e.encoder == nil {
		return ErrNoEncoder
	}
	err := e.encoder.FinishExport()
	e.exportMode = false
	return err
}

// CancelExport abandons the export session and leaves export mode.
func (e *Engine) CancelExport() {
	if e.closed || e.encoder == nil {
		return
	}
	e.encoder.CancelExport()
	e.exportMode = false
}

// ExportMode reports whether an export session is active.
func (e *Engine) ExportMode() bool {
	return e.exportMode
}

// Close releases the chain's scratch buffers and the attached encoder.
// A closed engine rejects further work; Close is idempotent.
func (e *Engine) Close() error {
	if e == nil || e.closed {
		return nil
	}
	e.chain.Release()
	if e.encoder != nil {
		e.encoder.Close()
		e.encoder = nil
	}
	e.exportMode = false
	e.closed = true

	logrus.WithFields(logrus.Fields{
		"function":         "Close",
		"frames_processed": e.framesProcessed,
	}).Info("Engine closed")

	return nil
}
