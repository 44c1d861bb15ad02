package videoengine

import "errors"

// Sentinel errors for engine operations.
// These errors enable reliable error classification using errors.Is().

// Engine lifecycle errors.
var (
	// ErrNilEngine indicates a nil engine was asked to do work.
	ErrNilEngine = errors.New("nil engine")

	// ErrEngineClosed indicates the engine was used after Close.
	ErrEngineClosed = errors.New("engine is closed")
)

// Export delegation errors.
var (
	// ErrNoEncoder indicates an export call with no attached encoder.
	ErrNoEncoder = errors.New("no encoder attached")

	// ErrNotExporting indicates an export frame outside an export session.
	ErrNotExporting = errors.New("engine is not exporting")
)
