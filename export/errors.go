package export

import "errors"

// Sentinel errors for export operations.
// These errors enable reliable error classification using errors.Is().

// Decoder errors.
var (
	// ErrNoInput indicates Open was called without source data.
	ErrNoInput = errors.New("decoder requires input data")

	// ErrNotOpen indicates the decoder has no open source.
	ErrNotOpen = errors.New("decoder has no open source")

	// ErrFrameOutOfRange indicates a frame number outside the decoded range.
	ErrFrameOutOfRange = errors.New("frame number out of range")
)

// Encoder errors.
var (
	// ErrInvalidFPS indicates a zero or negative frame rate.
	ErrInvalidFPS = errors.New("frame rate must be positive")

	// ErrNoOutputPath indicates an export was started without a destination.
	ErrNoOutputPath = errors.New("export requires an output path")

	// ErrNotRecording indicates a frame arrived outside an active export.
	ErrNotRecording = errors.New("encoder is not recording")

	// ErrExportNotStarted indicates finish was called before start.
	ErrExportNotStarted = errors.New("export has not been started")
)

// Export job errors.
var (
	// ErrNotConfigured indicates the job has no output encoder yet.
	ErrNotConfigured = errors.New("export job not configured")

	// ErrJobNotRunning indicates a frame arrived outside a running job.
	ErrJobNotRunning = errors.New("export job is not running")

	// ErrInvalidWindow indicates an export time window outside the source.
	ErrInvalidWindow = errors.New("invalid export time window")
)

// Artifact errors.
var (
	// ErrNotArtifact indicates the data does not begin with the artifact magic.
	ErrNotArtifact = errors.New("not a video export artifact")

	// ErrArtifactVersion indicates an artifact format version this build cannot read.
	ErrArtifactVersion = errors.New("unsupported artifact version")

	// ErrArtifactTruncated indicates the artifact ends before its declared digests.
	ErrArtifactTruncated = errors.New("artifact truncated")
)
