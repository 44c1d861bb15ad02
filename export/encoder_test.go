package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/opd-ai/videoengine/frame"
	"github.com/opd-ai/videoengine/limits"
)

// stubProcessor records the frames it sees and optionally mutates or
// rejects them.
type stubProcessor struct {
	calls         int
	lastIndex     int
	lastTimestamp float64
	fail          bool
}

func (s *stubProcessor) ProcessFrame(f *frame.Frame, timestamp float64) error {
	s.calls++
	s.lastIndex = f.Index
	s.lastTimestamp = timestamp
	if s.fail {
		return assert.AnError
	}
	f.Data[0] = 42
	return nil
}

func newTestEncoder(t *testing.T, width, height int) *Encoder {
	t.Helper()
	e, err := NewEncoder(width, height, 30)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func frameBytes(width, height int, fill byte) []byte {
	data := make([]byte, width*height*4)
	for i := range data {
		data[i] = fill
	}
	return data
}

func TestNewEncoderValidation(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		fps     float64
		wantErr error
	}{
		{"zero width", 0, 480, 30, limits.ErrDimensionInvalid},
		{"negative height", 640, -1, 30, limits.ErrDimensionInvalid},
		{"zero fps", 640, 480, 0, ErrInvalidFPS},
		{"negative fps", 640, 480, -24, ErrInvalidFPS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncoder(tt.width, tt.height, tt.fps)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewEncoderDefaults(t *testing.T) {
	e := newTestEncoder(t, 640, 480)

	assert.Equal(t, 80, e.Quality())
	assert.Equal(t, 640*480*3, e.Bitrate(), "bitrate estimate is width*height*fps/10")
	assert.Equal(t, "webm", e.Format())
	assert.False(t, e.IsExporting())
	assert.Zero(t, e.FramesExported())
}

func TestEncoderSetQualityClamps(t *testing.T) {
	e := newTestEncoder(t, 16, 16)

	e.SetQuality(0)
	assert.Equal(t, limits.MinQuality, e.Quality())

	e.SetQuality(250)
	assert.Equal(t, limits.MaxQuality, e.Quality())

	e.SetQuality(55)
	assert.Equal(t, 55, e.Quality())
}

func TestEncoderSetBitrateFloors(t *testing.T) {
	e := newTestEncoder(t, 16, 16)

	e.SetBitrate(10)
	assert.Equal(t, limits.MinBitrate, e.Bitrate())

	e.SetBitrate(2_000_000)
	assert.Equal(t, 2_000_000, e.Bitrate())
}

func TestEncoderSetFormatIgnoresEmpty(t *testing.T) {
	e := newTestEncoder(t, 16, 16)

	e.SetFormat("mp4")
	assert.Equal(t, "mp4", e.Format())

	e.SetFormat("")
	assert.Equal(t, "mp4", e.Format())
}

func TestEncoderAddFrameRequiresRecording(t *testing.T) {
	e := newTestEncoder(t, 8, 8)

	err := e.AddFrame(frameBytes(8, 8, 1), 0)
	assert.ErrorIs(t, err, ErrNotRecording)
}

func TestEncoderAddFrameRejectsShortBuffer(t *testing.T) {
	e := newTestEncoder(t, 8, 8)
	require.NoError(t, e.StartExport(filepath.Join(t.TempDir(), "out.vexp")))

	err := e.AddFrame(make([]byte, 8*8*4-1), 0)
	assert.ErrorIs(t, err, limits.ErrBufferTooSmall)
	assert.Zero(t, e.FramesExported())
}

func TestEncoderStartExportRequiresPath(t *testing.T) {
	e := newTestEncoder(t, 8, 8)

	assert.ErrorIs(t, e.StartExport(""), ErrNoOutputPath)
}

func TestEncoderFinishWithoutStart(t *testing.T) {
	e := newTestEncoder(t, 8, 8)

	assert.ErrorIs(t, e.FinishExport(), ErrExportNotStarted)
}

func TestEncoderExportLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.vexp")
	e := newTestEncoder(t, 8, 8)

	require.NoError(t, e.StartExport(path))
	assert.True(t, e.IsExporting())

	frames := [][]byte{
		frameBytes(8, 8, 10),
		frameBytes(8, 8, 20),
		frameBytes(8, 8, 30),
	}
	for i, data := range frames {
		require.NoError(t, e.AddFrame(data, float64(i)/30))
	}
	assert.Equal(t, 3, e.FramesExported())

	require.NoError(t, e.FinishExport())
	assert.False(t, e.IsExporting())
	assert.Equal(t, 1.0, e.Progress())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	header, digests, err := ReadArtifact(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 8, header.Width)
	assert.Equal(t, 8, header.Height)
	assert.Equal(t, 30.0, header.FPS)
	assert.Equal(t, 3, header.FrameCount)
	require.Len(t, digests, 3)

	for i, data := range frames {
		want := blake2b.Sum256(data)
		assert.Equal(t, want, digests[i], "digest %d fingerprints the staged frame", i)
	}
	assert.NotEqual(t, digests[0], digests[1], "distinct frames get distinct digests")
}

func TestEncoderCancelExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abandoned.vexp")
	e := newTestEncoder(t, 8, 8)

	require.NoError(t, e.StartExport(path))
	require.NoError(t, e.AddFrame(frameBytes(8, 8, 5), 0))

	e.CancelExport()

	assert.False(t, e.IsExporting())
	assert.Zero(t, e.Progress())
	assert.ErrorIs(t, e.AddFrame(frameBytes(8, 8, 5), 0), ErrNotRecording)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cancelled export writes nothing")
}

func TestEncoderStartResetsAccounting(t *testing.T) {
	dir := t.TempDir()
	e := newTestEncoder(t, 8, 8)

	require.NoError(t, e.StartExport(filepath.Join(dir, "first.vexp")))
	require.NoError(t, e.AddFrame(frameBytes(8, 8, 1), 0))
	require.NoError(t, e.AddFrame(frameBytes(8, 8, 2), 0))
	require.NoError(t, e.FinishExport())

	second := filepath.Join(dir, "second.vexp")
	require.NoError(t, e.StartExport(second))
	require.NoError(t, e.AddFrame(frameBytes(8, 8, 3), 0))
	assert.Equal(t, 1, e.FramesExported(), "new session starts from zero")
	require.NoError(t, e.FinishExport())

	raw, err := os.ReadFile(second)
	require.NoError(t, err)
	header, digests, err := ReadArtifact(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, header.FrameCount)
	assert.Len(t, digests, 1)
}

func TestEncoderProcessAndExportFrameRunsProcessor(t *testing.T) {
	e := newTestEncoder(t, 8, 8)
	stub := &stubProcessor{}
	e.Attach(stub)

	require.NoError(t, e.StartExport(filepath.Join(t.TempDir(), "out.vexp")))

	data := frameBytes(8, 8, 100)
	require.NoError(t, e.ProcessAndExportFrame(data, 8, 8, 0.5))

	assert.Equal(t, 1, stub.calls)
	assert.Zero(t, stub.lastIndex, "frame number is the running exported count")
	assert.Equal(t, 0.5, stub.lastTimestamp)
	assert.Equal(t, uint8(42), data[0], "the pass works on the caller's pixels")

	require.NoError(t, e.ProcessAndExportFrame(data, 8, 8, 0.6))
	assert.Equal(t, 1, stub.lastIndex)
}

func TestEncoderProcessAndExportFrameDigestsProcessedPixels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.vexp")
	e := newTestEncoder(t, 8, 8)
	e.Attach(&stubProcessor{})

	require.NoError(t, e.StartExport(path))

	data := frameBytes(8, 8, 100)
	require.NoError(t, e.ProcessAndExportFrame(data, 8, 8, 0))
	require.NoError(t, e.FinishExport())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	_, digests, err := ReadArtifact(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, digests, 1)

	processed := frameBytes(8, 8, 100)
	processed[0] = 42
	assert.Equal(t, blake2b.Sum256(processed), digests[0],
		"digest covers the frame after the effect pass")
}

func TestEncoderProcessAndExportFramePropagatesFailure(t *testing.T) {
	e := newTestEncoder(t, 8, 8)
	e.Attach(&stubProcessor{fail: true})

	require.NoError(t, e.StartExport(filepath.Join(t.TempDir(), "out.vexp")))

	err := e.ProcessAndExportFrame(frameBytes(8, 8, 1), 8, 8, 0)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, e.FramesExported(), "failed frames are not staged")
}

func TestEncoderProcessAndExportFrameRequiresRecording(t *testing.T) {
	e := newTestEncoder(t, 8, 8)

	err := e.ProcessAndExportFrame(frameBytes(8, 8, 1), 8, 8, 0)
	assert.ErrorIs(t, err, ErrNotRecording)
}
