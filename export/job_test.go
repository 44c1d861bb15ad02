package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/videoengine/limits"
)

// mockTimeProvider provides deterministic time for testing.
type mockTimeProvider struct {
	current time.Time
}

func newMockTimeProvider() *mockTimeProvider {
	return &mockTimeProvider{current: time.Unix(1700000000, 0)}
}

func (m *mockTimeProvider) Now() time.Time {
	return m.current
}

func (m *mockTimeProvider) Since(t time.Time) time.Duration {
	return m.current.Sub(t)
}

func (m *mockTimeProvider) advance(d time.Duration) {
	m.current = m.current.Add(d)
}

func newTestJob(t *testing.T) (*Job, string) {
	t.Helper()
	j, err := NewJob(8, 8, 10, 2.0)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "job.vexp")
	require.NoError(t, j.Configure(8, 8, 10, path))
	return j, path
}

func TestNewJobValidation(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		fps      float64
		duration float64
		wantErr  error
	}{
		{"zero width", 0, 8, 10, 1, limits.ErrDimensionInvalid},
		{"zero fps", 8, 8, 0, 1, ErrInvalidFPS},
		{"zero duration", 8, 8, 10, 0, ErrInvalidWindow},
		{"negative duration", 8, 8, 10, -1, ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJob(tt.width, tt.height, tt.fps, tt.duration)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewJobDefaults(t *testing.T) {
	j, err := NewJob(640, 360, 24, 5.0)
	require.NoError(t, err)

	assert.Equal(t, 120, j.TotalFrames())
	start, end := j.Window()
	assert.Zero(t, start)
	assert.Equal(t, 5.0, end)
	assert.False(t, j.Running())
	assert.False(t, j.Complete())
	assert.Nil(t, j.Encoder(), "encoder exists only after Configure")
}

func TestJobStartRequiresConfigure(t *testing.T) {
	j, err := NewJob(8, 8, 10, 1.0)
	require.NoError(t, err)

	assert.ErrorIs(t, j.Start(), ErrNotConfigured)
}

func TestJobConfigureRequiresPath(t *testing.T) {
	j, err := NewJob(8, 8, 10, 1.0)
	require.NoError(t, err)

	assert.ErrorIs(t, j.Configure(8, 8, 10, ""), ErrNoOutputPath)
}

func TestJobConfigurePropagatesEncoderErrors(t *testing.T) {
	j, err := NewJob(8, 8, 10, 1.0)
	require.NoError(t, err)

	err = j.Configure(0, 8, 10, "out.vexp")
	assert.ErrorIs(t, err, limits.ErrDimensionInvalid)
}

func TestJobProcessFrameBeforeStart(t *testing.T) {
	j, _ := newTestJob(t)

	err := j.ProcessFrame(frameBytes(8, 8, 1), 0)
	assert.ErrorIs(t, err, ErrJobNotRunning)
}

func TestJobLifecycle(t *testing.T) {
	j, path := newTestJob(t)
	require.NoError(t, j.Start())
	assert.True(t, j.Running())

	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 1), 0.5))
	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 2), 1.0))

	assert.Equal(t, 2, j.ProcessedFrames())
	assert.Equal(t, 1.0, j.CurrentTime())
	assert.InDelta(t, 0.5, j.Progress(), 1e-12, "progress tracks the window position")

	require.NoError(t, j.Finish())
	assert.False(t, j.Running())
	assert.True(t, j.Complete())
	assert.NoError(t, j.Err())
	assert.Equal(t, 1.0, j.Progress())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	header, digests, err := ReadArtifact(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 2, header.FrameCount)
	assert.Len(t, digests, 2)
}

func TestJobSkipsFramesOutsideWindow(t *testing.T) {
	j, _ := newTestJob(t)
	require.NoError(t, j.SetWindow(0.5, 1.5))
	require.NoError(t, j.Start())

	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 1), 0.2), "early frame skips without error")
	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 2), 1.0))
	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 3), 1.8), "late frame skips without error")

	assert.Equal(t, 1, j.ProcessedFrames())
	assert.Equal(t, 1, j.Encoder().FramesExported())
}

func TestJobWindowBoundariesAreInclusive(t *testing.T) {
	j, _ := newTestJob(t)
	require.NoError(t, j.SetWindow(0.5, 1.5))
	require.NoError(t, j.Start())

	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 1), 0.5))
	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 2), 1.5))

	assert.Equal(t, 2, j.ProcessedFrames(), "both window endpoints export")
}

func TestJobSetWindowValidation(t *testing.T) {
	j, _ := newTestJob(t)

	assert.ErrorIs(t, j.SetWindow(-0.1, 1), ErrInvalidWindow)
	assert.ErrorIs(t, j.SetWindow(1, 1), ErrInvalidWindow)
	assert.ErrorIs(t, j.SetWindow(1.5, 0.5), ErrInvalidWindow)
	assert.ErrorIs(t, j.SetWindow(0, 2.5), ErrInvalidWindow, "window cannot exceed the source duration")

	require.NoError(t, j.SetWindow(0.25, 1.75))
	start, end := j.Window()
	assert.Equal(t, 0.25, start)
	assert.Equal(t, 1.75, end)
}

func TestJobRecordsEncoderFailure(t *testing.T) {
	j, _ := newTestJob(t)
	require.NoError(t, j.Start())

	err := j.ProcessFrame(make([]byte, 4), 1.0)
	assert.ErrorIs(t, err, limits.ErrBufferTooSmall)
	assert.ErrorIs(t, j.Err(), limits.ErrBufferTooSmall, "failures are recorded on the job")
	assert.Zero(t, j.ProcessedFrames())
}

func TestJobAttachSurvivesReconfigure(t *testing.T) {
	j, err := NewJob(8, 8, 10, 2.0)
	require.NoError(t, err)

	stub := &stubProcessor{}
	j.Attach(stub)
	require.NoError(t, j.Configure(8, 8, 10, filepath.Join(t.TempDir(), "out.vexp")))
	require.NoError(t, j.Start())

	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 1), 1.0))
	assert.Equal(t, 1, stub.calls, "the processor carries over to the rebuilt encoder")
	assert.Equal(t, 1.0, stub.lastTimestamp)
}

func TestJobElapsedUsesTimeProvider(t *testing.T) {
	j, _ := newTestJob(t)
	clock := newMockTimeProvider()
	j.SetTimeProvider(clock)

	assert.Zero(t, j.Elapsed(), "no session yet")

	require.NoError(t, j.Start())
	clock.advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, j.Elapsed())

	require.NoError(t, j.Finish())
	clock.advance(time.Hour)
	assert.Equal(t, 1500*time.Millisecond, j.Elapsed(), "elapsed freezes at finish")
}

func TestJobCancel(t *testing.T) {
	j, path := newTestJob(t)
	require.NoError(t, j.Start())
	require.NoError(t, j.ProcessFrame(frameBytes(8, 8, 1), 1.0))

	j.Cancel()

	assert.False(t, j.Running())
	assert.False(t, j.Complete())
	assert.False(t, j.Encoder().IsExporting())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cancelled job writes no artifact")
}
