// Package export provides the I/O edges of the engine: a decoder
// stand-in that synthesizes frames from fabricated stream metadata, an
// encoder stand-in that stages frames and records a digest manifest,
// export jobs that drive a full render pass, and the binary export
// artifact those jobs produce.
//
// Neither stand-in touches a real codec. The decoder fabricates HD
// metadata and generates an animated gradient; the encoder counts and
// fingerprints the frames it is handed. Both keep the interfaces real
// codecs will slot into.
package export

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videoengine/frame"
	"github.com/opd-ai/videoengine/limits"
)

// Decoder synthesizes video frames from an opened source. Opening any
// non-empty input yields a fixed 1920x1080 30 fps stream of 10 seconds;
// frame contents are a deterministic gradient animated by frame number.
type Decoder struct {
	width       int
	height      int
	fps         float64
	duration    float64
	totalFrames int
	open        bool

	// source is retained, not copied; the decoder never reads it but a
	// real codec will.
	source []byte
}

// NewDecoder creates a closed decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Open attaches source data and populates stream metadata. Empty input
// is rejected; any other input produces the fixed HD stream description.
func (d *Decoder) Open(data []byte) error {
	if len(data) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "Open",
		}).Error("Decoder opened with no input data")
		return ErrNoInput
	}

	d.width = limits.DefaultFrameWidth
	d.height = limits.DefaultFrameHeight
	d.fps = limits.DefaultFPS
	d.duration = limits.DefaultStreamSeconds
	d.totalFrames = int(d.fps * d.duration)
	d.source = data
	d.open = true

	logrus.WithFields(logrus.Fields{
		"function":     "Open",
		"width":        d.width,
		"height":       d.height,
		"fps":          d.fps,
		"total_frames": d.totalFrames,
		"source_bytes": len(data),
	}).Info("Decoder opened")

	return nil
}

// Close releases the source. The decoder can be reopened.
func (d *Decoder) Close() {
	d.source = nil
	d.open = false

	logrus.WithFields(logrus.Fields{
		"function": "Close",
	}).Debug("Decoder closed")
}

// Frame synthesizes frame n as an RGBA gradient animated by the frame
// number, with the timestamp derived from the stream frame rate.
func (d *Decoder) Frame(n int) (*frame.Frame, error) {
	if !d.open {
		return nil, ErrNotOpen
	}
	if n < 0 || n >= d.totalFrames {
		return nil, ErrFrameOutOfRange
	}

	f, err := frame.NewRGBA(d.width, d.height)
	if err != nil {
		return nil, err
	}
	f.Timestamp = float64(n) / d.fps
	f.Index = n

	i := 0
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			f.Data[i] = uint8(x + 2*n)
			f.Data[i+1] = uint8(y + n)
			f.Data[i+2] = uint8(x + y + 3*n)
			f.Data[i+3] = 255
			i += 4
		}
	}

	return f, nil
}

// IsOpen reports whether a source is attached.
func (d *Decoder) IsOpen() bool { return d.open }

// Width returns the stream width in pixels.
func (d *Decoder) Width() int { return d.width }

// Height returns the stream height in pixels.
func (d *Decoder) Height() int { return d.height }

// FPS returns the stream frame rate.
func (d *Decoder) FPS() float64 { return d.fps }

// Duration returns the stream length in seconds.
func (d *Decoder) Duration() float64 { return d.duration }

// TotalFrames returns the number of frames in the stream.
func (d *Decoder) TotalFrames() int { return d.totalFrames }
