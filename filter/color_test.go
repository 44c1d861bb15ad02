package filter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opd-ai/videoengine/frame"
)

func identityParams() ColorCorrectionParams {
	return ColorCorrectionParams{Gamma: 1}
}

func TestColorCorrectionIdentityIsExact(t *testing.T) {
	// Cover every byte value, including the low values most sensitive
	// to float round-trips.
	data := make([]byte, 256*4)
	for i := 0; i < 256; i++ {
		data[i*4] = byte(i)
		data[i*4+1] = byte(255 - i)
		data[i*4+2] = byte(i / 2)
		data[i*4+3] = byte(i)
	}
	want := bytes.Clone(data)

	ColorCorrection(data, 256, 1, frame.FormatRGBA, identityParams())
	assert.Equal(t, want, data, "identity parameters must not move any byte")
}

func TestColorCorrectionBrightness(t *testing.T) {
	data := uniformRGBA(2, 2, 100, 100, 100, 255)

	p := identityParams()
	p.Brightness = 0.5
	ColorCorrection(data, 2, 2, frame.FormatRGBA, p)

	assert.Equal(t, byte(227), data[0])
	assert.Equal(t, byte(255), data[3])
}

func TestColorCorrectionBrightnessSaturates(t *testing.T) {
	data := uniformRGBA(1, 1, 0, 128, 250, 7)

	p := identityParams()
	p.Brightness = 1
	ColorCorrection(data, 1, 1, frame.FormatRGBA, p)

	assert.Equal(t, []byte{255, 255, 255, 7}, data)
}

func TestColorCorrectionGamma(t *testing.T) {
	data := uniformRGBA(1, 1, 64, 64, 64, 255)

	p := identityParams()
	p.Gamma = 2
	ColorCorrection(data, 1, 1, frame.FormatRGBA, p)

	assert.Equal(t, byte(127), data[0])
}

func TestColorCorrectionExposure(t *testing.T) {
	data := uniformRGBA(1, 1, 50, 50, 50, 255)

	p := identityParams()
	p.Exposure = 1
	ColorCorrection(data, 1, 1, frame.FormatRGBA, p)

	assert.Equal(t, byte(100), data[0], "one stop doubles the channel")
}

func TestColorCorrectionHueRotation(t *testing.T) {
	data := uniformRGBA(2, 1, 255, 0, 0, 255)

	p := identityParams()
	p.Hue = 120
	ColorCorrection(data, 2, 1, frame.FormatRGBA, p)

	assert.Equal(t, []byte{0, 255, 0, 255}, data[:4], "red rotates onto green")
}

func TestColorCorrectionDesaturate(t *testing.T) {
	data := uniformRGBA(1, 1, 200, 100, 50, 255)

	p := identityParams()
	p.Saturation = -1
	ColorCorrection(data, 1, 1, frame.FormatRGBA, p)

	// Fully desaturated pixels collapse to the HSV value channel.
	assert.Equal(t, []byte{200, 200, 200, 255}, data)
}

func TestColorCorrectionRejectsNonRGBA(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50, 60}
	want := bytes.Clone(data)

	p := identityParams()
	p.Brightness = 1
	ColorCorrection(data, 2, 1, frame.FormatRGB, p)

	assert.Equal(t, want, data)
}

func TestColorCorrectionShortBufferNoOp(t *testing.T) {
	data := []byte{1, 2, 3}
	want := bytes.Clone(data)

	ColorCorrection(data, 4, 4, frame.FormatRGBA, identityParams())
	assert.Equal(t, want, data)
}

func TestHSVRoundTripPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{"red", 255, 0, 0},
		{"green", 0, 255, 0},
		{"blue", 0, 0, 255},
		{"white", 255, 255, 255},
		{"black", 0, 0, 0},
		{"yellow", 255, 255, 0},
		{"cyan", 0, 255, 255},
		{"magenta", 255, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := rgbToHSV(tt.r, tt.g, tt.b)
			r, g, b := hsvToRGB(h, s, v)
			assert.Equal(t, tt.r, r)
			assert.Equal(t, tt.g, g)
			assert.Equal(t, tt.b, b)
		})
	}
}

func TestHSVHueWrapsNegative(t *testing.T) {
	// Rotating green by -360 must land back on green.
	h, s, v := rgbToHSV(0, 255, 0)
	r, g, b := hsvToRGB(h-360, s, v)
	assert.Equal(t, uint8(0), r)
	assert.Equal(t, uint8(255), g)
	assert.Equal(t, uint8(0), b)
}

func BenchmarkColorCorrection(b *testing.B) {
	data := patternRGBA(1920, 1080)
	p := ColorCorrectionParams{
		Brightness: 0.1,
		Contrast:   0.2,
		Saturation: 0.1,
		Hue:        15,
		Gamma:      1.1,
		Exposure:   0.3,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ColorCorrection(data, 1920, 1080, frame.FormatRGBA, p)
	}
}
