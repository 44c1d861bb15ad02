package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/videoengine/limits"
)

// Preset is an encoder configuration loadable from YAML. Fields left
// out of the document keep their defaults; a zero bitrate keeps the
// encoder's derived estimate.
type Preset struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	FPS     float64 `yaml:"fps"`
	Quality int     `yaml:"quality"`
	Bitrate int     `yaml:"bitrate"`
	Format  string  `yaml:"format"`
}

// DefaultPreset returns the full HD 30 fps export defaults.
func DefaultPreset() Preset {
	return Preset{
		Width:   limits.DefaultFrameWidth,
		Height:  limits.DefaultFrameHeight,
		FPS:     limits.DefaultFPS,
		Quality: limits.DefaultQuality,
		Format:  "webm",
	}
}

// PresetFromYAML parses a preset document over the defaults and
// validates the result.
func PresetFromYAML(data []byte) (Preset, error) {
	p := DefaultPreset()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parsing export preset: %w", err)
	}
	if err := limits.ValidateDimensions(p.Width, p.Height); err != nil {
		return Preset{}, err
	}
	if p.FPS <= 0 {
		return Preset{}, fmt.Errorf("%w: %g", ErrInvalidFPS, p.FPS)
	}
	return p, nil
}

// LoadPreset reads and parses a preset file.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("reading export preset: %w", err)
	}
	return PresetFromYAML(data)
}

// Build creates an encoder configured by the preset.
func (p Preset) Build() (*Encoder, error) {
	e, err := NewEncoder(p.Width, p.Height, p.FPS)
	if err != nil {
		return nil, err
	}
	if p.Quality > 0 {
		e.SetQuality(p.Quality)
	}
	if p.Bitrate > 0 {
		e.SetBitrate(p.Bitrate)
	}
	e.SetFormat(p.Format)
	return e, nil
}
