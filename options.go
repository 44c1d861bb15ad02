package videoengine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/videoengine/export"
	"github.com/opd-ai/videoengine/limits"
	"github.com/opd-ai/videoengine/mempool"
)

// Options configures a new engine.
type Options struct {
	// Width is the working frame width in pixels.
	Width int `yaml:"width"`
	// Height is the working frame height in pixels.
	Height int `yaml:"height"`
	// PoolBlocks is the number of frame-sized buffers in the pool.
	PoolBlocks int `yaml:"pool_blocks"`
	// Export configures the encoder built for export sessions. Zero
	// preset dimensions follow the working resolution.
	Export export.Preset `yaml:"export"`
}

// NewOptions returns options with the default working resolution and
// pool size.
func NewOptions() *Options {
	return &Options{
		Width:      limits.DefaultFrameWidth,
		Height:     limits.DefaultFrameHeight,
		PoolBlocks: limits.DefaultPoolBlocks,
		Export: export.Preset{
			FPS:     limits.DefaultFPS,
			Quality: limits.DefaultQuality,
			Format:  "webm",
		},
	}
}

// Validate checks the options for usable values.
func (o *Options) Validate() error {
	if err := limits.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.PoolBlocks <= 0 {
		return fmt.Errorf("%w: %d", mempool.ErrInvalidBlockCount, o.PoolBlocks)
	}
	return nil
}

// OptionsFromYAML parses YAML configuration over the defaults, so a
// document only needs the fields it wants to change.
func OptionsFromYAML(data []byte) (*Options, error) {
	o := NewOptions()
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// LoadOptions reads and parses a YAML configuration file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return OptionsFromYAML(data)
}

// BuildEncoder constructs an encoder from the export preset, sized to
// the working resolution when the preset does not override it.
func (o *Options) BuildEncoder() (*export.Encoder, error) {
	preset := o.Export
	if preset.Width <= 0 {
		preset.Width = o.Width
	}
	if preset.Height <= 0 {
		preset.Height = o.Height
	}
	return preset.Build()
}
