package effects

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videoengine/filter"
	"github.com/opd-ai/videoengine/frame"
	"github.com/opd-ai/videoengine/limits"
)

// Process applies every active effect to the frame in priority order.
//
// The pass is double-buffered: the first active effect operates
// directly on the frame's buffer, every later effect copies the
// current working buffer into the opposite scratch buffer and applies
// itself there. An effect therefore either reads neighbor pixels from
// the previous buffer or borrows the dead buffer as blur scratch,
// never both, so no kernel reads memory it is also writing. If the
// pass ends on a scratch buffer the result is copied back into the
// frame.
//
// An empty chain succeeds without touching the frame. Scratch
// acquisition is all-or-nothing: when it fails the frame is returned
// unmodified and the pass reports the failure. Effects whose pixel
// format gate rejects the frame are silent per-effect no-ops.
func (c *Chain) Process(f *frame.Frame, timestamp float64) error {
	if c == nil {
		return ErrNilChain
	}
	if err := f.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Process",
			"error":    err.Error(),
		}).Error("Frame validation failed")
		return err
	}
	if bpp := f.Format.BytesPerPixel(); bpp > 0 && f.Stride != f.Width*bpp {
		return fmt.Errorf("%w: pass requires packed rows, stride %d for width %d",
			frame.ErrInvalidStride, f.Stride, f.Width)
	}
	if c.count == 0 {
		return nil
	}

	c.Sort()

	if err := c.ensureScratch(limits.FrameBytes(f.Width, f.Height)); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Process",
			"width":    f.Width,
			"height":   f.Height,
			"error":    err.Error(),
		}).Error("Scratch acquisition failed")
		return err
	}

	copySize := f.Size()
	cur := f.Data
	sel := 0
	applied := false

	for i := 0; i < c.count; i++ {
		e := &c.effects[i]
		if e.Type == TypeTransition {
			// Blends two frames; the caller runs it through the
			// transition package.
			continue
		}
		if !e.ActiveAt(timestamp) {
			continue
		}

		if !applied {
			src := cur
			if e.needsSource() {
				copy(c.scratch[0][:copySize], cur[:copySize])
				src = c.scratch[0]
			}
			e.apply(cur, src, c.scratch[1], f.Width, f.Height, f.Format)
			applied = true
			continue
		}

		next := c.scratch[sel]
		copy(next[:copySize], cur[:copySize])
		e.apply(next, cur, c.scratch[1-sel], f.Width, f.Height, f.Format)
		cur = next
		sel = 1 - sel
	}

	if &cur[0] != &f.Data[0] {
		copy(f.Data[:copySize], cur[:copySize])
	}
	return nil
}

// ensureScratch lazily draws both scratch buffers from the pool. Both
// or neither: a partial acquisition is rolled back so a failed pass
// does not strand a block. Once acquired the buffers persist across
// passes and are never resized; frames larger than a pool block are
// rejected.
func (c *Chain) ensureScratch(need int) error {
	if c.scratch[0] != nil {
		if len(c.scratch[0]) < need {
			return fmt.Errorf("%w: scratch %d bytes, frame needs %d",
				ErrScratchUnavailable, len(c.scratch[0]), need)
		}
		return nil
	}

	if c.pool == nil {
		return fmt.Errorf("%w: chain has no pool", ErrScratchUnavailable)
	}
	if need > c.pool.BlockSize() {
		return fmt.Errorf("%w: pool block %d bytes, frame needs %d",
			ErrScratchUnavailable, c.pool.BlockSize(), need)
	}

	first, err := c.pool.Alloc()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScratchUnavailable, err)
	}
	second, err := c.pool.Alloc()
	if err != nil {
		c.pool.Free(first)
		return fmt.Errorf("%w: %v", ErrScratchUnavailable, err)
	}

	c.scratch[0], c.scratch[1] = first, second

	logrus.WithFields(logrus.Fields{
		"function":    "ensureScratch",
		"block_bytes": c.pool.BlockSize(),
		"pool_used":   c.pool.Used(),
	}).Debug("Chain scratch buffers acquired")

	return nil
}

// needsSource reports whether the effect reads source pixels distinct
// from the buffer it writes. Kernel filters and the geometric
// transform sample neighborhoods; pixelwise effects work in place.
func (e *Effect) needsSource() bool {
	switch e.Type {
	case TypeTransform:
		return true
	case TypeFilter:
		return !filter.Pixelwise(e.Filter.Kind)
	default:
		return false
	}
}

// apply dispatches one effect onto dst. dst already holds the working
// image; src is the unmodified previous buffer for effects that
// sample neighborhoods; temp is blur working space. Format mismatches
// no-op inside the filter entry points.
func (e *Effect) apply(dst, src, temp []byte, width, height int, format frame.Format) {
	switch e.Type {
	case TypeColorCorrection:
		filter.ColorCorrection(dst, width, height, format, e.ColorCorrection)

	case TypeFilter:
		switch e.Filter.Kind {
		case filter.KindBlur:
			filter.BoxBlur(dst, temp, width, height, format, e.Blur)
		case filter.KindSharpen:
			filter.Sharpen(src, dst, width, height, format, e.Filter.Intensity)
		case filter.KindEdgeDetection:
			filter.EdgeDetect(src, dst, width, height, format, e.Filter.Intensity)
		default:
			filter.Apply(src, dst, temp, width, height, format, e.Filter)
		}

	case TypeTransform:
		filter.Transform(src, dst, width, height, format, e.Transform)
	}
}
