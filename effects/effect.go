// Package effects implements the per-frame effect pipeline: effect
// descriptors, the fixed-capacity priority-ordered chain, and the
// double-buffered processing pass that applies a chain to one frame.
//
// Transitions are declared here as an effect type so chains can carry
// them, but they blend two frames and are executed by the caller
// through the transition package, never inside a single-frame pass.
package effects

import (
	"math"

	"github.com/opd-ai/videoengine/filter"
	"github.com/opd-ai/videoengine/limits"
)

// Type tags the parameter variant an effect carries.
type Type int

const (
	// TypeFilter is a single-frame filter selected by filter.Kind
	TypeFilter Type = iota
	// TypeTransition is a two-frame blend; not executed in-chain
	TypeTransition
	// TypeTransform is a geometric scale/rotate/flip/crop
	TypeTransform
	// TypeColorCorrection is the brightness/contrast/gamma/exposure/HSV pass
	TypeColorCorrection
)

// String returns a human-readable effect type name.
func (t Type) String() string {
	switch t {
	case TypeFilter:
		return "filter"
	case TypeTransition:
		return "transition"
	case TypeTransform:
		return "transform"
	case TypeColorCorrection:
		return "color_correction"
	default:
		return "unknown"
	}
}

// Priority tiers order chain execution: lower tiers run first, ties
// keep insertion order.
const (
	PriorityColorCorrection = 1
	PriorityFilter          = 2
	PriorityTransform       = 3
	PriorityTransition      = 4
)

// Effect is one chain entry: a tagged parameter variant plus
// enablement, priority, and activation-window metadata. Only the
// parameter set matching Type is meaningful; dispatch never reads the
// others.
type Effect struct {
	Type     Type
	Priority int
	Enabled  bool

	ColorCorrection filter.ColorCorrectionParams
	Filter          filter.Params
	Blur            filter.BlurParams
	Transform       filter.TransformParams

	// ActiveFrom/ActiveUntil bound the effect to [from, until) in
	// frame timestamp seconds. The default window is [0, +Inf).
	ActiveFrom  float64
	ActiveUntil float64

	// Keyframes holds a stored intensity curve for animation tooling.
	// The pipeline does not evaluate it.
	Keyframes     [limits.MaxKeyframes]float64
	KeyframeCount int
}

// ActiveAt reports whether the effect participates in a pass at the
// given timestamp: it must be enabled and the timestamp must fall
// inside the half-open activation window.
func (e *Effect) ActiveAt(timestamp float64) bool {
	return e.Enabled && timestamp >= e.ActiveFrom && timestamp < e.ActiveUntil
}

// AddKeyframe appends one intensity control point to the stored curve.
// Returns an error when the curve is already at capacity.
func (e *Effect) AddKeyframe(value float64) error {
	if err := limits.ValidateKeyframeCount(e.KeyframeCount + 1); err != nil {
		return err
	}
	e.Keyframes[e.KeyframeCount] = value
	e.KeyframeCount++
	return nil
}

// NewColorCorrection builds an enabled, always-active color correction
// effect. Gamma defaults to its identity value of one and exposure to
// zero; the remaining parameters come from the caller.
func NewColorCorrection(brightness, contrast, saturation, hue float64) Effect {
	return Effect{
		Type:     TypeColorCorrection,
		Priority: PriorityColorCorrection,
		Enabled:  true,
		ColorCorrection: filter.ColorCorrectionParams{
			Brightness: brightness,
			Contrast:   contrast,
			Saturation: saturation,
			Hue:        hue,
			Gamma:      1,
		},
		ActiveUntil: math.Inf(1),
	}
}

// NewBlur builds an enabled, always-active box blur effect. The
// gaussian flag and iteration count are stored with the radius; the
// blur pass reads only the radius.
func NewBlur(radius float64, gaussian bool) Effect {
	return Effect{
		Type:     TypeFilter,
		Priority: PriorityFilter,
		Enabled:  true,
		Filter: filter.Params{
			Kind:    filter.KindBlur,
			Enabled: true,
		},
		Blur: filter.BlurParams{
			Radius:     radius,
			Gaussian:   gaussian,
			Iterations: 1,
		},
		ActiveUntil: math.Inf(1),
	}
}

// NewTransform builds an enabled, always-active geometric transform
// with the full frame as its crop window.
func NewTransform(scale, rotation float64, flipH, flipV bool) Effect {
	return Effect{
		Type:     TypeTransform,
		Priority: PriorityTransform,
		Enabled:  true,
		Transform: filter.TransformParams{
			Scale:      scale,
			Rotation:   rotation,
			FlipH:      flipH,
			FlipV:      flipV,
			CropWidth:  100,
			CropHeight: 100,
		},
		ActiveUntil: math.Inf(1),
	}
}

// NewFilter builds an enabled, always-active generic filter effect of
// the given kind. For the blur kind the stored blur parameters are
// derived the same way the generic dispatch derives them, radius
// intensity*20, so the effect blurs identically whichever path runs it.
func NewFilter(kind filter.Kind, intensity float64) Effect {
	e := Effect{
		Type:     TypeFilter,
		Priority: PriorityFilter,
		Enabled:  true,
		Filter: filter.Params{
			Kind:      kind,
			Intensity: intensity,
			Enabled:   true,
		},
		ActiveUntil: math.Inf(1),
	}
	if kind == filter.KindBlur {
		e.Blur = filter.BlurParams{
			Radius:     intensity * 20,
			Gaussian:   true,
			Iterations: 1,
		}
	}
	return e
}
