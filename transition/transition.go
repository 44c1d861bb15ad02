// Package transition implements the pairwise frame blend operators used
// between clips: crossfade, pseudo-random dissolve, and directional
// wipes. All operators are pure functions over three RGBA frames of
// identical geometry; they hold no state and are safe to call
// concurrently on disjoint frame triples.
package transition

import (
	"errors"
	"fmt"

	"github.com/opd-ai/videoengine/frame"
)

// Kind identifies a transition operator.
type Kind int

const (
	// KindFade cross-fades every channel linearly by progress
	KindFade Kind = iota
	// KindDissolve switches pixels on a deterministic positional threshold
	KindDissolve
	// KindWipeLeft reveals the incoming frame from the left edge
	KindWipeLeft
	// KindWipeRight reveals the incoming frame from the right edge
	KindWipeRight
	// KindWipeUp reveals the incoming frame from the bottom edge
	KindWipeUp
	// KindWipeDown reveals the incoming frame from the top edge
	KindWipeDown
)

// String returns a human-readable transition name.
func (k Kind) String() string {
	switch k {
	case KindFade:
		return "fade"
	case KindDissolve:
		return "dissolve"
	case KindWipeLeft:
		return "wipe_left"
	case KindWipeRight:
		return "wipe_right"
	case KindWipeUp:
		return "wipe_up"
	case KindWipeDown:
		return "wipe_down"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	// ErrFrameMismatch indicates the two inputs and the output do not
	// share dimensions
	ErrFrameMismatch = errors.New("transition frames must share dimensions")

	// ErrUnknownKind indicates a transition kind outside the known set
	ErrUnknownKind = errors.New("unknown transition kind")
)

// Apply dispatches to the operator for kind, blending a toward b by
// progress into out. Progress is clamped to [0, 1]; zero yields a and
// one yields b for every operator.
func Apply(kind Kind, a, b, out *frame.Frame, progress float64) error {
	switch kind {
	case KindFade:
		return Fade(a, b, out, progress)
	case KindDissolve:
		return Dissolve(a, b, out, progress)
	case KindWipeLeft:
		return WipeLeft(a, b, out, progress)
	case KindWipeRight:
		return WipeRight(a, b, out, progress)
	case KindWipeUp:
		return WipeUp(a, b, out, progress)
	case KindWipeDown:
		return WipeDown(a, b, out, progress)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// validateTriple checks that all three frames exist, are structurally
// valid packed RGBA, and share dimensions with the output frame.
func validateTriple(a, b, out *frame.Frame) error {
	for _, f := range []*frame.Frame{a, b, out} {
		if err := f.Validate(); err != nil {
			return err
		}
		if f.Format != frame.FormatRGBA {
			return fmt.Errorf("%w: %s", frame.ErrUnsupportedFormat, f.Format)
		}
	}
	if a.Width != out.Width || a.Height != out.Height ||
		b.Width != out.Width || b.Height != out.Height {
		return fmt.Errorf("%w: a %dx%d, b %dx%d, out %dx%d",
			ErrFrameMismatch, a.Width, a.Height, b.Width, b.Height, out.Width, out.Height)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
