package transition

import "github.com/opd-ai/videoengine/frame"

// Dissolve switches each pixel from a to b once progress passes a
// deterministic per-position threshold, ((x*31 + y*17) mod 100)/100.
// The pattern depends only on pixel coordinates, so the same inputs
// always dissolve identically. The comparison is strict: progress zero
// reproduces a exactly and progress one reproduces b exactly.
func Dissolve(a, b, out *frame.Frame, progress float64) error {
	if err := validateTriple(a, b, out); err != nil {
		return err
	}
	progress = clamp01(progress)

	for y := 0; y < out.Height; y++ {
		rowA := a.Data[y*a.Stride:]
		rowB := b.Data[y*b.Stride:]
		rowOut := out.Data[y*out.Stride:]

		for x := 0; x < out.Width; x++ {
			threshold := float64((x*31+y*17)%100) / 100
			i := x * 4

			if progress > threshold {
				copy(rowOut[i:i+4], rowB[i:i+4])
			} else {
				copy(rowOut[i:i+4], rowA[i:i+4])
			}
		}
	}
	return nil
}
