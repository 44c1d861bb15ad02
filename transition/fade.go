package transition

import "github.com/opd-ai/videoengine/frame"

// Fade cross-fades a into b by linear interpolation: every channel of
// every pixel, alpha included, becomes a*(1-progress) + b*progress
// truncated to a byte. Progress zero reproduces a exactly and progress
// one reproduces b exactly.
func Fade(a, b, out *frame.Frame, progress float64) error {
	if err := validateTriple(a, b, out); err != nil {
		return err
	}
	progress = clamp01(progress)
	keep := 1 - progress

	rowBytes := out.Width * 4
	for y := 0; y < out.Height; y++ {
		rowA := a.Data[y*a.Stride:]
		rowB := b.Data[y*b.Stride:]
		rowOut := out.Data[y*out.Stride:]

		for i := 0; i < rowBytes; i++ {
			rowOut[i] = uint8(float64(rowA[i])*keep + float64(rowB[i])*progress)
		}
	}
	return nil
}
