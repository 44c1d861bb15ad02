package transition

import "github.com/opd-ai/videoengine/frame"

// WipeLeft reveals b from the left edge: columns below the boundary
// int(progress*width) come from b, the rest from a.
func WipeLeft(a, b, out *frame.Frame, progress float64) error {
	if err := validateTriple(a, b, out); err != nil {
		return err
	}
	progress = clamp01(progress)
	boundary := int(progress * float64(out.Width))

	return wipeColumns(a, b, out, func(x int) bool { return x < boundary })
}

// WipeRight reveals b from the right edge: columns at or past the
// boundary width-int(progress*width) come from b, the rest from a.
func WipeRight(a, b, out *frame.Frame, progress float64) error {
	if err := validateTriple(a, b, out); err != nil {
		return err
	}
	progress = clamp01(progress)
	boundary := out.Width - int(progress*float64(out.Width))

	return wipeColumns(a, b, out, func(x int) bool { return x >= boundary })
}

// WipeUp reveals b from the bottom edge: rows at or past the boundary
// height-int(progress*height) come from b, the rest from a.
func WipeUp(a, b, out *frame.Frame, progress float64) error {
	if err := validateTriple(a, b, out); err != nil {
		return err
	}
	progress = clamp01(progress)
	boundary := out.Height - int(progress*float64(out.Height))

	return wipeRows(a, b, out, func(y int) bool { return y >= boundary })
}

// WipeDown reveals b from the top edge: rows below the boundary
// int(progress*height) come from b, the rest from a.
func WipeDown(a, b, out *frame.Frame, progress float64) error {
	if err := validateTriple(a, b, out); err != nil {
		return err
	}
	progress = clamp01(progress)
	boundary := int(progress * float64(out.Height))

	return wipeRows(a, b, out, func(y int) bool { return y < boundary })
}

// wipeColumns assembles each output row from b-pixels where fromB
// holds and a-pixels elsewhere.
func wipeColumns(a, b, out *frame.Frame, fromB func(x int) bool) error {
	for y := 0; y < out.Height; y++ {
		rowA := a.Data[y*a.Stride:]
		rowB := b.Data[y*b.Stride:]
		rowOut := out.Data[y*out.Stride:]

		for x := 0; x < out.Width; x++ {
			i := x * 4
			if fromB(x) {
				copy(rowOut[i:i+4], rowB[i:i+4])
			} else {
				copy(rowOut[i:i+4], rowA[i:i+4])
			}
		}
	}
	return nil
}

// wipeRows copies whole rows from b where fromB holds and from a
// elsewhere.
func wipeRows(a, b, out *frame.Frame, fromB func(y int) bool) error {
	rowBytes := out.Width * 4
	for y := 0; y < out.Height; y++ {
		rowOut := out.Data[y*out.Stride : y*out.Stride+rowBytes]

		if fromB(y) {
			copy(rowOut, b.Data[y*b.Stride:y*b.Stride+rowBytes])
		} else {
			copy(rowOut, a.Data[y*a.Stride:y*a.Stride+rowBytes])
		}
	}
	return nil
}
