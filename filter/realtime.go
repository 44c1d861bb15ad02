package filter

// ApplyRealTime runs the reduced-precision preview adjustments used
// for timeline scrubbing directly against a packed RGBA buffer, in
// place. Only brightness, contrast, and saturation have preview
// paths; every other kind is a no-op. Brightness is halved to keep
// scrub gestures gentle, contrast pivots at 128, and saturation
// scales around BT.601 luminance. Alpha is untouched.
func ApplyRealTime(data []byte, width, height int, kind Kind, intensity float64) {
	if !rgbaBounds(data, width, height) {
		return
	}

	n := width * height * 4

	switch kind {
	case KindBrightness:
		offset := intensity * 0.5 * 255
		for i := 0; i < n; i += 4 {
			data[i] = clampByte(float64(data[i]) + offset)
			data[i+1] = clampByte(float64(data[i+1]) + offset)
			data[i+2] = clampByte(float64(data[i+2]) + offset)
		}

	case KindContrast:
		scale := 1 + intensity
		for i := 0; i < n; i += 4 {
			data[i] = clampByte((float64(data[i])-128)*scale + 128)
			data[i+1] = clampByte((float64(data[i+1])-128)*scale + 128)
			data[i+2] = clampByte((float64(data[i+2])-128)*scale + 128)
		}

	case KindSaturation:
		scale := 1 + intensity
		for i := 0; i < n; i += 4 {
			r := float64(data[i])
			g := float64(data[i+1])
			b := float64(data[i+2])

			lum := 0.299*r + 0.587*g + 0.114*b
			data[i] = clampByte(lum + (r-lum)*scale)
			data[i+1] = clampByte(lum + (g-lum)*scale)
			data[i+2] = clampByte(lum + (b-lum)*scale)
		}
	}
}
