package shade

// Palette defaults used by the landing page.
const (
	DefaultCount = 20
	DefaultStep  = 10
)

// GeneratePalette derives count shades from base using the default step.
func GeneratePalette(base Color, count int) []Color {
	return GeneratePaletteStep(base, count, DefaultStep)
}

// GeneratePaletteStep derives count shades centred on the low byte of base.
//
// Every shade is a gray: all three channels take the value
// clamp(low + (i - count/2) * step, 0, 255). The hue of base is not kept.
// A non-positive count yields an empty palette.
func GeneratePaletteStep(base Color, count, step int) []Color {
	if count <= 0 {
		return []Color{}
	}

	low := int(base.Uint32() & 0xFF)
	shades := make([]Color, 0, count)
	for i := range count {
		v := uint32(clamp(low+(i-count/2)*step, 0, 255))
		shades = append(shades, fromUint32(v|v<<8|v<<16))
	}
	return shades
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
