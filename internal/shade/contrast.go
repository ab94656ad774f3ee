package shade

// lumaThreshold is the midpoint of the [0, 255] luma range.
const lumaThreshold = 128

// Luma returns the YIQ luminance of c in [0, 255].
func Luma(c Color) float64 {
	r, g, b := c.RGB()
	return float64(int(r)*299+int(g)*587+int(b)*114) / 1000
}

// Contrast returns Black for colors with luma >= 128 and White otherwise.
func Contrast(c Color) Color {
	if Luma(c) >= lumaThreshold {
		return Black
	}
	return White
}
