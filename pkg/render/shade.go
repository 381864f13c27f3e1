package render

import "math"

// Gamma is the display gamma used when darkening face colors.
const Gamma = 2.2

// Shade darkens c by the facing factor s in linear light: every channel is
// raised to Gamma, scaled by s, raised to 1/Gamma and truncated.
// s is clamped to [0, 1]; alpha is kept.
func Shade(c Color, s float64) Color {
	s = math.Max(0, math.Min(1, s))
	return Color{
		R: shadeChannel(c.R, s),
		G: shadeChannel(c.G, s),
		B: shadeChannel(c.B, s),
		A: c.A,
	}
}

func shadeChannel(v uint8, s float64) uint8 {
	linear := math.Pow(float64(v), Gamma) * s
	return uint8(math.Pow(linear, 1/Gamma))
}
