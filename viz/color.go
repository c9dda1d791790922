package viz

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Palette: the classic visualiser colors, one per cell state.
var (
	// ColorStart paints the Start cell (blue).
	ColorStart = RGB{84, 119, 232}
	// ColorEnd paints the End cell (cyan).
	ColorEnd = RGB{62, 234, 250}
	// ColorVisited paints expanded cells (red).
	ColorVisited = RGB{235, 87, 84}
	// ColorOpen paints frontier cells (green).
	ColorOpen = RGB{84, 232, 124}
	// ColorObstacle paints walls (grey).
	ColorObstacle = RGB{112, 109, 103}
	// ColorNormal paints untouched cells (white).
	ColorNormal = RGB{255, 255, 255}
)

// Lerp interpolates linearly between a and b; t is clamped to [0,1].
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}

	return RGB{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B)}
}

// Gradient returns n colors stepping linearly from a to b inclusive.
// Path rendering uses Gradient(ColorStart, ColorEnd, pathLen) so the
// route fades from the Start color into the End color.
func Gradient(a, b RGB, n int) []RGB {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []RGB{a}
	}
	out := make([]RGB, n)
	for i := 0; i < n; i++ {
		out[i] = Lerp(a, b, float64(i)/float64(n-1))
	}

	return out
}
