package grouping

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color maps a group ordinal to its series color by sampling the gnuplot
// palette at index/(count+1). Dividing by count+1 instead of count-1 keeps
// the sample positions clear of the top of the palette, whose endpoint
// colors are visually degenerate. Pure function of (index, count): identical
// inputs reproduce identical colors.
func Color(index, count int) drawing.Color {
	if count <= 0 {
		return gnuplot(0)
	}
	return gnuplot(float64(index) / float64(count+1))
}

// gnuplot evaluates the classic gnuplot rgb palette at t in [0, 1]:
// r = sqrt(t), g = t³, b = sin(2πt) clamped at zero.
func gnuplot(t float64) drawing.Color {
	t = math.Min(math.Max(t, 0), 1)
	r := math.Sqrt(t)
	g := t * t * t
	b := math.Sin(2 * math.Pi * t)
	if b < 0 {
		b = 0
	}
	return drawing.Color{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// channel converts a [0, 1] intensity to an 8-bit channel value.
func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
