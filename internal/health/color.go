package health

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// NoDataColor marks calendar cells without an exercise or diet entry.
var NoDataColor = lipgloss.Color("#646464")

// IntensityColor maps a 0-10 exercise intensity onto a red-to-green gradient:
// hue 0 at the low end up to hue 120 at intensity 10, saturation 80%,
// lightness 45%. Intensities below 1 get the grey no-data sentinel.
func IntensityColor(intensity int) lipgloss.Color {
	return scaleColor(intensity)
}

// RatingColor maps a 1-10 diet rating onto the same red-to-green gradient.
func RatingColor(rating int) lipgloss.Color {
	return scaleColor(rating)
}

func scaleColor(value int) lipgloss.Color {
	if value < 1 {
		return NoDataColor
	}
	if value > 10 {
		value = 10
	}
	hue := math.Round(float64(value) / 10 * 120)
	return lipgloss.Color(hslToHex(hue, 0.80, 0.45))
}

// hslToHex converts an HSL triple (h in degrees, s and l in [0,1]) into a
// #rrggbb string, which is what lipgloss.Color consumes.
func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)))
}
