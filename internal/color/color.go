// Package color implements the small RGBA model used by the stylesheet
// compilers.
package color

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// RGBA is a color with 8-bit channels and a fractional alpha.
type RGBA struct {
	R, G, B uint8
	A       float64

	text string // memoized String result
}

// New returns a color with the given channels.
func New(r, g, b uint8, a float64) *RGBA {
	return &RGBA{R: r, G: g, B: b, A: a}
}

// Sentinel returns the opaque red fallback used for unparseable color
// values. A broken theme renders loudly instead of failing to load.
func Sentinel() *RGBA {
	return &RGBA{R: 255, A: 1}
}

// Parse reads #RRGGBB or #RRGGBBAA. Anything else yields the sentinel.
func Parse(text string) *RGBA {
	if !strings.HasPrefix(text, "#") {
		return Sentinel()
	}
	raw, err := hex.DecodeString(text[1:])
	if err != nil {
		return Sentinel()
	}
	switch len(raw) {
	case 3:
		return &RGBA{R: raw[0], G: raw[1], B: raw[2], A: 1}
	case 4:
		return &RGBA{R: raw[0], G: raw[1], B: raw[2], A: float64(raw[3]) / 255}
	default:
		return Sentinel()
	}
}

// String renders the color as "rgba(r, g, b, a)" with alpha rounded to
// two decimal places. The result is memoized on the instance.
func (c *RGBA) String() string {
	if c.text == "" {
		alpha := strconv.FormatFloat(math.Round(c.A*100)/100, 'f', -1, 64)
		var b strings.Builder
		b.WriteString("rgba(")
		b.WriteString(strconv.Itoa(int(c.R)))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(int(c.G)))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(int(c.B)))
		b.WriteString(", ")
		b.WriteString(alpha)
		b.WriteString(")")
		c.text = b.String()
	}
	return c.text
}

// WithAlpha returns a copy with alpha multiplied by factor. Channels
// are unchanged.
func (c *RGBA) WithAlpha(factor float64) *RGBA {
	return &RGBA{R: c.R, G: c.G, B: c.B, A: c.A * factor}
}

// Invert returns the channel-wise negative, preserving alpha.
func (c *RGBA) Invert() *RGBA {
	return &RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}
