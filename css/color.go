package css

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a CSS color value. Colors created from a keyword render as that
// keyword, all others in functional rgb()/rgba() notation, which is how
// browsers serialize inline colors:
//
//     css.Named("red")     =>  "red"
//     css.Hex("#F00FFA")   =>  "rgb(240, 15, 250)"
//
// Color implements color.Color.
type Color struct {
	name  string
	c     color.NRGBA
	alpha float64 // exact alpha in [0…1] for rendering
}

// Predefined keyword colors.
var (
	Black = Named("black")
	White = Named("white")
	Red   = Named("red")
	Green = Named("green")
	Blue  = Named("blue")
	Gray  = Named("gray")
)

// ColorByName looks up a CSS/SVG color keyword. Lookup is case-insensitive,
// the keyword will be rendered in lower case.
func ColorByName(name string) (Color, bool) {
	name = strings.ToLower(name)
	rgba, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return Color{name: name, c: color.NRGBAModel.Convert(rgba).(color.NRGBA), alpha: 1}, true
}

// Named returns a keyword color. Unknown keywords (e.g. "currentcolor")
// are kept verbatim and render as given; their RGBA value is opaque black.
func Named(name string) Color {
	if c, ok := ColorByName(name); ok {
		return c
	}
	tracer().Debugf("color keyword %q not known, kept verbatim", name)
	return Color{name: name, c: color.NRGBA{A: 0xff}, alpha: 1}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{c: color.NRGBA{R: r, G: g, B: b, A: 0xff}, alpha: 1}
}

// RGBA creates a color with an alpha value in [0…1].
func RGBA(r, g, b uint8, alpha float64) Color {
	alpha = math.Max(0, math.Min(1, alpha))
	a := uint8(math.Round(alpha * 0xff))
	return Color{c: color.NRGBA{R: r, G: g, B: b, A: a}, alpha: alpha}
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{c: n, alpha: float64(n.A) / 0xff}
}

// Hex parses a color in hex notation: #rgb, #rgba, #rrggbb or #rrggbbaa.
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	}
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("css: malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("css: malformed hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	n := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return FromColor(n), nil
}

// MustHex is like Hex, but panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA is part of interface color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.c.RGBA()
}

// Keyword returns the color keyword, if the color has been created from one.
func (c Color) Keyword() string {
	return c.name
}

// String renders the color as CSS text.
func (c Color) String() string {
	if c.name != "" {
		return c.name
	}
	if c.alpha >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.c.R, c.c.G, c.c.B)
	}
	a := math.Round(c.alpha*1000) / 1000
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.c.R, c.c.G, c.c.B, formatNumber(a))
}

var _ color.Color = Color{}
