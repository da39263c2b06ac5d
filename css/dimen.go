package css

import (
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenPixel    uint32 = 0x0005
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0200
	dimenVW      uint32 = 0x0300
	dimenVH      uint32 = 0x0400
	dimenPercent uint32 = 0x0500
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU // absolute dimensions
	n     float64  // pixels and relative dimensions
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Pixels N
	| Percentage N
	| ViewRel unit N
	| FontRel unit N
*/

// Auto is the CSS keyword 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit is the CSS keyword 'inherit'.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial is the CSS keyword 'initial'.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
// It will be rendered in points.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Pt is an alias for JustDimen.
func Pt(x dimen.DU) DimenT {
	return JustDimen(x)
}

// Px creates a CSS dimension in pixels.
func Px(n float64) DimenT {
	return DimenT{n: n, flags: dimenPixel}
}

// Em creates a font-relative dimension.
func Em(n float64) DimenT {
	return DimenT{n: n, flags: dimenEM}
}

// Rem creates a dimension relative to the root font size.
func Rem(n float64) DimenT {
	return DimenT{n: n, flags: dimenREM}
}

// VW creates a dimension relative to the viewport width.
func VW(n float64) DimenT {
	return DimenT{n: n, flags: dimenVW}
}

// VH creates a dimension relative to the viewport height.
func VH(n float64) DimenT {
	return DimenT{n: n, flags: dimenVH}
}

// Percent creates a CSS dimension with a %-relative value.
func Percent(n float64) DimenT {
	return DimenT{n: n, flags: dimenPercent}
}

// IsNone is true for the zero value, which does not represent a dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// String renders the dimension as CSS text. The zero value renders as
// the empty string.
func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		return formatNumber(float64(d.d)/float64(dimen.PT)) + "pt"
	case dimenPixel:
		return formatNumber(d.n) + "px"
	}
	switch d.flags & relativeMask {
	case dimenEM:
		return formatNumber(d.n) + "em"
	case dimenREM:
		return formatNumber(d.n) + "rem"
	case dimenVW:
		return formatNumber(d.n) + "vw"
	case dimenVH:
		return formatNumber(d.n) + "vh"
	case dimenPercent:
		return formatNumber(d.n) + "%"
	}
	tracer().Debugf("css dimension without kind: %#v", d)
	return ""
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a dimension:
//
//     var du dimen.DU
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         …
//     case m.IsKind(css.Auto()):
//         …
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches a dimension against kinds of dimensions.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if d is of the same kind as the matched dimension. All
// relative dimensions except percentages are of the same kind.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask) != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

// Just matches fixed dimensions, extracting the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Pixels matches pixel dimensions, extracting the number of pixels.
func (m *Matcher) Pixels(n *float64) *Matcher {
	if m.dimen.flags&kindMask == dimenPixel {
		if n != nil {
			*n = m.dimen.n
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions, extracting the percentage.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.n
		}
		return m
	}
	return nil
}

// formatNumber renders x without exponent and without trailing zeros.
func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
