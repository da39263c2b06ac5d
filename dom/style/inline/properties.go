package inline

import (
	"github.com/npillmayer/stylesync/css"
	"github.com/npillmayer/stylesync/dom/style"
)

// --- Typed property setters -----------------------------------------------
//
// Convenience for style blocks. Every setter is a plain Append with the
// value's CSS text.

// Property appends a declaration with a typed value.
func (b *Builder) Property(name string, value css.Value) {
	b.Append(name, style.Property(value.String()))
}

// Color sets property 'color'.
func (b *Builder) Color(c css.Value) { b.Property("color", c) }

// BackgroundColor sets property 'background-color'.
func (b *Builder) BackgroundColor(c css.Value) { b.Property("background-color", c) }

// Opacity sets property 'opacity'.
func (b *Builder) Opacity(x float64) { b.Property("opacity", css.Number(x)) }

// Width sets property 'width'.
func (b *Builder) Width(d css.Value) { b.Property("width", d) }

// Height sets property 'height'.
func (b *Builder) Height(d css.Value) { b.Property("height", d) }

// MinWidth sets property 'min-width'.
func (b *Builder) MinWidth(d css.Value) { b.Property("min-width", d) }

// MaxWidth sets property 'max-width'.
func (b *Builder) MaxWidth(d css.Value) { b.Property("max-width", d) }

// Display sets property 'display'.
func (b *Builder) Display(v css.Value) { b.Property("display", v) }

// Position sets property 'position'.
func (b *Builder) Position(v css.Value) { b.Property("position", v) }

// Visibility sets property 'visibility'.
func (b *Builder) Visibility(v css.Value) { b.Property("visibility", v) }

// FontSize sets property 'font-size'.
func (b *Builder) FontSize(d css.Value) { b.Property("font-size", d) }

// Padding sets shorthand property 'padding' from 1–4 values.
func (b *Builder) Padding(values ...css.Value) { b.Property("padding", css.List(values)) }

// Margin sets shorthand property 'margin' from 1–4 values.
func (b *Builder) Margin(values ...css.Value) { b.Property("margin", css.List(values)) }

// Border sets shorthand property 'border', e.g. Border(css.Px(1), css.Keyword("solid"), css.Red).
func (b *Builder) Border(values ...css.Value) { b.Property("border", css.List(values)) }

// Variable sets a custom property. name is given without the leading '--'.
func (b *Builder) Variable(name string, value css.Value) { b.Property("--"+name, value) }
