/*
Package css formats CSS values for inline style declarations.

Values of this package know how to render themselves as CSS text, e.g.

    css.Px(40)            =>  "40px"
    css.Auto()            =>  "auto"
    css.RGB(240, 15, 250) =>  "rgb(240, 15, 250)"
    css.Number(0.4)       =>  "0.4"

The styling engine treats the rendered text as opaque; no value is ever
parsed back or normalized. Legality of a value for a given property is
not checked.

Status

Covers the value kinds needed by inline styles: dimensions, colors,
numbers and keywords.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylesync.css'.
func tracer() tracing.Trace {
	return tracing.Select("stylesync.css")
}
