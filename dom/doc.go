/*
Package dom provides a small live DOM for inline styling, built on HTML
nodes of golang.org/x/net/html.

Overview

Elements wrap html.Node and implement interface w3cdom.Element. The inline
style of an element is exposed as a w3cdom.CSSStyleDeclaration, which
reads and writes the element's 'style' attribute directly. There is no
cached state besides the attribute itself, therefore any number of parties
(declarative style blocks, raw style objects, plain attribute writes) may
write the style attribute, and every party always sees the current text.

An element without declarations has no 'style' attribute at all:

    <span>text</span>

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylesync.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylesync.dom")
}
