/*
Package styledtree is a straightforward host for styled elements.

Overview

A StyNode is the lifecycle record of one live element. It is created on
mount, carries the element's inline style state (package inline) and is
discarded on unmount. The style state is never shared between nodes.

Each recomposition pass is described by an attribute function, which sets
plain attributes and attaches any number of style blocks and raw style
objects, in declaration order:

    span := styledtree.Mount(root, "span")
    span.Recompose(func(a *styledtree.Attrs) {
        a.Style(func(b *inline.Builder) { b.Opacity(0.4) })
        a.ID("container")
        a.Style(func(b *inline.Builder) { b.Padding(css.Px(40)) })
    })

All style blocks of one pass are evaluated into a single builder and
reconciled once, after plain attributes and raw style objects have been
written.

This package does not schedule recomposition; deciding when a pass is
due is the business of the caller.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylesync.dom'.
func tracer() tracing.Trace {
	return tracing.Select("stylesync.dom")
}
