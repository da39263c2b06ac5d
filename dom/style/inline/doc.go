/*
Package inline keeps the inline style of an element in sync with a
declarative description of it.

Overview

A style block is a function which receives a Builder and appends
declarations, possibly behind conditionals, loops or helper calls:

    func(b *inline.Builder) {
        if isRed {
            b.Color(css.Red)
        }
        b.Padding(css.Px(40))
    }

Style blocks are re-evaluated from scratch on every recomposition pass of
the hosting framework. All blocks attached to one element feed a single
fresh Builder, in declaration order, and Builder.Build produces an
immutable Snapshot. Within a snapshot every property occurs once: a later
write of a property overrides its value and moves it to the end.

A State, owned by the element's lifecycle record, remembers the snapshot
applied last. State.Reconcile diffs the new snapshot against it and
against the element's live style attribute and applies the minimal Patch
through the element's primitive set/remove operations. Only properties
which are new or have changed their value are set; a property is removed
and set again only if it has to move. Re-applying an unchanged snapshot is
a no-op.

Canonical Form

Serialize renders declarations as

    color: green; padding: 1px;

and Parse is its inverse. If no party other than the reconciler writes
the style attribute, the attribute after reconciliation equals the
serialized snapshot byte for byte.

Other Writers

The style attribute may be written directly by others, e.g. by package
rawstyle. Reconciliation always reads the live attribute; properties this
engine never declared are left alone, and a declared property always wins
over a direct write of the same name.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylesync.inline'.
func tracer() tracing.Trace {
	return tracing.Select("stylesync.inline")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("inline style: "+msg, msgargs...)
		panic(msg)
	}
}
