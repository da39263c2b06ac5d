package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/stylesync/dom"
	"github.com/npillmayer/stylesync/dom/style/inline"
	"github.com/npillmayer/stylesync/dom/style/rawstyle"
)

// StyNode is a styled node, the lifecycle record of a live element.
type StyNode struct {
	elem     *dom.Element
	state    *inline.State   // nil when unmounted
	opts     []inline.Option // for the style state
	attrKeys map[string]bool // plain attributes set by the last pass
}

// Mount creates a new element with a given tag as the last child of parent
// and returns its lifecycle record. The element has no attributes and no
// style until the first call to Recompose.
func Mount(parent *dom.Element, tag string, opts ...inline.Option) *StyNode {
	e := dom.NewElement(tag)
	if parent != nil {
		parent.AppendChild(e)
	}
	return &StyNode{
		elem:  e,
		state: inline.NewState(opts...),
		opts:  opts,
	}
}

// Mount creates a child element of sn.
func (sn *StyNode) Mount(tag string) *StyNode {
	return Mount(sn.elem, tag, sn.opts...)
}

// Text appends a text node to the element.
func (sn *StyNode) Text(text string) *StyNode {
	sn.elem.AppendText(text)
	return sn
}

// Element returns the live element.
func (sn *StyNode) Element() *dom.Element {
	return sn.elem
}

// State returns the inline style state of the element, or nil if the node
// has been unmounted.
func (sn *StyNode) State() *inline.State {
	return sn.state
}

// Mounted is true between Mount and Unmount.
func (sn *StyNode) Mounted() bool {
	return sn.state != nil
}

// Unmount detaches the element from its parent and drops its style state.
func (sn *StyNode) Unmount() {
	sn.elem.Remove()
	sn.state = nil
	sn.attrKeys = nil
}

// Recompose runs one recomposition pass for the element. Plain attributes
// from attrs are applied first (attributes of the previous pass which are
// not set again are removed), then raw style objects in order, then all
// style blocks are evaluated into one snapshot and reconciled with the
// element's inline style. The reconciliation patch is returned.
func (sn *StyNode) Recompose(attrs func(*Attrs)) inline.Patch {
	if !sn.Mounted() {
		tracer().Errorf("recompose on unmounted <%s> ignored", sn.elem.NodeName())
		return nil
	}
	a := &Attrs{}
	if attrs != nil {
		attrs(a)
	}
	keys := make(map[string]bool, len(a.attrs))
	for _, attr := range a.attrs {
		sn.elem.SetAttribute(attr.key, attr.value)
		keys[attr.key] = true
	}
	for k := range sn.attrKeys {
		if !keys[k] {
			sn.elem.RemoveAttribute(k)
		}
	}
	sn.attrKeys = keys
	style := sn.elem.Style()
	for _, obj := range a.raws {
		rawstyle.Apply(style, obj)
	}
	b := inline.NewBuilder()
	for _, block := range a.blocks {
		b.Run(block)
	}
	return sn.state.Reconcile(b.Build(), style)
}

// --- Attributes ------------------------------------------------------------

type attribute struct {
	key, value string
}

// Attrs collects the attributes of an element for one recomposition pass.
type Attrs struct {
	attrs  []attribute
	blocks []inline.Block
	raws   []*rawstyle.Object
}

// Attr sets a plain attribute. The 'style' attribute is managed by style
// blocks and raw style objects and cannot be set here.
func (a *Attrs) Attr(key, value string) {
	if key == dom.StyleAttr {
		tracer().Errorf("attribute %q is managed by style blocks, ignored", key)
		return
	}
	for i := range a.attrs {
		if a.attrs[i].key == key {
			a.attrs[i].value = value
			return
		}
	}
	a.attrs = append(a.attrs, attribute{key: key, value: value})
}

// ID sets attribute 'id'.
func (a *Attrs) ID(id string) {
	a.Attr("id", id)
}

// Class sets attribute 'class'. Duplicate class names are dropped.
func (a *Attrs) Class(classes ...string) {
	var names []string
	seen := make(map[string]bool)
	for _, c := range classes {
		for _, name := range strings.Fields(c) {
			if !seen[name] {
				names = append(names, name)
				seen[name] = true
			}
		}
	}
	a.Attr("class", strings.Join(names, " "))
}

// Style attaches a style block.
func (a *Attrs) Style(block inline.Block) {
	a.blocks = append(a.blocks, block)
}

// Raw attaches a raw style object.
func (a *Attrs) Raw(obj *rawstyle.Object) {
	a.raws = append(a.raws, obj)
}
