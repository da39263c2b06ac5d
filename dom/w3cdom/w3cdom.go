/*
Package w3cdom defines interface types for the parts of a W3C Document
Object Model the inline styling engine talks to.

See also https://www.w3schools.com/XML/dom_intro.asp and
https://developer.mozilla.org/en-US/docs/Web/API/CSSStyleDeclaration

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"golang.org/x/net/html"
)

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType // type of the underlying HTML node (ElementNode, TextNode, etc.)
	NodeName() string        // node name output depends on the node's type
	NodeValue() string       // node value output depends on the node's type
	HasAttributes() bool     // check for existence of attributes
	HasChildNodes() bool     // check for existende of sub-nodes
}

// Element represents a W3C-type Element with an inline style.
type Element interface {
	Node
	GetAttribute(string) (string, bool) // get an attribute's value
	SetAttribute(string, string)        // set an attribute's value
	RemoveAttribute(string)             // remove an attribute
	Style() CSSStyleDeclaration         // the element's inline style
}

// CSSStyleDeclaration represents the inline style of an element, i.e. the
// declarations of its 'style' attribute.
//
// Implementations must always operate on the element's current attribute
// text, as other parties may write it directly. As in the W3C CSSOM,
// SetProperty updates an existing declaration in place and appends a new
// one at the end. Removing the last property removes the 'style' attribute
// altogether.
type CSSStyleDeclaration interface {
	CSSText() string                         // serialized declarations, "" if no style attribute
	Length() int                             // number of declarations
	Item(int) string                         // property name at position i
	GetPropertyValue(string) string          // value of a property, "" if not set
	SetProperty(name string, value string)   // set or replace a property
	RemoveProperty(name string) (old string) // remove a property, returning its old value
}
