package dom

import (
	"bytes"

	"github.com/npillmayer/stylesync/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleAttr is the name of the inline style attribute.
const StyleAttr = "style"

// Element is a live DOM element.
type Element struct {
	node *html.Node
}

// NewElement creates a detached element for a tag name, e.g. "span".
func NewElement(tag string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return &Element{node: n}
}

// Wrap makes an element from an existing HTML element node. Wrapping is
// cheap; all state lives in the HTML node.
func Wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node: n}
}

// HTMLNode returns the underlying HTML node.
func (e *Element) HTMLNode() *html.Node {
	return e.node
}

// NodeType is part of interface w3cdom.Node.
func (e *Element) NodeType() html.NodeType {
	return e.node.Type
}

// NodeName is part of interface w3cdom.Node. It returns the tag name.
func (e *Element) NodeName() string {
	return e.node.Data
}

// NodeValue is part of interface w3cdom.Node. It is empty for elements.
func (e *Element) NodeValue() string {
	return ""
}

// HasAttributes is part of interface w3cdom.Node.
func (e *Element) HasAttributes() bool {
	return len(e.node.Attr) > 0
}

// HasChildNodes is part of interface w3cdom.Node.
func (e *Element) HasChildNodes() bool {
	return e.node.FirstChild != nil
}

// GetAttribute returns the value of an attribute, together with an
// indicator whether it is present.
func (e *Element) GetAttribute(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute. An existing attribute keeps its position,
// new attributes are appended.
func (e *Element) SetAttribute(key, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute removes an attribute, if present.
func (e *Element) RemoveAttribute(key string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// Style returns the inline style of the element.
func (e *Element) Style() w3cdom.CSSStyleDeclaration {
	return inlineStyle{e}
}

// AppendChild appends an element as the last child of e.
func (e *Element) AppendChild(child *Element) *Element {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
	return child
}

// AppendText appends a text node as the last child of e.
func (e *Element) AppendText(text string) {
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Remove detaches e from its parent, if any.
func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// InnerHTML renders the children of e.
func (e *Element) InnerHTML() string {
	var b bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			tracer().Errorf("cannot render node: %v", err)
		}
	}
	return b.String()
}

// OuterHTML renders e including its children.
func (e *Element) OuterHTML() string {
	var b bytes.Buffer
	if err := html.Render(&b, e.node); err != nil {
		tracer().Errorf("cannot render node: %v", err)
	}
	return b.String()
}

var _ w3cdom.Element = &Element{}
