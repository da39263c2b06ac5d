package dom

import (
	"github.com/npillmayer/stylesync/dom/style"
	"github.com/npillmayer/stylesync/dom/style/inline"
	"github.com/npillmayer/stylesync/dom/w3cdom"
)

// inlineStyle is the CSSStyleDeclaration of an element. It holds no state
// of its own: every call reads the current 'style' attribute and every
// mutation writes it back in canonical form.
type inlineStyle struct {
	e *Element
}

func (s inlineStyle) CSSText() string {
	text, _ := s.e.GetAttribute(StyleAttr)
	return text
}

func (s inlineStyle) Length() int {
	return s.declarations().Len()
}

func (s inlineStyle) Item(i int) string {
	decls := s.declarations()
	if i < 0 || i >= decls.Len() {
		return ""
	}
	return decls.At(i).Key
}

func (s inlineStyle) GetPropertyValue(name string) string {
	v, _ := s.declarations().Get(name)
	return v.String()
}

// SetProperty updates an existing property in place or appends a new one.
func (s inlineStyle) SetProperty(name, value string) {
	decls := s.declarations().Declarations()
	for i := range decls {
		if decls[i].Key == name {
			decls[i].Value = style.Property(value)
			s.write(decls)
			return
		}
	}
	s.write(append(decls, style.KV(name, style.Property(value))))
}

func (s inlineStyle) RemoveProperty(name string) string {
	current := s.declarations()
	old, ok := current.Get(name)
	if !ok {
		return ""
	}
	s.write(without(current.Declarations(), name))
	return old.String()
}

// declarations parses the current attribute. Unparsable attribute text is
// treated as empty and will be replaced by the next mutation.
func (s inlineStyle) declarations() inline.Snapshot {
	decls, err := inline.Parse(s.CSSText())
	if err != nil {
		tracer().Errorf("element <%s>: %v", s.e.NodeName(), err)
		return inline.Snapshot{}
	}
	return decls
}

func (s inlineStyle) write(decls []style.KeyValue) {
	if len(decls) == 0 {
		s.e.RemoveAttribute(StyleAttr)
		return
	}
	s.e.SetAttribute(StyleAttr, inline.Serialize(decls))
}

func without(decls []style.KeyValue, name string) []style.KeyValue {
	for i, kv := range decls {
		if kv.Key == name {
			return append(decls[:i], decls[i+1:]...)
		}
	}
	return decls
}

var _ w3cdom.CSSStyleDeclaration = inlineStyle{}
