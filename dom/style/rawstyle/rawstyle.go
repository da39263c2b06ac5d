/*
Package rawstyle writes style objects built elsewhere directly into an
element's inline style, bypassing the declarative builder.

A style object resembles a JavaScript object literal:

    obj := rawstyle.New().
        Set("color", css.MustHex("#F00FFA")).
        Set("backgroundColor", "white")

Keys may be given in camelCase or as CSS property names. Values are
formatted by this package: colors (any color.Color) in rgb()/rgba()
notation, numbers without trailing zeros, fmt.Stringers by their String
method, strings verbatim. A nil value removes the property.

Properties written by Apply are unknown to the declarative engine in
package inline and survive its reconciliation passes, unless a style block
declares a property of the same name.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rawstyle

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylesync/css"
	"github.com/npillmayer/stylesync/dom/w3cdom"
)

// tracer traces with key 'stylesync.raw'.
func tracer() tracing.Trace {
	return tracing.Select("stylesync.raw")
}

// Object is an insertion-ordered style object.
type Object struct {
	keys   []string
	values map[string]interface{}
}

// New creates an empty style object.
func New() *Object {
	return &Object{values: make(map[string]interface{})}
}

// FromMap creates a style object from a map. As maps are unordered, keys
// are sorted.
func FromMap(m map[string]interface{}) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := New()
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// Set sets a key. Re-setting a key keeps its position.
func (o *Object) Set(key string, value interface{}) *Object {
	if o.values == nil {
		o.values = make(map[string]interface{})
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value for a key.
func (o *Object) Get(key string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Apply writes all properties of o into target, in order.
func Apply(target w3cdom.CSSStyleDeclaration, o *Object) {
	for _, key := range o.Keys() {
		name := PropertyName(key)
		value, ok := FormatValue(o.values[key])
		if !ok {
			tracer().Debugf("raw style: remove %s", name)
			target.RemoveProperty(name)
			continue
		}
		tracer().Debugf("raw style: %s = %s", name, value)
		target.SetProperty(name, value)
	}
}

// Format renders o as style attribute text. Removals are skipped.
func Format(o *Object) string {
	var parts []string
	for _, key := range o.Keys() {
		if value, ok := FormatValue(o.values[key]); ok {
			parts = append(parts, PropertyName(key)+": "+value+";")
		}
	}
	return strings.Join(parts, " ")
}

// PropertyName maps an object key to a CSS property name:
//
//     backgroundColor  =>  background-color
//     WebkitTransform  =>  -webkit-transform
//     cssFloat         =>  float
//
// Keys containing a dash (including custom properties) are kept as they are.
func PropertyName(key string) string {
	if key == "cssFloat" {
		return "float"
	}
	if strings.ContainsRune(key, '-') {
		return key
	}
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 || isVendorPrefix(key) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isVendorPrefix(key string) bool {
	for _, p := range []string{"Webkit", "Moz", "Ms", "O"} {
		if strings.HasPrefix(key, p) && len(key) > len(p) && unicode.IsUpper(rune(key[len(p)])) {
			return true
		}
	}
	return false
}

// FormatValue renders a value of a style object. It returns false for nil,
// which denotes removal.
func FormatValue(v interface{}) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case color.Color:
		return css.FromColor(x).String(), true
	case fmt.Stringer:
		return x.String(), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case float64:
		return css.Number(x).String(), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case bool:
		return strconv.FormatBool(x), true
	}
	return fmt.Sprint(v), true
}
