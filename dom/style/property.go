package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylesync.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylesync.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Values are opaque to this module:
// they arrive fully serialized (units, color notation) and are never
// normalized, not even lower-cased.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// KeyValue is a container for a style property, i.e. a single CSS
// declaration. Keys are case-sensitive.
type KeyValue struct {
	Key   string
	Value Property
}

// KV is a shortcut to create a KeyValue.
func KV(key string, value Property) KeyValue {
	return KeyValue{Key: key, Value: value}
}

// Equal is true if both key and value are equal.
func (kv KeyValue) Equal(other KeyValue) bool {
	return kv.Key == other.Key && kv.Value == other.Value
}

// String renders a declaration as it appears in a style attribute:
//
//     color: black;
//
func (kv KeyValue) String() string {
	var b strings.Builder
	kv.Render(&b)
	return b.String()
}

// Render writes the declaration text to a string builder.
func (kv KeyValue) Render(b *strings.Builder) {
	b.WriteString(kv.Key)
	b.WriteString(": ")
	b.WriteString(string(kv.Value))
	b.WriteByte(';')
}

// --- CSS Property Groups ----------------------------------------------

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Shorthand properties belong to the group of their longhands.
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		switch {
		case strings.HasPrefix(key, "margin"):
			groupname = PGMargins
		case strings.HasPrefix(key, "padding"):
			groupname = PGPadding
		case strings.HasPrefix(key, "border"):
			groupname = PGBorder
		default:
			groupname = PGX
		}
	}
	tracer().P("key", key).Debugf("property group is %s", groupname)
	return groupname
}

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGRegion    = "Region"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

// AllGroups lists every property group name in presentation order.
var AllGroups = []string{
	PGDisplay, PGDimension, PGMargins, PGPadding, PGBorder,
	PGColor, PGText, PGRegion, PGX,
}

var groupNameFromPropertyKey = map[string]string{
	"width":            PGDimension, // Dimension
	"height":           PGDimension,
	"min-width":        PGDimension,
	"min-height":       PGDimension,
	"max-width":        PGDimension,
	"max-height":       PGDimension,
	"display":          PGDisplay, // Display
	"float":            PGDisplay,
	"visibility":       PGDisplay,
	"position":         PGDisplay,
	"opacity":          PGDisplay,
	"top":              PGDisplay,
	"right":            PGDisplay,
	"bottom":           PGDisplay,
	"left":             PGDisplay,
	"flow-into":        PGRegion,
	"flow-from":        PGRegion,
	"color":            PGColor,
	"background-color": PGColor,
	"direction":        PGText,
	"white-space":      PGText,
	"word-spacing":     PGText,
	"letter-spacing":   PGText,
	"word-break":       PGText,
	"word-wrap":        PGText,
	"font-size":        PGText,
	"font-weight":      PGText,
	"font-family":      PGText,
	"line-height":      PGText,
	"text-align":       PGText,
}

// GroupDeclarations splits a list of declarations into property groups,
// keeping the order of declarations within each group.
func GroupDeclarations(decls []KeyValue) map[string][]KeyValue {
	groups := make(map[string][]KeyValue)
	for _, kv := range decls {
		g := GroupNameFromPropertyKey(kv.Key)
		groups[g] = append(groups[g], kv)
	}
	return groups
}
