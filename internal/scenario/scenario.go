/*
Package scenario loads recomposition scenarios from YAML files and replays
them against a live element.

A scenario mounts one element and runs a sequence of passes on it:

    name: toggle color
    element: span
    text: hello
    passes:
      - style: "color: red;"
        expect: '<span style="color: red;">hello</span>'
      - attrs:
          id: container
        raw:
          backgroundColor: white
        expect: '<span style="background-color: white;" id="container">hello</span>'

Every pass may set plain attributes, write raw style objects and declare
style blocks. 'style' is either a single block or a list of blocks. Keys of
'attrs' and 'raw' are applied in file order; a null raw value removes the
property.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylesync/dom"
	"github.com/npillmayer/stylesync/dom/style/inline"
	"github.com/npillmayer/stylesync/dom/style/rawstyle"
	"github.com/npillmayer/stylesync/dom/styledtree"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'stylesync.scenario'.
func tracer() tracing.Trace {
	return tracing.Select("stylesync.scenario")
}

// ErrMismatch is reported by Replay when the markup after a pass differs
// from the pass's expectation.
var ErrMismatch = errors.New("unexpected markup")

// Scenario is a named sequence of recomposition passes for one element.
type Scenario struct {
	Name       string `yaml:"name"`
	Element    string `yaml:"element"`
	Text       string `yaml:"text"`
	IgnoreLive bool   `yaml:"ignoreLive"`
	Passes     []Pass `yaml:"passes"`
}

// Pass describes the attributes of one recomposition pass.
type Pass struct {
	Attrs  Attributes `yaml:"attrs"`
	Raw    RawObject  `yaml:"raw"`
	Style  Blocks     `yaml:"style"`
	Expect string     `yaml:"expect"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario from YAML. Style blocks are checked for syntax
// errors up front.
func Parse(data []byte) (*Scenario, error) {
	sc := &Scenario{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if sc.Element == "" {
		sc.Element = "div"
	}
	for i, p := range sc.Passes {
		for _, text := range p.Style {
			if _, err := inline.Parse(text); err != nil {
				return nil, fmt.Errorf("pass %d: %w", i+1, err)
			}
		}
	}
	return sc, nil
}

// Result is the outcome of one replayed pass.
type Result struct {
	Pass  int // 1-based
	Patch inline.Patch
	HTML  string
}

// Replay mounts the scenario's element under a fresh root and runs all
// passes. If step is non-nil, it is called after every pass. Replay stops at
// the first pass whose markup does not match its expectation and reports
// ErrMismatch. The root element is returned in any case.
func (sc *Scenario) Replay(step func(Result)) (*dom.Element, error) {
	root := dom.NewElement("div")
	var opts []inline.Option
	if sc.IgnoreLive {
		opts = append(opts, inline.IgnoreLive())
	}
	node := styledtree.Mount(root, sc.Element, opts...)
	if sc.Text != "" {
		node.Text(sc.Text)
	}
	tracer().Debugf("replaying scenario %q with %d passes", sc.Name, len(sc.Passes))
	for i, p := range sc.Passes {
		patch := node.Recompose(p.attrs)
		r := Result{Pass: i + 1, Patch: patch, HTML: root.InnerHTML()}
		if step != nil {
			step(r)
		}
		if p.Expect != "" && p.Expect != r.HTML {
			return root, fmt.Errorf("pass %d: %w: expected %s, is %s", r.Pass, ErrMismatch, p.Expect, r.HTML)
		}
	}
	return root, nil
}

func (p Pass) attrs(a *styledtree.Attrs) {
	for _, attr := range p.Attrs {
		a.Attr(attr.Key, attr.Value)
	}
	if p.Raw.obj != nil {
		a.Raw(p.Raw.obj)
	}
	for _, text := range p.Style {
		decls := inline.MustParse(text)
		a.Style(func(b *inline.Builder) {
			b.AppendAll(decls)
		})
	}
}

// --- YAML decoding ---------------------------------------------------------

// Attribute is a plain element attribute.
type Attribute struct {
	Key, Value string
}

// Attributes is a list of attributes, decoded from a YAML mapping in order.
type Attributes []Attribute

// UnmarshalYAML implements yaml.Unmarshaler.
func (attrs *Attributes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attrs must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
		}
		*attrs = append(*attrs, Attribute{Key: k.Value, Value: v.Value})
	}
	return nil
}

// RawObject wraps a raw style object, decoded from a YAML mapping in order.
type RawObject struct {
	obj *rawstyle.Object
}

// Object returns the decoded style object, or nil.
func (r RawObject) Object() *rawstyle.Object {
	return r.obj
}

// UnmarshalYAML implements yaml.Unmarshaler. Integer, float and boolean
// scalars keep their type; null removes a property.
func (r *RawObject) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: raw must be a mapping", value.Line)
	}
	r.obj = rawstyle.New()
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: raw value %q must be a scalar", v.Line, k.Value)
		}
		var x interface{}
		switch v.Tag {
		case "!!null":
			x = nil
		case "!!int":
			var n int
			if err := v.Decode(&n); err != nil {
				return err
			}
			x = n
		case "!!float":
			var f float64
			if err := v.Decode(&f); err != nil {
				return err
			}
			x = f
		case "!!bool":
			var b bool
			if err := v.Decode(&b); err != nil {
				return err
			}
			x = b
		default:
			x = v.Value
		}
		r.obj.Set(k.Value, x)
	}
	return nil
}

// Blocks is a list of style declaration blocks. In YAML it may be given as
// a single string or as a sequence of strings.
type Blocks []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Blocks) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*b = Blocks{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*b = list
		return nil
	}
	return fmt.Errorf("line %d: style must be a string or a list of strings", value.Line)
}
