package inline

import (
	"strings"

	"github.com/npillmayer/stylesync/dom/style"
)

// Block is a style block. It is evaluated once per recomposition pass and
// appends zero or more declarations to a builder.
type Block func(*Builder)

// Declarations is a source of ordered declarations. Both *Builder and
// Snapshot are sources.
type Declarations interface {
	Declarations() []style.KeyValue
}

// Builder collects declarations in the order they are appended. A builder
// is used for one evaluation pass and then finalized with Build.
//
// The zero value is an empty builder ready to use.
type Builder struct {
	decls []style.KeyValue
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append records a declaration. Names and values are accepted verbatim,
// except for surrounding whitespace, which is not part of CSS value text and
// is dropped, keeping snapshots in canonical form.
//
// Values are opaque. A value containing a ';' (e.g. "red; x: y") is not
// rejected, but serializes to more than one declaration and will be read
// back differently from the live attribute. Build traces such values.
func (b *Builder) Append(name string, value style.Property) {
	b.decls = append(b.decls, style.KeyValue{
		Key:   strings.TrimSpace(name),
		Value: style.Property(strings.TrimSpace(string(value))),
	})
}

// AppendAll merges all declarations of another builder or a snapshot, in
// order. The source is not modified.
func (b *Builder) AppendAll(src Declarations) {
	if src == nil {
		return
	}
	b.decls = append(b.decls, src.Declarations()...)
}

// Run evaluates style blocks against this builder, in order. nil blocks
// are skipped.
func (b *Builder) Run(blocks ...Block) *Builder {
	for _, block := range blocks {
		if block != nil {
			block(b)
		}
	}
	return b
}

// Len returns the number of declarations appended so far, duplicates
// included.
func (b *Builder) Len() int {
	return len(b.decls)
}

// Declarations returns a copy of the declarations appended so far, in
// order and with duplicates.
func (b *Builder) Declarations() []style.KeyValue {
	r := make([]style.KeyValue, len(b.decls))
	copy(r, b.decls)
	return r
}

// Reset discards all declarations.
func (b *Builder) Reset() {
	b.decls = b.decls[:0]
}

// Build finalizes the declarations into a snapshot. If a property has been
// appended more than once, the last write wins, both for its value and for
// its position. The builder is left untouched and may be used further.
func (b *Builder) Build() Snapshot {
	return build(b.decls)
}

// build de-duplicates decls into a new snapshot, without modifying decls.
func build(decls []style.KeyValue) Snapshot {
	last := make(map[string]int, len(decls))
	for i, kv := range decls {
		last[kv.Key] = i
	}
	r := make([]style.KeyValue, 0, len(last))
	for i, kv := range decls {
		if last[kv.Key] == i {
			if strings.ContainsRune(string(kv.Value), ';') {
				tracer().Errorf("value of %q contains ';' and will not survive serialization: %q", kv.Key, kv.Value)
			}
			r = append(r, kv)
		}
	}
	return newSnapshot(r)
}

var _ Declarations = &Builder{}
