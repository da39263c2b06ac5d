package inline

import (
	"strings"

	"github.com/npillmayer/stylesync/dom/style"
)

// Snapshot is an immutable, ordered sequence of declarations in which
// every property occurs at most once. Snapshots are created by
// Builder.Build and by Parse.
//
// The zero value is the empty snapshot.
type Snapshot struct {
	decls []style.KeyValue
	index map[string]int // property name → position in decls
}

// newSnapshot takes ownership of decls, which must be free of duplicates.
func newSnapshot(decls []style.KeyValue) Snapshot {
	if len(decls) == 0 {
		return Snapshot{}
	}
	index := make(map[string]int, len(decls))
	for i, kv := range decls {
		_, dup := index[kv.Key]
		assertThat(!dup, "duplicate property %q in snapshot", kv.Key)
		index[kv.Key] = i
	}
	return Snapshot{decls: decls, index: index}
}

// Len returns the number of declarations.
func (s Snapshot) Len() int {
	return len(s.decls)
}

// IsEmpty is true for a snapshot without declarations.
func (s Snapshot) IsEmpty() bool {
	return len(s.decls) == 0
}

// At returns the declaration at position i.
func (s Snapshot) At(i int) style.KeyValue {
	assertThat(i >= 0 && i < len(s.decls), "snapshot index out of bounds: %d with length %d", i, len(s.decls))
	return s.decls[i]
}

// Get returns the value of a property, together with an indicator whether
// it is declared.
func (s Snapshot) Get(name string) (style.Property, bool) {
	i, ok := s.index[name]
	if !ok {
		return style.NullStyle, false
	}
	return s.decls[i].Value, true
}

// Has is a predicate whether a property is declared.
func (s Snapshot) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Position returns the position of a property or -1.
func (s Snapshot) Position(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Names returns the property names in order.
func (s Snapshot) Names() []string {
	names := make([]string, len(s.decls))
	for i, kv := range s.decls {
		names[i] = kv.Key
	}
	return names
}

// Declarations returns a copy of the declarations, in order.
func (s Snapshot) Declarations() []style.KeyValue {
	r := make([]style.KeyValue, len(s.decls))
	copy(r, s.decls)
	return r
}

// Equal is true if both snapshots contain equal declarations in the same
// order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.decls) != len(other.decls) {
		return false
	}
	for i, kv := range s.decls {
		if !kv.Equal(other.decls[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical serialization, see Serialize.
func (s Snapshot) String() string {
	return Serialize(s.decls)
}

// Serialize renders declarations in canonical form:
//
//     color: green; padding: 1px;
//
// Every declaration is terminated by a semicolon, declarations are separated
// by a single space. No declarations serialize to the empty string.
func Serialize(decls []style.KeyValue) string {
	var b strings.Builder
	for i, kv := range decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		kv.Render(&b)
	}
	return b.String()
}

var _ Declarations = Snapshot{}
