package inline

import (
	"strings"

	"github.com/npillmayer/stylesync/dom/style"
	"github.com/npillmayer/stylesync/dom/w3cdom"
	"github.com/npillmayer/stylesync/maybe"
)

// OpKind is the kind of a style mutation.
type OpKind uint8

// Kinds of mutations.
const (
	OpSet    OpKind = iota + 1 // set a property, in place if present
	OpRemove                   // remove a property
)

// Op is a single mutation of an element's inline style.
type Op struct {
	Kind  OpKind
	Name  string
	Value style.Property // unused for OpRemove
}

func (op Op) String() string {
	if op.Kind == OpRemove {
		return "- " + op.Name
	}
	return "+ " + style.KV(op.Name, op.Value).String()
}

// Patch is an ordered list of mutations.
type Patch []Op

// Empty is true if the patch does not mutate anything.
func (p Patch) Empty() bool {
	return len(p) == 0
}

// String lists the operations, one per line.
func (p Patch) String() string {
	lines := make([]string, len(p))
	for i, op := range p {
		lines[i] = op.String()
	}
	return strings.Join(lines, "\n")
}

// Apply performs the mutations on a live style declaration.
func (p Patch) Apply(target w3cdom.CSSStyleDeclaration) {
	for _, op := range p {
		switch op.Kind {
		case OpSet:
			target.SetProperty(op.Name, string(op.Value))
		case OpRemove:
			target.RemoveProperty(op.Name)
		default:
			assertThat(false, "unknown patch operation %d", op.Kind)
		}
	}
}

// Materialize computes the declarations resulting from applying the patch
// to a style with declarations live, following the same rules as a live
// element: setting an existing property updates it in place, setting a new
// one appends it.
func (p Patch) Materialize(live Snapshot) Snapshot {
	decls := live.Declarations()
	for _, op := range p {
		switch op.Kind {
		case OpRemove:
			decls = without(decls, op.Name)
		case OpSet:
			decls = set(decls, style.KV(op.Name, op.Value))
		}
	}
	return newSnapshot(decls)
}

func without(decls []style.KeyValue, name string) []style.KeyValue {
	for i, kv := range decls {
		if kv.Key == name {
			return append(decls[:i], decls[i+1:]...)
		}
	}
	return decls
}

func set(decls []style.KeyValue, decl style.KeyValue) []style.KeyValue {
	for i, kv := range decls {
		if kv.Key == decl.Key {
			decls[i] = decl
			return decls
		}
	}
	return append(decls, decl)
}

// Diff computes the minimal patch to bring an element's inline style from
// its live state to the declarations of next.
//
// previous is the snapshot applied last (Nothing on first application). It
// tells which properties are owned by the declarative side: those of
// previous missing from next are removed. Properties of live which are
// neither in previous nor in next have been written by someone else and
// are left untouched.
//
// Setting an existing property updates it in place, setting a new one
// appends it; there is no way to insert. Diff therefore keeps the longest
// prefix of next whose properties already appear in live in the same
// relative order, updating changed values in place. Every later property
// of next is appended in order, and those already present are removed
// first to let them move. If live contains no foreign properties, applying
// the patch results in exactly the declarations of next, in order.
// For Diff(Just(s), s, s) the patch is empty.
func Diff(previous maybe.Maybe[Snapshot], next Snapshot, live Snapshot) Patch {
	prev := previous.WithDefault(Snapshot{})
	var patch Patch
	// (1) remove properties no longer declared
	removed := make(map[string]bool)
	for _, kv := range prev.decls {
		if !next.Has(kv.Key) && live.Has(kv.Key) {
			patch = append(patch, Op{Kind: OpRemove, Name: kv.Key})
			removed[kv.Key] = true
		}
	}
	// (2) find the longest prefix of next already in order
	lpos := make(map[string]int, live.Len())
	var l []style.KeyValue
	for _, kv := range live.decls {
		if !removed[kv.Key] {
			lpos[kv.Key] = len(l)
			l = append(l, kv)
		}
	}
	k, last := 0, -1
	for _, kv := range next.decls {
		p, ok := lpos[kv.Key]
		if !ok || p < last {
			break
		}
		last = p
		k++
	}
	// (3) update changed values of the prefix in place
	for _, kv := range next.decls[:k] {
		if l[lpos[kv.Key]].Value != kv.Value {
			patch = append(patch, Op{Kind: OpSet, Name: kv.Key, Value: kv.Value})
		}
	}
	// (4) move or add the remaining suffix, in order
	for _, kv := range next.decls[k:] {
		if _, ok := lpos[kv.Key]; ok {
			patch = append(patch, Op{Kind: OpRemove, Name: kv.Key})
		}
	}
	for _, kv := range next.decls[k:] {
		patch = append(patch, Op{Kind: OpSet, Name: kv.Key, Value: kv.Value})
	}
	return patch
}
