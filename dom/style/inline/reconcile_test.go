package inline

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylesync/dom/style"
	"github.com/npillmayer/stylesync/maybe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a CSSStyleDeclaration which counts mutations.
type recorder struct {
	text      string
	mutations int
}

func (r *recorder) CSSText() string { return r.text }
func (r *recorder) Length() int     { return MustParse(r.text).Len() }
func (r *recorder) Item(i int) string {
	return MustParse(r.text).At(i).Key
}
func (r *recorder) GetPropertyValue(name string) string {
	v, _ := MustParse(r.text).Get(name)
	return v.String()
}
func (r *recorder) SetProperty(name, value string) {
	r.mutations++
	decls := set(MustParse(r.text).Declarations(), style.KV(name, style.Property(value)))
	r.text = Serialize(decls)
}
func (r *recorder) RemoveProperty(name string) string {
	r.mutations++
	s := MustParse(r.text)
	old, _ := s.Get(name)
	r.text = Serialize(without(s.Declarations(), name))
	return old.String()
}

func TestReconcileFirstMount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesync.inline")
	defer teardown()
	//
	next := MustParse("color: red; padding: 1px;")
	patch := Diff(maybe.Nothing[Snapshot](), next, Snapshot{})
	require.Len(t, patch, 2)
	for _, op := range patch {
		assert.Equal(t, OpSet, op.Kind, "first mount must only set")
	}
	st := NewState()
	assert.False(t, st.Attached())
	el := &recorder{}
	st.Reconcile(next, el)
	assert.Equal(t, "color: red; padding: 1px;", el.text)
	assert.True(t, st.Attached())
}

func TestReconcileIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesync.inline")
	defer teardown()
	//
	for _, text := range []string{
		"opacity: 0.4; padding: 40px;",
		"color: red!important; padding: 1px;",
		"color: red !IMPORTANT; margin: 0px   auto;",
	} {
		s := MustParse(text)
		st := NewState()
		el := &recorder{}
		st.Reconcile(s, el)
		assert.Equal(t, s.String(), el.text)
		el.mutations = 0
		patch := st.Reconcile(s, el)
		assert.True(t, patch.Empty(), "%q: expected empty patch, have\n%s", text, patch)
		assert.Zero(t, el.mutations, "%q: repeated reconcile mutated", text)
		assert.True(t, Diff(maybe.Just(s), s, s).Empty())
	}
}

func TestReconcileRemovesAbsent(t *testing.T) {
	st := NewState()
	el := &recorder{}
	st.Reconcile(MustParse("color: red;"), el)
	patch := st.Reconcile(Snapshot{}, el)
	require.Len(t, patch, 1)
	assert.Equal(t, Op{Kind: OpRemove, Name: "color"}, patch[0])
	assert.Equal(t, "", el.text)
	prev, ok := st.Previous().Get()
	assert.True(t, ok && prev.IsEmpty(), "previous must be replaced even by an empty snapshot")
}

func TestReconcileUpdatesValue(t *testing.T) {
	st := NewState()
	el := &recorder{}
	st.Reconcile(MustParse("color: red;"), el)
	el.mutations = 0
	patch := st.Reconcile(MustParse("color: green;"), el)
	assert.Equal(t, "+ color: green;", patch.String())
	assert.Equal(t, 1, el.mutations)
	assert.Equal(t, "color: green;", el.text)
}

func TestReconcileToggle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesync.inline")
	defer teardown()
	//
	isRed := true
	block := func(b *Builder) {
		if isRed {
			b.Append("color", "red")
		}
	}
	st := NewState()
	el := &recorder{}
	st.Restyle(el, block)
	assert.Equal(t, "color: red;", el.text)
	for i := 0; i < 4; i++ {
		isRed = !isRed
		st.Restyle(el, block)
		if isRed {
			assert.Equal(t, "color: red;", el.text)
		} else {
			assert.Equal(t, "", el.text)
		}
	}
}

func TestReconcileReorders(t *testing.T) {
	prev := MustParse("a: 1; b: 2; c: 3;")
	next := MustParse("a: 1; c: 3; b: 2;")
	patch := Diff(maybe.Just(prev), next, prev)
	assert.Equal(t, Patch{{Kind: OpRemove, Name: "b"}, {Kind: OpSet, Name: "b", Value: "2"}}, patch)
	assert.Equal(t, next.String(), patch.Materialize(prev).String())
	//
	next = MustParse("a: 1; x: 0; b: 2; c: 3;")
	patch = Diff(maybe.Just(prev), next, prev)
	assert.Equal(t, "- b\n- c\n+ x: 0;\n+ b: 2;\n+ c: 3;", patch.String())
	assert.Equal(t, next.String(), patch.Materialize(prev).String())
}

func TestReconcileSetsOnlyChangedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesync.inline")
	defer teardown()
	//
	prev := MustParse("a: 1; b: 2; c: 3;")
	for _, c := range []struct {
		next  string
		patch string
	}{
		{"a: 9; b: 2; c: 3;", "+ a: 9;"},
		{"a: 1; b: 20; c: 3;", "+ b: 20;"},
		{"a: 9; b: 2; c: 30;", "+ a: 9;\n+ c: 30;"},
		{"a: 1; c: 3;", "- b"},
		{"a: 1; b: 2; c: 3; d: 4;", "+ d: 4;"},
	} {
		next := MustParse(c.next)
		st := NewState()
		el := &recorder{}
		st.Reconcile(prev, el)
		el.mutations = 0
		patch := st.Reconcile(next, el)
		assert.Equal(t, c.patch, patch.String(), c.next)
		assert.Equal(t, len(patch), el.mutations, c.next)
		assert.Equal(t, next.String(), el.text, c.next)
	}
}

func TestReconcileKeepsForeignProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesync.inline")
	defer teardown()
	//
	st := NewState()
	el := &recorder{}
	st.Reconcile(MustParse("opacity: 0.4;"), el)
	el.SetProperty("color", "red") // somebody else writes directly
	el.mutations = 0
	patch := st.Reconcile(MustParse("opacity: 0.4;"), el)
	assert.True(t, patch.Empty(), "expected no mutations, have %s", patch)
	assert.Equal(t, "opacity: 0.4; color: red;", el.text)
	//
	st.Reconcile(MustParse("opacity: 0.5;"), el)
	assert.Equal(t, "opacity: 0.5; color: red;", el.text)
	st.Reconcile(Snapshot{}, el)
	assert.Equal(t, "color: red;", el.text)
}

func TestReconcileDeclaredNameWins(t *testing.T) {
	st := NewState()
	el := &recorder{}
	st.Reconcile(MustParse("color: red;"), el)
	el.SetProperty("color", "blue") // direct overwrite of a declared property
	st.Reconcile(MustParse("color: red;"), el)
	assert.Equal(t, "color: red;", el.text)
	el.RemoveProperty("color") // direct removal of a declared property
	st.Reconcile(MustParse("color: red;"), el)
	assert.Equal(t, "color: red;", el.text)
	el.SetProperty("color", "blue")
	st.Reconcile(Snapshot{}, el)
	assert.Equal(t, "", el.text, "declarative removal must clear a direct write of the same name")
}

func TestReconcileIgnoreLive(t *testing.T) {
	st := NewState(IgnoreLive(), Tracing("stylesync.inline"))
	el := &recorder{}
	st.Reconcile(MustParse("color: red;"), el)
	el.SetProperty("color", "blue")
	el.mutations = 0
	patch := st.Reconcile(MustParse("color: red;"), el)
	assert.True(t, patch.Empty())
	assert.Zero(t, el.mutations)
}

// Random sequences of passes must always materialize exactly the declared
// snapshot, and re-applying it must never mutate.
func TestReconcileRandomPasses(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	names := []string{"color", "padding", "margin", "opacity", "width", "height"}
	values := []string{
		"red", "1px", "rgb(1, 2, 3)", "0.4", "auto", "40px",
		"red!important", "blue !important", "green ! important", "0px  auto",
		"rgb(1,2,3)", "  1px 2px\t", "1px\t\t2px",
	}
	st := NewState()
	el := &recorder{}
	for pass := 0; pass < 200; pass++ {
		b := NewBuilder()
		for i, n := 0, rnd.Intn(8); i < n; i++ {
			b.Append(names[rnd.Intn(len(names))], style.Property(values[rnd.Intn(len(values))]))
		}
		next := b.Build()
		st.Reconcile(next, el)
		require.Equal(t, next.String(), el.text, fmt.Sprintf("pass %d", pass))
		el.mutations = 0
		st.Reconcile(next, el)
		require.Zero(t, el.mutations, fmt.Sprintf("pass %d: repeated reconcile mutated", pass))
	}
}
