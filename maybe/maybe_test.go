package maybe_test

import (
	"testing"

	. "github.com/npillmayer/stylesync/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeGet(t *testing.T) {
	type slicey struct{ s []string } // not comparable, cannot be matched
	x := Just(slicey{s: []string{"a"}})
	if v, ok := x.Get(); !ok || len(v.s) != 1 {
		t.Errorf("expected Get on Just to return value, is %v/%v", v, ok)
	}
	if !Nothing[slicey]().IsNothing() {
		t.Error("expected Nothing to be nothing")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", xx)
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}
