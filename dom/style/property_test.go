package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestKeyValueString(t *testing.T) {
	kv := KV("color", "rgb(240, 15, 250)")
	if kv.String() != "color: rgb(240, 15, 250);" {
		t.Errorf("expected declaration text 'color: rgb(240, 15, 250);', is %q", kv.String())
	}
	if !kv.Equal(KeyValue{"color", "rgb(240, 15, 250)"}) {
		t.Error("expected declarations with equal key and value to be equal")
	}
	if kv.Equal(KV("Color", "rgb(240, 15, 250)")) {
		t.Error("expected keys to be case-sensitive")
	}
}

func TestGroupNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesync.dom")
	defer teardown()
	//
	cases := map[string]string{
		"margin-top": PGMargins,
		"padding":    PGPadding,
		"opacity":    PGDisplay,
		"color":      PGColor,
		"border":     PGBorder,
		"--custom":   PGX,
	}
	for key, group := range cases {
		if g := GroupNameFromPropertyKey(key); g != group {
			t.Errorf("expected %s to be in group %s, is in %s", key, group, g)
		}
	}
}

func TestGroupDeclarations(t *testing.T) {
	decls := []KeyValue{
		KV("padding-left", "1px"), KV("color", "red"), KV("padding-top", "2px"),
	}
	groups := GroupDeclarations(decls)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, have %d", len(groups))
	}
	p := groups[PGPadding]
	if len(p) != 2 || p[0].Key != "padding-left" || p[1].Key != "padding-top" {
		t.Errorf("expected padding group to keep declaration order, is %v", p)
	}
}
