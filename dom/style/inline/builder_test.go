package inline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylesync/css"
	"github.com/npillmayer/stylesync/dom/style"
)

func TestBuilderLastWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesync.inline")
	defer teardown()
	//
	b := NewBuilder()
	b.Append("color", "red")
	b.Append("color", "green")
	b.Append("padding", "1px")
	s := b.Build()
	if s.Len() != 2 {
		t.Fatalf("expected snapshot of 2 declarations, has %d: %v", s.Len(), s.Declarations())
	}
	if s.At(0) != style.KV("color", "green") || s.At(1) != style.KV("padding", "1px") {
		t.Errorf("expected [color=green padding=1px], is %v", s.Declarations())
	}
	if s.String() != "color: green; padding: 1px;" {
		t.Errorf("expected 'color: green; padding: 1px;', is %q", s.String())
	}
}

func TestBuilderRepositionsOnRewrite(t *testing.T) {
	b := NewBuilder()
	b.Append("color", "red")
	b.Append("padding", "1px")
	b.Append("color", "red")
	s := b.Build()
	if s.String() != "padding: 1px; color: red;" {
		t.Errorf("expected rewrite to move color to the end, is %q", s.String())
	}
	if s.Position("color") != 1 || s.Position("margin") != -1 {
		t.Errorf("unexpected positions %d/%d", s.Position("color"), s.Position("margin"))
	}
}

func TestBuilderDoesNotModifyInput(t *testing.T) {
	b := NewBuilder()
	b.Append("a", "1")
	b.Append("b", "2")
	b.Append("a", "3")
	s1 := b.Build()
	if b.Len() != 3 {
		t.Errorf("expected builder to keep all 3 appends, has %d", b.Len())
	}
	b.Append("c", "4")
	s2 := b.Build()
	if s1.String() != "b: 2; a: 3;" {
		t.Errorf("expected first snapshot to be unaffected by later appends, is %q", s1.String())
	}
	if s2.String() != "b: 2; a: 3; c: 4;" {
		t.Errorf("expected second snapshot 'b: 2; a: 3; c: 4;', is %q", s2.String())
	}
	decls := s2.Declarations()
	decls[0].Value = "changed"
	if v, _ := s2.Get("b"); v != "2" {
		t.Errorf("expected snapshot to be immutable, b is %q", v)
	}
}

func TestSequentialBuildersAccumulate(t *testing.T) {
	first := NewBuilder()
	first.Opacity(40.0 / 100)
	second := NewBuilder()
	second.Padding(css.Px(40))
	chained := NewBuilder()
	chained.AppendAll(first)
	chained.AppendAll(second)
	//
	single := NewBuilder()
	single.Append("opacity", "0.4")
	single.Append("padding", "40px")
	//
	if !chained.Build().Equal(single.Build()) {
		t.Errorf("expected chained builders to equal a single builder, %q != %q",
			chained.Build(), single.Build())
	}
	if chained.Build().String() != "opacity: 0.4; padding: 40px;" {
		t.Errorf("expected 'opacity: 0.4; padding: 40px;', is %q", chained.Build())
	}
}

func TestAppendAllFromSnapshot(t *testing.T) {
	base := MustParse("color: red; margin: 0px;")
	b := NewBuilder()
	b.Append("color", "blue")
	b.AppendAll(base)
	b.AppendAll(nil)
	if s := b.Build().String(); s != "color: red; margin: 0px;" {
		t.Errorf("expected snapshot declarations to override builder, is %q", s)
	}
}

func TestConditionalBlocks(t *testing.T) {
	for _, isRed := range []bool{true, false} {
		block := func(b *Builder) {
			if isRed {
				b.Color(css.Red)
			} else {
				b.Color(css.Green)
			}
		}
		s := NewBuilder().Run(block, nil).Build()
		want := "color: green;"
		if isRed {
			want = "color: red;"
		}
		if s.String() != want {
			t.Errorf("expected %q, is %q", want, s.String())
		}
	}
}

func TestTypedSetters(t *testing.T) {
	s := NewBuilder().Run(func(b *Builder) {
		b.Height(css.Auto())
		b.Width(css.Percent(50))
		b.BackgroundColor(css.MustHex("#F00FFA"))
		b.Border(css.Px(1), css.Keyword("solid"), css.Black)
		b.Margin(css.Px(0), css.Auto())
		b.Display(css.Flex)
		b.Variable("gap", css.Rem(1))
	}).Build()
	want := "height: auto; width: 50%; background-color: rgb(240, 15, 250); " +
		"border: 1px solid black; margin: 0px auto; display: flex; --gap: 1rem;"
	if s.String() != want {
		t.Errorf("expected\n%q, is\n%q", want, s.String())
	}
}

func TestEmptySnapshot(t *testing.T) {
	var s Snapshot
	if s.String() != "" || !s.IsEmpty() || s.Has("color") {
		t.Errorf("expected zero snapshot to be empty, is %q", s.String())
	}
	if !NewBuilder().Build().Equal(s) {
		t.Error("expected empty build to equal the zero snapshot")
	}
}
