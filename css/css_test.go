package css_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/stylesync/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percent(80)
	var p float64
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percent(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if m := css.Em(2).Match(); m.IsKind(css.Rem(1)) == nil || m.IsKind(css.Percent(1)) != nil {
		t.Error("expected em and rem to be of the same kind, but not percentages")
	}
}

func TestDimenString(t *testing.T) {
	cases := []struct {
		d    css.DimenT
		text string
	}{
		{css.Px(40), "40px"},
		{css.Px(0.5), "0.5px"},
		{css.Auto(), "auto"},
		{css.Inherit(), "inherit"},
		{css.Initial(), "initial"},
		{css.JustDimen(dimen.PT * 10), "10pt"},
		{css.Em(1.25), "1.25em"},
		{css.Rem(2), "2rem"},
		{css.VW(100), "100vw"},
		{css.VH(50), "50vh"},
		{css.Percent(33.5), "33.5%"},
		{css.DimenT{}, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.text, c.d.String())
	}
}

func TestColors(t *testing.T) {
	assert.Equal(t, "red", css.Red.String())
	assert.Equal(t, "rgb(240, 15, 250)", css.MustHex("#F00FFA").String())
	assert.Equal(t, "rgb(255, 255, 255)", css.MustHex("#fff").String())
	assert.Equal(t, "rgba(1, 2, 3, 0.5)", css.RGBA(1, 2, 3, 0.5).String())
	assert.Equal(t, "currentcolor", css.Named("currentcolor").String())

	c, ok := css.ColorByName("RebeccaPurple")
	require.True(t, ok)
	assert.Equal(t, "rebeccapurple", c.String())
	r, g, b, _ := c.RGBA()
	assert.Equal(t, []uint32{0x66, 0x33, 0x99}, []uint32{r >> 8, g >> 8, b >> 8})

	_, err := css.Hex("#12")
	assert.Error(t, err)
	_, err = css.Hex("#zzzzzz")
	assert.Error(t, err)

	fc := css.FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 0xff})
	assert.Equal(t, "rgb(10, 20, 30)", fc.String())
}

func TestValues(t *testing.T) {
	assert.Equal(t, "0.4", css.Number(40.0/100).String())
	assert.Equal(t, "1px solid red", css.List{css.Px(1), css.Keyword("solid"), css.Red}.String())
	assert.Equal(t, "block", css.Block.String())
}
