package css

// Value is any CSS value which is able to render itself as CSS text.
// DimenT, Color, Number and Keyword are Values.
type Value interface {
	String() string
}

// Number is a plain CSS number, e.g. for 'opacity' or 'z-index'.
type Number float64

func (n Number) String() string {
	return formatNumber(float64(n))
}

// Keyword is a CSS identifier value, e.g. "block" or "none".
type Keyword string

func (k Keyword) String() string {
	return string(k)
}

// Common keywords.
const (
	None        Keyword = "none"
	Block       Keyword = "block"
	Inline      Keyword = "inline"
	InlineBlock Keyword = "inline-block"
	Flex        Keyword = "flex"
	Hidden      Keyword = "hidden"
	Visible     Keyword = "visible"
)

// List renders a space separated list of values, as used by shorthand
// properties:
//
//     css.List(css.Px(1), css.Keyword("solid"), css.Red)  =>  "1px solid red"
//
type List []Value

func (l List) String() string {
	s := ""
	for i, v := range l {
		if i > 0 {
			s += " "
		}
		s += v.String()
	}
	return s
}

var _ Value = DimenT{}
var _ Value = Color{}
var _ Value = Number(0)
var _ Value = Keyword("")
var _ Value = List{}
