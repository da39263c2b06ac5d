package inline

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylesync/dom/w3cdom"
	"github.com/npillmayer/stylesync/maybe"
)

// State is the live style state of one element: the snapshot applied last,
// if any. A State is created when an element first receives style blocks
// and dropped when the element is unmounted. It must never be shared
// between elements and is not safe for concurrent use; hosts serialize
// recomposition passes per element.
type State struct {
	props
	previous maybe.Maybe[Snapshot]
}

type props struct {
	ignoreLive bool
	traceKey   string
}

// Option is a type to help initializing states at creation time.
type Option struct {
	config func(props) props
}

// IgnoreLive is an option to diff against the snapshot applied last instead
// of reading the element's live style attribute. Use it only for elements
// whose style attribute is written by nobody else.
func IgnoreLive() Option {
	return Option{config: func(p props) props {
		p.ignoreLive = true
		return p
	}}
}

// Tracing is an option to trace reconciliation to a given key instead of
// 'stylesync.inline'.
func Tracing(key string) Option {
	return Option{config: func(p props) props {
		p.traceKey = key
		return p
	}}
}

// NewState creates the style state for an element which has not been
// styled yet.
func NewState(opts ...Option) *State {
	st := &State{previous: maybe.Nothing[Snapshot]()}
	for _, option := range opts {
		st.props = option.config(st.props)
	}
	return st
}

func (st *State) tracer() tracing.Trace {
	if st.traceKey != "" {
		return tracing.Select(st.traceKey)
	}
	return tracer()
}

// Attached is true once a snapshot has been applied.
func (st *State) Attached() bool {
	return !st.previous.IsNothing()
}

// Previous returns the snapshot applied last.
func (st *State) Previous() maybe.Maybe[Snapshot] {
	return st.previous
}

// Restyle evaluates style blocks into a fresh builder and reconciles the
// result with target. It is a convenience for one recomposition pass.
func (st *State) Restyle(target w3cdom.CSSStyleDeclaration, blocks ...Block) Patch {
	next := NewBuilder().Run(blocks...).Build()
	return st.Reconcile(next, target)
}

// Reconcile brings target in sync with next. The full patch is computed
// before target is touched. next becomes the previous snapshot for the
// following pass, whether or not anything had to be mutated.
func (st *State) Reconcile(next Snapshot, target w3cdom.CSSStyleDeclaration) Patch {
	live := st.live(target)
	patch := Diff(st.previous, next, live)
	if patch.Empty() {
		st.tracer().Debugf("inline style up to date: %q", next.String())
	} else {
		st.tracer().Debugf("inline style patch for %q:\n%s", next.String(), patch.String())
		patch.Apply(target)
		if want := patch.Materialize(live).String(); target.CSSText() != want {
			st.tracer().Errorf("inline style drift: have %q, expected %q", target.CSSText(), want)
		}
	}
	st.previous = maybe.Just(next)
	return patch
}

// live reads the declarations currently materialized on target.
func (st *State) live(target w3cdom.CSSStyleDeclaration) Snapshot {
	prev := st.previous.WithDefault(Snapshot{})
	if st.ignoreLive {
		return prev
	}
	live, err := Parse(target.CSSText())
	if err != nil {
		st.tracer().Errorf("%v; falling back to previous snapshot", err)
		return prev
	}
	return live
}
