package inline

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/stylesync/dom/style"
)

// Parse reads the text of a style attribute into a snapshot. It is the
// inverse of Serialize:
//
//     Parse(s.String()) == s
//
// Duplicate properties are resolved like in Builder.Build. Values are kept
// as written, apart from surrounding whitespace. In particular a value
// marked '!important' keeps the marker with its original spelling.
func Parse(text string) (Snapshot, error) {
	if strings.TrimSpace(text) == "" {
		return Snapshot{}, nil
	}
	terminated := text
	if !strings.HasSuffix(strings.TrimSpace(text), ";") {
		terminated += ";"
	}
	decls, err := parser.ParseDeclarations(terminated)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot parse style attribute %q: %w", text, err)
	}
	b := Builder{decls: make([]style.KeyValue, 0, len(decls))}
	if raw := scanDeclarations(text); len(raw) == len(decls) {
		b.decls = append(b.decls, raw...)
		return b.Build(), nil
	}
	// The scanner split disagrees with the parser; use the parser's view.
	tracer().Errorf("style attribute %q: cannot keep value text verbatim", text)
	for _, d := range decls {
		value := d.Value
		if d.Important {
			value += " !important"
		}
		b.Append(d.Property, style.Property(value))
	}
	return b.Build(), nil
}

// scanDeclarations splits a declaration list at top-level semicolons, keeping
// the text of every value exactly as it appears in the input. Names and
// values are trimmed; empty declarations are skipped.
func scanDeclarations(text string) []style.KeyValue {
	var decls []style.KeyValue
	var name, value strings.Builder
	inValue := false
	flush := func() {
		n := strings.TrimSpace(name.String())
		if n != "" {
			decls = append(decls, style.KV(n, style.Property(strings.TrimSpace(value.String()))))
		}
		name.Reset()
		value.Reset()
		inValue = false
	}
	s := scanner.New(text)
	for {
		token := s.Next()
		switch {
		case token.Type == scanner.TokenEOF || token.Type == scanner.TokenError:
			flush()
			return decls
		case token.Type == scanner.TokenChar && token.Value == ";":
			flush()
		case token.Type == scanner.TokenChar && token.Value == ":" && !inValue:
			inValue = true
		case inValue:
			value.WriteString(token.Value)
		case token.Type != scanner.TokenComment:
			name.WriteString(token.Value)
		}
	}
}

// MustParse is like Parse, but panics if text cannot be parsed.
func MustParse(text string) Snapshot {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}
