package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cottand/wcka/ckaerr"
	"github.com/cottand/wcka/term"
)

var (
	a = term.Prim("a")
	b = term.Prim("b")
	c = term.Prim("c")
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  term.Term
	}{
		{"0", term.Zero},
		{"1", term.Skip},
		{"a", a},
		{"fetch", term.Prim("fetch")},
		{"a*", term.NewStar(a)},
		{"a**", term.NewStar(a)},
		{"a b", term.NewSeq(a, b)},
		{"a b c", term.NewSeq(a, b, c)},
		{"a + b", term.NewChoice(a, b)},
		{"a || b", term.NewParallel(a, b)},
		{"a ‖ b", term.NewParallel(a, b)},
		{"a b + c", term.NewChoice(term.NewSeq(a, b), c)},
		{"a (b + c)", term.NewSeq(a, term.NewChoice(b, c))},
		{"(a + b)*", term.NewStar(term.NewChoice(a, b))},
		{"a* b", term.NewSeq(term.NewStar(a), b)},
		{"a || b + c", term.NewChoice(term.NewParallel(a, b), c)},
		{"a || b c", term.NewParallel(a, term.NewSeq(b, c))},
		{"(a || b) c", term.NewSeq(term.NewParallel(a, b), c)},
		{"a || b*", term.NewParallel(a, term.NewStar(b))},
		{"  a  +  b  ", term.NewChoice(a, b)},
		{"a 1", a},
		{"a + 0", a},
	} {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoundTripsRendering(t *testing.T) {
	for _, tt := range []term.Term{
		term.NewChoice(term.NewSeq(a, b), term.NewParallel(a, c)),
		term.NewStar(term.NewChoice(a, term.NewSeq(b, c))),
		term.NewSeq(term.NewStar(b), term.NewChoice(a, term.NewParallel(a, b))),
	} {
		got, err := Parse(tt.String())
		assert.NoError(t, err)
		assert.Equal(t, tt, got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"a +",
		"(a",
		"a)",
		"*",
		"+ a",
		"a & b",
		"a ||",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
			assert.Equal(t, ckaerr.Parse, ckaerr.CodeOf(err))
		})
	}
}
