package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

// lexicalStep preserves lexical multi-word and
// hyphenated expressions ("T-shirt", "father-in-law", "Port-au-Prince",
// "Xi'an", "'s-Gravenhage") as single tokens, looked up exactly (case-fold
// unless the entry says otherwise) against the lexical table.
type lexicalStep struct{}

func (lexicalStep) Name() string         { return "lexical" }
func (lexicalStep) RestartAtZero() bool  { return true }

func (lexicalStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return rt.Store.MaxKeyLen(resource.KindLexical) > 0 && sv.HasAny(charclass.BitLetter)
}

func (lexicalStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	p, end, e, ok := scanExact(rt, resource.KindLexical, i, j)
	if !ok {
		return nil, false
	}
	surface := e.Target
	if surface == "" {
		surface = rt.CleanSlice(p, end)
	}
	return []TokenSpec{{Start: p, End: end, Type: chart.Lexical, Surface: surface, SemClass: e.SemClass}}, true
}
