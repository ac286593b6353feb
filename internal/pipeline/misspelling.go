package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

// misspellingStep optionally rewrites to the target
// form, only active when the entry's lcode matches the tokenizer's
// configured language (Store.Lookup's scope precedence already enforces
// that — an lcode-scoped entry simply never shows up in a differently
// scoped store's lookup).
type misspellingStep struct{}

func (misspellingStep) Name() string        { return "misspelling" }
func (misspellingStep) RestartAtZero() bool { return true }

func (misspellingStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return rt.Store.MaxKeyLen(resource.KindMisspelling) > 0 && sv.HasAny(charclass.BitLetter)
}

func (misspellingStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	p, end, e, ok := scanExact(rt, resource.KindMisspelling, i, j)
	if !ok {
		return nil, false
	}
	surface := e.Target
	if surface == "" {
		surface = rt.CleanSlice(p, end)
	}
	return []TokenSpec{{Start: p, End: end, Type: chart.WordB, Surface: surface, SemClass: e.SemClass}}, true
}
