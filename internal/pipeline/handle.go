package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
)

// handleHashtagStep recognizes "@<identifier>" as a HANDLE and
// "#<identifier>" as a HASHTAG, where identifier is letters/digits/
// underscore (or all-digits for something like "#2").
type handleHashtagStep struct{}

func (handleHashtagStep) Name() string        { return "handle-hashtag" }
func (handleHashtagStep) RestartAtZero() bool { return true }

func (handleHashtagStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return sv.HasAny(charclass.BitAtSign | charclass.BitHashMarker)
}

func isIdentRune(rt *Runtime, r rune) bool {
	if r == '_' {
		return true
	}
	bv := rt.Tables.Vector(r)
	return bv.Has(charclass.BitLetter) || bv.Has(charclass.BitDigit)
}

func (handleHashtagStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	for p := i; p < j; p++ {
		c := rt.Clean[p]
		if c != '@' && c != '#' {
			continue
		}
		end := p + 1
		for end < j && isIdentRune(rt, rt.Clean[end]) {
			end++
		}
		if end == p+1 {
			continue // bare '@'/'#' with nothing following
		}
		typ := chart.Handle
		if c == '#' {
			typ = chart.Hashtag
		}
		return []TokenSpec{{Start: p, End: end, Type: typ}}, true
	}
	return nil, false
}
