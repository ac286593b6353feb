package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
)

// numberStep recognizes integer or decimal numbers with
// thousands separators, optional sign and fraction, and any-script digits
// (Devanagari, Arabic-Indic, ...). A trailing '.' is only swallowed when it
// is itself followed by another digit — otherwise it is a sentence
// terminator and is left for punct-split.
type numberStep struct{}

func (numberStep) Name() string        { return "number" }
func (numberStep) RestartAtZero() bool { return true }

func (numberStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return sv.HasAny(charclass.BitDigit)
}

func isSeparator(r rune) bool { return r == ',' || r == '.' || r == '\'' }

func (s numberStep) isDigit(rt *Runtime, r rune) bool {
	return rt.Tables.Vector(r).Has(charclass.BitDigit)
}

func (s numberStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	for p := i; p < j; p++ {
		start := p
		pos := p
		if rt.Clean[pos] == '+' || rt.Clean[pos] == '-' {
			if pos+1 < j && s.isDigit(rt, rt.Clean[pos+1]) {
				pos++
			} else {
				continue
			}
		}
		if pos >= j || !s.isDigit(rt, rt.Clean[pos]) {
			continue
		}
		for pos < j {
			if s.isDigit(rt, rt.Clean[pos]) {
				pos++
				continue
			}
			if isSeparator(rt.Clean[pos]) && pos+1 < j && s.isDigit(rt, rt.Clean[pos+1]) {
				pos++
				continue
			}
			break
		}
		if pos > start {
			return []TokenSpec{{Start: start, End: pos, Type: chart.Number}}, true
		}
	}
	return nil, false
}
