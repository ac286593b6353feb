package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

// punctSplitStep splits off, for each punctuation character
// in the punct-split table, split it off at the side(s) the entry's "side"
// slot names, keeping a "group" run of the same character together
// ("!!!", "???"). The emitted type records which side the punctuation was
// actually attached to in the original text, independent of which side(s)
// the rule was willing to split: PUNCT-E when glued to the token before it
// (closing punctuation), PUNCT-B when glued to the token after it (opening
// punctuation), PUNCT-S when isolated on both sides, PUNCT when glued on
// both sides at once (e.g. a mid-word hyphen).
type punctSplitStep struct{}

func (punctSplitStep) Name() string        { return "punct-split" }
func (punctSplitStep) RestartAtZero() bool { return false }

func (punctSplitStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return sv.HasAny(charclass.BitPunct | charclass.BitHyphenLike | charclass.BitQuoteLike | charclass.BitCurrency)
}

func (punctSplitStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	entries := rt.Store.ContextEntries(resource.KindPunctSplit)
	if len(entries) == 0 {
		return nil, false
	}

	// Residues of this step resume at the next step, so every qualifying
	// mark in [i,j) is split off in this one call.
	var specs []TokenSpec
	for p := i; p < j; p++ {
		c := rt.Clean[p]
		for _, e := range entries {
			keyRunes := []rune(e.Key)
			if len(keyRunes) != 1 || keyRunes[0] != c {
				continue
			}

			runEnd := p + 1
			if e.Group {
				for runEnd < j && rt.Clean[runEnd] == c {
					runEnd++
				}
			}

			leftAdj := p > 0 && !isSpaceRune(rt, rt.Clean[p-1])
			rightAdj := runEnd < len(rt.Clean) && !isSpaceRune(rt, rt.Clean[runEnd])

			switch e.Side {
			case "start":
				if !rightAdj {
					continue
				}
			case "end":
				if !leftAdj {
					continue
				}
			}

			if e.LeftContext != nil && !e.LeftContext.MatchString(rt.ContextBefore(p)) {
				continue
			}
			if e.RightContext != nil && !e.RightContext.MatchString(rt.ContextAfter(runEnd)) {
				continue
			}

			specs = append(specs, TokenSpec{Start: p, End: runEnd, Type: classifyPunctAdjacency(leftAdj, rightAdj), SemClass: e.SemClass})
			p = runEnd - 1
			break
		}
	}
	if len(specs) == 0 {
		return nil, false
	}
	return specs, true
}

func classifyPunctAdjacency(leftAdj, rightAdj bool) chart.Type {
	switch {
	case leftAdj && rightAdj:
		return chart.Punct
	case leftAdj:
		return chart.PunctE
	case rightAdj:
		return chart.PunctB
	default:
		return chart.PunctS
	}
}
