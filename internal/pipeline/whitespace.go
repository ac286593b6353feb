package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
)

// whitespaceStep is the final fallthrough: split the
// remaining span on any Unicode whitespace. Like punctSplitStep, and unlike
// the other steps, it consumes its whole span in one call rather than
// finding a single leftmost match — as the last entry in the step list there is no "next
// step" residue to hand whitespace gaps off to, so it marks them deleted
// directly instead of tokenizing them. A zero-width non-joiner is not a
// space character, so a word containing one is never split by this step —
// words glued together with one stay together automatically.
type whitespaceStep struct{}

func (whitespaceStep) Name() string        { return "whitespace" }
func (whitespaceStep) RestartAtZero() bool { return false }

func (whitespaceStep) Guard(rt *Runtime, sv charclass.BitVector) bool { return true }

func isSpaceRune(rt *Runtime, r rune) bool { return rt.Tables.Vector(r).Has(charclass.BitSpace) }

func (whitespaceStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	var specs []TokenSpec
	p := i
	for p < j {
		if isSpaceRune(rt, rt.Clean[p]) {
			rt.Chart.MarkDeleted(rt.CleanToOrig[p])
			p++
			continue
		}
		start := p
		for p < j && !isSpaceRune(rt, rt.Clean[p]) {
			p++
		}
		// WORD-B begins a run (preceded by whitespace or start of line);
		// WORD-I is a continuation piece glued directly to whatever token
		// ended right before it with no intervening space (e.g. the
		// residue left after an earlier step split off a leading
		// punctuation mark or markup event).
		typ := chart.WordB
		if start > 0 && !isSpaceRune(rt, rt.Clean[start-1]) {
			typ = chart.WordI
		}
		specs = append(specs, TokenSpec{Start: start, End: p, Type: typ})
	}
	if len(specs) == 0 {
		// Pure whitespace span: every position was already marked
		// deleted above, so there is nothing left to cover.
		return nil, true
	}
	return specs, true
}
