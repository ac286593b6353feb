package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
)

// emojiStep collapses a maximal run of emoji/symbol runes — including
// joined sequences glued together with a zero-width joiner, like a
// family emoji built from four base characters — into one EMOJI-SEQ
// token rather than leaving each codepoint to fall through to
// whitespaceStep as its own word.
type emojiStep struct{}

func (emojiStep) Name() string        { return "emoji" }
func (emojiStep) RestartAtZero() bool { return false }

func (emojiStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return sv.HasAny(charclass.BitEmojiOrSymbol)
}

func isEmojiRunRune(rt *Runtime, r rune) bool {
	bv := rt.Tables.Vector(r)
	return bv.Has(charclass.BitEmojiOrSymbol) || bv.Has(charclass.BitZeroWidthJoiner)
}

func (emojiStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	for p := i; p < j; p++ {
		if !rt.Tables.Vector(rt.Clean[p]).Has(charclass.BitEmojiOrSymbol) {
			continue
		}
		end := p + 1
		for end < j && isEmojiRunRune(rt, rt.Clean[end]) {
			end++
		}
		// A trailing joiner with nothing joined to it belongs to no
		// sequence; trim it back off the run.
		for end > p+1 && rt.Tables.Vector(rt.Clean[end-1]).Has(charclass.BitZeroWidthJoiner) {
			end--
		}
		return []TokenSpec{{Start: p, End: end, Type: chart.EmojiSeq}}, true
	}
	return nil, false
}
