package chart

import (
	"fmt"
	"sort"
)

// Chart is the per-line structure that accumulates tokens as the pipeline
// finds them. A Chart is created per input line, populated during
// tokenization, consumed by the emitter, then discarded — it carries no
// state that would make it unsafe to hand one per goroutine.
type Chart struct {
	// Line is the original input line, as runes, before normalization.
	Line []rune

	tokens []Token

	// Deleted records original-offset positions normalize() stripped
	// outright (deletable control characters, surrogate halves) so the
	// coverage invariant can still be checked against the *original* line.
	Deleted map[int]bool
}

// New creates an empty chart over line.
func New(line string) *Chart {
	return &Chart{Line: []rune(line), Deleted: map[int]bool{}}
}

// InsertToken adds a token to the chart. Tokens may be inserted out of
// offset order (a step recurses left and right around the token it found);
// Finalize sorts them back into strictly increasing start order.
func (c *Chart) InsertToken(t Token) {
	c.tokens = append(c.tokens, t)
}

// MarkDeleted records that the normalize step stripped the rune at
// original offset pos.
func (c *Chart) MarkDeleted(pos int) {
	c.Deleted[pos] = true
}

// Tokens returns the chart's primary token sequence in offset order. Call
// Finalize first to also run the invariant checks.
func (c *Chart) Tokens() []Token {
	sorted := make([]Token, len(c.tokens))
	copy(sorted, c.tokens)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	return sorted
}

// Len returns the token count. Only meaningful after Finalize, which sorts
// and stabilizes c.tokens.
func (c *Chart) Len() int { return len(c.tokens) }

// SetMarkup updates the markup-attach flags on the i-th token in offset
// order. Callers must only use this after Finalize has sorted c.tokens.
func (c *Chart) SetMarkup(i int, left, right bool) {
	c.tokens[i].MarkupLeft = left
	c.tokens[i].MarkupRight = right
}

// Finalize sorts the token list and checks the Chart invariants:
// strictly increasing start order, start < end, and contiguous coverage
// of every original offset not in the deletion map.
func (c *Chart) Finalize() error {
	c.tokens = c.Tokens()

	prevEnd := 0
	for i, t := range c.tokens {
		if t.Start >= t.End {
			return fmt.Errorf("chart: token %d has non-positive span [%d,%d)", i, t.Start, t.End)
		}
		if i > 0 && t.Start < c.tokens[i-1].Start {
			return fmt.Errorf("chart: token %d out of order (start %d before previous start %d)", i, t.Start, c.tokens[i-1].Start)
		}
		if t.Start < prevEnd {
			return fmt.Errorf("chart: token %d overlaps previous token (start %d < prior end %d)", i, t.Start, prevEnd)
		}
		for p := prevEnd; p < t.Start; p++ {
			if !c.Deleted[p] {
				return fmt.Errorf("chart: offset %d is not covered by any token and was not marked deleted", p)
			}
		}
		prevEnd = t.End
	}
	for p := prevEnd; p < len(c.Line); p++ {
		if !c.Deleted[p] {
			return fmt.Errorf("chart: trailing offset %d is not covered by any token", p)
		}
	}
	return nil
}

// SurfaceStream joins the markup-stripped surfaces of every token with a
// single space.
func (c *Chart) SurfaceStream() string {
	toks := c.Tokens()
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Surface)
	}
	return joinSpace(out)
}

func joinSpace(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	total := len(parts) - 1
	for _, p := range parts {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, p...)
	}
	return string(buf)
}
