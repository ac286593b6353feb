// Package detok reassembles a token sequence back into a surface line: the
// inverse of internal/pipeline's tokenization.
package detok

import (
	"strings"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/resource"
)

// closingPunct and openingPunct are the punctuation-class attach defaults
// used when neither an explicit markup flag nor a detok-attach resource
// rule settles the question: a closing mark glues to whatever precedes it,
// an opening mark glues to whatever follows it.
var closingPunct = map[string]bool{
	".": true, ",": true, "!": true, "?": true, ";": true, ":": true,
	")": true, "]": true, "}": true, "”": true, "’": true, "»": true, "'": true,
}

var openingPunct = map[string]bool{
	"(": true, "[": true, "{": true, "“": true, "‘": true, "«": true,
}

// Engine reassembles tokens for one language's resource rules. Store may be
// nil, in which case only markup flags and the punctuation-class defaults
// apply.
type Engine struct {
	Store *resource.Store
}

// New builds a detokenization Engine over the given resource Store.
func New(store *resource.Store) *Engine { return &Engine{Store: store} }

// DetokenizeTokens reassembles toks into a single surface line, applying
// explicit markup attach flags, detok-resource.txt rules, decontraction
// reversal, and punctuation-class defaults in that order of precedence.
func (e *Engine) DetokenizeTokens(toks []chart.Token) string {
	merged := e.mergeReversals(toks)

	var b strings.Builder
	for i, t := range merged {
		if i > 0 && !e.attaches(merged[i-1], t) {
			b.WriteByte(' ')
		}
		b.WriteString(t.Surface)
	}
	return b.String()
}

// DetokenizeString parses line as a tokenizer's surface-with-markup output
// (space-separated surfaces, optionally wrapped in "@" on the attaching
// side(s)) and reassembles it. Unlike DetokenizeTokens it has no Token.Type
// to consult, so decontraction reversal only fires for pairs a detok-attach
// rule explicitly names and for the "n't" elision after a left piece ending
// in "n" ("can n't" -> "can't").
func (e *Engine) DetokenizeString(line string) string {
	fields := strings.Fields(line)
	toks := make([]chart.Token, len(fields))
	for i, f := range fields {
		left := strings.HasPrefix(f, "@")
		if left {
			f = f[len("@"):]
		}
		right := strings.HasSuffix(f, "@")
		if right {
			f = f[:len(f)-len("@")]
		}
		toks[i] = chart.Token{Surface: f, MarkupLeft: left, MarkupRight: right}
	}
	return e.DetokenizeTokens(toks)
}

// mergeReversals collapses adjacent (L,R) pairs into a single token before
// the join pass runs, so attach/space decisions never see the pre-reversal
// pieces. Two kinds of collapse happen here: a detok-attach reverse rule
// naming the whole pair explicitly ("will"+"n't" -> "won't"), and the
// general "n't" elision ("can"+"n't" -> "can't") for any left piece that
// already ends in the "n" the contraction's right piece supplies.
func (e *Engine) mergeReversals(toks []chart.Token) []chart.Token {
	if len(toks) < 2 {
		return toks
	}
	out := make([]chart.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if i+1 < len(toks) {
			if e.Store != nil {
				if entry, ok := e.reverseEntry(t, toks[i+1]); ok {
					merged := t
					merged.Surface = entry.Target
					merged.End = toks[i+1].End
					merged.Type = chart.WordB
					out = append(out, merged)
					i++
					continue
				}
			}
			if merged, ok := elideNTBoundary(t, toks[i+1]); ok {
				out = append(out, merged)
				i++
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func (e *Engine) reverseEntry(l, r chart.Token) (*resource.Entry, bool) {
	entry, ok := e.Store.Lookup(resource.KindDetokAttach, r.Surface)
	if !ok || entry.Target == "" {
		return nil, false
	}
	if want := entry.Extra["reverse-left"]; want != "" && want != l.Surface {
		return nil, false
	}
	return entry, true
}

// elideNTBoundary reassembles "can"+"n't" as "can't" instead of the
// doubled-letter "cann't" a plain concatenation would produce: when the
// right piece is the "n't" contraction and the left piece already ends in
// the "n" that piece supplies, the duplicated boundary letter is dropped.
// Words like "does"/"is"/"do" don't end in "n", so they concatenate with
// "n't" unchanged ("doesn't", "isn't", "don't").
func elideNTBoundary(l, r chart.Token) (chart.Token, bool) {
	if !strings.EqualFold(r.Surface, "n't") {
		return chart.Token{}, false
	}
	if !strings.HasSuffix(strings.ToLower(l.Surface), "n") {
		return chart.Token{}, false
	}
	merged := l
	merged.Surface = l.Surface + r.Surface[1:]
	merged.End = r.End
	merged.Type = chart.WordB
	return merged, true
}

// attaches reports whether no space belongs between l and r in the
// reassembled line.
func (e *Engine) attaches(l, r chart.Token) bool {
	if l.MarkupRight || r.MarkupLeft {
		return true
	}
	if r.Type == chart.Decontraction || r.Type == chart.DecontractionR {
		return true
	}
	if e.Store != nil {
		if entry, ok := e.Store.Lookup(resource.KindDetokAttach, r.Surface); ok && (entry.Side == "end" || entry.Side == "both") {
			return true
		}
		if entry, ok := e.Store.Lookup(resource.KindDetokAttach, l.Surface); ok && (entry.Side == "start" || entry.Side == "both") {
			return true
		}
	}
	if closingPunct[r.Surface] {
		return true
	}
	if openingPunct[l.Surface] {
		return true
	}
	return false
}
