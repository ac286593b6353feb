package pipeline

import (
	"strings"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/resource"
)

// applyMarkup runs once per line after the chart has been finalized,
// setting the MarkupLeft/MarkupRight attach flags that the detokenizer
// later uses to decide whether a space belongs between two surfaces when
// it reassembles them. A token qualifies either because an explicit
// markup-attach rule names its surface and matching context, or because an
// auto-attach rule recognizes its surface as something that glues itself
// to whatever it's already touching (no intervening space in the
// original line). When both could apply to the same token, markup-attach
// wins and auto-attach is skipped for it.
func applyMarkup(rt *Runtime) {
	n := rt.Chart.Len()
	if n == 0 {
		return
	}
	toks := rt.Chart.Tokens()

	markupEntries := rt.Store.ContextEntries(resource.KindMarkupAttach)
	autoEntries := rt.Store.ContextEntries(resource.KindAutoAttach)

	for i, t := range toks {
		if e, ok := matchAttachEntry(rt, markupEntries, t); ok {
			left, right := attachSides(e.Side)
			rt.Chart.SetMarkup(i, left, right)
			continue
		}
		if e, ok := matchAttachEntry(rt, autoEntries, t); ok {
			wantLeft, wantRight := attachSides(e.Side)
			left := wantLeft && touchesPrev(rt, toks, i)
			right := wantRight && touchesNext(rt, toks, i)
			rt.Chart.SetMarkup(i, left, right)
		}
	}
}

func attachSides(side string) (left, right bool) {
	switch side {
	case "start":
		return false, true
	case "end":
		return true, false
	case "both":
		return true, true
	default:
		return false, false
	}
}

func matchAttachEntry(rt *Runtime, entries []*resource.Entry, t chart.Token) (*resource.Entry, bool) {
	for _, e := range entries {
		surface := t.Surface
		if !e.CaseSensitive {
			surface = strings.ToLower(surface)
		}
		key := e.Key
		if !e.CaseSensitive {
			key = strings.ToLower(key)
		}
		if surface != key {
			continue
		}
		if e.LeftContext != nil && !e.LeftContext.MatchString(string(rt.Orig[:t.Start])) {
			continue
		}
		if e.RightContext != nil && !e.RightContext.MatchString(string(rt.Orig[t.End:])) {
			continue
		}
		return e, true
	}
	return nil, false
}

func touchesPrev(rt *Runtime, toks []chart.Token, i int) bool {
	if i == 0 {
		return false
	}
	return toks[i-1].End == toks[i].Start
}

func touchesNext(rt *Runtime, toks []chart.Token, i int) bool {
	if i+1 >= len(toks) {
		return false
	}
	return toks[i].End == toks[i+1].Start
}
