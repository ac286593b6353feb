package pipeline

import (
	"regexp"
	"strings"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
)

// schemeURLRe matches a scheme-prefixed URL: the scheme plus everything up
// to the next whitespace or angle bracket, including query string and
// fragment.
var schemeURLRe = regexp.MustCompile(`(?:https?://|ftp://|mailto:)[^\s<>]+`)

// hostURLRe matches a TLD- or www-prefixed bare host, with an optional
// path/query tail.
var hostURLRe = regexp.MustCompile(`(?:www\.)?[\p{L}\p{N}-]+(?:\.[\p{L}\p{N}-]+)+(?:/[^\s<>]*)?`)

var trailingURLPunct = ".,!?;:'\")]}"

type urlStep struct{}

func (urlStep) Name() string        { return "url" }
func (urlStep) RestartAtZero() bool { return true }

func (urlStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return sv.HasAny(charclass.BitDot | charclass.BitColon | charclass.BitSlash)
}

func (s urlStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	text := rt.CleanSlice(i, j)

	bestStart, bestEnd := -1, -1
	consider := func(loc []int) {
		if loc == nil {
			return
		}
		start, end := loc[0], loc[1]
		for end > start && strings.ContainsRune(trailingURLPunct, rune(text[end-1])) {
			end--
		}
		if bestStart == -1 || start < bestStart || (start == bestStart && end > bestEnd) {
			bestStart, bestEnd = start, end
		}
	}

	consider(schemeURLRe.FindStringIndex(text))

	if loc := hostURLRe.FindStringIndex(text); loc != nil {
		host := text[loc[0]:loc[1]]
		// A host touching '@' is the local part or domain of an email
		// address; leave it for emailStep.
		partOfEmail := (loc[0] > 0 && text[loc[0]-1] == '@') || (loc[1] < len(text) && text[loc[1]] == '@')
		if !partOfEmail && s.hostHasValidTLD(rt, host) {
			consider(loc)
		}
	}

	if bestStart == -1 {
		return nil, false
	}
	start := i + runeOffset(text, bestStart)
	end := i + runeOffset(text, bestEnd)
	return []TokenSpec{{Start: start, End: end, Type: chart.URL}}, true
}

func (urlStep) hostHasValidTLD(rt *Runtime, host string) bool {
	if strings.HasPrefix(host, "www.") {
		return true
	}
	path := host
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		path = path[:idx]
	}
	labels := strings.Split(path, ".")
	last := labels[len(labels)-1]
	return rt.Store.IsValidTLD(last)
}
