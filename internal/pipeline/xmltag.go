package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
)

// maxXMLTagRunes bounds how far xmlTagStep scans for a closing '>' so a
// stray, unclosed '<' in ordinary prose can't make this step scan the rest
// of the line.
const maxXMLTagRunes = 256

// xmlTagStep matches "<[^>]{0,MAX}>" with balanced
// quotes, so a '>' inside a quoted attribute value doesn't end the tag
// early (e.g. <a href="a>b">).
type xmlTagStep struct{}

func (xmlTagStep) Name() string        { return "xml-tag" }
func (xmlTagStep) RestartAtZero() bool { return true }

func (xmlTagStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return sv.HasAny(charclass.BitXMLBracket)
}

func (xmlTagStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	for p := i; p < j; p++ {
		if rt.Clean[p] != '<' {
			continue
		}
		limit := p + 1 + maxXMLTagRunes
		if limit > j {
			limit = j
		}
		var quote rune
		for q := p + 1; q < limit; q++ {
			c := rt.Clean[q]
			switch {
			case quote != 0:
				if c == quote {
					quote = 0
				}
			case c == '"' || c == '\'':
				quote = c
			case c == '<':
				// nested/unclosed '<': this candidate isn't a tag, bail
				// out of the inner scan and let the outer loop try the
				// next '<'.
				q = limit
			case c == '>':
				return []TokenSpec{{Start: p, End: q + 1, Type: chart.XMLTag}}, true
			}
		}
	}
	return nil, false
}
