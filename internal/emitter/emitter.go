// Package emitter serializes a finalized Chart into the two output forms a
// caller can ask for: the plain surface line, or a structured annotation
// (JSON or double-colon text) carrying each token's span/type/sem-class.
package emitter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/utoken-go/utoken/internal/chart"
)

// Format selects the annotation serialization.
type Format string

const (
	FormatJSON        Format = "json"
	FormatDoubleColon Format = "double-colon"
)

// AnnotatedToken is the JSON-serializable view of one chart.Token.
type AnnotatedToken struct {
	Line     int    `json:"line"`
	Span     [2]int `json:"span"`
	Type     string `json:"type"`
	SemClass string `json:"sem_class,omitempty"`
	Surf     string `json:"surf"`
}

// Surface renders c as the markup-rendered single-line surface form: tokens
// separated by one space, with "@" prefixed/suffixed on whichever side(s)
// carry a markup attach flag, unless simple is set (in which case markup is
// suppressed entirely and tokens are joined with a plain space).
func Surface(c *chart.Chart, simple bool) string {
	toks := c.Tokens()
	pieces := make([]string, 0, len(toks))
	for _, t := range toks {
		if simple {
			pieces = append(pieces, t.Surface)
			continue
		}
		s := t.Surface
		if t.MarkupLeft {
			s = "@" + s
		}
		if t.MarkupRight {
			s = s + "@"
		}
		pieces = append(pieces, s)
	}
	return strings.Join(pieces, " ")
}

// Annotate renders c's tokens as AnnotatedToken values tagged with lineNo.
func Annotate(c *chart.Chart, lineNo int) []AnnotatedToken {
	toks := c.Tokens()
	out := make([]AnnotatedToken, len(toks))
	for i, t := range toks {
		out[i] = AnnotatedToken{
			Line:     lineNo,
			Span:     [2]int{t.Start, t.End},
			Type:     string(t.Type),
			SemClass: t.SemClass,
			Surf:     t.Surface,
		}
	}
	return out
}

// WriteAnnotation writes c's annotation for lineNo to w in the requested
// format. JSON writes one array per line; double-colon writes the
// "::line N ::s <original>" header followed by one "::span s-e ::type T
// [::sem-class C] ::surf <surface>" line per token.
func WriteAnnotation(w *strings.Builder, c *chart.Chart, lineNo int, original string, format Format) error {
	switch format {
	case FormatJSON:
		toks := Annotate(c, lineNo)
		b, err := json.Marshal(toks)
		if err != nil {
			return fmt.Errorf("emitter: marshaling annotation: %w", err)
		}
		w.Write(b)
		w.WriteByte('\n')
		return nil
	case FormatDoubleColon:
		fmt.Fprintf(w, "::line %d ::s %s\n", lineNo, original)
		for _, t := range c.Tokens() {
			fmt.Fprintf(w, "::span %d-%d ::type %s", t.Start, t.End, t.Type)
			if t.SemClass != "" {
				fmt.Fprintf(w, " ::sem-class %s", t.SemClass)
			}
			fmt.Fprintf(w, " ::surf %s\n", t.Surface)
		}
		return nil
	default:
		return fmt.Errorf("emitter: unknown annotation format %q", format)
	}
}
