package pipeline

import (
	"unicode"

	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

// newRuntime builds a Runtime for line, running the normalize pass as a
// preprocessing step: deletable control characters and
// surrogate halves are stripped, non-standard whitespace is folded to
// U+0020, and a deletion map plus a clean->original index map are recorded
// so every later offset can be projected back onto the original line.
func newRuntime(line string, store *resource.Store, tables *charclass.Tables, opts Options) *Runtime {
	orig := []rune(line)
	clean := make([]rune, 0, len(orig))
	cleanToOrig := make([]int, 0, len(orig))
	deleted := map[int]bool{}

	for i, r := range orig {
		bv := tables.Vector(r)
		if bv.Has(charclass.BitDeletableControl) {
			deleted[i] = true
			continue
		}
		if bv.Has(charclass.BitSpace) && r != ' ' {
			r = ' '
		}
		clean = append(clean, r)
		cleanToOrig = append(cleanToOrig, i)
	}

	rt := &Runtime{
		Orig:        orig,
		Clean:       clean,
		CleanToOrig: cleanToOrig,
		Deleted:     deleted,
		Tables:      tables,
		Store:       store,
		Opts:        opts,
	}
	rt.LineVector = tables.LineVector(clean)
	return rt
}

// Normalize is the standalone, idempotent form of the normalize step
// (normalize(normalize(L)) == normalize(L)), exposed for callers that just
// want the cleaned text without running the whole pipeline.
func Normalize(line string, tables *charclass.Tables) string {
	var out []rune
	for _, r := range line {
		bv := tables.Vector(r)
		if bv.Has(charclass.BitDeletableControl) {
			continue
		}
		if bv.Has(charclass.BitSpace) && r != ' ' {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}

func isUnicodeSpace(r rune) bool { return unicode.IsSpace(r) }
