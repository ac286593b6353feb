package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
)

// filenameStep recognizes letters/digits/underscore, a dot,
// and a known non-TLD extension from the (data-file driven) preserve
// table, e.g. "report.pdf", "notes_v2.doc".
type filenameStep struct{}

func (filenameStep) Name() string        { return "filename" }
func (filenameStep) RestartAtZero() bool { return true }

func (filenameStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return sv.HasAny(charclass.BitDot)
}

func isFilenameStemRune(rt *Runtime, r rune) bool {
	if r == '_' {
		return true
	}
	bv := rt.Tables.Vector(r)
	return bv.Has(charclass.BitLetter) || bv.Has(charclass.BitDigit)
}

func (s filenameStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	for p := i; p < j; p++ {
		if !isFilenameStemRune(rt, rt.Clean[p]) {
			continue
		}
		stemEnd := p
		for stemEnd < j && isFilenameStemRune(rt, rt.Clean[stemEnd]) {
			stemEnd++
		}
		if stemEnd >= j || rt.Clean[stemEnd] != '.' {
			p = stemEnd
			continue
		}
		extStart := stemEnd + 1
		extEnd := extStart
		for extEnd < j && isFilenameStemRune(rt, rt.Clean[extEnd]) {
			extEnd++
		}
		if extEnd == extStart {
			p = stemEnd
			continue
		}
		ext := rt.CleanSlice(extStart, extEnd)
		if !rt.Store.IsFilenameExtension(ext) {
			p = stemEnd
			continue
		}
		return []TokenSpec{{Start: p, End: extEnd, Type: chart.Filename}}, true
	}
	return nil, false
}
