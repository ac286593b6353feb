package pipeline

import (
	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

// abbrevStep does a longest-match against the abbrev
// table, honoring left-context/right-context regex constraints
// ("Mr.", "e.g.", "No." before digits).
type abbrevStep struct{}

func (abbrevStep) Name() string        { return "abbrev" }
func (abbrevStep) RestartAtZero() bool { return true }

func (abbrevStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return rt.Store.MaxKeyLen(resource.KindAbbrev) > 0 && sv.HasAny(charclass.BitDot|charclass.BitLetter)
}

func (abbrevStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	maxLen := rt.Store.MaxKeyLen(resource.KindAbbrev)
	if maxLen == 0 {
		return nil, false
	}
	for p := i; p < j; p++ {
		upper := maxLen
		if p+upper > j {
			upper = j - p
		}
		for l := upper; l >= 1; l-- {
			candidate := rt.CleanSlice(p, p+l)
			e, ok := rt.Store.Lookup(resource.KindAbbrev, candidate)
			if !ok {
				continue
			}
			if e.LeftContext != nil && !e.LeftContext.MatchString(rt.ContextBefore(p)) {
				continue
			}
			if e.RightContext != nil && !e.RightContext.MatchString(rt.ContextAfter(p+l)) {
				continue
			}
			surface := e.Target
			if surface == "" {
				surface = candidate
			}
			return []TokenSpec{{Start: p, End: p + l, Type: chart.Abbrev, Surface: surface, SemClass: e.SemClass}}, true
		}
	}
	return nil, false
}
