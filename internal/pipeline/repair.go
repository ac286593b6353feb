package pipeline

import (
	"strings"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

// repairStep rewrites previously mistokenized
// surfaces ("wo n't" -> "will n't", "U.S" -> "U.S.") using the repair
// table. Like contraction, the target may name more than one output piece;
// offsets are allocated the same proportional way.
type repairStep struct{}

func (repairStep) Name() string        { return "repair" }
func (repairStep) RestartAtZero() bool { return true }

func (repairStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return rt.Store.MaxKeyLen(resource.KindRepair) > 0
}

func (repairStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	p, end, e, ok := scanExact(rt, resource.KindRepair, i, j)
	if !ok {
		return nil, false
	}
	pieces := strings.Fields(e.Target)
	if len(pieces) == 0 {
		pieces = []string{rt.CleanSlice(p, end)}
	}
	boundaries := proportionalSplit(end-p, pieces)
	specs := make([]TokenSpec, len(pieces))
	for k, piece := range pieces {
		specs[k] = TokenSpec{Start: p + boundaries[k], End: p + boundaries[k+1], Type: chart.WordB, Surface: piece, SemClass: e.SemClass}
	}
	return specs, true
}
