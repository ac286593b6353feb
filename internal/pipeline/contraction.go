package pipeline

import (
	"strings"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

// contractionStep exact-matches against the
// contraction table, splitting the matched surface into two or three
// DECONTRACTION / DECONTRACTION-R tokens per the entry's "target" slot
// (space-separated output pieces). Original offsets are allocated
// proportionally to each piece's rendered length, ties going to the left
// piece — see DESIGN.md for the reasoning.
type contractionStep struct{}

func (contractionStep) Name() string        { return "contraction" }
func (contractionStep) RestartAtZero() bool { return true }

func (contractionStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return rt.Store.MaxKeyLen(resource.KindContraction) > 0 && sv.HasAny(charclass.BitApostropheLike|charclass.BitLetter)
}

func (contractionStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	p, end, e, ok := scanExact(rt, resource.KindContraction, i, j)
	if !ok {
		return nil, false
	}

	pieces := strings.Fields(e.Target)
	if len(pieces) == 0 {
		pieces = []string{rt.CleanSlice(p, end)}
	}
	rightAttach := e.Extra["right-attach"] == "true"

	boundaries := proportionalSplit(end-p, pieces)
	specs := make([]TokenSpec, len(pieces))
	for k, piece := range pieces {
		typ := chart.Decontraction
		if rightAttach && k == len(pieces)-1 {
			typ = chart.DecontractionR
		}
		specs[k] = TokenSpec{
			Start:    p + boundaries[k],
			End:      p + boundaries[k+1],
			Type:     typ,
			Surface:  piece,
			SemClass: e.SemClass,
		}
	}
	return specs, true
}

// proportionalSplit divides a span of length spanLen into len(pieces)
// contiguous sub-spans weighted by each piece's rune length, rounding each
// boundary up (ceiling) so that any remainder accrues to earlier pieces,
// i.e. ties go left.
func proportionalSplit(spanLen int, pieces []string) []int {
	n := len(pieces)
	boundaries := make([]int, n+1)
	boundaries[n] = spanLen
	if n == 1 {
		return boundaries
	}

	weights := make([]int, n)
	total := 0
	for k, p := range pieces {
		w := len([]rune(p))
		if w == 0 {
			w = 1
		}
		weights[k] = w
		total += w
	}

	acc := 0
	for k := 0; k < n-1; k++ {
		acc += weights[k]
		b := (spanLen*acc + total - 1) / total
		if b <= boundaries[k] {
			b = boundaries[k]
		}
		if b > spanLen {
			b = spanLen
		}
		boundaries[k+1] = b
	}
	return boundaries
}
