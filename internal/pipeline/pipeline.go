// Package pipeline implements the ordered tokenization pipeline: a fixed
// list of step recognizers, each examining the current span of a line and
// either finding a token and recursing around it, or falling through to
// the next step.
package pipeline

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

// Options configures a tokenizer run.
type Options struct {
	FirstTokenIsLineID bool
	Simple              bool
}

// Runtime bundles everything a Step needs to examine and subdivide a span:
// the normalized ("clean") rune buffer shared read-only across the whole
// line, the precomputed line vector, and the read-only Resource Store and
// BitVector tables. One Runtime is built per input line and handed, by
// pointer, to every Step — nothing on it is mutated after normalize()
// builds it, so nothing here needs locking even if a caller parallelizes
// across lines.
type Runtime struct {
	Orig        []rune
	Clean       []rune
	CleanToOrig []int
	Deleted     map[int]bool

	Tables     *charclass.Tables
	Store      *resource.Store
	LineVector charclass.BitVector
	Opts       Options

	Chart *chart.Chart
}

// TokenSpec is what a Step returns for the span it recognized: one or more
// contiguous tokens (contraction/decontraction produces two or three)
// covering [Start,End) in clean-rune coordinates.
type TokenSpec struct {
	Start, End  int
	Type        chart.Type
	Surface     string // empty means "use the original substring verbatim"
	SemClass    string
	MarkupLeft  bool
	MarkupRight bool
}

// Step is one recognizer in the ordered pipeline.
type Step interface {
	Name() string
	// RestartAtZero selects the per-step residue policy: true for
	// "greedy-isolating" steps (their residues may contain any other
	// construct, so re-run the whole step list); false for "terminal"
	// steps (residues only need the remaining, later steps).
	RestartAtZero() bool
	// Guard is the cheap line/span-vector relevance test that lets a step
	// skip Find entirely when its trigger characters are absent.
	Guard(rt *Runtime, spanVector charclass.BitVector) bool
	// Find looks for the leftmost, then longest, match inside rt.Clean[i:j]
	// and returns the TokenSpecs covering it (punctSplitStep and
	// whitespaceStep instead return every match in the span).
	Find(rt *Runtime, i, j int) ([]TokenSpec, bool)
}

// steps returns the step list in execution order (normalize is a
// preprocessing pass, not a dynamic step; line-id extraction is handled
// once at the top of Tokenize, not recursively).
func steps() []Step {
	return []Step{
		xmlTagStep{},
		urlStep{},
		emailStep{},
		handleHashtagStep{},
		filenameStep{},
		lexicalStep{},
		abbrevStep{},
		numberStep{},
		contractionStep{},
		repairStep{},
		misspellingStep{},
		punctSplitStep{},
		emojiStep{},
		whitespaceStep{}, // terminal fallthrough, always matches a non-empty span
	}
}

type spanJob struct {
	i, j, k int
}

// Tokenize runs the full pipeline over line and returns a finalized Chart.
// It is the core engine's single entry point; pkg/utoken.Tokenizer is a
// thin wrapper that loads resources once and calls this per line.
func Tokenize(line string, store *resource.Store, tables *charclass.Tables, opts Options) (*chart.Chart, error) {
	rt := newRuntime(line, store, tables, opts)
	rt.Chart = chart.New(line)
	for pos := range rt.Deleted {
		rt.Chart.MarkDeleted(pos)
	}

	start := 0
	if opts.FirstTokenIsLineID {
		start = consumeLineID(rt)
	}

	runQueue(rt, start, len(rt.Clean))

	if err := rt.Chart.Finalize(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	applyMarkup(rt)
	return rt.Chart, nil
}

// consumeLineID extracts the first whitespace-delimited run of the clean
// buffer as a LINE-ID token and returns the clean
// index the rest of the pipeline should start from.
func consumeLineID(rt *Runtime) int {
	n := len(rt.Clean)
	i := 0
	for i < n && unicode.IsSpace(rt.Clean[i]) {
		i++
	}
	start := i
	for i < n && !unicode.IsSpace(rt.Clean[i]) {
		i++
	}
	if start == i {
		return 0
	}
	insertSpec(rt, TokenSpec{Start: start, End: i, Type: chart.LineID})
	return i
}

// runQueue is the iterative span-queue driver: a stack of (i,j,step) jobs
// stands in for literal recursion so pathological inputs can't blow the
// goroutine stack. Chart.Finalize sorts by start offset, so the order jobs
// are popped in doesn't need to match output order.
func runQueue(rt *Runtime, i, j int) {
	allSteps := steps()
	stack := []spanJob{{i, j, 0}}
	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if job.i >= job.j {
			continue
		}
		if job.k >= len(allSteps) {
			// Should not happen: whitespaceStep is terminal and always
			// matches a non-empty span. Defensive fallback so a future
			// step-ordering bug degrades to one WORD-B token instead of
			// dropping the span (which would violate the coverage
			// invariant in Chart.Finalize).
			insertSpec(rt, TokenSpec{Start: job.i, End: job.j, Type: chart.WordB})
			continue
		}

		step := allSteps[job.k]
		sv := rt.Tables.SpanVector(rt.Clean, job.i, job.j)
		if !step.Guard(rt, sv) {
			stack = append(stack, spanJob{job.i, job.j, job.k + 1})
			continue
		}

		specs, ok := step.Find(rt, job.i, job.j)
		if !ok {
			stack = append(stack, spanJob{job.i, job.j, job.k + 1})
			continue
		}
		if len(specs) == 0 {
			// The step fully accounted for [job.i,job.j) itself (e.g.
			// whitespaceStep marking a pure-whitespace span deleted)
			// without emitting any token; nothing left to recurse into.
			continue
		}

		a, b := specs[0].Start, specs[len(specs)-1].End
		nextK := job.k + 1
		if step.RestartAtZero() {
			nextK = 0
		}

		// Push right first so the left residue is processed (and its own
		// pushes land on top of) before the right one — purely cosmetic
		// given Finalize's final sort, but keeps debugging output in a
		// left-to-right-ish order.
		stack = pushResidue(rt, stack, b, job.j, nextK)
		for k, spec := range specs {
			insertSpec(rt, spec)
			// Gaps between non-contiguous specs (whitespaceStep marks
			// them deleted itself rather than leaving a real residue)
			// still need a pushResidue check rather than being assumed
			// empty.
			if k+1 < len(specs) {
				stack = pushResidue(rt, stack, spec.End, specs[k+1].Start, nextK)
			}
		}
		stack = pushResidue(rt, stack, job.i, a, nextK)
	}
}

// pushResidue pushes a (start,end,step) job unless the range is empty or
// already fully accounted for by the deletion map — which happens when a
// step (whitespaceStep in particular) consumes whitespace gaps itself
// rather than leaving them as literal residue to re-run the pipeline on.
func pushResidue(rt *Runtime, stack []spanJob, start, end, k int) []spanJob {
	if start >= end {
		return stack
	}
	allDeleted := true
	for p := start; p < end; p++ {
		if !rt.Chart.Deleted[rt.CleanToOrig[p]] {
			allDeleted = false
			break
		}
	}
	if allDeleted {
		return stack
	}
	return append(stack, spanJob{start, end, k})
}

func insertSpec(rt *Runtime, spec TokenSpec) {
	origStart := rt.CleanToOrig[spec.Start]
	var origEnd int
	if spec.End-1 < len(rt.CleanToOrig) {
		origEnd = rt.CleanToOrig[spec.End-1] + 1
	} else {
		origEnd = len(rt.Orig)
	}

	surface := spec.Surface
	if surface == "" {
		surface = string(rt.Orig[origStart:origEnd])
	}

	rt.Chart.InsertToken(chart.Token{
		Start:       origStart,
		End:         origEnd,
		Surface:     surface,
		Type:        spec.Type,
		SemClass:    spec.SemClass,
		MarkupLeft:  spec.MarkupLeft,
		MarkupRight: spec.MarkupRight,
	})
}

// CleanSlice returns the clean-coordinate substring [i,j) as a string.
func (rt *Runtime) CleanSlice(i, j int) string { return string(rt.Clean[i:j]) }

// ContextBefore/ContextAfter give regex-context rules (punct-split,
// markup-attach, auto-attach, abbrev) something to match against: the
// clean text immediately surrounding [i,j).
func (rt *Runtime) ContextBefore(i int) string { return string(rt.Clean[:i]) }
func (rt *Runtime) ContextAfter(j int) string  { return string(rt.Clean[j:]) }

func utf8Valid(s string) bool { return utf8.ValidString(s) }

// runeOffset converts a byte offset into s (as produced by the regexp
// package, which always works in bytes) into a rune offset, since every
// coordinate elsewhere in this package is a Unicode scalar value position.
func runeOffset(s string, byteOffset int) int {
	return utf8.RuneCountInString(s[:byteOffset])
}
