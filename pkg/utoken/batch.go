package utoken

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/stream"

	"github.com/utoken-go/utoken/internal/emitter"
)

// Result is one line's tokenization outcome in a batch run.
type Result struct {
	Line       int
	Surface    string
	Annotation []emitter.AnnotatedToken
	Err        error
}

// RunBatch tokenizes lines concurrently across up to workers goroutines and
// returns their Results in the same order lines were given, regardless of
// which goroutine finished first. Lines are independent units of work with
// no shared mutable state beyond the Tokenizer's read-only resource data,
// so sharding them across goroutines is always safe; conc/stream's ordered
// callback delivery is what gives the ordering guarantee without a
// hand-rolled reassembly buffer. ctx is checked between lines so a caller
// can cancel a large batch at a line boundary.
func (t *Tokenizer) RunBatch(ctx context.Context, lines []string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(lines))

	s := stream.New().WithMaxGoroutines(workers)
	for i, line := range lines {
		i, line := i, line
		s.Go(func() stream.Callback {
			select {
			case <-ctx.Done():
				return func() { results[i] = Result{Line: i, Err: ctx.Err()} }
			default:
			}

			c, err := t.TokenizeWithChart(line)
			if err != nil {
				return func() { results[i] = Result{Line: i, Err: err} }
			}
			surface := emitter.Surface(c, t.opts.Simple)
			ann := emitter.Annotate(c, i)
			return func() { results[i] = Result{Line: i, Surface: surface, Annotation: ann} }
		})
	}
	s.Wait()

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("utoken: batch canceled: %w", err)
	}
	return results, nil
}
