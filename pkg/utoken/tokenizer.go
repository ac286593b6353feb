package utoken

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/emitter"
	"github.com/utoken-go/utoken/internal/pipeline"
	"github.com/utoken-go/utoken/internal/resource"
)

// Tokenizer is a reusable handle over one language's resource data.
type Tokenizer struct {
	store  *resource.Store
	tables *charclass.Tables
	opts   Options
	log    *zap.SugaredLogger
}

// NewTokenizer loads lcode's resource files from dataDir and returns a
// Tokenizer ready to process any number of lines. Resource-load warnings
// (duplicate rules, a missing per-language file falling back to universal
// rules) are logged through a development zap logger; construction never
// fails because logging itself failed to initialize.
func NewTokenizer(lcode, dataDir string, opts Options) (*Tokenizer, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	sugar := logger.Sugar()

	store, err := resource.Load(dataDir, lcode)
	if err != nil {
		return nil, fmt.Errorf("utoken: loading resources for %q: %w", lcode, err)
	}
	for _, w := range store.Warnings {
		sugar.Warnw("resource load warning", "file", w.File, "line", w.Line, "rule", w.Rule, "msg", w.Msg)
	}

	return &Tokenizer{
		store:  store,
		tables: charclass.New(),
		opts:   opts,
		log:    sugar,
	}, nil
}

// TokenizeWithChart tokenizes line and returns its finalized Chart.
// Per-line panics from the pipeline are recovered and reported as an error
// rather than crashing the caller — the single per-line exception boundary
// an interactive or batch caller relies on.
func (t *Tokenizer) TokenizeWithChart(line string) (c *chart.Chart, err error) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Warnw("recovered panic while tokenizing line", "line", line, "panic", r)
			err = fmt.Errorf("utoken: panic tokenizing line: %v", r)
		}
	}()
	pipelineOpts := pipeline.Options{FirstTokenIsLineID: t.opts.FirstTokenIsLineID, Simple: t.opts.Simple}
	return pipeline.Tokenize(line, t.store, t.tables, pipelineOpts)
}

// TokenizeString tokenizes line and returns its surface form.
func (t *Tokenizer) TokenizeString(line string) (string, error) {
	c, err := t.TokenizeWithChart(line)
	if err != nil {
		return "", err
	}
	return emitter.Surface(c, t.opts.Simple), nil
}

// Annotate tokenizes line and returns its per-token annotation records,
// tagged with lineNo.
func (t *Tokenizer) Annotate(line string, lineNo int) ([]emitter.AnnotatedToken, error) {
	c, err := t.TokenizeWithChart(line)
	if err != nil {
		return nil, err
	}
	return emitter.Annotate(c, lineNo), nil
}
