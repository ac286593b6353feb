package utoken

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/utoken-go/utoken/internal/detok"
	"github.com/utoken-go/utoken/internal/resource"
)

// Detokenizer is a reusable handle over one language's detok-resource
// rules.
type Detokenizer struct {
	engine *detok.Engine
	log    *zap.SugaredLogger
}

// NewDetokenizer loads lcode's resource files from dataDir and returns a
// Detokenizer ready to reassemble any number of tokenized lines.
func NewDetokenizer(lcode, dataDir string) (*Detokenizer, error) {
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

	return &Detokenizer{engine: detok.New(store), log: sugar}, nil
}

// DetokenizeString reassembles a tokenizer's surface-with-markup output
// back into a single line.
func (d *Detokenizer) DetokenizeString(line string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Warnw("recovered panic while detokenizing line", "line", line, "panic", r)
			err = fmt.Errorf("utoken: panic detokenizing line: %v", r)
		}
	}()
	return d.engine.DetokenizeString(line), nil
}
