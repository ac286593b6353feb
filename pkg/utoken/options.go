// Package utoken is the public, language-neutral tokenizer/detokenizer API:
// load a language's resource data once, then tokenize or detokenize any
// number of lines against it.
package utoken

import "github.com/utoken-go/utoken/internal/emitter"

// Options configures a Tokenizer.
type Options struct {
	// FirstTokenIsLineID treats each line's first whitespace-delimited
	// field as an opaque LINE-ID token rather than ordinary text.
	FirstTokenIsLineID bool
	// Simple suppresses "@" markup rendering in TokenizeString's output.
	Simple bool
	// AnnotationFormat records the caller's annotation serialization. The
	// Tokenizer does not read it; callers pass the format to
	// emitter.WriteAnnotation themselves, which rejects an empty format.
	AnnotationFormat emitter.Format
	// Verbose is stored but not read by the Tokenizer: resource-load
	// warnings and recovered per-line panics are logged at Warn through
	// its development zap logger whatever this is set to.
	Verbose bool
}
