package resource

import "fmt"

// LoadError is a fatal resource-load error carrying the (file, line, column,
// rule) context needed to point a data-file author at the exact offending
// line.
type LoadError struct {
	File   string
	Line   int
	Column int
	Rule   string
	Msg    string
}

func (e *LoadError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("%s:%d:%d: %s (rule %q)", e.File, e.Line, e.Column, e.Msg, e.Rule)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
}

// LoadWarning is a non-fatal condition (e.g. a duplicate rule overwriting a
// prior one) reported alongside a successful load.
type LoadWarning struct {
	File   string
	Line   int
	Rule   string
	Msg    string
}

func (w *LoadWarning) String() string {
	return fmt.Sprintf("%s:%d: warning: %s (rule %q)", w.File, w.Line, w.Msg, w.Rule)
}
