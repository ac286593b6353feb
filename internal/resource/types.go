// Package resource parses and indexes the utoken data files (tok-resource.txt
// and friends) into typed rule tables keyed by language code and rule kind.
package resource

import "regexp"

// Kind is one of the rule kinds a data file line can declare with its
// leading "::<kind>" marker.
type Kind string

const (
	KindContraction   Kind = "contraction"
	KindRepair        Kind = "repair"
	KindAbbrev        Kind = "abbrev"
	KindLexical       Kind = "lexical"
	KindMisspelling   Kind = "misspelling"
	KindPunctSplit    Kind = "punct-split"
	KindMarkupAttach  Kind = "markup-attach"
	KindAutoAttach    Kind = "auto-attach"
	KindPreserve      Kind = "preserve"
	KindResourceRule  Kind = "resource-rule"
	KindDetokAttach   Kind = "detok-attach" // detok-resource.txt surface-keyed attach rule
)

// knownKinds validates the "::<kind>" marker at load time; an unrecognized
// kind is a fatal resource load error.
var knownKinds = map[Kind]bool{
	KindContraction:  true,
	KindRepair:       true,
	KindAbbrev:       true,
	KindLexical:      true,
	KindMisspelling:  true,
	KindPunctSplit:   true,
	KindMarkupAttach: true,
	KindAutoAttach:   true,
	KindPreserve:     true,
	KindResourceRule: true,
	KindDetokAttach:  true,
}

// Entry is the tagged-variant resource rule: every kind shares this one
// struct, populated from the common slot set; slot names the schema
// doesn't recognize land in Extra instead of failing the load.
type Entry struct {
	Kind Kind
	// Key is the literal key-surface for exact-match kinds (contraction,
	// abbrev, lexical, repair, misspelling, preserve) or the detok-attach
	// surface key.
	Key string

	LCode         string
	CaseSensitive bool

	LeftContext  *regexp.Regexp
	RightContext *regexp.Regexp

	SemClass string
	Group    bool
	Side     string // "start" | "end" | "both"; "filename-ext" on a preserve rule
	Target   string
	Exp      string

	SuffixVariations []string
	Plural           bool

	Extra map[string]string

	SourceFile string
	SourceLine int
	SourceRule string // the raw key surface, for error messages
}

// FoldKey returns the key used for exact-match indexing, case-folded unless
// the entry is marked case-sensitive.
func (e *Entry) FoldKey() string {
	if e.CaseSensitive {
		return e.Key
	}
	return foldCase(e.Key)
}
