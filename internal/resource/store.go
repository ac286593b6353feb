package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

func foldCase(s string) string { return strings.Map(unicode.ToLower, s) }

// exactIndex maps a (possibly case-folded) surface to its winning entry.
type exactIndex map[string]*Entry

// Store is the immutable, multi-level rule table: keyed by (kind, lcode),
// built once at startup, read-only and safely shareable by pointer across
// goroutines thereafter.
type Store struct {
	exact map[Kind]map[string]exactIndex // kind -> lcode -> surface -> entry
	ctx   map[Kind]map[string][]*Entry   // kind -> lcode -> ordered entries (regex-context kinds)
	tlds  map[string]bool
	// filenameExts holds non-TLD extensions declared via "::preserve <ext>
	// ::side filename-ext", used by the filename recognizer.
	filenameExts map[string]bool

	// Lcode is the language the store was built for; Warnings accumulates
	// every non-fatal condition seen while loading (duplicate rules, an
	// unknown requested language code falling back to universal).
	Lcode    string
	Warnings []*LoadWarning

	maxLen map[Kind]int
}

var exactKinds = map[Kind]bool{
	KindContraction: true,
	KindRepair:      true,
	KindAbbrev:      true,
	KindLexical:     true,
	KindMisspelling: true,
	KindPreserve:    true,
	KindDetokAttach: true,
}

var ctxKinds = map[Kind]bool{
	KindPunctSplit:   true,
	KindMarkupAttach: true,
	KindAutoAttach:   true,
	KindResourceRule: true,
}

// dataFile names, fixed for every language.
func dataFileNames(lcode string) []string {
	names := []string{"tok-resource.txt", "tok-resource-eng-global.txt"}
	if lcode != "" {
		names = append(names, fmt.Sprintf("tok-resource-%s.txt", lcode))
	}
	names = append(names, "detok-resource.txt", "top-level-domain-codes.txt")
	return names
}

// Load builds a Store for the given language code from the fixed set of
// data files under dataDir. A missing per-language file
// (tok-resource-<lcode>.txt) is tolerated — the tokenizer still has
// universal + eng-global rules; a
// missing tok-resource.txt/tok-resource-eng-global.txt/detok-resource.txt is
// fatal, since those are the universal core every language depends on.
func Load(dataDir, lcode string) (*Store, error) {
	s := &Store{
		exact:        map[Kind]map[string]exactIndex{},
		ctx:          map[Kind]map[string][]*Entry{},
		tlds:         map[string]bool{},
		filenameExts: map[string]bool{},
		Lcode:        lcode,
		maxLen:       map[Kind]int{},
	}

	for _, name := range dataFileNames(lcode) {
		path := filepath.Join(dataDir, name)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) && strings.HasPrefix(name, "tok-resource-") && name != "tok-resource-eng-global.txt" {
				s.Warnings = append(s.Warnings, &LoadWarning{File: path, Msg: "language-specific resource file not found, continuing with universal + eng-global rules only"})
				continue
			}
			return nil, fmt.Errorf("loading resource data: %w", err)
		}

		if name == "top-level-domain-codes.txt" {
			err = s.loadTLDs(f, path)
			f.Close()
			if err != nil {
				return nil, err
			}
			continue
		}

		entries, warnings, err := ParseFile(path, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		s.Warnings = append(s.Warnings, warnings...)
		for _, e := range entries {
			if err := s.index(e); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

func (s *Store) loadTLDs(f *os.File, path string) error {
	entries, warnings, err := ParseFile(path, f)
	if err != nil {
		// top-level-domain-codes.txt may also just be a flat list of
		// bare TLDs with no "::" markers; fall back to line scanning.
		return s.loadTLDsFlat(path)
	}
	s.Warnings = append(s.Warnings, warnings...)
	for _, e := range entries {
		s.tlds[foldCase(e.Key)] = true
	}
	return nil
}

func (s *Store) loadTLDsFlat(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading TLD list: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.tlds[foldCase(line)] = true
	}
	return nil
}

// index adds entry to the right bucket, applying suffix-variations/plural
// expansion and the "preserve + side=filename-ext" special case.
func (s *Store) index(e *Entry) error {
	if e.Kind == KindPreserve && e.Extra["ext"] != "" {
		s.filenameExts[foldCase(e.Extra["ext"])] = true
	}
	if e.Kind == KindPreserve && e.Side == "filename-ext" {
		s.filenameExts[foldCase(e.Key)] = true
		return nil
	}

	if exactKinds[e.Kind] {
		for _, variant := range expand(e) {
			s.put(variant)
		}
		return nil
	}
	if ctxKinds[e.Kind] {
		lcode := e.LCode
		if s.ctx[e.Kind] == nil {
			s.ctx[e.Kind] = map[string][]*Entry{}
		}
		s.ctx[e.Kind][lcode] = append(s.ctx[e.Kind][lcode], e)
		return nil
	}
	return nil
}

// expand produces the base entry plus one entry per suffix-variation/plural
// form, so that e.g. a single "gonna" rule also covers "gonnas" without a
// second data-file line. Variant surfaces inherit the base entry's
// case-sensitivity (see DESIGN.md for why ties go this way).
func expand(e *Entry) []*Entry {
	out := []*Entry{e}
	for _, suf := range e.SuffixVariations {
		v := *e
		v.Key = e.Key + suf
		out = append(out, &v)
	}
	if e.Plural {
		v := *e
		v.Key = e.Key + "s"
		out = append(out, &v)
	}
	return out
}

func (s *Store) put(e *Entry) {
	if s.exact[e.Kind] == nil {
		s.exact[e.Kind] = map[string]exactIndex{}
	}
	if s.exact[e.Kind][e.LCode] == nil {
		s.exact[e.Kind][e.LCode] = exactIndex{}
	}
	idx := s.exact[e.Kind][e.LCode]
	key := e.FoldKey()
	if n := len([]rune(key)); n > s.maxLen[e.Kind] {
		s.maxLen[e.Kind] = n
	}
	if prev, ok := idx[key]; ok {
		s.Warnings = append(s.Warnings, &LoadWarning{
			File: e.SourceFile, Line: e.SourceLine, Rule: e.Key,
			Msg: fmt.Sprintf("duplicate %s rule for key %q (lcode %q), overriding rule from %s:%d", e.Kind, e.Key, e.LCode, prev.SourceFile, prev.SourceLine),
		})
	}
	idx[key] = e
}

// scopes returns the lcode scopes to probe, in priority order, for a store
// built to serve language lcode: the language-specific scope first, then
// universal, then the eng-global fallback shared by every language.
func (s *Store) scopes() []string {
	if s.Lcode == "" || s.Lcode == "eng" {
		return []string{s.Lcode, "", "eng-global"}
	}
	return []string{s.Lcode, "", "eng-global"}
}

// Lookup resolves an exact-match rule of the given kind for surface,
// honoring case-sensitivity and the scope precedence above.
func (s *Store) Lookup(kind Kind, surface string) (*Entry, bool) {
	byLcode := s.exact[kind]
	if byLcode == nil {
		return nil, false
	}
	for _, scope := range s.scopes() {
		idx, ok := byLcode[scope]
		if !ok {
			continue
		}
		if e, ok := idx[surface]; ok && e.CaseSensitive {
			return e, true
		}
		if e, ok := idx[foldCase(surface)]; ok && !e.CaseSensitive {
			return e, true
		}
	}
	return nil, false
}

// ContextEntries returns every regex-context rule of kind kind visible to
// this store's language, in scope-priority order (language-specific first).
func (s *Store) ContextEntries(kind Kind) []*Entry {
	byLcode := s.ctx[kind]
	if byLcode == nil {
		return nil
	}
	var out []*Entry
	for _, scope := range s.scopes() {
		out = append(out, byLcode[scope]...)
	}
	return out
}

// IsValidTLD reports whether tld (without leading dot) is a known top-level
// domain, case-insensitively.
func (s *Store) IsValidTLD(tld string) bool {
	return s.tlds[foldCase(tld)]
}

// IsFilenameExtension reports whether ext (without leading dot) is a known
// non-TLD file extension from the preserve table.
func (s *Store) IsFilenameExtension(ext string) bool {
	return s.filenameExts[foldCase(ext)]
}

// MaxKeyLen returns the longest key (in runes) registered for kind, used by
// the sliding-window exact-match steps (lexical, abbrev, contraction,
// misspelling, repair) to bound how far ahead they need to probe.
func (s *Store) MaxKeyLen(kind Kind) int { return s.maxLen[kind] }
