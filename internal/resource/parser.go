package resource

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const escPlaceholder = "\x00UTOKEN-ESC\x00"

// splitFields splits a data-file line ("::kind key ::slot value ...") into
// its "::"-delimited fields, honoring the "\:\:" escape for a literal "::"
// inside a value.
func splitFields(line string) []string {
	protected := strings.ReplaceAll(line, `\:\:`, escPlaceholder)
	parts := strings.Split(protected, "::")
	fields := make([]string, 0, len(parts))
	for i, p := range parts {
		if i == 0 && strings.TrimSpace(p) == "" {
			continue // text before the first "::" marker, always blank for a well-formed line
		}
		fields = append(fields, strings.TrimSpace(strings.ReplaceAll(p, escPlaceholder, "::")))
	}
	return fields
}

// splitFirstToken splits s into its first whitespace-delimited token and the
// (trimmed) remainder.
func splitFirstToken(s string) (tok, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// ParseFile reads one data file and returns its entries plus any non-fatal
// warnings. It stops and returns the first fatal error encountered (unknown
// kind, malformed slot, unparseable regex), tagged with file/line/column.
func ParseFile(path string, r io.Reader) ([]*Entry, []*LoadWarning, error) {
	var entries []*Entry
	var warnings []*LoadWarning

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "::") {
			return nil, warnings, &LoadError{File: path, Line: lineNo, Column: 1, Msg: "expected rule to start with '::'"}
		}
		entry, warn, err := parseLine(path, lineNo, line)
		if err != nil {
			return nil, warnings, err
		}
		if warn != nil {
			warnings = append(warnings, warn)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("%s: %w", path, err)
	}
	return entries, warnings, nil
}

func parseLine(path string, lineNo int, line string) (*Entry, *LoadWarning, error) {
	fields := splitFields(line)
	if len(fields) == 0 {
		return nil, nil, &LoadError{File: path, Line: lineNo, Column: 1, Msg: "empty rule"}
	}

	kindWord, key := splitFirstToken(fields[0])
	kind := Kind(kindWord)
	if !knownKinds[kind] {
		return nil, nil, &LoadError{File: path, Line: lineNo, Column: 1, Msg: fmt.Sprintf("unknown rule kind %q", kindWord), Rule: key}
	}
	if key == "" && kind != KindPunctSplit {
		return nil, nil, &LoadError{File: path, Line: lineNo, Column: 3, Msg: "rule has no key surface", Rule: kindWord}
	}

	e := &Entry{
		Kind:          kind,
		Key:           key,
		CaseSensitive: false, // default; "::case-sensitive true" turns it on
		Side:          "both",
		Extra:         map[string]string{},
		SourceFile:    path,
		SourceLine:    lineNo,
		SourceRule:    key,
	}

	for _, field := range fields[1:] {
		slot, value := splitFirstToken(field)
		if slot == "" {
			return nil, nil, &LoadError{File: path, Line: lineNo, Column: 1, Msg: "malformed slot (no name)", Rule: key}
		}
		if err := applySlot(e, slot, value); err != nil {
			return nil, nil, &LoadError{File: path, Line: lineNo, Column: 1, Msg: err.Error(), Rule: key}
		}
	}

	return e, nil, nil
}

func applySlot(e *Entry, slot, value string) error {
	switch slot {
	case "lcode":
		e.LCode = value
	case "case-sensitive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("bad boolean for ::case-sensitive: %q", value)
		}
		e.CaseSensitive = b
	case "left-context":
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("bad ::left-context regex %q: %w", value, err)
		}
		e.LeftContext = re
	case "right-context":
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("bad ::right-context regex %q: %w", value, err)
		}
		e.RightContext = re
	case "sem-class":
		e.SemClass = value
	case "group":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("bad boolean for ::group: %q", value)
		}
		e.Group = b
	case "side":
		switch value {
		case "start", "end", "both":
			e.Side = value
		case "filename-ext":
			if e.Kind != KindPreserve {
				return fmt.Errorf("::side filename-ext is only valid on a preserve rule")
			}
			e.Side = value
		default:
			return fmt.Errorf("bad ::side value %q (want start|end|both, or filename-ext on a preserve rule)", value)
		}
	case "target":
		e.Target = value
	case "exp":
		e.Exp = value
	case "suffix-variations":
		e.SuffixVariations = strings.Fields(value)
	case "plural":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("bad boolean for ::plural: %q", value)
		}
		e.Plural = b
	default:
		e.Extra[slot] = value
	}
	return nil
}
