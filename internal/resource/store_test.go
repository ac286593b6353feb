package resource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSplitFields(t *testing.T) {
	fields := splitFields(`::contraction can't ::target can not ::sem-class informal`)
	require.Len(t, fields, 3)
	assert.Equal(t, "contraction can't", fields[0])
	assert.Equal(t, "target can not", fields[1])
	assert.Equal(t, "sem-class informal", fields[2])
}

func TestSplitFieldsEscapedColon(t *testing.T) {
	fields := splitFields(`::abbrev a.k.a. ::exp also known as ::note see \:\: marker`)
	require.Len(t, fields, 3)
	assert.Equal(t, "note see :: marker", fields[2])
}

func TestParseFileUnknownKind(t *testing.T) {
	_, _, err := ParseFile("test.txt", strings.NewReader("::bogus foo\n"))
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Line)
}

func TestParseFileBadRegex(t *testing.T) {
	_, _, err := ParseFile("test.txt", strings.NewReader("::punct-split ! ::left-context ( ::side end\n"))
	require.Error(t, err)
}

func TestLoadAndLookupAbbrev(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "tok-resource.txt", "::abbrev Mr. ::sem-class person-title\n")
	writeDataFile(t, dir, "tok-resource-eng-global.txt", "::abbrev e.g. ::exp for example\n")
	writeDataFile(t, dir, "detok-resource.txt", "")
	writeDataFile(t, dir, "top-level-domain-codes.txt", "com\norg\nkz\n")

	s, err := Load(dir, "eng")
	require.NoError(t, err)

	e, ok := s.Lookup(KindAbbrev, "Mr.")
	require.True(t, ok)
	assert.Equal(t, "person-title", e.SemClass)

	e2, ok := s.Lookup(KindAbbrev, "e.g.")
	require.True(t, ok)
	assert.Equal(t, "for example", e2.Exp)

	assert.True(t, s.IsValidTLD("com"))
	assert.False(t, s.IsValidTLD("zzz"))
}

func TestLoadMissingLanguageFileIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "tok-resource.txt", "")
	writeDataFile(t, dir, "tok-resource-eng-global.txt", "")
	writeDataFile(t, dir, "detok-resource.txt", "")
	writeDataFile(t, dir, "top-level-domain-codes.txt", "com\n")

	s, err := Load(dir, "xyz")
	require.NoError(t, err)
	require.NotEmpty(t, s.Warnings)
}

func TestSuffixVariationsExpand(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "tok-resource.txt", "::misspelling teh ::target the ::suffix-variations s\n")
	writeDataFile(t, dir, "tok-resource-eng-global.txt", "")
	writeDataFile(t, dir, "detok-resource.txt", "")
	writeDataFile(t, dir, "top-level-domain-codes.txt", "com\n")

	s, err := Load(dir, "eng")
	require.NoError(t, err)

	_, ok := s.Lookup(KindMisspelling, "teh")
	assert.True(t, ok)
	_, ok = s.Lookup(KindMisspelling, "tehs")
	assert.True(t, ok)
}
