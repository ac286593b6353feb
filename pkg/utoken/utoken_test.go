package utoken

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeDataFile(t, dir, "tok-resource.txt", "::abbrev Mr. ::sem-class person-title\n")
	writeDataFile(t, dir, "tok-resource-eng-global.txt", "")
	writeDataFile(t, dir, "detok-resource.txt", "")
	writeDataFile(t, dir, "top-level-domain-codes.txt", "com\n")
	return dir
}

func TestTokenizerTokenizeString(t *testing.T) {
	tok, err := NewTokenizer("eng", setupDataDir(t), Options{})
	require.NoError(t, err)

	out, err := tok.TokenizeString("Mr. Smith arrived.")
	require.NoError(t, err)
	assert.Contains(t, out, "Mr.")
}

func TestTokenizerAnnotate(t *testing.T) {
	tok, err := NewTokenizer("eng", setupDataDir(t), Options{})
	require.NoError(t, err)

	toks, err := tok.Annotate("hello world", 3)
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, 3, toks[0].Line)
}

func TestRunBatchPreservesOrder(t *testing.T) {
	tok, err := NewTokenizer("eng", setupDataDir(t), Options{})
	require.NoError(t, err)

	lines := []string{"one", "two", "three", "four", "five"}
	results, err := tok.RunBatch(context.Background(), lines, 3)
	require.NoError(t, err)
	require.Len(t, results, len(lines))
	for i, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, lines[i], r.Surface)
	}
}

func TestDetokenizerRoundTrip(t *testing.T) {
	dir := setupDataDir(t)
	tok, err := NewTokenizer("eng", dir, Options{})
	require.NoError(t, err)
	detok, err := NewDetokenizer("eng", dir)
	require.NoError(t, err)

	surface, err := tok.TokenizeString("Hello, world!")
	require.NoError(t, err)

	out, err := detok.DetokenizeString(surface)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", out)
}

func TestDetokenizerRoundTripContractionNoDoubleLetter(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "tok-resource.txt", "")
	writeDataFile(t, dir, "tok-resource-eng-global.txt", "::contraction can't ::target can n't\n")
	writeDataFile(t, dir, "detok-resource.txt", "")
	writeDataFile(t, dir, "top-level-domain-codes.txt", "com\n")

	tok, err := NewTokenizer("eng", dir, Options{})
	require.NoError(t, err)
	detok, err := NewDetokenizer("eng", dir)
	require.NoError(t, err)

	surface, err := tok.TokenizeString("can't")
	require.NoError(t, err)
	assert.Equal(t, "can n't", surface)

	out, err := detok.DetokenizeString(surface)
	require.NoError(t, err)
	assert.Equal(t, "can't", out)
}
