package detok

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/resource"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func loadStore(t *testing.T, detokResource string) *resource.Store {
	t.Helper()
	dir := t.TempDir()
	writeDataFile(t, dir, "tok-resource.txt", "")
	writeDataFile(t, dir, "tok-resource-eng-global.txt", "")
	writeDataFile(t, dir, "detok-resource.txt", detokResource)
	writeDataFile(t, dir, "top-level-domain-codes.txt", "com\n")
	s, err := resource.Load(dir, "eng")
	require.NoError(t, err)
	return s
}

func TestDetokenizeTokensClosingPunctAttachesLeft(t *testing.T) {
	e := New(nil)
	toks := []chart.Token{
		{Surface: "Hello", Type: chart.WordB},
		{Surface: ",", Type: chart.PunctE},
		{Surface: "world", Type: chart.WordB},
		{Surface: "!", Type: chart.PunctE},
	}
	assert.Equal(t, "Hello, world!", e.DetokenizeTokens(toks))
}

func TestDetokenizeTokensDecontractionAttachesToLeftPartner(t *testing.T) {
	e := New(nil)
	toks := []chart.Token{
		{Surface: "can", Type: chart.WordB},
		{Surface: "n't", Type: chart.Decontraction},
	}
	assert.Equal(t, "can't", e.DetokenizeTokens(toks))
}

func TestDetokenizeTokensPlainDecontractionHasNoDoubleLetter(t *testing.T) {
	e := New(nil)
	toks := []chart.Token{
		{Surface: "does", Type: chart.WordB},
		{Surface: "n't", Type: chart.Decontraction},
	}
	assert.Equal(t, "doesn't", e.DetokenizeTokens(toks))
}

func TestDetokenizeTokensReverseRuleReassemblesWont(t *testing.T) {
	store := loadStore(t, "::detok-attach n't ::target won't ::reverse-left will\n")
	e := New(store)
	toks := []chart.Token{
		{Surface: "will", Type: chart.WordB},
		{Surface: "n't", Type: chart.Decontraction},
		{Surface: "go", Type: chart.WordB},
	}
	assert.Equal(t, "won't go", e.DetokenizeTokens(toks))
}

func TestDetokenizeStringMarkupAttachesBothSides(t *testing.T) {
	e := New(nil)
	assert.Equal(t, "(quoted)", e.DetokenizeString("@( quoted @)"))
}

func TestDetokenizeStringPlainWordsGetSingleSpace(t *testing.T) {
	e := New(nil)
	assert.Equal(t, "a b c", e.DetokenizeString("a b c"))
}
