package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utoken-go/utoken/internal/charclass"
	"github.com/utoken-go/utoken/internal/resource"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func loadStore(t *testing.T, lcode string, files map[string]string) *resource.Store {
	t.Helper()
	dir := t.TempDir()
	base := map[string]string{
		"tok-resource.txt":             "",
		"tok-resource-eng-global.txt":  "",
		"detok-resource.txt":           "",
		"top-level-domain-codes.txt":   "com\norg\nnet\nio\n",
	}
	for name, content := range files {
		base[name] = content
	}
	for name, content := range base {
		writeDataFile(t, dir, name, content)
	}
	s, err := resource.Load(dir, lcode)
	require.NoError(t, err)
	return s
}

func tokenizeLine(t *testing.T, line string, store *resource.Store, opts Options) []string {
	t.Helper()
	tables := charclass.New()
	c, err := Tokenize(line, store, tables, opts)
	require.NoError(t, err)
	var out []string
	for _, tok := range c.Tokens() {
		out = append(out, tok.Surface)
	}
	return out
}

func TestTokenizeBasicSentence(t *testing.T) {
	store := loadStore(t, "eng", map[string]string{
		"tok-resource.txt": "::punct-split , ::side both\n::punct-split ! ::side end\n",
	})
	out := tokenizeLine(t, "Hello, world!", store, Options{})
	assert.Equal(t, []string{"Hello", ",", "world", "!"}, out)
}

func TestTokenizeAbbreviationWithContext(t *testing.T) {
	store := loadStore(t, "eng", map[string]string{
		"tok-resource.txt": "::abbrev Mr. ::sem-class person-title ::right-context ^\\s*\\p{Lu}\n",
	})
	out := tokenizeLine(t, "Mr. Miller arrived.", store, Options{})
	assert.Equal(t, "Mr.", out[0])
	assert.Equal(t, "Miller", out[1])
}

func TestTokenizeContractionSplitsIntoDecontractionPieces(t *testing.T) {
	store := loadStore(t, "eng", map[string]string{
		"tok-resource.txt": "::contraction can't ::target can not\n",
	})
	out := tokenizeLine(t, "I can't go.", store, Options{})
	assert.Contains(t, out, "can")
	assert.Contains(t, out, "not")
}

func TestTokenizeLexicalHyphenatedExpression(t *testing.T) {
	store := loadStore(t, "eng", map[string]string{
		"tok-resource.txt": "::lexical T-shirt\n",
	})
	out := tokenizeLine(t, "a T-shirt store", store, Options{})
	assert.Contains(t, out, "T-shirt")
}

func TestTokenizeURLAndEmail(t *testing.T) {
	store := loadStore(t, "eng", nil)
	out := tokenizeLine(t, "see https://example.com/a or bob@example.com", store, Options{})
	assert.Contains(t, out, "https://example.com/a")
	assert.Contains(t, out, "bob@example.com")
}

func TestTokenizeHandleAndHashtag(t *testing.T) {
	store := loadStore(t, "eng", nil)
	out := tokenizeLine(t, "ping @alice about #go", store, Options{})
	assert.Contains(t, out, "@alice")
	assert.Contains(t, out, "#go")
}

func TestTokenizeLineID(t *testing.T) {
	store := loadStore(t, "eng", nil)
	tables := charclass.New()
	c, err := Tokenize("1001 Hello there.", store, tables, Options{FirstTokenIsLineID: true})
	require.NoError(t, err)
	toks := c.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "1001", toks[0].Surface)
}

func TestTokenizeFilenamePreserved(t *testing.T) {
	store := loadStore(t, "eng", map[string]string{
		"tok-resource.txt": "::preserve pdf ::side filename-ext\n",
	})
	out := tokenizeLine(t, "see report.pdf now", store, Options{})
	assert.Contains(t, out, "report.pdf")
}

func TestTokenizeCoversEveryOriginalOffset(t *testing.T) {
	store := loadStore(t, "eng", nil)
	tables := charclass.New()
	c, err := Tokenize("Capt. O'Connor's car can't've cost $100,000.", store, tables, Options{})
	require.NoError(t, err)
	require.NoError(t, c.Finalize())
}

func TestNormalizeIdempotent(t *testing.T) {
	tables := charclass.New()
	once := Normalize("a\tb c", tables)
	twice := Normalize(once, tables)
	assert.Equal(t, once, twice)
}
