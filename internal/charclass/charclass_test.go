package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodepointVectorBasics(t *testing.T) {
	tbl := New()
	require.NotNil(t, tbl)

	assert.True(t, tbl.Vector('a').Has(BitLetter))
	assert.True(t, tbl.Vector('5').Has(BitDigit))
	assert.False(t, tbl.Vector('5').Has(BitDigitAnyScript))
	assert.True(t, tbl.Vector('٥').Has(BitDigitAnyScript)) // Arabic-Indic 5
	assert.True(t, tbl.Vector('$').Has(BitCurrency))
	assert.True(t, tbl.Vector('#').Has(BitHashMarker))
	assert.True(t, tbl.Vector('@').Has(BitAtSign))
	assert.True(t, tbl.Vector('\'').Has(BitApostropheLike))
	assert.True(t, tbl.Vector('-').Has(BitHyphenLike))
	assert.True(t, tbl.Vector('"').Has(BitQuoteLike))
	assert.True(t, tbl.Vector('<').Has(BitXMLBracket))
	assert.True(t, tbl.Vector('.').Has(BitDot))
}

func TestScriptDetection(t *testing.T) {
	tbl := New()
	assert.True(t, tbl.Vector('ع').Has(BitArabic))
	assert.True(t, tbl.Vector('א').Has(BitHebrew))
	assert.True(t, tbl.Vector('क').Has(BitDevanagari))
	assert.True(t, tbl.Vector('漢').Has(BitCJK))
	assert.False(t, tbl.Vector('a').Has(BitArabic))
}

func TestDeletableControl(t *testing.T) {
	tbl := New()
	assert.True(t, tbl.Vector(rune(0x0001)).Has(BitDeletableControl))
	assert.False(t, tbl.Vector('\n').Has(BitDeletableControl))
	assert.True(t, tbl.Vector(rune(0xD800)).Has(BitDeletableControl))
}

func TestLineAndSpanVector(t *testing.T) {
	tbl := New()
	runes := []rune("Mr. O'Connor's $100")
	lv := tbl.LineVector(runes)
	assert.True(t, lv.HasAny(BitCurrency))
	assert.True(t, lv.HasAny(BitApostropheLike))

	sv := tbl.SpanVector(runes, 0, 3) // "Mr."
	assert.False(t, sv.HasAny(BitCurrency))
	assert.True(t, sv.HasAny(BitDot))
}
