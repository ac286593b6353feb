package charclass

import "unicode"

// special single-codepoint classes that unicode.RangeTable doesn't expose
// directly as a named category.
const (
	zeroWidthJoiner    = '‍'
	zeroWidthNonJoiner = '‌'
)

var apostropheLike = map[rune]bool{
	'\'': true, '’': true, 'ʼ': true, '`': true,
}

var hyphenLike = map[rune]bool{
	'-': true, '‐': true, '‑': true, '‒': true,
	'–': true, '—': true,
}

var quoteLike = map[rune]bool{
	'"': true, '‘': true, '’': true, '“': true, '”': true,
	'«': true, '»': true,
}

// isDeletableControl identifies control characters and
// surrogate halves that are removed outright during normalization, never
// emitted as tokens.
func isDeletableControl(r rune) bool {
	if r == utf8RuneError {
		return true
	}
	if r >= 0xD800 && r <= 0xDFFF { // surrogate halves, never valid in a rune
		return true
	}
	if r == '\t' || r == '\n' || r == '\r' {
		return false // these become whitespace, not deleted
	}
	return unicode.IsControl(r)
}

const utf8RuneError = '�'

// CodepointVector computes the BitVector for a single rune. It is the
// per-codepoint building block every other aggregate is derived from.
func CodepointVector(r rune) BitVector {
	var bv BitVector

	switch {
	case isDeletableControl(r):
		bv |= BitControl | BitDeletableControl
		return bv
	case unicode.IsControl(r):
		bv |= BitControl
	}

	if unicode.IsSpace(r) {
		bv |= BitSpace
	}
	if unicode.IsLetter(r) {
		bv |= BitLetter
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r) {
		bv |= BitMark
	}
	if unicode.IsDigit(r) || unicode.IsNumber(r) {
		bv |= BitDigit
		if r > unicode.MaxASCII {
			bv |= BitDigitAnyScript
		}
	}
	if unicode.IsPunct(r) {
		bv |= BitPunct
	}
	if unicode.Is(unicode.Sc, r) {
		bv |= BitCurrency
	}
	if unicode.Is(unicode.So, r) || unicode.Is(unicode.Sk, r) || isEmojiRange(r) {
		bv |= BitEmojiOrSymbol
	}
	if isVowel(r) {
		bv |= BitVowel
	}

	switch r {
	case '#':
		bv |= BitHashMarker
	case '@':
		bv |= BitAtSign
	case '<', '>':
		bv |= BitXMLBracket
	case '.':
		bv |= BitDot
	case '_':
		bv |= BitUnderscore
	case ':':
		bv |= BitColon
	case '/':
		bv |= BitSlash
	case zeroWidthJoiner:
		bv |= BitZeroWidthJoiner
	case zeroWidthNonJoiner:
		bv |= BitZeroWidthNonJoiner
	}

	if apostropheLike[r] {
		bv |= BitApostropheLike
	}
	if hyphenLike[r] {
		bv |= BitHyphenLike
	}
	if quoteLike[r] {
		bv |= BitQuoteLike
	}

	if unicode.Is(unicode.Arabic, r) {
		bv |= BitArabic
	}
	if unicode.Is(unicode.Hebrew, r) {
		bv |= BitHebrew
	}
	if unicode.Is(unicode.Devanagari, r) {
		bv |= BitDevanagari
	}
	if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
		bv |= BitCJK
	}

	return bv
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// isEmojiRange covers the common emoji blocks; unicode.So already catches
// most of these but several emoji live in ranges Go's "So" category misses
// (regional indicators, skin-tone modifiers, variation selectors).
func isEmojiRange(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tone modifiers
		return true
	}
	return false
}
