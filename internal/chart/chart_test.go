package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartFinalizeCoverage(t *testing.T) {
	c := New("Hi there")
	c.InsertToken(Token{Start: 0, End: 2, Surface: "Hi", Type: WordB})
	c.InsertToken(Token{Start: 3, End: 8, Surface: "there", Type: WordB})
	c.MarkDeleted(2) // the space between "Hi" and "there"
	require.NoError(t, c.Finalize())
	assert.Equal(t, "Hi there", c.SurfaceStream())
}

func TestChartFinalizeDetectsGap(t *testing.T) {
	c := New("Hi there")
	c.InsertToken(Token{Start: 0, End: 2, Surface: "Hi", Type: WordB})
	c.InsertToken(Token{Start: 3, End: 8, Surface: "there", Type: WordB})
	// offset 2 never marked deleted nor covered
	assert.Error(t, c.Finalize())
}

func TestChartFinalizeDetectsOverlap(t *testing.T) {
	c := New("abc")
	c.InsertToken(Token{Start: 0, End: 2, Surface: "ab", Type: WordB})
	c.InsertToken(Token{Start: 1, End: 3, Surface: "bc", Type: WordB})
	assert.Error(t, c.Finalize())
}

func TestChartTokensSortedByStart(t *testing.T) {
	c := New("ab cd")
	c.InsertToken(Token{Start: 3, End: 5, Surface: "cd", Type: WordB})
	c.InsertToken(Token{Start: 0, End: 2, Surface: "ab", Type: WordB})
	c.MarkDeleted(2)
	toks := c.Tokens()
	require.Len(t, toks, 2)
	assert.Equal(t, "ab", toks[0].Surface)
	assert.Equal(t, "cd", toks[1].Surface)
}
