package emitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utoken-go/utoken/internal/chart"
)

func sampleChart(t *testing.T) *chart.Chart {
	t.Helper()
	c := chart.New("Hi there")
	c.InsertToken(chart.Token{Start: 0, End: 2, Surface: "Hi", Type: chart.WordB})
	c.InsertToken(chart.Token{Start: 3, End: 8, Surface: "there", Type: chart.WordB, SemClass: "greeting"})
	c.MarkDeleted(2)
	require.NoError(t, c.Finalize())
	return c
}

func TestSurfacePlain(t *testing.T) {
	c := sampleChart(t)
	assert.Equal(t, "Hi there", Surface(c, false))
}

func TestSurfaceWithMarkup(t *testing.T) {
	c := chart.New("(hi)")
	c.InsertToken(chart.Token{Start: 0, End: 1, Surface: "(", Type: chart.PunctB, MarkupRight: true})
	c.InsertToken(chart.Token{Start: 1, End: 3, Surface: "hi", Type: chart.WordB})
	c.InsertToken(chart.Token{Start: 3, End: 4, Surface: ")", Type: chart.PunctE, MarkupLeft: true})
	require.NoError(t, c.Finalize())
	assert.Equal(t, "(@ hi @)", Surface(c, false))
}

func TestSurfaceSimpleSuppressesMarkup(t *testing.T) {
	c := chart.New("(hi)")
	c.InsertToken(chart.Token{Start: 0, End: 1, Surface: "(", Type: chart.PunctB, MarkupRight: true})
	c.InsertToken(chart.Token{Start: 1, End: 3, Surface: "hi", Type: chart.WordB})
	c.InsertToken(chart.Token{Start: 3, End: 4, Surface: ")", Type: chart.PunctE, MarkupLeft: true})
	require.NoError(t, c.Finalize())
	assert.Equal(t, "( hi )", Surface(c, true))
}

func TestWriteAnnotationDoubleColon(t *testing.T) {
	c := sampleChart(t)
	var b strings.Builder
	require.NoError(t, WriteAnnotation(&b, c, 1, "Hi there", FormatDoubleColon))
	out := b.String()
	assert.Contains(t, out, "::line 1 ::s Hi there")
	assert.Contains(t, out, "::span 0-2 ::type WORD-B ::surf Hi")
	assert.Contains(t, out, "::sem-class greeting")
}

func TestWriteAnnotationJSON(t *testing.T) {
	c := sampleChart(t)
	var b strings.Builder
	require.NoError(t, WriteAnnotation(&b, c, 1, "Hi there", FormatJSON))
	assert.Contains(t, b.String(), `"surf":"Hi"`)
}

func TestWriteAnnotationUnknownFormat(t *testing.T) {
	c := sampleChart(t)
	var b strings.Builder
	assert.Error(t, WriteAnnotation(&b, c, 1, "Hi there", Format("bogus")))
}
