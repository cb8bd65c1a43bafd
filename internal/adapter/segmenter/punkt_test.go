package segmenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPunkt_AbbreviationIsNotABoundary(t *testing.T) {
	p, err := NewPunkt("english")
	require.NoError(t, err)

	sents := p.Segment("Hello Mr. Smith, how are you doing today?")
	require.Len(t, sents, 1)
	assert.Equal(t, "Hello Mr. Smith, how are you doing today?", sents[0].Text)
}

func TestPunkt_ExampleText(t *testing.T) {
	p, err := NewPunkt("english")
	require.NoError(t, err)

	sents := p.Segment(exampleText)
	require.Len(t, sents, 4)
	assert.Equal(t, "The sky is pinkish-blue.", sents[2].Text)

	var parts []string
	for _, s := range sents {
		if s.Start >= 0 {
			assert.Equal(t, s.Text, exampleText[s.Start:s.End])
		}
		parts = append(parts, s.Text)
	}
	assert.Equal(t, strings.Fields(exampleText), strings.Fields(strings.Join(parts, " ")))
}

func TestPunkt_Empty(t *testing.T) {
	p, err := NewPunkt("english")
	require.NoError(t, err)

	assert.Empty(t, p.Segment(""))
}

func TestPunkt_UnknownLanguage(t *testing.T) {
	_, err := NewPunkt("latin")
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	text := "One. Two. One."
	sents := locate(text, []string{"One.", " Two. ", "One.", "Missing"})

	require.Len(t, sents, 4)
	assert.Equal(t, 0, sents[0].Start)
	assert.Equal(t, 5, sents[1].Start)
	assert.Equal(t, 10, sents[2].Start)
	assert.Equal(t, -1, sents[3].Start)
}
