package segmenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleText = "Hello Mr. Smith, how are you doing today? The weather is great, and Python is awesome. " +
	"The sky is pinkish-blue. You shouldn't eat cardboard."

func TestNaive_SplitsOnEveryPeriod(t *testing.T) {
	sents := NewNaive().Segment(exampleText)

	require.Len(t, sents, 5)
	assert.Equal(t, "Hello Mr.", sents[0].Text)
	assert.Equal(t, "Smith, how are you doing today?", sents[1].Text)
	assert.Equal(t, "You shouldn't eat cardboard.", sents[4].Text)
}

func TestNaive_Offsets(t *testing.T) {
	text := "  First one.  Second one!\n\nThird (really?) one"
	sents := NewNaive().Segment(text)

	require.Len(t, sents, 3)
	for _, s := range sents {
		assert.Equal(t, s.Text, text[s.Start:s.End])
	}
	assert.Equal(t, "Third (really?) one", sents[2].Text)
}

func TestNaive_Brackets(t *testing.T) {
	sents := NewNaive().Segment("Third (really?) one")
	require.Len(t, sents, 1)
	assert.Equal(t, "Third (really?) one", sents[0].Text)

	sents = NewNaive().Segment("See [note.] Then")
	require.Len(t, sents, 1)
}

func TestNaive_ClosingQuoteStaysWithSentence(t *testing.T) {
	sents := NewNaive().Segment(`He said "Stop!" Then he left. “Fine.” Done`)

	require.Len(t, sents, 4)
	assert.Equal(t, `He said "Stop!"`, sents[0].Text)
	assert.Equal(t, "Then he left.", sents[1].Text)
	assert.Equal(t, "“Fine.”", sents[2].Text)
	assert.Equal(t, "Done", sents[3].Text)
}

func TestNaive_NoTokenLoss(t *testing.T) {
	sents := NewNaive().Segment(exampleText)

	var parts []string
	for _, s := range sents {
		parts = append(parts, s.Text)
	}
	assert.Equal(t, strings.Fields(exampleText), strings.Fields(strings.Join(parts, " ")))
}

func TestNaive_DecimalIsNotABoundary(t *testing.T) {
	sents := NewNaive().Segment("Pi is 3.14 roughly. Yes.")
	require.Len(t, sents, 2)
	assert.Equal(t, "Pi is 3.14 roughly.", sents[0].Text)
}

func TestNaive_Empty(t *testing.T) {
	assert.Empty(t, NewNaive().Segment(""))
	assert.Empty(t, NewNaive().Segment("   \n\t "))
}
