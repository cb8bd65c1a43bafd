package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerceptron_OneTagPerToken(t *testing.T) {
	p := NewPerceptron()

	tokens := []string{"Hello", "Mr.", "Smith", ",", "how", "are", "you", "doing", "today", "?"}
	tagged, err := p.Tag(tokens)
	require.NoError(t, err)
	require.Len(t, tagged, len(tokens))

	for i, tok := range tagged {
		assert.Equal(t, tokens[i], tok.Text)
		assert.True(t, IsKnown(tok.Tag), "unexpected tag %q for %q", tok.Tag, tok.Text)
	}
	assert.Equal(t, "NNP", tagged[2].Tag)
	assert.Equal(t, ",", tagged[3].Tag)
}

func TestPerceptron_Empty(t *testing.T) {
	tagged, err := NewPerceptron().Tag(nil)
	require.NoError(t, err)
	assert.Empty(t, tagged)
}

func TestTagset(t *testing.T) {
	assert.Len(t, WordTags(), 36)
	assert.Equal(t, "CC", WordTags()[0].Tag)
	assert.Equal(t, "proper noun, singular", Describe("NNP"))
	assert.True(t, IsKnown("PRP$"))
	assert.True(t, IsKnown("."))
	assert.False(t, IsKnown("XYZ"))
	assert.Equal(t, "", Describe("XYZ"))
	assert.Greater(t, len(Tagset()), 36)
}
