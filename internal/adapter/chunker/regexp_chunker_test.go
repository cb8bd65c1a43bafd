package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlpwalk/internal/domain"
)

func tagged(pairs ...string) []domain.TaggedToken {
	out := make([]domain.TaggedToken, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.TaggedToken{Text: pairs[i], Tag: pairs[i+1]})
	}
	return out
}

func mustGrammar(t *testing.T, text string) *Grammar {
	t.Helper()
	g, err := ParseGrammar("test", text)
	require.NoError(t, err)
	return g
}

func chunkTexts(tree domain.ChunkTree) [][]string {
	var out [][]string
	for _, n := range tree.Chunks() {
		var words []string
		for _, tok := range n.Tokens {
			words = append(words, tok.Text)
		}
		out = append(out, words)
	}
	return out
}

func TestDefaultGrammar(t *testing.T) {
	g := mustGrammar(t, DefaultGrammar)

	tests := []struct {
		name   string
		input  []domain.TaggedToken
		chunks [][]string
	}{
		{
			name:   "adverb verb proper noun noun",
			input:  tagged("quickly", "RB", "ran", "VBD", "Smith", "NNP", "home", "NN", ".", "."),
			chunks: [][]string{{"quickly", "ran", "Smith", "home"}},
		},
		{
			name:   "determiner is not part of chunk",
			input:  tagged("The", "DT", "President", "NNP", "spoke", "VBD", ".", "."),
			chunks: [][]string{{"President"}},
		},
		{
			name: "greedy and repeated",
			input: tagged("very", "RB", "quickly", "RB", "visited", "VBD", "Paris", "NNP",
				"today", "NN", "and", "CC", "Rome", "NNP"),
			chunks: [][]string{{"very", "quickly", "visited", "Paris", "today"}, {"Rome"}},
		},
		{
			name:   "adjacent proper nouns are separate chunks",
			input:  tagged("Hello", "NNP", "Mr.", "NNP", "Smith", "NNP", ",", ","),
			chunks: [][]string{{"Hello"}, {"Mr."}, {"Smith"}},
		},
		{
			name:   "comparative adverb matches RB.?",
			input:  tagged("faster", "RBR", "Bush", "NNP"),
			chunks: [][]string{{"faster", "Bush"}},
		},
		{
			name:   "NNPS does not match NNP",
			input:  tagged("Americans", "NNPS", "voted", "VBD"),
			chunks: nil,
		},
		{
			name:   "no proper noun",
			input:  tagged("how", "WRB", "are", "VBP", "you", "PRP", "?", "."),
			chunks: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := g.Chunk(tt.input)
			assert.Equal(t, "S", tree.Label)
			assert.Equal(t, tt.chunks, chunkTexts(tree))
			assert.Equal(t, tt.input, tree.Flatten())
			for _, n := range tree.Chunks() {
				assert.Equal(t, "Chunk", n.Label)
			}
		})
	}
}

func TestChunkPartition(t *testing.T) {
	g := mustGrammar(t, DefaultGrammar)
	input := tagged("I", "PRP", "really", "RB", "like", "VBP", "George", "NNP",
		"Washington", "NNP", "and", "CC", "his", "PRP$", "hat", "NN", ".", ".")

	tree := g.Chunk(input)

	assert.Equal(t, input, tree.Flatten())
	for _, n := range tree.Nodes {
		require.NotEmpty(t, n.Tokens)
		if !n.IsChunk() {
			assert.Len(t, n.Tokens, 1)
		}
	}
	assert.Equal(t, [][]string{{"really", "like", "George"}, {"Washington"}}, chunkTexts(tree))
}

func TestChunkEmpty(t *testing.T) {
	g := mustGrammar(t, DefaultGrammar)
	tree := g.Chunk(nil)
	assert.Empty(t, tree.Nodes)
	assert.Equal(t, "(S)", tree.String())
}

func TestChunkTreeString(t *testing.T) {
	g := mustGrammar(t, DefaultGrammar)
	tree := g.Chunk(tagged("Hello", "NNP", ",", ",", "friend", "NN"))
	assert.Equal(t, "(S (Chunk Hello/NNP) ,/, friend/NN)", tree.String())
	assert.Equal(t, "(S\n  (Chunk Hello/NNP)\n  ,/,\n  friend/NN)", tree.Pretty())
}

func TestCascade(t *testing.T) {
	g := mustGrammar(t, `
# noun phrases first, then prepositions
NP: {<DT>?<JJ>*<NN>}
PP: {<IN>}
`)
	require.Len(t, g.Rules(), 2)

	input := tagged("the", "DT", "big", "JJ", "dog", "NN", "sat", "VBD", "on", "IN", "a", "DT", "mat", "NN")
	tree := g.Chunk(input)

	var labels []string
	for _, n := range tree.Chunks() {
		labels = append(labels, n.Label)
	}
	assert.Equal(t, []string{"NP", "PP", "NP"}, labels)
	assert.Equal(t, input, tree.Flatten())
}

func TestLaterRuleCannotSpanChunk(t *testing.T) {
	g := mustGrammar(t, "A: {<NN>}\nB: {<DT><NN><VB>}")
	tree := g.Chunk(tagged("the", "DT", "dog", "NN", "ran", "VB"))
	assert.Equal(t, [][]string{{"dog"}}, chunkTexts(tree))
}

func TestMultipleGroupsOnOneLine(t *testing.T) {
	g := mustGrammar(t, "NP: {<NNP>+} {<DT><NN>}")
	require.Len(t, g.Rules(), 2)

	tree := g.Chunk(tagged("New", "NNP", "York", "NNP", "is", "VBZ", "a", "DT", "city", "NN"))
	assert.Equal(t, [][]string{{"New", "York"}, {"a", "city"}}, chunkTexts(tree))
}

func TestEscapedTag(t *testing.T) {
	g := mustGrammar(t, `P: {<PRP\$><NN>}`)
	tree := g.Chunk(tagged("his", "PRP$", "hat", "NN", "my", "PRP", "hat", "NN"))
	assert.Equal(t, [][]string{{"his", "hat"}}, chunkTexts(tree))
}

func TestParseGrammarErrors(t *testing.T) {
	bad := []string{
		"",
		"# only a comment",
		"Chunk {<NN>}",
		"Chunk: <NN>",
		"Chunk: {<NN}",
		"Chunk: {NN}",
		"Chunk: {<NN>>}",
		"Chunk: {<N<N>>}",
		"Chunk: {}",
		"Chunk: {<NN>",
		"Chunk: {<NN[>}",
	}
	for _, text := range bad {
		t.Run(text, func(t *testing.T) {
			_, err := ParseGrammar("bad", text)
			assert.ErrorIs(t, err, ErrInvalidGrammar)
		})
	}
}

func TestTagPatternToRegexp(t *testing.T) {
	expr, err := tagPatternToRegexp("<RB.?>*<NNP>")
	require.NoError(t, err)
	assert.Equal(t, `(?:(?:<(?:RB[^{}<>]?)>)*(?:<(?:NNP)>))`, expr)
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry([]string{"names", "nouns"}, map[string]string{
		"names": DefaultGrammar,
		"nouns": "NP: {<NN.*>+}",
	})
	require.NoError(t, err)

	assert.Equal(t, "names", r.Default())
	assert.Equal(t, []string{"names", "nouns"}, r.Names())

	g, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, "names", g.Name())

	g, err = r.Get("nouns")
	require.NoError(t, err)
	assert.Equal(t, "nouns", g.Name())

	_, err = r.Get("missing")
	assert.Error(t, err)
}

func TestRegistryDefaults(t *testing.T) {
	r, err := NewRegistry(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "default", r.Default())

	_, err = NewRegistry([]string{"x"}, map[string]string{"x": "bogus"})
	assert.ErrorIs(t, err, ErrInvalidGrammar)

	_, err = NewRegistry([]string{"y"}, map[string]string{})
	assert.Error(t, err)
}
