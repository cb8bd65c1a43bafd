package segmenter

import (
	"strings"

	"github.com/jdkato/prose/tokenize"

	"nlpwalk/internal/port"
)

// TreebankWords splits a sentence into Penn Treebank style tokens:
// punctuation is separated and contractions are split ("shouldn't" becomes
// "should", "n't").
type TreebankWords struct {
	tokenizer *tokenize.TreebankWordTokenizer
}

func NewTreebankWords() *TreebankWords {
	return &TreebankWords{tokenizer: tokenize.NewTreebankWordTokenizer()}
}

func (w *TreebankWords) Tokenize(sentence string) []string {
	sentence = strings.TrimSpace(Normalize(sentence))
	if sentence == "" {
		return nil
	}
	return w.tokenizer.Tokenize(sentence)
}

// WordsOf segments text into sentences and tokenizes each one, returning the
// concatenated tokens.
func WordsOf(seg port.SentenceSegmenter, words port.WordTokenizer, text string) []string {
	var out []string
	for _, s := range seg.Segment(text) {
		out = append(out, words.Tokenize(s.Text)...)
	}
	return out
}
