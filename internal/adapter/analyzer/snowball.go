package analyzer

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// SnowballStemmer stems with the English Snowball (Porter2) algorithm.
type SnowballStemmer struct {
	stemStopwords bool
}

func NewSnowballStemmer(stemStopwords bool) *SnowballStemmer {
	return &SnowballStemmer{stemStopwords: stemStopwords}
}

func (s *SnowballStemmer) Name() string {
	return "snowball"
}

func (s *SnowballStemmer) Stem(word string) string {
	word = strings.ToLower(word)
	if !isASCIIWord(word) {
		return word
	}
	return english.Stem(word, s.stemStopwords)
}
