package segmenter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"nlpwalk/internal/domain"
)

// Naive splits after every '.', '!' or '?' run that is followed by
// whitespace or the end of the text. Closing quotation marks directly after
// the run stay with the sentence; a closing bracket does not end one. It
// knows nothing about abbreviations and is the fallback for an untrained
// boundary model.
type Naive struct{}

func NewNaive() *Naive {
	return &Naive{}
}

func (n *Naive) Segment(text string) []domain.Sentence {
	text = Normalize(text)
	var out []domain.Sentence

	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if !isTerminal(r) {
			continue
		}
		for i < len(text) {
			next, sz := utf8.DecodeRuneInString(text[i:])
			if !isTerminal(next) {
				break
			}
			i += sz
		}
		for i < len(text) {
			next, sz := utf8.DecodeRuneInString(text[i:])
			if !isClosingQuote(next) {
				break
			}
			i += sz
		}
		if i < len(text) {
			next, _ := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(next) {
				continue
			}
		}
		out = appendSpan(out, text, start, i)
		start = i
	}
	out = appendSpan(out, text, start, len(text))
	return out
}

func appendSpan(out []domain.Sentence, text string, start, end int) []domain.Sentence {
	seg := text[start:end]
	trimmed := strings.TrimLeftFunc(seg, unicode.IsSpace)
	start += len(seg) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	if trimmed == "" {
		return out
	}
	return append(out, domain.Sentence{Text: trimmed, Start: start, End: start + len(trimmed)})
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosingQuote(r rune) bool {
	switch r {
	case '"', '\'', '”', '’':
		return true
	}
	return false
}
