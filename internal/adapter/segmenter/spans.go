package segmenter

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"nlpwalk/internal/domain"
)

// Normalize returns text in Unicode NFC form. All offsets reported by the
// segmenters refer to the normalized text.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// locate maps backend sentence strings back onto text, producing byte
// offsets. Pieces that cannot be found (the backend rewrote them) keep
// Start and End at -1.
func locate(text string, pieces []string) []domain.Sentence {
	out := make([]domain.Sentence, 0, len(pieces))
	cursor := 0
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		idx := strings.Index(text[cursor:], p)
		if idx < 0 {
			out = append(out, domain.Sentence{Text: p, Start: -1, End: -1})
			continue
		}
		start := cursor + idx
		end := start + len(p)
		out = append(out, domain.Sentence{Text: p, Start: start, End: end})
		cursor = end
	}
	return out
}
