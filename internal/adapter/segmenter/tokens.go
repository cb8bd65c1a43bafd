package segmenter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const numberType = "##number##"

var (
	reNumber   = regexp.MustCompile(`^-?[\.,]?\d[\d,\.-]*\.?$`)
	reEllipsis = regexp.MustCompile(`\.\.+$`)
	reInitial  = regexp.MustCompile(`^[^\W\d]\.$`)
	reAlpha    = regexp.MustCompile(`^[^\W\d]+$`)
)

// trainToken is a word token annotated during training.
type trainToken struct {
	text        string
	typ         string
	periodFinal bool
	paraStart   bool
	lineStart   bool

	sentBreak bool
	abbr      bool
	ellipsis  bool
}

func newTrainToken(text string) *trainToken {
	typ := strings.ToLower(text)
	if reNumber.MatchString(typ) {
		typ = numberType
	}
	return &trainToken{
		text:        text,
		typ:         typ,
		periodFinal: strings.HasSuffix(text, "."),
	}
}

func (t *trainToken) typeNoPeriod() string {
	if len(t.typ) > 1 && strings.HasSuffix(t.typ, ".") {
		return t.typ[:len(t.typ)-1]
	}
	return t.typ
}

func (t *trainToken) typeNoSentPeriod() string {
	if t.sentBreak {
		return t.typeNoPeriod()
	}
	return t.typ
}

func (t *trainToken) firstUpper() bool {
	r, _ := utf8.DecodeRuneInString(t.text)
	return unicode.IsUpper(r)
}

func (t *trainToken) firstLower() bool {
	r, _ := utf8.DecodeRuneInString(t.text)
	return unicode.IsLower(r)
}

func (t *trainToken) isEllipsis() bool {
	return reEllipsis.MatchString(t.text)
}

func (t *trainToken) isNumber() bool {
	return strings.HasPrefix(t.typ, numberType)
}

func (t *trainToken) isInitial() bool {
	return reInitial.MatchString(t.text)
}

func (t *trainToken) isAlpha() bool {
	return reAlpha.MatchString(t.text)
}

func (t *trainToken) isNonPunct() bool {
	return hasNonPunct(t.typ)
}

func hasNonPunct(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

const (
	leadingPunct  = "\"'([{“‘`"
	trailingPunct = "\"')]}”’,;:!?"
)

// trainingTokens splits text on whitespace and peels punctuation off each
// chunk. A single trailing period stays attached so that abbreviation
// candidates keep their period; "?" and "!" become tokens of their own.
func trainingTokens(text string) []*trainToken {
	var out []*trainToken

	lines := strings.Split(text, "\n")
	paraStart := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			paraStart = true
			continue
		}
		lineStart := true
		for _, chunk := range strings.Fields(line) {
			for _, piece := range splitChunk(chunk) {
				tok := newTrainToken(piece)
				tok.lineStart = lineStart
				tok.paraStart = paraStart
				lineStart = false
				paraStart = false
				out = append(out, tok)
			}
		}
	}
	return out
}

func splitChunk(chunk string) []string {
	chunk = strings.TrimLeft(chunk, leadingPunct)

	var trailing []string
	for chunk != "" {
		r, size := utf8.DecodeLastRuneInString(chunk)
		if !strings.ContainsRune(trailingPunct, r) {
			break
		}
		if r == '?' || r == '!' {
			trailing = append([]string{string(r)}, trailing...)
		}
		chunk = chunk[:len(chunk)-size]
	}

	var out []string
	if chunk != "" && hasNonPunct(chunk) {
		out = append(out, chunk)
	} else if chunk != "" && reEllipsis.MatchString(chunk) {
		out = append(out, chunk)
	}
	return append(out, trailing...)
}
