package analyzer

import (
	"sort"
	"strings"
)

// PorterStemmer implements the Porter stemming algorithm.
type PorterStemmer struct{}

// NewPorterStemmer creates a new Porter stemmer.
func NewPorterStemmer() *PorterStemmer {
	return &PorterStemmer{}
}

func (p *PorterStemmer) Name() string {
	return "porter"
}

// Stem returns the stem of a word using the Porter algorithm.
// The result is always lowercase.
func (p *PorterStemmer) Stem(word string) string {
	word = strings.ToLower(word)
	if len(word) <= 2 || !isASCIIWord(word) {
		return word
	}

	word = step1a(word)
	word = step1b(word)
	word = step1c(word)
	word = step2(word)
	word = step3(word)
	word = step4(word)
	word = step5a(word)
	word = step5b(word)

	return word
}

// StemAll stems every token, preserving order.
func StemAll(s interface{ Stem(string) string }, tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = s.Stem(t)
	}
	return out
}

// isASCIIWord reports whether word is made only of lowercase ASCII letters.
// Punctuation, numbers and contractions pass through unchanged.
func isASCIIWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

type suffixRule struct {
	suffix      string
	replacement string
}

// Rule tables are sorted longest suffix first so the longest match wins.
var (
	step2Rules = byLength([]suffixRule{
		{"ational", "ate"}, {"tional", "tion"}, {"enci", "ence"}, {"anci", "ance"},
		{"izer", "ize"}, {"bli", "ble"}, {"alli", "al"}, {"entli", "ent"},
		{"eli", "e"}, {"ousli", "ous"}, {"ization", "ize"}, {"ation", "ate"},
		{"ator", "ate"}, {"alism", "al"}, {"iveness", "ive"}, {"fulness", "ful"},
		{"ousness", "ous"}, {"aliti", "al"}, {"iviti", "ive"}, {"biliti", "ble"},
		{"logi", "log"},
	})
	step3Rules = byLength([]suffixRule{
		{"icate", "ic"}, {"ative", ""}, {"alize", "al"}, {"iciti", "ic"},
		{"ical", "ic"}, {"ful", ""}, {"ness", ""},
	})
	step4Suffixes = byLength([]suffixRule{
		{"al", ""}, {"ance", ""}, {"ence", ""}, {"er", ""}, {"ic", ""},
		{"able", ""}, {"ible", ""}, {"ant", ""}, {"ement", ""}, {"ment", ""},
		{"ent", ""}, {"ion", ""}, {"ou", ""}, {"ism", ""}, {"ate", ""},
		{"iti", ""}, {"ous", ""}, {"ive", ""}, {"ize", ""},
	})
)

func byLength(rules []suffixRule) []suffixRule {
	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].suffix) > len(rules[j].suffix)
	})
	return rules
}

// longestMatch returns the first rule whose suffix ends word.
func longestMatch(word string, rules []suffixRule) (suffixRule, bool) {
	for _, r := range rules {
		if strings.HasSuffix(word, r.suffix) {
			return r, true
		}
	}
	return suffixRule{}, false
}

func isConsonant(word string, i int) bool {
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(word, i-1)
	}
	return true
}

func measure(word string) int {
	n := len(word)
	m := 0
	i := 0

	// Skip initial consonants
	for i < n && isConsonant(word, i) {
		i++
	}

	for i < n {
		for i < n && !isConsonant(word, i) {
			i++
		}
		if i >= n {
			break
		}
		m++
		for i < n && isConsonant(word, i) {
			i++
		}
	}

	return m
}

func hasVowel(word string) bool {
	for i := 0; i < len(word); i++ {
		if !isConsonant(word, i) {
			return true
		}
	}
	return false
}

func endsDoubleConsonant(word string) bool {
	n := len(word)
	if n < 2 {
		return false
	}
	return word[n-1] == word[n-2] && isConsonant(word, n-1)
}

func endsCVC(word string) bool {
	n := len(word)
	if n < 3 {
		return false
	}
	if !isConsonant(word, n-3) || isConsonant(word, n-2) || !isConsonant(word, n-1) {
		return false
	}
	c := word[n-1]
	return c != 'w' && c != 'x' && c != 'y'
}

func step1a(word string) string {
	switch {
	case strings.HasSuffix(word, "sses"), strings.HasSuffix(word, "ies"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}

func step1b(word string) string {
	if strings.HasSuffix(word, "eed") {
		if measure(word[:len(word)-3]) > 0 {
			return word[:len(word)-1]
		}
		return word
	}

	modified := false
	if strings.HasSuffix(word, "ed") {
		if stem := word[:len(word)-2]; hasVowel(stem) {
			word = stem
			modified = true
		}
	} else if strings.HasSuffix(word, "ing") {
		if stem := word[:len(word)-3]; hasVowel(stem) {
			word = stem
			modified = true
		}
	}

	if !modified {
		return word
	}
	if strings.HasSuffix(word, "at") || strings.HasSuffix(word, "bl") || strings.HasSuffix(word, "iz") {
		return word + "e"
	}
	if endsDoubleConsonant(word) {
		c := word[len(word)-1]
		if c != 'l' && c != 's' && c != 'z' {
			return word[:len(word)-1]
		}
	}
	if measure(word) == 1 && endsCVC(word) {
		return word + "e"
	}
	return word
}

func step1c(word string) string {
	if strings.HasSuffix(word, "y") {
		stem := word[:len(word)-1]
		if hasVowel(stem) {
			return stem + "i"
		}
	}
	return word
}

func step2(word string) string {
	r, ok := longestMatch(word, step2Rules)
	if !ok {
		return word
	}
	stem := word[:len(word)-len(r.suffix)]
	if measure(stem) > 0 {
		return stem + r.replacement
	}
	return word
}

func step3(word string) string {
	r, ok := longestMatch(word, step3Rules)
	if !ok {
		return word
	}
	stem := word[:len(word)-len(r.suffix)]
	if measure(stem) > 0 {
		return stem + r.replacement
	}
	return word
}

func step4(word string) string {
	r, ok := longestMatch(word, step4Suffixes)
	if !ok {
		return word
	}
	stem := word[:len(word)-len(r.suffix)]
	if measure(stem) <= 1 {
		return word
	}
	if r.suffix == "ion" {
		n := len(stem)
		if n == 0 || (stem[n-1] != 's' && stem[n-1] != 't') {
			return word
		}
	}
	return stem
}

func step5a(word string) string {
	if strings.HasSuffix(word, "e") {
		stem := word[:len(word)-1]
		m := measure(stem)
		if m > 1 {
			return stem
		}
		if m == 1 && !endsCVC(stem) {
			return stem
		}
	}
	return word
}

func step5b(word string) string {
	if measure(word) > 1 && endsDoubleConsonant(word) && word[len(word)-1] == 'l' {
		return word[:len(word)-1]
	}
	return word
}
