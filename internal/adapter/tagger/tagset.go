package tagger

import "sort"

// TagInfo describes one tag of the Penn Treebank tagset.
type TagInfo struct {
	Tag         string `json:"tag"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

// wordTags are the 36 Penn Treebank word-level tags.
var wordTags = []TagInfo{
	{"CC", "coordinating conjunction", "and"},
	{"CD", "cardinal digit", "2"},
	{"DT", "determiner", "the"},
	{"EX", "existential there", "there is"},
	{"FW", "foreign word", "per se"},
	{"IN", "preposition/subordinating conjunction", "in"},
	{"JJ", "adjective", "big"},
	{"JJR", "adjective, comparative", "bigger"},
	{"JJS", "adjective, superlative", "biggest"},
	{"LS", "list marker", "1)"},
	{"MD", "modal", "could, will"},
	{"NN", "noun, singular", "desk"},
	{"NNS", "noun, plural", "desks"},
	{"NNP", "proper noun, singular", "Harrison"},
	{"NNPS", "proper noun, plural", "Americans"},
	{"PDT", "predeterminer", "all the kids"},
	{"POS", "possessive ending", "parent's"},
	{"PRP", "personal pronoun", "I, he, she"},
	{"PRP$", "possessive pronoun", "my, his, hers"},
	{"RB", "adverb", "very, silently"},
	{"RBR", "adverb, comparative", "better"},
	{"RBS", "adverb, superlative", "best"},
	{"RP", "particle", "give up"},
	{"SYM", "symbol", "%"},
	{"TO", "to", "go 'to' the store"},
	{"UH", "interjection", "errrrrrrrm"},
	{"VB", "verb, base form", "take"},
	{"VBD", "verb, past tense", "took"},
	{"VBG", "verb, gerund/present participle", "taking"},
	{"VBN", "verb, past participle", "taken"},
	{"VBP", "verb, sing. present, non-3d", "take"},
	{"VBZ", "verb, 3rd person sing. present", "takes"},
	{"WDT", "wh-determiner", "which"},
	{"WP", "wh-pronoun", "who, what"},
	{"WP$", "possessive wh-pronoun", "whose"},
	{"WRB", "wh-adverb", "where, when"},
}

var punctTags = []TagInfo{
	{".", "sentence-final punctuation", "."},
	{",", "comma", ","},
	{":", "colon or ellipsis", ";"},
	{"(", "opening bracket", "("},
	{")", "closing bracket", ")"},
	{"``", "opening quotation mark", "``"},
	{"''", "closing quotation mark", "''"},
	{"#", "pound sign", "#"},
	{"$", "dollar sign", "$"},
	{"-LRB-", "opening bracket", "("},
	{"-RRB-", "closing bracket", ")"},
}

var tagIndex = func() map[string]TagInfo {
	m := make(map[string]TagInfo, len(wordTags)+len(punctTags))
	for _, t := range wordTags {
		m[t.Tag] = t
	}
	for _, t := range punctTags {
		m[t.Tag] = t
	}
	return m
}()

// WordTags returns the word-level tags in alphabetical order.
func WordTags() []TagInfo {
	out := append([]TagInfo(nil), wordTags...)
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// Tagset returns every known tag, word tags first.
func Tagset() []TagInfo {
	out := WordTags()
	return append(out, punctTags...)
}

func IsKnown(tag string) bool {
	_, ok := tagIndex[tag]
	return ok
}

// Describe returns the description of tag, or "" if it is unknown.
func Describe(tag string) string {
	return tagIndex[tag].Description
}
