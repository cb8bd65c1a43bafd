package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MatchPolicy controls how tokens are compared against the stopword set.
type MatchPolicy string

const (
	// MatchExact compares the token as written, so "The" is kept.
	MatchExact MatchPolicy = "exact"
	// MatchLowercase folds the token to lowercase before lookup.
	MatchLowercase MatchPolicy = "lowercase"
)

// StopwordSet is a fixed set of high-frequency words excluded from analysis.
type StopwordSet struct {
	words  map[string]struct{}
	policy MatchPolicy
}

// NewStopwordSet builds the stopword set for language. Extra words are added
// to the built-in list.
func NewStopwordSet(language string, policy MatchPolicy, extra []string) (*StopwordSet, error) {
	base, ok := stopwordLists[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("no stopword list for language: %s", language)
	}
	switch policy {
	case "":
		policy = MatchExact
	case MatchExact, MatchLowercase:
	default:
		return nil, fmt.Errorf("unknown stopword match policy: %s", policy)
	}

	m := make(map[string]struct{}, len(base)+len(extra))
	for _, w := range base {
		m[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.TrimSpace(w)
		if w != "" {
			m[norm.NFC.String(w)] = struct{}{}
		}
	}
	return &StopwordSet{words: m, policy: policy}, nil
}

// Contains reports whether token is a stopword under the set's policy.
func (s *StopwordSet) Contains(token string) bool {
	token = norm.NFC.String(token)
	if s.policy == MatchLowercase {
		token = strings.ToLower(token)
	}
	_, ok := s.words[token]
	return ok
}

// Filter returns the tokens that are not stopwords, in their original order.
func (s *StopwordSet) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Words returns the set's members, sorted.
func (s *StopwordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (s *StopwordSet) Len() int {
	return len(s.words)
}

var stopwordLists = map[string][]string{
	"english": englishStopwords,
}

// englishStopwords is the conventional 179-word English list.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them", "their",
	"theirs", "themselves", "what", "which", "who", "whom", "this", "that",
	"that'll", "these", "those", "am", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did",
	"doing", "a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above",
	"below", "to", "from", "up", "down", "in", "out", "on", "off", "over",
	"under", "again", "further", "then", "once", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own",
	"same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re",
	"ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
	"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
	"mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't",
	"wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn",
	"wouldn't",
}
