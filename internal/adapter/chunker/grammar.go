package chunker

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidGrammar is returned for malformed chunk grammars.
var ErrInvalidGrammar = errors.New("invalid chunk grammar")

// DefaultGrammar groups adverbs, verbs, a proper noun and an optional noun.
const DefaultGrammar = `Chunk: {<RB.?>*<VB.?>*<NNP><NN>?}`

// Rule is one compiled chunk rule.
type Rule struct {
	Label   string
	Pattern string
	re      *regexp.Regexp
}

var reRuleLine = regexp.MustCompile(`^([A-Za-z_][\w-]*)\s*:\s*(.+)$`)

// ParseGrammar compiles grammar text. Each non-blank line has the form
//
//	Label: {<tag pattern>...}
//
// and may carry several brace groups, each becoming a separate rule. Lines
// starting with '#' are comments. Rules run in order; later rules only see
// tokens earlier rules left unchunked.
func ParseGrammar(name, text string) (*Grammar, error) {
	var rules []Rule
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := reRuleLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: expected \"Label: {pattern}\"", ErrInvalidGrammar, n+1)
		}
		label, body := m[1], strings.TrimSpace(m[2])
		patterns, err := braceGroups(body)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidGrammar, n+1, err)
		}
		for _, p := range patterns {
			expr, err := tagPatternToRegexp(p)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidGrammar, n+1, err)
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidGrammar, n+1, err)
			}
			rules = append(rules, Rule{Label: label, Pattern: p, re: re})
		}
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrInvalidGrammar)
	}
	return &Grammar{name: name, rules: rules}, nil
}

// braceGroups extracts the contents of each {...} group in body.
func braceGroups(body string) ([]string, error) {
	var out []string
	for body != "" {
		if body[0] != '{' {
			return nil, fmt.Errorf("unexpected %q outside braces", body[0])
		}
		end := strings.IndexByte(body, '}')
		if end < 0 {
			return nil, errors.New("unterminated brace group")
		}
		p := strings.TrimSpace(body[1:end])
		if p == "" {
			return nil, errors.New("empty brace group")
		}
		out = append(out, p)
		body = strings.TrimSpace(body[end+1:])
	}
	return out, nil
}

// tagPatternToRegexp converts a tag pattern such as <RB.?>*<NNP> into a
// regular expression over the encoded tag string "<RB><NNP>". Inside angle
// brackets '.' matches any tag character.
func tagPatternToRegexp(pattern string) (string, error) {
	var b strings.Builder
	b.WriteString("(?:")
	inTag := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\':
			if i+1 >= len(pattern) {
				return "", errors.New("trailing backslash")
			}
			if !inTag {
				return "", fmt.Errorf("escape outside <...> at offset %d", i)
			}
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
		case c == '<':
			if inTag {
				return "", fmt.Errorf("nested '<' at offset %d", i)
			}
			inTag = true
			b.WriteString("(?:<(?:")
		case c == '>':
			if !inTag {
				return "", fmt.Errorf("unmatched '>' at offset %d", i)
			}
			inTag = false
			b.WriteString(")>)")
		case c == '{' || c == '}':
			return "", fmt.Errorf("brace inside pattern at offset %d", i)
		case inTag && c == '.':
			b.WriteString(`[^{}<>]`)
		case inTag:
			b.WriteByte(c)
		case c == ' ' || c == '\t':
		case strings.IndexByte("*+?()|", c) >= 0:
			b.WriteByte(c)
		default:
			return "", fmt.Errorf("unexpected %q outside <...> at offset %d", c, i)
		}
	}
	if inTag {
		return "", errors.New("unterminated '<'")
	}
	b.WriteString(")")
	return b.String(), nil
}
