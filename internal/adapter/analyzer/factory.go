package analyzer

import (
	"fmt"

	"nlpwalk/internal/port"
)

// NewStemmer returns the stemmer registered under algorithm.
func NewStemmer(algorithm string) (port.Stemmer, error) {
	switch algorithm {
	case "", "porter":
		return NewPorterStemmer(), nil
	case "snowball", "porter2":
		return NewSnowballStemmer(true), nil
	default:
		return nil, fmt.Errorf("unsupported stemming algorithm: %s", algorithm)
	}
}
