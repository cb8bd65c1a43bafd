package segmenter

import (
	"fmt"

	"nlpwalk/internal/port"
)

// New returns the sentence segmenter for backend.
func New(backend, language string) (port.SentenceSegmenter, error) {
	switch backend {
	case "", "punkt":
		return NewPunkt(language)
	case "naive":
		return NewNaive(), nil
	default:
		return nil, fmt.Errorf("unsupported sentence segmenter: %s", backend)
	}
}
