package usecase

import (
	"errors"
	"fmt"
)

// Stage names a pipeline stage in errors and log fields.
type Stage string

const (
	StageSegment  Stage = "segment"
	StageTokenize Stage = "tokenize"
	StageTag      Stage = "tag"
	StageChunk    Stage = "chunk"
)

// ErrBackendPanic wraps a panic recovered from a backend while processing
// one sentence.
var ErrBackendPanic = errors.New("backend panic")

// SentenceError is a failure confined to one sentence. Batch operations
// record it and move on to the next sentence.
type SentenceError struct {
	Stage Stage
	Index int
	Err   error
}

func (e *SentenceError) Error() string {
	return fmt.Sprintf("sentence %d: %s: %v", e.Index, e.Stage, e.Err)
}

func (e *SentenceError) Unwrap() error {
	return e.Err
}
