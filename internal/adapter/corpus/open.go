package corpus

import (
	"fmt"

	"nlpwalk/internal/adapter/fs"
	"nlpwalk/internal/adapter/store"
	"nlpwalk/internal/port"
)

// Options selects a corpus collection. BoltPath, when set, takes precedence
// over Dir.
type Options struct {
	Dir      string
	BoltPath string
	Includes []string
	Excludes []string
}

// Open returns the collection described by opts.
func Open(opts Options) (port.Corpus, error) {
	if opts.BoltPath != "" {
		c, err := store.OpenBoltCorpus(fs.ExpandHome(opts.BoltPath))
		if err != nil {
			return nil, fmt.Errorf("failed to open corpus %s: %w", opts.BoltPath, err)
		}
		return c, nil
	}
	if opts.Dir == "" {
		return nil, fmt.Errorf("no corpus configured")
	}
	return NewDirCollection(opts.Dir, fs.NewWalker(opts.Includes, opts.Excludes))
}
