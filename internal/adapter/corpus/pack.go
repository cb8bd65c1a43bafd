package corpus

import (
	"fmt"

	"nlpwalk/internal/adapter/fs"
	"nlpwalk/internal/adapter/store"
	"nlpwalk/internal/domain"
	"nlpwalk/internal/port"
)

// Pack copies every document of src into a new bbolt corpus at dbPath and
// returns the number of documents written. progress, if non-nil, is called
// after each document.
func Pack(src port.Corpus, dbPath string, progress func(done, total int)) (int, error) {
	names, err := src.Names()
	if err != nil {
		return 0, err
	}
	if len(names) == 0 {
		return 0, fmt.Errorf("corpus has no readable documents")
	}

	dst, err := store.CreateBoltCorpus(fs.ExpandHome(dbPath))
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	dir, _ := src.(*DirCollection)
	for i, name := range names {
		text, err := src.Raw(name)
		if err != nil {
			return i, err
		}
		doc := domain.Document{Name: name}
		if dir != nil {
			if f, ok := dir.Info(name); ok {
				doc.Source = f.Path
				doc.ModTime = f.ModTime
			}
		}
		if err := dst.PutDoc(doc, text); err != nil {
			return i, fmt.Errorf("failed to store %s: %w", name, err)
		}
		if progress != nil {
			progress(i+1, len(names))
		}
	}
	return len(names), nil
}
