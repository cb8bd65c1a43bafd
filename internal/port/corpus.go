package port

import "errors"

// Corpus is a read-only collection of named documents.
type Corpus interface {
	// Raw returns the plain text of the named document.
	Raw(name string) (string, error)

	// Names lists the documents in the collection, sorted.
	Names() ([]string, error)

	Close() error
}

// ErrDocumentNotFound is returned by Raw for names not in the collection.
var ErrDocumentNotFound = errors.New("document not found")
