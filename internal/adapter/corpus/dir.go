package corpus

import (
	"fmt"
	"os"
	"sort"

	"nlpwalk/internal/adapter/fs"
	"nlpwalk/internal/port"
)

// ErrDocumentNotFound is returned for names not in the collection.
var ErrDocumentNotFound = port.ErrDocumentNotFound

// DirCollection serves the readable documents under a directory. Documents
// are named by their slash-separated path relative to the directory.
type DirCollection struct {
	root  string
	files map[string]port.FileInfo
}

// NewDirCollection scans dir once. A leading "~" is expanded.
func NewDirCollection(dir string, walker port.FileWalker) (*DirCollection, error) {
	root := fs.ExpandHome(dir)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("corpus directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus directory: %s is not a directory", root)
	}
	if walker == nil {
		walker = fs.NewWalker(nil, nil)
	}

	found, err := walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan corpus: %w", err)
	}
	files := make(map[string]port.FileInfo, len(found))
	for _, f := range found {
		if Supported(f.Name) {
			files[f.Name] = f
		}
	}
	return &DirCollection{root: root, files: files}, nil
}

func (c *DirCollection) Root() string {
	return c.root
}

func (c *DirCollection) Names() ([]string, error) {
	names := make([]string, 0, len(c.files))
	for n := range c.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// Info returns the file metadata of the named document.
func (c *DirCollection) Info(name string) (port.FileInfo, bool) {
	f, ok := c.files[name]
	return f, ok
}

func (c *DirCollection) Raw(name string) (string, error) {
	f, ok := c.files[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	reader, err := ReaderFor(name)
	if err != nil {
		return "", err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer file.Close()

	text, err := reader.Read(file, name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return text, nil
}

func (c *DirCollection) Close() error {
	return nil
}
