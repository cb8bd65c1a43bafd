package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"nlpwalk/internal/port"
)

type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

func (w *Walker) Walk(root string) ([]port.FileInfo, error) {
	var files []port.FileInfo

	root, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return nil, err
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && (strings.HasPrefix(info.Name(), ".") || w.shouldExclude(relPath+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, port.FileInfo{
				Path:    path,
				Name:    relPath,
				ModTime: info.ModTime().Unix(),
				Size:    info.Size(),
			})
		}

		return nil
	})

	return files, err
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
