package corpus

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// DocumentReader extracts plain text from one document format.
type DocumentReader interface {
	Read(r io.Reader, name string) (string, error)
}

// ReaderFor returns the reader for name's extension.
func ReaderFor(name string) (DocumentReader, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".txt", "":
		return TextReader{}, nil
	case ".md", ".markdown":
		return MarkdownReader{}, nil
	case ".html", ".htm":
		return HTMLReader{}, nil
	case ".pdf":
		return PDFReader{}, nil
	case ".docx":
		return DOCXReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported document format: %s", ext)
	}
}

// Supported reports whether name has a readable extension. Files without an
// extension (README, LICENSE) are not treated as documents.
func Supported(name string) bool {
	if filepath.Ext(name) == "" {
		return false
	}
	_, err := ReaderFor(name)
	return err == nil
}

// TextReader reads plain text, dropping a UTF-8 byte order mark and
// normalizing line endings.
type TextReader struct{}

func (TextReader) Read(r io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

func joinParagraphs(paras []string) string {
	out := make([]string, 0, len(paras))
	for _, p := range paras {
		if p = strings.Join(strings.Fields(p), " "); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
