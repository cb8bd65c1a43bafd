package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFReader extracts the plain text of each page.
type PDFReader struct{}

func (PDFReader) Read(r io.Reader, _ string) (string, error) {
	// ledongthuc/pdf opens by path, so spool the reader to a temp file.
	tmpPath, err := spool(r, "nlpwalk-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpPath)

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}

func spool(r io.Reader, pattern string) (string, error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}
