package corpus

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLReader returns the visible body text of an HTML document, one
// paragraph per block element.
type HTMLReader struct{}

func (HTMLReader) Read(r io.Reader, _ string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var paras []string
	var cur strings.Builder
	flush := func() {
		paras = append(paras, cur.String())
		cur.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			cur.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "nav", "footer", "header", "head", "noscript":
				return
			}
		}
		block := n.Type == html.ElementNode && isBlock(n.Data)
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	flush()
	return joinParagraphs(paras), nil
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "td", "th", "blockquote", "section", "article",
		"h1", "h2", "h3", "h4", "h5", "h6", "pre", "br", "tr":
		return true
	}
	return false
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
