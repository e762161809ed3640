package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/document"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML receipts exported from internet banking.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &document.Document{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".html"), ".htm"),
	}
	if title := findTitle(root); title != "" {
		doc.Title = title
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			// Skip non-content elements.
			switch n.Data {
			case "script", "style", "head", "nav", "footer":
				return
			// Block-level elements each become a line so label/value pairs
			// like "Favorecido: NOME" stay on the same line as rendered.
			case "p", "li", "td", "th", "div", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
				if hasBlockChildren(n) {
					break
				}
				if t := textContent(n); t != "" {
					lines = append(lines, t)
				}
				return
			case "br":
				lines = append(lines, "")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text != "" {
		doc.Pages = []document.Page{{Number: 1, Text: text}}
	}

	return doc, nil
}

func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "p", "li", "td", "th", "div", "tr", "table", "ul", "ol",
			"h1", "h2", "h3", "h4", "h5", "h6":
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
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
