package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/document"
)

// TextParser handles plain text receipts (e.g. pasted internet banking output).
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := &document.Document{
		Title: strings.TrimSuffix(filename, ".txt"),
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text != "" {
		doc.Pages = []document.Page{{Number: 1, Text: text}}
	}

	return doc, nil
}
