package document

import "strings"

// Document is the parsed form of a single receipt file.
type Document struct {
	Title string // Source title (usually the filename without extension)
	Pages []Page // Extracted text, one entry per source page
}

// Page holds the extracted text of one page of the source file.
type Page struct {
	Number int    // 1-based page number (1 for single-page formats)
	Text   string // Plain text content
}

// Text returns the full document text with pages joined by form feeds.
func (d *Document) Text() string {
	if len(d.Pages) == 1 {
		return d.Pages[0].Text
	}
	parts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\f")
}

// Empty reports whether the document has no extractable text.
func (d *Document) Empty() bool {
	for _, p := range d.Pages {
		if strings.TrimSpace(p.Text) != "" {
			return false
		}
	}
	return true
}
