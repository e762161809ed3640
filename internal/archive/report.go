package archive

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ReportMeta describes the run the report covers.
type ReportMeta struct {
	RunID    string
	Started  time.Time
	Duration time.Duration
	Archive  string
}

// RenderMarkdown builds the run report as Markdown: run summary plus one
// table row per source file.
func RenderMarkdown(meta ReportMeta, records []Record) string {
	var renamed, skipped int
	for _, r := range records {
		if r.Error == "" {
			renamed++
		} else {
			skipped++
		}
	}

	var b strings.Builder
	b.WriteString("# Comprovantes renomeados\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", meta.RunID)
	fmt.Fprintf(&b, "- Início: %s\n", meta.Started.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- Duração: %s\n", meta.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "- Arquivos: %d renomeados, %d ignorados\n", renamed, skipped)
	if meta.Archive != "" {
		fmt.Fprintf(&b, "- Arquivo ZIP: `%s`\n", meta.Archive)
	}
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString("Nenhum arquivo encontrado na pasta de entrada.\n")
		return b.String()
	}

	b.WriteString("| Origem | Empresa | Beneficiário | Valor | Nome final |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, r := range records {
		final := r.FinalName
		if r.Error != "" {
			final = "ignorado: " + r.Error
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			mdEscape(r.Source), mdEscape(r.Company), mdEscape(r.Beneficiary),
			mdEscape(r.Amount), mdEscape(final))
	}
	return b.String()
}

// WriteHTMLReport renders the Markdown report to a standalone HTML file.
func WriteHTMLReport(path string, meta ReportMeta, records []Record) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(meta, records)), &body); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html lang=\"pt-BR\">\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>Comprovantes renomeados</title>\n")
	page.WriteString("<style>body{font-family:sans-serif;margin:2em}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:4px 8px}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
