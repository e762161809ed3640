package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testMeta() ReportMeta {
	return ReportMeta{
		RunID:    "run-123",
		Started:  time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Duration: 1234 * time.Millisecond,
		Archive:  "comprovantes_renomeados.zip",
	}
}

func TestRenderMarkdown(t *testing.T) {
	records := []Record{
		{Source: "a.pdf", Company: "OUTROS", Beneficiary: "ACME LTDA", Amount: "10,00", FinalName: "ACME_LTDA - 10,00.pdf"},
		{Source: "ruim.pdf", Error: "sem texto extraível"},
	}

	md := RenderMarkdown(testMeta(), records)

	for _, want := range []string{
		"run-123",
		"1 renomeados, 1 ignorados",
		"| a.pdf | OUTROS | ACME LTDA | 10,00 | ACME_LTDA - 10,00.pdf |",
		"ignorado: sem texto extraível",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}

func TestRenderMarkdownEscapesPipes(t *testing.T) {
	records := []Record{{Source: "a|b.pdf", Company: "OUTROS", Beneficiary: "X", Amount: "1,00", FinalName: "n.pdf"}}
	md := RenderMarkdown(testMeta(), records)
	if !strings.Contains(md, `a\|b.pdf`) {
		t.Errorf("pipe not escaped:\n%s", md)
	}
}

func TestRenderMarkdownNoRecords(t *testing.T) {
	md := RenderMarkdown(testMeta(), nil)
	if !strings.Contains(md, "Nenhum arquivo encontrado") {
		t.Errorf("empty-run notice missing:\n%s", md)
	}
	if strings.Contains(md, "| Origem |") {
		t.Error("empty run should not render a table")
	}
}

func TestWriteHTMLReport(t *testing.T) {
	records := []Record{
		{Source: "a.pdf", Company: "OUTROS", Beneficiary: "ACME LTDA", Amount: "10,00", FinalName: "ACME_LTDA - 10,00.pdf"},
	}

	path := filepath.Join(t.TempDir(), "relatorio.html")
	if err := WriteHTMLReport(path, testMeta(), records); err != nil {
		t.Fatalf("WriteHTMLReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)

	for _, want := range []string{"<!DOCTYPE html>", "<table>", "ACME LTDA", "run-123"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
