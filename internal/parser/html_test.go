package parser

import (
	"strings"
	"testing"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Comprovante PIX</title>
<style>body { color: red; }</style>
<script>alert("x")</script>
</head>
<body>
<h1>Comprovante de pagamento</h1>
<p>Favorecido: <b>ACME LTDA</b></p>
<table>
<tr><td>Valor:</td><td>R$ 150,00</td></tr>
</table>
</body>
</html>`

func TestHTMLParser(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(sampleHTML), "extrato.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.Title != "Comprovante PIX" {
		t.Errorf("Title = %q", doc.Title)
	}

	text := doc.Text()
	// Inline markup must not split a label from its value.
	if !strings.Contains(text, "Favorecido: ACME LTDA") {
		t.Errorf("label and value split apart:\n%s", text)
	}
	if !strings.Contains(text, "R$ 150,00") {
		t.Errorf("missing cell text:\n%s", text)
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Errorf("script/style leaked into text:\n%s", text)
	}
}

func TestHTMLParserEmptyBody(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader("<html><body></body></html>"), "vazio.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !doc.Empty() {
		t.Errorf("empty body should yield an empty document, got %q", doc.Text())
	}
}

func TestHTMLParserInvalidIsLenient(t *testing.T) {
	// html.Parse repairs broken markup instead of failing.
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader("<p>Favorecido: ACME"), "quebrado.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(doc.Text(), "Favorecido: ACME") {
		t.Errorf("Text() = %q", doc.Text())
	}
}
