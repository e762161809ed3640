package parser

import "testing"

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
		wantErr  bool
	}{
		{"comprovante.pdf", "*parser.PDFParser", false},
		{"comprovante.PDF", "*parser.PDFParser", false},
		{"recibo.txt", "*parser.TextParser", false},
		{"extrato.html", "*parser.HTMLParser", false},
		{"extrato.htm", "*parser.HTMLParser", false},
		{"recibo.docx", "*parser.DOCXParser", false},
		{"planilha.xlsx", "", true},
		{"sem_extensao", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p, err := ForFile(tt.filename)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ForFile: %v", err)
			}
			var got string
			switch p.(type) {
			case *PDFParser:
				got = "*parser.PDFParser"
			case *TextParser:
				got = "*parser.TextParser"
			case *HTMLParser:
				got = "*parser.HTMLParser"
			case *DOCXParser:
				got = "*parser.DOCXParser"
			}
			if got != tt.wantType {
				t.Errorf("parser type = %s, want %s", got, tt.wantType)
			}
		})
	}
}

func TestIsSupportedExtension(t *testing.T) {
	supported := []string{"a.pdf", "a.PDF", "a.txt", "a.html", "a.htm", "a.docx"}
	for _, f := range supported {
		if !IsSupportedExtension(f) {
			t.Errorf("%s should be supported", f)
		}
	}
	unsupported := []string{"a.xml", "a.csv", "a.zip", "a", ""}
	for _, f := range unsupported {
		if IsSupportedExtension(f) {
			t.Errorf("%s should not be supported", f)
		}
	}
}
