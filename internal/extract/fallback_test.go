package extract

import "testing"

func TestFallbackBeneficiaryLabeledPatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "favorecido label",
			text: "Comprovante\nFAVORECIDO: PAPELARIA CENTRAL LTDA\n",
			want: "PAPELARIA CENTRAL LTDA",
		},
		{
			name: "empresa orgao label",
			text: "Guia de recolhimento\nEMPRESA/ORGAO: SECRETARIA DA FAZENDA\n",
			want: "SECRETARIA DA FAZENDA",
		},
		{
			name: "para label",
			text: "Transferencia\nPARA: MERCADO BOM PRECO LTDA\n",
			want: "MERCADO BOM PRECO LTDA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FallbackBeneficiary(tt.text); got != tt.want {
				t.Errorf("FallbackBeneficiary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackBeneficiaryLongestLine(t *testing.T) {
	// No label matches; the longest line without account plumbing wins.
	text := "Recibo\nAGENCIA 1234 CONTA 5678\nCOMERCIO DE PECAS INDUSTRIAIS SAO JORGE\nObrigado\n"
	got := FallbackBeneficiary(text)
	if got != "COMERCIO DE PECAS INDUSTRIAIS SAO JORGE" {
		t.Errorf("FallbackBeneficiary() = %q", got)
	}
}

func TestFallbackBeneficiaryNothingUsable(t *testing.T) {
	if got := FallbackBeneficiary("CPF 123\nvalor\n"); got != UnknownBeneficiary {
		t.Errorf("FallbackBeneficiary() = %q, want sentinel", got)
	}
	if got := FallbackBeneficiary(""); got != UnknownBeneficiary {
		t.Errorf("FallbackBeneficiary(\"\") = %q, want sentinel", got)
	}
}
