package extract

import "testing"

func TestExtractBeneficiaryBankLayouts(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantName   string
		wantMethod string
	}{
		{
			name: "bradesco pix controle de pagamento",
			text: "Bradesco Internet Banking\nControle de Pagamento\nBeneficiário: COMERCIAL BETA DE ALIMENTOS LTDA\nCPF/CNPJ: 12.345.678/0001-90\nControle: 0042",
			wantName:   "COMERCIAL BETA DE ALIMENTOS LTDA",
			wantMethod: "bradesco-pix-controle-pagamento",
		},
		{
			name: "bradesco pix name between documents",
			text: "Comprovante de Transacao\n98.765.432/0001-10 METALURGICA DELTA LTDA 12.345.678/0001-90\nValor: R$ 980,00",
			wantName:   "METALURGICA DELTA LTDA",
			wantMethod: "bradesco-pix-entre-documentos",
		},
		{
			name: "bradesco pix dados de quem recebeu",
			text: "Bradesco Comprovante PIX\nDados de quem recebeu\nNome: TRANSPORTES GAMA EIRELI\nCPF/CNPJ: ***.456.789-**",
			wantName:   "TRANSPORTES GAMA EIRELI",
			wantMethod: "bradesco-pix-dados-recebeu",
		},
		{
			name: "sicoob ted credito nome",
			text: "Comprovante de TED\nCrédito:\nNome: FERRAGENS OMEGA LTDA\nCPF/CNPJ: 11.222.333/0001-44\nInstituição: 341",
			wantName:   "FERRAGENS OMEGA LTDA",
			wantMethod: "sicoob-ted-credito-nome",
		},
		{
			name: "santander dados do recebedor",
			text: "Comprovante de transferência\nDados do recebedor Para\nQUIMICA INDUSTRIAL SIGMA LTDA\nChave: 1a2b3c",
			wantName:   "QUIMICA INDUSTRIAL SIGMA LTDA",
			wantMethod: "santander-pix-recebedor",
		},
		{
			name: "santander favorecido",
			text: "Comprovante de pagamento\nFavorecido: DISTRIBUIDORA ALFA LTDA Valor: R$ 150,00",
			wantName:   "DISTRIBUIDORA ALFA LTDA",
			wantMethod: "santander-favorecido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, method, score := ExtractBeneficiary(tt.text, nil)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q (method=%s score=%d)", name, tt.wantName, method, score)
			}
			if method != tt.wantMethod {
				t.Errorf("method = %q, want %q", method, tt.wantMethod)
			}
		})
	}
}

func TestExtractBeneficiaryRejectsPayer(t *testing.T) {
	text := "Comprovante de pagamento\nFavorecido: FARMAUSA PHARMACEUTICAL LTDA Valor: R$ 10,00"
	name, _, _ := ExtractBeneficiary(text, []string{"FARMAUSA PHARMACEUTICAL"})
	if name != UnknownBeneficiary {
		t.Errorf("payer alias should not win, got %q", name)
	}
}

func TestExtractBeneficiaryStripsDocuments(t *testing.T) {
	text := "Controle de Pagamento Beneficiário: ACME COMERCIO LTDA 111.222.333-44 CPF/CNPJ: 12.345.678/0001-90"
	name, _, _ := ExtractBeneficiary(text, nil)
	if name != "ACME COMERCIO LTDA" {
		t.Errorf("name = %q, want document numbers stripped", name)
	}
}

func TestExtractBeneficiaryHighestScoreWins(t *testing.T) {
	// Both the controle-de-pagamento rule (22) and the favorecido rule
	// (10) match; the higher-scoring capture must win.
	text := "Controle de Pagamento Beneficiário: COMERCIAL BETA DE ALIMENTOS LTDA CPF/CNPJ: 12.345.678/0001-90\nFavorecido: OUTRA EMPRESA QUALQUER Valor: R$ 1,00"
	name, method, _ := ExtractBeneficiary(text, nil)
	if name != "COMERCIAL BETA DE ALIMENTOS LTDA" {
		t.Errorf("name = %q, want the higher-scoring candidate", name)
	}
	if method != "bradesco-pix-controle-pagamento" {
		t.Errorf("method = %q", method)
	}
}

func TestExtractBeneficiaryRemap(t *testing.T) {
	text := "Favorecido: KALUNGA SA Valor: R$ 99,90"
	name, _, _ := ExtractBeneficiary(text, nil)
	if name != "KALUNGA S.A." {
		t.Errorf("name = %q, want remapped legal name", name)
	}
}

func TestExtractBeneficiaryEmpty(t *testing.T) {
	name, method, score := ExtractBeneficiary("", nil)
	if name != UnknownBeneficiary || method != "" || score != 0 {
		t.Errorf("got (%q, %q, %d)", name, method, score)
	}
}
