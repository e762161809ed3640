package extract

import "testing"

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "labeled valor do pagamento",
			text: "Comprovante\nValor do pagamento: R$ 1.234,56\n",
			want: "1234,56",
		},
		{
			name: "valor on its own line",
			text: "Comprovante\nValor: R$ 150,00\n",
			want: "150,00",
		},
		{
			name: "bradesco amount between document and zero fee",
			text: "Beneficiário 12.345.678/0001-90 2.500,00 R$0,00 Tarifa",
			want: "2500,00",
		},
		{
			name: "labeled beats isolated",
			text: "Valor do pagamento: R$ 100,00\nSaldo disponível R$ 99.999,99\n",
			want: "100,00",
		},
		{
			name: "zero amounts ignored",
			text: "Tarifa R$ 0,00\nPagamento efetuado R$ 320,45\n",
			want: "320,45",
		},
		{
			name: "isolated tie keeps largest",
			text: "R$ 10,00 R$ 20,00",
			want: "20,00",
		},
		{
			name: "no amount",
			text: "Comprovante sem valores",
			want: AmountNotFound,
		},
		{
			name: "empty text",
			text: "",
			want: AmountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractAmount(tt.text); got != tt.want {
				t.Errorf("ExtractAmount() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractAmountIgnoresInterestLines(t *testing.T) {
	// The amount feeding Juros/Multa/Desconto labels is table noise, not
	// the payment value.
	text := "Valor do pagamento: R$ 850,00\nR$ 12,34 Juros\nR$ 5,67 Multa\n"
	if got := ExtractAmount(text); got != "850,00" {
		t.Errorf("ExtractAmount() = %q, want %q", got, "850,00")
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		raw         string
		wantCents   int64
		wantDisplay string
		wantOK      bool
	}{
		{"1.234,56", 123456, "1234,56", true},
		{"150,00", 15000, "150,00", true},
		{"0,00", 0, "", false},
		{"abc", 0, "", false},
		{"", 0, "", false},
	}

	for _, tt := range tests {
		cents, display, ok := normalizeAmount(tt.raw)
		if ok != tt.wantOK || cents != tt.wantCents || display != tt.wantDisplay {
			t.Errorf("normalizeAmount(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.raw, cents, display, ok, tt.wantCents, tt.wantDisplay, tt.wantOK)
		}
	}
}
