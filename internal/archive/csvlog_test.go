package archive

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCSVLog(t *testing.T) {
	records := []Record{
		{
			Source:      "a.pdf",
			Company:     "OUTROS",
			Beneficiary: "DISTRIBUIDORA ALFA LTDA",
			Amount:      "150,00",
			FinalName:   "DISTRIBUIDORA_ALFA_LTDA - 150,00.pdf",
		},
		{
			Source: "quebrado.pdf",
			Error:  "extração de texto falhou",
		},
		{
			Source:      "b.txt",
			Company:     "URBANBOX",
			Beneficiary: "GRAFICA MODELO LTDA",
			Amount:      "480,00",
			FinalName:   "GRAFICA_MODELO_LTDA - 480,00.txt",
		},
	}

	path := filepath.Join(t.TempDir(), "log.csv")
	if err := WriteCSVLog(path, records); err != nil {
		t.Fatalf("WriteCSVLog: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 (skipped files stay out)", len(rows))
	}
	wantHeader := []string{"source", "empresa", "beneficiario", "valor", "nome_final"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][0] != "a.pdf" || rows[1][4] != "DISTRIBUIDORA_ALFA_LTDA - 150,00.pdf" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][0] != "b.txt" || rows[2][1] != "URBANBOX" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestWriteCSVLogEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	if err := WriteCSVLog(path, nil); err != nil {
		t.Fatalf("WriteCSVLog: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "source;empresa;beneficiario;valor;nome_final\n" {
		t.Errorf("got %q", string(data))
	}
}
