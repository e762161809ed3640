package archive

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSVLog writes the semicolon-separated audit log consumed by the
// accounting spreadsheet. One row per processed source file.
func WriteCSVLog(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write([]string{"source", "empresa", "beneficiario", "valor", "nome_final"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if r.Error != "" {
			continue
		}
		if err := w.Write([]string{r.Source, r.Company, r.Beneficiary, r.Amount, r.FinalName}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv log: %w", err)
	}
	return nil
}
