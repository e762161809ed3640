// Package naming derives canonical output filenames for renamed receipts
// and resolves collisions between them.
package naming

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/extract"
)

// repeatPrefix marks the 2nd, 3rd, ... receipt sharing the same
// (company, beneficiary, amount) key within a run: "N2 - ...".
const repeatPrefix = "N"

// BuildName derives the canonical filename for a receipt from its
// extracted fields. It is a pure function:
//
//	<BENEFICIARY> - [<barcode tail> - ]<amount><ext>
//
// seq counts how many receipts with the same key came before this one in
// the run (1 for the first); repeats get an "N<seq> - " prefix so a batch
// of installment payments to the same supplier stays distinguishable.
func BuildName(f extract.Fields, seq int, maxNameLen int, ext string) string {
	benef := Sanitize(f.Beneficiary, maxNameLen)
	amount := f.Amount
	if amount == "" {
		amount = extract.AmountNotFound
	}

	base := fmt.Sprintf("%s - %s", benef, amount)
	if f.BarcodeTail != "" {
		base = fmt.Sprintf("%s - %s - %s", benef, f.BarcodeTail, amount)
	}
	if seq > 1 {
		return fmt.Sprintf("%s%d - %s%s", repeatPrefix, seq, base, ext)
	}
	return base + ext
}

// OutputPath places a canonical filename under the per-company
// subdirectory of the output root.
func OutputPath(outputDir, company, filename string) string {
	return filepath.Join(outputDir, company, filename)
}

// KeyCounter tracks how many receipts share an extraction key within a
// run, feeding the seq argument of BuildName. Goroutine-safe.
type KeyCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewKeyCounter() *KeyCounter {
	return &KeyCounter{counts: make(map[string]int)}
}

// Next increments and returns the occurrence count for a key.
func (kc *KeyCounter) Next(f extract.Fields) int {
	kc.mu.Lock()
	defer kc.mu.Unlock()
	key := f.Company + "\x00" + f.Beneficiary + "\x00" + f.Amount
	kc.counts[key]++
	return kc.counts[key]
}
