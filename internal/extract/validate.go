package extract

import (
	"regexp"
	"strings"
)

// systemNames are the paying companies and bank names that must never be
// reported as a beneficiary.
var systemNames = []string{
	"FARMAUSA",
	"URBANBOX",
	"PHARMACEUTICAL",
	"LIFE SCIENCE",
	"SICOOB",
}

// technicalLabels are form-field labels that regex captures sometimes pick
// up instead of a name.
var technicalLabels = []string{
	"agencia", "conta", "cpf", "cnpj", "chave", "instituicao",
	"banco", "dados", "transferencia", "pagamento", "valor",
	"documento", "autenticacao", "controle", "debito", "origem",
	"destino", "corrente", "codigo", "barras", "linha", "digitavel",
}

var (
	reHasLetter   = regexp.MustCompile(`[a-zA-Z]`)
	reNumericOnly = regexp.MustCompile(`^[\d.\-*\s]+$`)
	reLetterRun   = regexp.MustCompile(`[a-zA-Z]{5,}`)
)

// ValidName reports whether a captured string looks like a real
// beneficiary name rather than noise, a document number, or a field label.
func ValidName(name string, minLen int) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) < minLen {
		return false
	}
	if !reHasLetter.MatchString(name) {
		return false
	}
	if reNumericOnly.MatchString(name) {
		return false
	}

	upper := strings.ToUpper(name)
	for _, sys := range systemNames {
		if strings.Contains(upper, sys) {
			// Long cooperative names may legitimately contain SICOOB,
			// as long as they are not the bank's full legal name.
			if sys == "SICOOB" && len(upper) > 25 && !strings.Contains(upper, "SISTEMA DE COOPERATIVAS") {
				continue
			}
			return false
		}
	}

	lower := strings.ToLower(name)
	for _, label := range technicalLabels {
		if lower == label || strings.HasPrefix(lower, label+" ") {
			return false
		}
	}

	// A name needs at least two words, or one run of 5+ letters.
	if len(strings.Fields(name)) >= 2 || reLetterRun.MatchString(name) {
		return true
	}
	return false
}
