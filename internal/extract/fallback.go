package extract

import (
	"regexp"
	"strings"
)

// fallbackPatterns are tried when the main rule table finds nothing.
// They match on upper-cased, space-collapsed text and are far more
// permissive than the scored rules.
var fallbackPatterns = []struct {
	re    *regexp.Regexp
	score int
}{
	{regexp.MustCompile(`CONTROLE DE PAGAMENTO\s+BENEFICI[ÁA]RIO:\s*([A-Z0-9.\-&\s()/ÇÃÕÉÊÍÓÚÀÂ]{5,120})`), 105},
	{regexp.MustCompile(`(?i)Conta[:\s]*[^\n/]+/\s*([A-Z0-9.\-&\s()/]{5,120})`), 100},
	{regexp.MustCompile(`(?is)Cr[ée]dito[:\s].{0,300}?Nome[:\s]*([A-Z0-9.\-&\s()/]{5,120})`), 95},
	{regexp.MustCompile(`(?is)D[ée]bito[:\s].{0,300}?Nome[:\s]*([A-Z0-9.\-&\s()/]{5,120})`), 94},
	{regexp.MustCompile(`(?s)DADOS DE QUEM RECEBEU.{0,200}?NOME[:\s]*([A-Z0-9.\-&\s()/]{5,120})`), 92},
	{regexp.MustCompile(`FAVORECIDO[:\s]*([A-Z0-9.\-&\s()/]{5,120})`), 90},
	{regexp.MustCompile(`RAZ[ÃA]O\s+SOCIAL\s+BENEFICIAR?IO(?:\s+FINAL)?[:\s]*([A-Z0-9.\-&\s()/]{5,120})`), 88},
	{regexp.MustCompile(`EMPRESA\s*/?\s*[ÓO]RG[ÃA]O[:\s]*([A-Z0-9.\-&\s()/]{5,120})`), 85},
	{regexp.MustCompile(`\bPARA[:\s]*([A-Z0-9.\-&\s()/]{5,120})`), 80},
}

// reTechnicalLine spots lines that look like account plumbing, not names.
var reTechnicalLine = regexp.MustCompile(`\b(AGENCIA|CONTA|CPF|CNPJ|CHAVE|BANC|VALOR|LOTE|NSU|LINHA|BARRAS|AUTENTICA)\b`)

// FallbackBeneficiary is the last-resort extractor used when
// ExtractBeneficiary finds nothing: looser labeled patterns first, then
// the longest plausible upper-case line. Returns UnknownBeneficiary when
// even that fails.
func FallbackBeneficiary(text string) string {
	if text == "" {
		return UnknownBeneficiary
	}
	upper := strings.ToUpper(collapseSpaces(text))

	bestScore := -1
	best := ""
	for _, p := range fallbackPatterns {
		m := p.re.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		name := cleanCandidate(m[1])
		name = strings.Trim(name, " /-")
		if !ValidName(name, 5) {
			continue
		}
		if p.score > bestScore {
			bestScore = p.score
			best = name
		}
	}
	if best != "" {
		return best
	}

	// Heuristic of last resort: the longest valid line without technical
	// vocabulary is usually the supplier name.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 6 {
			continue
		}
		lineUpper := strings.ToUpper(line)
		if reTechnicalLine.MatchString(lineUpper) {
			continue
		}
		if !ValidName(line, 5) {
			continue
		}
		if len(line) > len(best) {
			best = lineUpper
		}
	}
	if best != "" {
		return collapseSpaces(best)
	}

	return UnknownBeneficiary
}
