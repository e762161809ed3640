package extract

import (
	"regexp"
	"strings"
)

// UnknownBeneficiary is the sentinel used when no candidate survives
// validation. The fallback heuristics run before it ends up in a filename.
const UnknownBeneficiary = "FORNECEDOR_DESCONHECIDO"

// candidate is one possible beneficiary name with its confidence score.
type candidate struct {
	name   string
	score  int
	method string
}

// benefRule pairs a compiled regex with a score and an optional guard.
// Rules are all evaluated; the highest-scoring valid candidate wins.
type benefRule struct {
	method    string
	score     int
	guard     func(text string) bool // nil = always applies
	re        *regexp.Regexp
	group     int
	minLen    int
	collapsed bool // match against whitespace-collapsed text
	multiline bool // match against the raw text (patterns relying on newlines)
}

func containsFold(sub string) func(string) bool {
	return func(text string) bool {
		return strings.Contains(strings.ToUpper(text), strings.ToUpper(sub))
	}
}

var reBoletoHint = regexp.MustCompile(`Boleto|Benefici[áa]rio|Raz[ãa]o Social`)
var reTaxHint = regexp.MustCompile(`(?i)IMPOSTO|TAXA`)

// The rule table, ported bank by bank. Scores preserve the original
// precedence: Bradesco PIX "Controle de Pagamento" is the most reliable
// layout, boleto and favorecido captures the least.
var benefRules = []benefRule{
	{
		method: "bradesco-pix-controle-pagamento", score: 22, minLen: 5, collapsed: true,
		re: regexp.MustCompile(`(?i)Controle\s+de\s+Pagamento\s+Benefici[áa]rio:\s*([A-ZÀ-ÚÇ][A-ZÀ-ÚÇ\s.\-()0-9]+?)(?:\s*CPF/CNPJ:|\s*Controle:|\s*$)`),
		group: 1,
	},
	{
		// Bradesco PIX prints payer CNPJ, beneficiary name, beneficiary
		// document on one line.
		method: "bradesco-pix-entre-documentos", score: 21, minLen: 5, collapsed: true,
		re: regexp.MustCompile(`(?i)\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\s+([A-ZÀ-ÚÇ][A-ZÀ-ÚÇ\s.\-()]+?)(?:\s+\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}|\s+\d{3}\.\d{3}\.\d{3}-\d{2}|\s*$)`),
		group: 1,
	},
	{
		method: "bradesco-pix-dados-recebeu", score: 20, minLen: 5, collapsed: true,
		guard: containsFold("Bradesco"),
		re:    regexp.MustCompile(`(?is)Dados\s+de\s+quem\s+recebeu.*?Nome:\s*([A-ZÀ-ÚÇ][A-ZÀ-ÚÇ\s.\-()]+?)(?:\s*CPF/CNPJ:|\s*Institui[çc][ãa]o|\s*$)`),
		group: 1,
	},
	{
		method: "sicoob-ted-credito-nome", score: 19, minLen: 5, collapsed: true,
		re: regexp.MustCompile(`(?is)Cr[ée]dito:\s*Nome:\s*([A-Z][A-Z\s.\-]{5,100}?)(?:\s*CPF/CNPJ|\s*Instituição|\s*Chave|\s*Agência|\s*Conta|$)`),
		group: 1,
	},
	{
		method: "pix-dados-recebedor", score: 15, minLen: 8, multiline: true,
		guard: containsFold("PIX"),
		re:    regexp.MustCompile(`(?is)(?:Dados de quem recebeu|Destina\s*t[áa]rio\s*:).*?Nome\s*:\s*([A-Z][A-Z\s.\-]{5,100}?)(?:\s*CPF/CNPJ|\s*Instituição|\s*Chave|\s*Agência|\s*Conta|$)`),
		group: 1,
	},
	{
		// Bradesco inverted layout: the name comes before its "Nome:" label.
		method: "pix-nome-invertido", score: 14, minLen: 8, collapsed: true,
		guard: containsFold("PIX"),
		re:    regexp.MustCompile(`(?is)(?:CPF/CNPJ|CNPJ)?:?\s*([A-Z][A-Z\s.\-]{5,100}?)\s*Nome:`),
		group: 1,
	},
	{
		method: "santander-pix-recebedor", score: 13, minLen: 8, collapsed: true,
		re: regexp.MustCompile(`(?is)Dados do recebedor Para\s*(?:[0-9\s]+)?\s*([A-Z][A-Z\s\-().]{5,100}?)(?:\s*Chave|\s*CPF/CNPJ|\s*Agência|\s*Conta|$)`),
		group: 1,
	},
	{
		// Boleto layouts where the name precedes its label.
		method: "boleto-razao-social-reversa", score: 12, minLen: 8, collapsed: true,
		re: regexp.MustCompile(`(?i)([A-Z][A-Z\s\-().]{5,100}?)\s+Raz[ãa]o\s+Social\s+Benefici[áa]rio(?:\s+Final)?\s*:`),
		group: 1,
	},
	{
		method: "sicoob-beneficiario", score: 10, minLen: 5, multiline: true,
		guard: containsFold("SICOOB"),
		re:    regexp.MustCompile(`(?is)(?:Nome/Raz[ãa]o Social:|Conv[êe]nio:|Benefici[áa]rio:|Nome:)\s*([A-Z0-9\s.\-]+?)(?:\s*Nome Fantasia|\s*CPF/CNPJ|\s*Pagador|\s*Cr[ée]dito:|\s*Autentica[çc][ãa]o|$)`),
		group: 1,
	},
	{
		method: "santander-beneficiario-original", score: 10, minLen: 5, collapsed: true,
		guard: func(text string) bool {
			return strings.Contains(text, "Santander") && strings.Contains(text, "Dados do Beneficiário Original")
		},
		re:    regexp.MustCompile(`(?is)Benefici[áa]rio Original.*?Raz[ãa]o Social:\s*([A-Z][A-Z\s\-()]+?)(?:\s*Nome Fantasia|\s*Dados do Pagador)`),
		group: 1,
	},
	{
		method: "imposto-empresa-orgao", score: 10, minLen: 5, collapsed: true,
		guard: reTaxHint.MatchString,
		re:    regexp.MustCompile(`(?i)Empresa[\\/\s]+[ÓO]rg[ãa]o[:\s]+([A-Z][A-Z0-9\-\s]{5,50}?)(?:\s*\d{2}\.\d{3}|\s*Codigo|\s*CNPJ)`),
		group: 1,
	},
	{
		method: "sicoob-boleto-razao-social", score: 10, minLen: 5, collapsed: true,
		guard: reBoletoHint.MatchString,
		re:    regexp.MustCompile(`(?is)Benefici[áa]rio:\s*Nome/Raz[ãa]o\s*Social:\s*([A-Z][A-Z\s.\-]{5,100}?)(?:\s*CPF/CNPJ|\s*Instituição|\s*Chave|\s*Agência|\s*Conta|$)`),
		group: 1,
	},
	{
		method: "boleto-razao-social", score: 10, minLen: 8, collapsed: true,
		guard: reBoletoHint.MatchString,
		re:    regexp.MustCompile(`(?i)Raz[ãa]o\s+Social\s+Benefici[áa]rio[:\s]+([A-Z][A-Z\s]+LTDA|[A-Z][A-Z\s]+S\.?A\.?|[A-Z][A-Z\s]{10,60}?)(?:\s*(?:013|037|CPF|CNPJ|Nome|Banco|\d{3}\.\d{3}))`),
		group: 1,
	},
	{
		method: "boleto-beneficiario-final", score: 9, minLen: 8, collapsed: true,
		guard: reBoletoHint.MatchString,
		re:    regexp.MustCompile(`(?i)Benefici[áa]rio\s+Final[:\s]+([A-Z][A-Z\s]+?)(?:\s*(?:CPF|CNPJ|Razao|\d{3}\.\d{3}))`),
		group: 1,
	},
	{
		method: "santander-favorecido", score: 10, minLen: 5, collapsed: true,
		re: regexp.MustCompile(`(?i)Favorecido[:\s]+([A-Z][A-Z\s]+?)(?:\s+Valor|\s+CNPJ|\s+CPF)`),
		group: 1,
	},
}

// Old cooperative statements abbreviate supplier names; these remaps
// restore the full legal names seen in the ledger.
var nameRemaps = map[string]string{
	"DALL PHYT OLAB S A":                       "DALL PHYTO LAB S.A.",
	"PREF SP DAMSP":                            "PREFEITURA MUNICIPAL DE SAO PAULO",
	"PRO AN QUIM E DIAGNOSTICA LTDA":           "PRO AN QUIMICA E DIAGNOSTICA LTDA",
	"SUPER EPI EQUIPAM E PROTECAO INDIVIDUAL":  "SUPER EPI EQUIPAMENTOS E PROTECAO INDIVIDUAL",
	"ANHANGUERA COM DE FERR LTDA":              "ANHANGUERA COM DE FERRO LTDA",
	"KALUNGA SA":                               "KALUNGA S.A.",
}

var (
	reCNPJ = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`)
	reCPF  = regexp.MustCompile(`\d{3}\.\d{3}\.\d{3}-\d{2}`)
)

// cleanCandidate normalizes a raw capture: strips document numbers the
// regex may have swallowed, collapses whitespace, upper-cases.
func cleanCandidate(raw string) string {
	name := reCNPJ.ReplaceAllString(raw, "")
	name = reCPF.ReplaceAllString(name, "")
	name = collapseSpaces(name)
	return strings.ToUpper(strings.TrimSpace(name))
}

// ExtractBeneficiary runs the full rule table over the receipt text and
// returns the best candidate, its method name, and its score. rejectNames
// holds upper-case payer aliases that must not win (the paying company
// showing up as its own beneficiary). Returns UnknownBeneficiary when no
// rule produces a valid name.
func ExtractBeneficiary(text string, rejectNames []string) (name, method string, score int) {
	if text == "" {
		return UnknownBeneficiary, "", 0
	}
	collapsed := collapseSpaces(text)

	var candidates []candidate
	for _, rule := range benefRules {
		if rule.guard != nil && !rule.guard(text) {
			continue
		}
		subject := collapsed
		if rule.multiline {
			subject = text
		}
		m := rule.re.FindStringSubmatch(subject)
		if m == nil {
			continue
		}
		name := cleanCandidate(m[rule.group])
		if remap, ok := nameRemaps[name]; ok {
			name = remap
		}
		if isRejected(name, rejectNames) {
			continue
		}
		if !ValidName(name, rule.minLen) {
			continue
		}
		candidates = append(candidates, candidate{name: name, score: rule.score, method: rule.method})
	}

	if len(candidates) == 0 {
		return UnknownBeneficiary, "", 0
	}

	// Same name found by several rules: keep its best score. Then the
	// highest score wins; ties go to the earlier rule.
	bestByName := map[string]candidate{}
	order := []string{}
	for _, c := range candidates {
		if cur, ok := bestByName[c.name]; !ok {
			bestByName[c.name] = c
			order = append(order, c.name)
		} else if c.score > cur.score {
			bestByName[c.name] = c
		}
	}
	best := bestByName[order[0]]
	for _, n := range order[1:] {
		if bestByName[n].score > best.score {
			best = bestByName[n]
		}
	}
	return best.name, best.method, best.score
}

func isRejected(name string, rejectNames []string) bool {
	for _, r := range rejectNames {
		if r != "" && strings.Contains(name, r) {
			return true
		}
	}
	return false
}
