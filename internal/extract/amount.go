package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AmountNotFound is the sentinel used in filenames when no payment amount
// could be extracted.
const AmountNotFound = "VALOR_NAO_ENCONTRADO"

type amountCandidate struct {
	display  string
	priority int
	cents    int64
}

// Bradesco PIX layouts print the amount as a bare Brazilian-format number
// between the beneficiary document and the zero fee ("R$0,00").
var (
	reAmountAfterDoc = regexp.MustCompile(
		`(?:\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}|\d{3}\.\d{3}\.\d{3}-\d{2})\s+(\d{1,3}(?:\.\d{3})*,\d{2})\s+R\$0,00`)
	reAmountBeforeZeroFee = regexp.MustCompile(
		`(\d{1,3}(?:\.\d{3})*,\d{2})\s+R\$0,00`)
)

// Labeled amount patterns, lower priority wins. Order matters only for
// ties (first seen is kept).
var amountPatterns = []struct {
	re       *regexp.Regexp
	priority int
}{
	{regexp.MustCompile(`(?i)Valor\s+principal[:\s]*R?\$?\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?i)Valor\s+total\s+pago[:\s]*R?\$?\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?i)Valor:R\$\s*([\d.,]+)`), 1},
	{regexp.MustCompile(`(?i)Valor\s+do\s+pagamento[:\s]*R?\$?\s*([\d.,]+)`), 2},
	{regexp.MustCompile(`(?is)Favorecido:.*?Valor[:\s]*R?\$?\s*([\d.,]+)`), 2},
	{regexp.MustCompile(`(?i)Valor\s+total[:\s]*R?\$?\s*([\d.,]+)`), 3},
	{regexp.MustCompile(`(?im)^Valor[:\s]*R?\$?\s*([\d.,]+)`), 4},
}

// reAmountIsolated matches bare "R$ 1.234,56" occurrences. Matches followed
// by interest/fine/discount labels are rejected after the fact, since RE2
// has no lookahead.
var (
	reAmountIsolated  = regexp.MustCompile(`R\$\s*([\d.,]+)`)
	reIsolatedRejects = regexp.MustCompile(`^\s*(?i:Juros|Multa|Desconto|Bonif)`)
)

// ExtractAmount finds the payment amount in receipt text. Candidates are
// collected from all patterns, deduplicated by numeric value, and the one
// with the best (lowest) priority wins. Returns AmountNotFound when
// nothing parses.
func ExtractAmount(text string) string {
	if text == "" {
		return AmountNotFound
	}

	var candidates []amountCandidate

	if m := reAmountAfterDoc.FindStringSubmatch(text); m != nil {
		if cents, display, ok := normalizeAmount(m[1]); ok {
			candidates = append(candidates, amountCandidate{display, 0, cents})
		}
	}
	if len(candidates) == 0 {
		if m := reAmountBeforeZeroFee.FindStringSubmatch(text); m != nil {
			if cents, display, ok := normalizeAmount(m[1]); ok {
				candidates = append(candidates, amountCandidate{display, 0, cents})
			}
		}
	}

	for _, p := range amountPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			if cents, display, ok := normalizeAmount(m[1]); ok {
				candidates = append(candidates, amountCandidate{display, p.priority, cents})
			}
		}
	}

	for _, loc := range reAmountIsolated.FindAllStringSubmatchIndex(text, -1) {
		if reIsolatedRejects.MatchString(text[loc[1]:]) {
			continue
		}
		raw := text[loc[2]:loc[3]]
		if cents, display, ok := normalizeAmount(raw); ok {
			candidates = append(candidates, amountCandidate{display, 5, cents})
		}
	}

	if len(candidates) == 0 {
		return AmountNotFound
	}

	// Deduplicate by value, keeping the best priority per distinct amount.
	best := map[int64]amountCandidate{}
	for _, c := range candidates {
		if cur, ok := best[c.cents]; !ok || c.priority < cur.priority {
			best[c.cents] = c
		}
	}
	winner := amountCandidate{priority: math.MaxInt}
	for _, c := range best {
		if c.priority < winner.priority || (c.priority == winner.priority && c.cents > winner.cents) {
			winner = c
		}
	}
	return winner.display
}

// normalizeAmount parses a Brazilian-format number ("1.234,56") and returns
// its value in cents plus a comma-decimal display form. Zero and
// unparseable values are rejected.
func normalizeAmount(raw string) (cents int64, display string, ok bool) {
	raw = strings.Trim(raw, ".,")
	v := raw
	if strings.Contains(v, ",") && strings.Contains(v, ".") {
		v = strings.ReplaceAll(v, ".", "")
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil || f <= 0 {
		return 0, "", false
	}
	return int64(math.Round(f * 100)), strings.ReplaceAll(v, ".", ","), true
}
