package extract

// Fields is the payment metadata extracted from one receipt.
type Fields struct {
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
	Company     string `json:"company"`
	BarcodeTail string `json:"barcode_tail,omitempty"`
	Method      string `json:"method,omitempty"` // winning extraction rule
	Score       int    `json:"score,omitempty"`
}

// Extractor turns receipt text into Fields. It is pure: the same text
// always yields the same Fields, which is what makes renames idempotent.
type Extractor struct {
	companies   Companies
	rejectNames []string
	barcodeTail int
}

// NewExtractor builds an extractor over the given paying-company table.
// barcodeTailLen is how many trailing digits of a linha digitável to keep.
func NewExtractor(companies Companies, barcodeTailLen int) *Extractor {
	if companies == nil {
		companies = DefaultCompanies()
	}
	if barcodeTailLen <= 0 {
		barcodeTailLen = 6
	}
	return &Extractor{
		companies:   companies,
		rejectNames: companies.Aliases(),
		barcodeTail: barcodeTailLen,
	}
}

// Extract runs all extractors over the receipt text.
func (e *Extractor) Extract(text string) Fields {
	text = CleanText(text)

	var f Fields
	f.Beneficiary, f.Method, f.Score = ExtractBeneficiary(text, e.rejectNames)
	if f.Beneficiary == UnknownBeneficiary {
		f.Beneficiary = FallbackBeneficiary(text)
	}
	f.Amount = ExtractAmount(text)
	f.Company = e.companies.Classify(text)
	if HasBarcodeHint(text) {
		if seq := DigitSequence(text); seq != "" {
			f.BarcodeTail = Tail(seq, e.barcodeTail)
		}
	}
	return f
}
