package extract

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CompanyOther is the classification for receipts that match no known
// paying company. These land in their own output subdirectory.
const CompanyOther = "OUTROS"

// Companies maps a company key (output subdirectory name) to the text
// aliases that identify it inside a receipt.
type Companies map[string][]string

// DefaultCompanies returns the built-in paying-company alias table.
func DefaultCompanies() Companies {
	return Companies{
		"LIFE_SCIENCE":   {"FARMAUSA LIFE SCIENCE", "LIFE SCIENCE"},
		"URBANBOX":       {"URBANBOX"},
		"PHARMACEUTICAL": {"FARMAUSA PHARMACEUTICAL", "FARMAUSA PHARMACEUTICAL LTDA"},
	}
}

// LoadCompanies reads a company alias table from a YAML file:
//
//	LIFE_SCIENCE:
//	  - FARMAUSA LIFE SCIENCE
//	  - LIFE SCIENCE
func LoadCompanies(path string) (Companies, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read companies file: %w", err)
	}
	var c Companies
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse companies file: %w", err)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("companies file %s defines no companies", path)
	}
	return c, nil
}

// Classify returns the company key whose alias appears in the receipt
// text, or CompanyOther. Keys are checked in sorted order so the result
// is deterministic when aliases overlap.
func (c Companies) Classify(text string) string {
	upper := strings.ToUpper(text)
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		for _, alias := range c[key] {
			if strings.Contains(upper, strings.ToUpper(alias)) {
				return key
			}
		}
	}
	return CompanyOther
}

// Aliases returns every alias in upper case, used to reject the paying
// company itself when it shows up as an extraction candidate.
func (c Companies) Aliases() []string {
	var out []string
	for _, aliases := range c {
		for _, a := range aliases {
			out = append(out, strings.ToUpper(a))
		}
	}
	sort.Strings(out)
	return out
}
