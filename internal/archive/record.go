// Package archive packages a finished run: the ZIP bundle of renamed
// receipts, the CSV audit log, and the HTML run report.
package archive

// Record is one processed source file as it appears in the audit log and
// run report.
type Record struct {
	Source      string // original filename
	Company     string
	Beneficiary string
	Amount      string
	FinalName   string // canonical name, empty when the file was skipped
	Error       string // skip/failure reason, empty on success
}
