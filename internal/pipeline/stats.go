package pipeline

import (
	"time"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/archive"
)

// RunStats aggregates the outcome of one batch run.
type RunStats struct {
	RunID    string
	Total    int // regular files seen in the input directory
	Renamed  int
	Skipped  int // unsupported, unreadable or empty files
	Duration time.Duration

	TotalInputBytes int64

	Records []archive.Record
}
