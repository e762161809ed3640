package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/extract"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/naming"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/parser"
)

// Worker processes uploaded receipt jobs for the service mode.
type Worker struct {
	extractor  *extract.Extractor
	log        *slog.Logger
	maxNameLen int
	stats      *extract.Stats
}

func NewWorker(extractor *extract.Extractor, log *slog.Logger, maxNameLen int, stats *extract.Stats) *Worker {
	return &Worker{
		extractor:  extractor,
		log:        log,
		maxNameLen: maxNameLen,
		stats:      stats,
	}
}

// Process runs parse → extract → name for one job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "file", job.Filename)
	start := time.Now()

	job.SetStatus(StatusParsing, "parsing")
	fields, finalName, err := ProcessBytes(job.FileData(), job.Filename, w.extractor, w.maxNameLen)
	if err != nil {
		log.Error("processing failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "failed")
		return
	}

	job.SetStatus(StatusNaming, "naming")
	job.SetResult(fields, finalName)
	job.SetStatus(StatusCompleted, "done")

	if w.stats != nil {
		w.stats.Record(time.Since(start).Milliseconds())
	}
	log.Info("job completed",
		"beneficiary", fields.Beneficiary,
		"amount", fields.Amount,
		"final_name", finalName,
	)
}

// ProcessBytes is the in-memory variant of the batch per-file path: parse
// the raw receipt bytes, extract fields, build the canonical name. Shared
// by the async worker and the synchronous rename endpoint. Service-mode
// names always use sequence 1; repeat counting only applies within a
// batch run.
func ProcessBytes(data []byte, filename string, extractor *extract.Extractor, maxNameLen int) (extract.Fields, string, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return extract.Fields{}, "", err
	}

	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return extract.Fields{}, "", fmt.Errorf("parse: %w", err)
	}
	if doc.Empty() {
		return extract.Fields{}, "", fmt.Errorf("no extractable text in %s", filename)
	}

	fields := extractor.Extract(doc.Text())
	ext := strings.ToLower(filepath.Ext(filename))
	return fields, naming.BuildName(fields, 1, maxNameLen, ext), nil
}
