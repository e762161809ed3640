// Package pipeline orchestrates receipt discovery, per-file processing,
// and run packaging (ZIP, CSV log, HTML report).
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/archive"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/config"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/extract"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/naming"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/parser"
)

// Run is the top-level batch entry point: discover receipts directly
// inside the input directory (non-recursive), process each sequentially,
// then write the CSV log, the HTML report, and the ZIP archive.
//
// Per-file problems are logged and skipped; the returned error is non-nil
// only for fatal setup failures (missing input directory, uncreatable
// output directory, unwritable run outputs).
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) (RunStats, error) {
	start := time.Now()
	stats := RunStats{RunID: uuid.NewString()}
	log = log.With("run_id", stats.RunID)

	companies, err := loadCompanies(cfg)
	if err != nil {
		return stats, err
	}

	fi, err := os.Stat(cfg.InputDir)
	if err != nil {
		return stats, fmt.Errorf("input directory %s: %w", cfg.InputDir, err)
	}
	if !fi.IsDir() {
		return stats, fmt.Errorf("input path %s is not a directory", cfg.InputDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return stats, fmt.Errorf("create output directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return stats, fmt.Errorf("read input directory: %w", err)
	}

	extractor := extract.NewExtractor(companies, cfg.BarcodeTailLen)
	counter := naming.NewKeyCounter()
	resolver := naming.NewCollisionResolver()

	for _, entry := range entries {
		if ctx.Err() != nil {
			log.Warn("interrupted")
			break
		}
		if entry.IsDir() {
			continue
		}
		stats.Total++
		rec := processFile(cfg, log, extractor, counter, resolver, entry.Name(), &stats)
		stats.Records = append(stats.Records, rec)
	}

	if err := archive.WriteCSVLog(cfg.CSVLogPath, stats.Records); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	meta := archive.ReportMeta{
		RunID:    stats.RunID,
		Started:  start,
		Duration: stats.Duration,
		Archive:  cfg.ArchivePath,
	}
	if err := archive.WriteHTMLReport(cfg.ReportPath, meta, stats.Records); err != nil {
		return stats, err
	}

	if err := archive.BuildZip(cfg.OutputDir, cfg.ArchivePath); err != nil {
		return stats, err
	}

	log.Info("run completed",
		"total", stats.Total,
		"renamed", stats.Renamed,
		"skipped", stats.Skipped,
		"archive", cfg.ArchivePath,
		"duration_ms", stats.Duration.Milliseconds(),
	)
	return stats, nil
}

// processFile handles one receipt: parse → extract → name → copy.
// Failures are recorded on the returned Record, never fatal.
func processFile(
	cfg config.Config,
	log *slog.Logger,
	extractor *extract.Extractor,
	counter *naming.KeyCounter,
	resolver *naming.CollisionResolver,
	name string,
	stats *RunStats,
) archive.Record {
	rec := archive.Record{Source: name}
	srcPath := filepath.Join(cfg.InputDir, name)
	log = log.With("file", name)

	if !parser.IsSupportedExtension(name) {
		log.Warn("unsupported format, skipping")
		rec.Error = "formato não suportado"
		stats.Skipped++
		return rec
	}

	p, err := parser.ForFile(name)
	if err != nil {
		log.Warn("no parser for file, skipping", "error", err)
		rec.Error = err.Error()
		stats.Skipped++
		return rec
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}

	f, err := os.Open(srcPath)
	if err != nil {
		log.Warn("cannot read file, skipping", "error", err)
		rec.Error = "leitura falhou"
		stats.Skipped++
		return rec
	}
	doc, err := p.Parse(f, name)
	f.Close()
	if err != nil {
		log.Warn("parse failed, skipping", "error", err)
		rec.Error = "extração de texto falhou"
		stats.Skipped++
		return rec
	}
	if doc.Empty() {
		log.Warn("no extractable text, skipping")
		rec.Error = "sem texto extraível"
		stats.Skipped++
		return rec
	}

	fields := extractor.Extract(doc.Text())
	rec.Company = fields.Company
	rec.Beneficiary = fields.Beneficiary
	rec.Amount = fields.Amount

	seq := counter.Next(fields)
	ext := strings.ToLower(filepath.Ext(name))
	canonical := naming.BuildName(fields, seq, cfg.MaxNameLen, ext)
	outPath := resolver.Resolve(srcPath, naming.OutputPath(cfg.OutputDir, fields.Company, canonical))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Warn("cannot create company directory, skipping", "error", err)
		rec.Error = "criação de pasta falhou"
		stats.Skipped++
		return rec
	}
	written, err := copyFile(srcPath, outPath)
	if err != nil {
		log.Warn("copy failed, skipping", "error", err)
		os.Remove(outPath)
		rec.Error = "cópia falhou"
		stats.Skipped++
		return rec
	}

	rec.FinalName = filepath.Base(outPath)
	stats.Renamed++
	stats.TotalInputBytes += written

	log.Info("renamed",
		"beneficiary", fields.Beneficiary,
		"amount", fields.Amount,
		"company", fields.Company,
		"method", fields.Method,
		"output", rec.FinalName,
	)
	return rec
}

func loadCompanies(cfg config.Config) (extract.Companies, error) {
	if cfg.CompaniesFile == "" {
		return extract.DefaultCompanies(), nil
	}
	return extract.LoadCompanies(cfg.CompaniesFile)
}

// copyFile copies src to dst, returning the byte count. The source is
// never mutated; each handle is released as soon as the copy finishes.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
