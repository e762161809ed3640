package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Batch paths (conventional defaults, overridable via env)
	InputDir    string
	OutputDir   string
	ArchivePath string
	CSVLogPath  string
	ReportPath  string

	// Extraction
	CompaniesFile  string // optional YAML alias table
	MaxNameLen     int
	BarcodeTailLen int

	// PDF
	PDFFallbackPdftotext bool

	// Service mode
	Port           string
	APIKey         string
	WorkerCount    int
	MaxQueueSize   int
	MaxUploadBytes int64
	JobTTL         time.Duration

	// Watch mode
	WatchQuiet time.Duration
}

func Load() Config {
	cfg := Config{
		InputDir:    envOr("ENTRADA_DIR", "entrada"),
		OutputDir:   envOr("SAIDA_DIR", "saida"),
		ArchivePath: envOr("ZIP_FINAL", "comprovantes_renomeados.zip"),
		CSVLogPath:  envOr("LOG_CSV", "renomeacao_log.csv"),
		ReportPath:  envOr("RELATORIO_HTML", "relatorio.html"),

		CompaniesFile:  os.Getenv("EMPRESAS_FILE"),
		MaxNameLen:     envInt("MAX_NAME_LEN", 60),
		BarcodeTailLen: envInt("BARCODE_TAIL_LEN", 6),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		Port:           envOr("PORT", "8090"),
		APIKey:         os.Getenv("RENOMEAR_API_KEY"),
		WorkerCount:    envInt("WORKER_COUNT", 4),
		MaxQueueSize:   envInt("MAX_QUEUE_SIZE", 100),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		JobTTL:         envDuration("JOB_TTL", 1*time.Hour),

		WatchQuiet: envDuration("WATCH_QUIET", 2*time.Second),
	}

	if cfg.MaxNameLen <= 0 {
		cfg.MaxNameLen = 60
	}
	if cfg.BarcodeTailLen <= 0 {
		cfg.BarcodeTailLen = 6
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.WatchQuiet <= 0 {
		cfg.WatchQuiet = 2 * time.Second
	}

	return cfg
}

// Validate checks settings every mode needs.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("ENTRADA_DIR must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("SAIDA_DIR must not be empty")
	}
	return nil
}

// ValidateServe checks settings required by the HTTP service mode.
func (c Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.APIKey == "" {
		return fmt.Errorf("RENOMEAR_API_KEY is required in serve mode")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
