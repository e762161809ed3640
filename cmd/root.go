package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/config"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/pipeline"
)

var version = "dev"

var (
	flagEntrada string
	flagSaida   string
	flagZip     string
)

var rootCmd = &cobra.Command{
	Use:     "renomear",
	Short:   "Renomeia comprovantes de pagamento e empacota o resultado",
	Long:    `Lê comprovantes (PDF, HTML, DOCX, TXT) da pasta de entrada, extrai beneficiário, valor e empresa pagadora, copia cada arquivo com o nome canônico para a pasta de saída e gera o ZIP final com log CSV e relatório HTML.`,
	Version: version,
	RunE:    runBatch,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEntrada, "entrada", "", "pasta de entrada (default: ./entrada ou ENTRADA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagSaida, "saida", "", "pasta de saída (default: ./saida ou SAIDA_DIR)")
	rootCmd.Flags().StringVar(&flagZip, "zip", "", "caminho do ZIP final (default: ./comprovantes_renomeados.zip)")
}

// Execute runs the CLI. Errors have already been reported; it exits
// non-zero on fatal failures.
func Execute() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the JSON logger shared by all commands.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// loadConfig merges env configuration with command-line flag overrides.
func loadConfig() config.Config {
	cfg := config.Load()
	if flagEntrada != "" {
		cfg.InputDir = flagEntrada
	}
	if flagSaida != "" {
		cfg.OutputDir = flagSaida
	}
	if flagZip != "" {
		cfg.ArchivePath = flagZip
	}
	return cfg
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		log.Error("run failed", "error", err)
		return err
	}
	if stats.Skipped > 0 {
		log.Warn("some files were skipped", "skipped", stats.Skipped)
	}
	return nil
}

// notifyInterrupt is a helper for commands that block until a signal.
func notifyInterrupt() chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
