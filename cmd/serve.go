package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/api"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/extract"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/pipeline"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expõe a renomeação como serviço HTTP",
	Long:  `Sobe um servidor HTTP que recebe comprovantes por upload e devolve o nome canônico e os campos extraídos, com fila assíncrona para lotes.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg := loadConfig()
	if err := cfg.ValidateServe(); err != nil {
		log.Error("invalid configuration", "error", err)
		return err
	}

	companies := extract.DefaultCompanies()
	if cfg.CompaniesFile != "" {
		var err error
		companies, err = extract.LoadCompanies(cfg.CompaniesFile)
		if err != nil {
			log.Error("cannot load companies file", "error", err)
			return err
		}
	}
	extractor := extract.NewExtractor(companies, cfg.BarcodeTailLen)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	orch := pipeline.NewOrchestrator(cfg, extractor, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, log, cfg)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		<-notifyInterrupt()
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting rename service", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}
