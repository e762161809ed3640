package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Observa a pasta de entrada e renomeia novos comprovantes",
	Long:  `Executa uma rodada inicial e depois fica observando a pasta de entrada; comprovantes novos disparam uma nova rodada após um período de calmaria.`,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watch.Run(ctx, cfg, log); err != nil {
		log.Error("watch failed", "error", err)
		return err
	}
	return nil
}
